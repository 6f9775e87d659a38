package migrations

import (
	"pano.link/configs/configslog"
	"pano.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardDependenciesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating card_dependencies table...")
	err := db.AutoMigrate(&models.CardDependency{})
	if err != nil {
		configslog.Log.Error("Failed to migrate card_dependencies table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Card dependencies table migrated successfully")
	return nil
}
