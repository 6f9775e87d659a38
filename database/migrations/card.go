package migrations

import (
	"pano.link/configs/configslog"
	"pano.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cards table...")
	err := db.AutoMigrate(&models.Card{})
	if err != nil {
		configslog.Log.Error("Failed to migrate cards table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cards table migrated successfully")
	return nil
}
