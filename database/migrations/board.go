package migrations

import (
	"pano.link/configs/configslog"
	"pano.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateBoardsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating boards table...")
	err := db.AutoMigrate(&models.Board{})
	if err != nil {
		configslog.Log.Error("Failed to migrate boards table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Boards table migrated successfully")
	return nil
}
