package migrations

import (
	"pano.link/configs/configslog"
	"pano.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateBoardColumnsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating board_columns table...")
	err := db.AutoMigrate(&models.BoardColumn{})
	if err != nil {
		configslog.Log.Error("Failed to migrate board_columns table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Board columns table migrated successfully")
	return nil
}
