package migrations

import (
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAnswersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating answers table...")
	err := db.AutoMigrate(&models.Answer{})
	if err != nil {
		configslog.Log.Error("Failed to migrate answers table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Answers table migrated successfully")
	return nil
}
