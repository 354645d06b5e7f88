package migrations

import (
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateQuestionsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating questions table...")
	err := db.AutoMigrate(&models.Question{})
	if err != nil {
		configslog.Log.Error("Failed to migrate questions table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Questions table migrated successfully")
	return nil
}
