package migrations

import (
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateSurveysTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating surveys table...")
	err := db.AutoMigrate(&models.Survey{})
	if err != nil {
		configslog.Log.Error("Failed to migrate surveys table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Surveys table migrated successfully")
	return nil
}
