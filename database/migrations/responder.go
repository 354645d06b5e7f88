package migrations

import (
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateRespondersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating responders table...")
	err := db.AutoMigrate(&models.Responder{})
	if err != nil {
		configslog.Log.Error("Failed to migrate responders table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Responders table migrated successfully")
	return nil
}
