package seeders

import (
	"errors"

	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedSurveys örnek anketleri idempotent şekilde oluşturur.
// Mevcut kayıtlar başlığa göre bulunur ve güncellenir, yeniden eklenmez.
func SeedSurveys(db *gorm.DB) error {
	surveysToSeed := []models.Survey{
		{
			Title:       "Post-Purchase Feedback",
			Description: "Tell us about your experience after your recent purchase.",
			Status:      models.SurveyStatusActive,
		},
		{
			Title:       "Legacy Customer Satisfaction",
			Description: "Older CSAT form (no longer active).",
			Status:      models.SurveyStatusInactive,
		},
	}

	configslog.SLog.Info("Anket seed işlemi başlıyor...")

	for _, surveyToSeed := range surveysToSeed {
		var existing models.Survey
		result := db.Where("title = ?", surveyToSeed.Title).First(&existing)

		if result.Error == nil {
			existing.Description = surveyToSeed.Description
			existing.Status = surveyToSeed.Status
			if err := db.Save(&existing).Error; err != nil {
				configslog.Log.Error("Anket güncellenemedi", zap.String("title", surveyToSeed.Title), zap.Error(err))
				return err
			}
			configslog.SLog.Debugf("Anket '%s' zaten mevcut, güncellendi.", surveyToSeed.Title)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Anket kontrol edilirken veritabanı hatası", zap.String("title", surveyToSeed.Title), zap.Error(result.Error))
			return result.Error
		}

		if err := db.Create(&surveyToSeed).Error; err != nil {
			configslog.Log.Error("Anket oluşturulamadı", zap.String("title", surveyToSeed.Title), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Anket '%s' oluşturuldu (ID: %d).", surveyToSeed.Title, surveyToSeed.ID)
	}

	configslog.SLog.Info("Anket seed işlemi tamamlandı.")
	return nil
}
