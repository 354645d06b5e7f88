package seeders

import (
	"errors"

	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedQuestions örnek soruları idempotent şekilde oluşturur.
// Sorular anket + soru metni ikilisine göre eşlenir.
func SeedQuestions(db *gorm.DB) error {
	configslog.SLog.Info("Soru seed işlemi başlıyor...")

	var active models.Survey
	err := db.Where("status = ? AND title = ?", models.SurveyStatusActive, "Post-Purchase Feedback").First(&active).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// Soru seeder'ı tek başına çalıştırıldıysa anketin var olduğundan emin ol.
		active = models.Survey{
			Title:       "Post-Purchase Feedback",
			Description: "Tell us about your experience after your recent purchase.",
			Status:      models.SurveyStatusActive,
		}
		if err := db.Create(&active).Error; err != nil {
			configslog.Log.Error("Aktif anket oluşturulamadı", zap.Error(err))
			return err
		}
	}

	activeQuestions := []models.Question{
		{SurveyID: active.ID, Type: models.QuestionTypeScale, QuestionText: "How satisfied are you with your purchase?"},
		{SurveyID: active.ID, Type: models.QuestionTypeText, QuestionText: "What did you like the most?"},
		{SurveyID: active.ID, Type: models.QuestionTypeMultipleChoice, QuestionText: "Would you recommend us to a friend? (Yes/No)"},
	}
	if err := seedQuestionList(db, activeQuestions); err != nil {
		return err
	}

	// Pasif ankete de birkaç soru ekle; pasif anketlerin gönderim
	// akışında görünmediğini test etmeyi kolaylaştırır.
	var inactive models.Survey
	err = db.Where("status = ? AND title = ?", models.SurveyStatusInactive, "Legacy Customer Satisfaction").First(&inactive).Error
	if err == nil {
		inactiveQuestions := []models.Question{
			{SurveyID: inactive.ID, Type: models.QuestionTypeScale, QuestionText: "Rate your overall satisfaction (legacy)."},
			{SurveyID: inactive.ID, Type: models.QuestionTypeText, QuestionText: "Any comments? (legacy)"},
		}
		if err := seedQuestionList(db, inactiveQuestions); err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	configslog.SLog.Info("Soru seed işlemi tamamlandı.")
	return nil
}

func seedQuestionList(db *gorm.DB, questions []models.Question) error {
	for _, questionToSeed := range questions {
		var existing models.Question
		result := db.Where("survey_id = ? AND question_text = ?", questionToSeed.SurveyID, questionToSeed.QuestionText).First(&existing)

		if result.Error == nil {
			if existing.Type != questionToSeed.Type {
				existing.Type = questionToSeed.Type
				if err := db.Save(&existing).Error; err != nil {
					return err
				}
			}
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Soru kontrol edilirken veritabanı hatası",
				zap.String("question_text", questionToSeed.QuestionText),
				zap.Error(result.Error),
			)
			return result.Error
		}

		if err := db.Create(&questionToSeed).Error; err != nil {
			configslog.Log.Error("Soru oluşturulamadı",
				zap.String("question_text", questionToSeed.QuestionText),
				zap.Error(err),
			)
			return err
		}
		configslog.SLog.Infof("Soru oluşturuldu (ID: %d, Tip: %s).", questionToSeed.ID, questionToSeed.Type)
	}
	return nil
}
