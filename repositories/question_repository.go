package repositories

import (
	"context"
	"errors"

	"anket.link/configs/configsdatabase"
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IQuestionRepository soru veritabanı işlemleri için arayüz.
type IQuestionRepository interface {
	FindBySurveyID(ctx context.Context, surveyID uint) ([]models.Question, error)
}

// QuestionRepository IQuestionRepository arayüzünü uygular.
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository yeni bir QuestionRepository örneği oluşturur.
func NewQuestionRepository() IQuestionRepository {
	return &QuestionRepository{db: configsdatabase.GetDB()}
}

// Context ile çalışan DB örneği döndüren yardımcı fonksiyon
func (r *QuestionRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// FindBySurveyID bir ankete ait tüm soruları tek sorguda getirir.
// Gönderim akışı soruları buradan bir kez yükler, cevap başına sorgu atılmaz.
func (r *QuestionRepository) FindBySurveyID(ctx context.Context, surveyID uint) ([]models.Question, error) {
	if surveyID == 0 {
		return nil, errors.New("geçersiz Survey ID")
	}
	var questions []models.Question
	err := r.getDB(ctx).Where("survey_id = ?", surveyID).Find(&questions).Error
	if err != nil {
		configslog.Log.Error("QuestionRepository.FindBySurveyID: DB error", zap.Uint("survey_id", surveyID), zap.Error(err))
		return nil, err
	}
	return questions, nil
}

var _ IQuestionRepository = (*QuestionRepository)(nil)

// Transaction'lı Repository için yardımcı constructor
func NewQuestionRepositoryTx(tx *gorm.DB) IQuestionRepository {
	return &QuestionRepository{db: tx}
}
