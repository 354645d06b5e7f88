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

// IAnswerRepository cevap veritabanı işlemleri için arayüz.
// Cevaplar yalnızca oluşturulur; güncelleme ve silme bu sistemin kapsamı dışındadır.
type IAnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	CountBySurveyID(ctx context.Context, surveyID uint) (int64, error)
}

// AnswerRepository IAnswerRepository arayüzünü uygular.
type AnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository yeni bir AnswerRepository örneği oluşturur.
func NewAnswerRepository() IAnswerRepository {
	return &AnswerRepository{db: configsdatabase.GetDB()}
}

// Context ile çalışan DB örneği döndüren yardımcı fonksiyon
func (r *AnswerRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create tek bir cevap satırı ekler.
func (r *AnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	if answer == nil || answer.QuestionID == 0 || answer.ResponderID == 0 {
		return errors.New("geçersiz veya eksik alanlı cevap oluşturulamaz")
	}
	err := r.getDB(ctx).Create(answer).Error
	if err != nil {
		configslog.Log.Error("AnswerRepository.Create: DB error",
			zap.Uint("question_id", answer.QuestionID),
			zap.Uint("responder_id", answer.ResponderID),
			zap.Error(err),
		)
	}
	return err
}

// CountBySurveyID bir anketin sorularına verilmiş toplam cevap sayısını döndürür.
func (r *AnswerRepository) CountBySurveyID(ctx context.Context, surveyID uint) (int64, error) {
	if surveyID == 0 {
		return 0, errors.New("geçersiz Survey ID")
	}
	var count int64
	err := r.getDB(ctx).
		Model(&models.Answer{}).
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("questions.survey_id = ?", surveyID).
		Count(&count).Error
	return count, err
}

var _ IAnswerRepository = (*AnswerRepository)(nil)

// Transaction'lı Repository için yardımcı constructor
func NewAnswerRepositoryTx(tx *gorm.DB) IAnswerRepository {
	return &AnswerRepository{db: tx}
}
