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

// ISurveyRepository anket veritabanı işlemleri için arayüz.
type ISurveyRepository interface {
	FindAllActive(ctx context.Context) ([]models.Survey, error)
	FindActiveByID(ctx context.Context, id uint) (*models.Survey, error)
	FindActiveByIDWithQuestions(ctx context.Context, id uint) (*models.Survey, error)
}

// SurveyRepository ISurveyRepository arayüzünü uygular.
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository yeni bir SurveyRepository örneği oluşturur.
func NewSurveyRepository() ISurveyRepository {
	return &SurveyRepository{db: configsdatabase.GetDB()}
}

// Context ile çalışan DB örneği döndüren yardımcı fonksiyon
func (r *SurveyRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// FindAllActive aktif anketleri yeni olandan eskiye doğru listeler.
func (r *SurveyRepository) FindAllActive(ctx context.Context) ([]models.Survey, error) {
	var surveys []models.Survey
	err := r.getDB(ctx).
		Where("status = ?", models.SurveyStatusActive).
		Order("id desc").
		Find(&surveys).Error
	if err != nil {
		configslog.Log.Error("SurveyRepository.FindAllActive: DB error", zap.Error(err))
		return nil, err
	}
	return surveys, nil
}

// FindActiveByID belirli bir aktif anketi bulur. Pasif anketler yok sayılır.
func (r *SurveyRepository) FindActiveByID(ctx context.Context, id uint) (*models.Survey, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var survey models.Survey
	err := r.getDB(ctx).
		Where("status = ?", models.SurveyStatusActive).
		First(&survey, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SurveyRepository.FindActiveByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &survey, nil
}

// FindActiveByIDWithQuestions anketi soruları ile birlikte getirir.
func (r *SurveyRepository) FindActiveByIDWithQuestions(ctx context.Context, id uint) (*models.Survey, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var survey models.Survey
	err := r.getDB(ctx).
		Preload("Questions").
		Where("status = ?", models.SurveyStatusActive).
		First(&survey, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SurveyRepository.FindActiveByIDWithQuestions: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &survey, nil
}

var _ ISurveyRepository = (*SurveyRepository)(nil)

// Transaction'lı Repository için yardımcı constructor
func NewSurveyRepositoryTx(tx *gorm.DB) ISurveyRepository {
	return &SurveyRepository{db: tx}
}
