package services

import (
	"context"
	"errors"

	"anket.link/models"
	"anket.link/repositories"
)

// SurveyServiceError özel servis hataları
type SurveyServiceError string

func (e SurveyServiceError) Error() string { return string(e) }

const (
	ErrSurveyNotFound SurveyServiceError = "anket bulunamadı veya aktif değil"
)

// ISurveyService anket okuma işlemleri için arayüz.
// Bu sistemde anketler harici olarak yönetilir; buradan yalnızca okunur.
type ISurveyService interface {
	GetActiveSurveys(ctx context.Context) ([]models.Survey, error)
	GetActiveSurveyWithQuestions(ctx context.Context, id uint) (*models.Survey, error)
}

// SurveyService ISurveyService arayüzünü uygular.
type SurveyService struct {
	repo repositories.ISurveyRepository
}

// NewSurveyService yeni bir SurveyService örneği oluşturur (DI ile).
func NewSurveyService() ISurveyService {
	return &SurveyService{repo: repositories.NewSurveyRepository()}
}

// GetActiveSurveys aktif anketleri listeler. Liste, route katmanında
// TTL'li cache middleware arkasında sunulur.
func (s *SurveyService) GetActiveSurveys(ctx context.Context) ([]models.Survey, error) {
	surveys, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	if surveys == nil {
		surveys = []models.Survey{}
	}
	return surveys, nil
}

// GetActiveSurveyWithQuestions bir anketi soruları ile birlikte getirir.
// Pasif veya olmayan anketler için ErrSurveyNotFound döner.
func (s *SurveyService) GetActiveSurveyWithQuestions(ctx context.Context, id uint) (*models.Survey, error) {
	survey, err := s.repo.FindActiveByIDWithQuestions(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}
	return survey, nil
}

var _ ISurveyService = (*SurveyService)(nil)
