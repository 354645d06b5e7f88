package services

import (
	"context"
	"encoding/json"
	"time"

	"anket.link/configs/configsdatabase"
	"anket.link/configs/configslog"
	"anket.link/jobs"
	"anket.link/models"
	"anket.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SubmissionServiceError özel servis hataları
type SubmissionServiceError string

func (e SubmissionServiceError) Error() string { return string(e) }

const (
	ErrEmptyResponses         SubmissionServiceError = "en az bir cevap gönderilmelidir"
	ErrSubmissionUnauthorized SubmissionServiceError = "kimlik doğrulama gerekli"
	ErrAnswersPersistFailed   SubmissionServiceError = "cevaplar kaydedilemedi"
)

// SubmitInput bir gönderim isteğinin servis katmanına taşınan halidir.
// ResponderID doğrulanmış kimlikten, IP ve UserAgent istekten gelir;
// servis global duruma bakmaz.
type SubmitInput struct {
	SurveyID    uint
	ResponderID uint
	ClientIP    string
	UserAgent   string
	Responses   []RawResponse
}

// SubmissionResult başarılı bir gönderimin sonucudur. Answers, istekteki
// sırayla normalize edilmiş cevapları içerir.
type SubmissionResult struct {
	SurveyID uint                      `json:"survey_id"`
	Answers  []models.NormalizedAnswer `json:"answers"`
}

// ISubmissionService anket gönderim akışı için arayüz.
type ISubmissionService interface {
	Submit(ctx context.Context, input SubmitInput) (*SubmissionResult, error)
}

// SubmissionService ISubmissionService arayüzünü uygular.
// Akış: soruları tek seferde yükle → sırayla doğrula (ilk hatada kes) →
// tek transaction'da yaz → commit sonrası indeksleme işini kuyruğa at.
type SubmissionService struct {
	surveyRepo   repositories.ISurveyRepository
	questionRepo repositories.IQuestionRepository
	db           *gorm.DB
	enqueueIndex func(doc jobs.SubmissionDocument)
}

// NewSubmissionService yeni bir SubmissionService örneği oluşturur (DI ile).
func NewSubmissionService() ISubmissionService {
	return &SubmissionService{
		surveyRepo:   repositories.NewSurveyRepository(),
		questionRepo: repositories.NewQuestionRepository(),
		db:           configsdatabase.GetDB(),
		enqueueIndex: jobs.EnqueueSubmissionIndex,
	}
}

// Submit bir anket gönderimini uçtan uca işler.
//
// Cevap yazımı ya hep ya hiç: herhangi bir cevap doğrulamadan geçemezse
// hiçbir satır yazılmaz, herhangi bir yazma hatasında transaction geri alınır.
// Arama indeksi kopyası best-effort'tur; sonucu HTTP cevabını asla etkilemez.
func (s *SubmissionService) Submit(ctx context.Context, input SubmitInput) (*SubmissionResult, error) {
	if input.ResponderID == 0 {
		return nil, ErrSubmissionUnauthorized
	}

	survey, err := s.surveyRepo.FindActiveByID(ctx, input.SurveyID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	if len(input.Responses) == 0 {
		return nil, ErrEmptyResponses
	}

	// Soruları tek sorguda yükle; cevap başına lookup yapılmaz.
	questions, err := s.questionRepo.FindBySurveyID(ctx, survey.ID)
	if err != nil {
		return nil, err
	}
	questionsByID := make(map[uint]models.Question, len(questions))
	for _, q := range questions {
		questionsByID[q.ID] = q
	}

	// Sırayla doğrula; ilk hatada tüm gönderim reddedilir.
	normalized := make([]models.NormalizedAnswer, 0, len(input.Responses))
	for idx, raw := range input.Responses {
		var question *models.Question
		if q, ok := questionsByID[raw.QuestionID]; ok {
			question = &q
		}
		answer, failure := NormalizeAnswer(idx, question, raw, input.ResponderID)
		if failure != nil {
			return nil, failure
		}
		normalized = append(normalized, *answer)
	}

	// Tüm cevapları tek atomik transaction'da yaz.
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		answerRepoTx := repositories.NewAnswerRepositoryTx(tx)
		for _, na := range normalized {
			payload, err := json.Marshal(na.ResponseData)
			if err != nil {
				return err
			}
			answer := models.Answer{
				QuestionID:   na.QuestionID,
				ResponderID:  na.ResponderID,
				ResponseData: payload,
			}
			if err := answerRepoTx.Create(ctx, &answer); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("Submit transaction failed",
			zap.Uint("survey_id", survey.ID),
			zap.Uint("responder_id", input.ResponderID),
			zap.Error(txErr),
		)
		return nil, ErrAnswersPersistFailed
	}

	// Commit sonrası: indeks kopyasını fire-and-forget kuyruğa at.
	if s.enqueueIndex != nil {
		s.enqueueIndex(jobs.SubmissionDocument{
			SurveyID:    survey.ID,
			ResponderID: input.ResponderID,
			SubmittedAt: time.Now().UTC().Format(time.RFC3339),
			IP:          input.ClientIP,
			UserAgent:   input.UserAgent,
			Answers:     normalized,
		})
	}

	configslog.SLog.Infof("Anket gönderimi kaydedildi: survey %d, responder %d, %d cevap", survey.ID, input.ResponderID, len(normalized))
	return &SubmissionResult{SurveyID: survey.ID, Answers: normalized}, nil
}

var _ ISubmissionService = (*SubmissionService)(nil)
