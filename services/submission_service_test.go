package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"anket.link/jobs"
	"anket.link/models"
	"anket.link/repositories"
)

// newTestDB her test için izole bir in-memory sqlite veritabanı açar.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Responder{},
		&models.Survey{},
		&models.Question{},
		&models.Answer{},
	))
	return db
}

type submissionFixture struct {
	db        *gorm.DB
	service   *SubmissionService
	survey    models.Survey
	scale     models.Question
	text      models.Question
	choice    models.Question
	responder models.Responder
	indexed   []jobs.SubmissionDocument
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	db := newTestDB(t)

	f := &submissionFixture{db: db}

	f.responder = models.Responder{Email: "tester@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&f.responder).Error)

	f.survey = models.Survey{Title: "Post-Purchase Feedback", Status: models.SurveyStatusActive}
	require.NoError(t, db.Create(&f.survey).Error)

	f.scale = models.Question{SurveyID: f.survey.ID, Type: models.QuestionTypeScale, QuestionText: "How satisfied are you?"}
	f.text = models.Question{SurveyID: f.survey.ID, Type: models.QuestionTypeText, QuestionText: "What did you like?"}
	f.choice = models.Question{SurveyID: f.survey.ID, Type: models.QuestionTypeMultipleChoice, QuestionText: "Recommend us?"}
	require.NoError(t, db.Create(&f.scale).Error)
	require.NoError(t, db.Create(&f.text).Error)
	require.NoError(t, db.Create(&f.choice).Error)

	f.service = &SubmissionService{
		surveyRepo:   repositories.NewSurveyRepositoryTx(db),
		questionRepo: repositories.NewQuestionRepositoryTx(db),
		db:           db,
		enqueueIndex: func(doc jobs.SubmissionDocument) { f.indexed = append(f.indexed, doc) },
	}
	return f
}

func (f *submissionFixture) answerCount(t *testing.T) int64 {
	t.Helper()
	count, err := repositories.NewAnswerRepositoryTx(f.db).CountBySurveyID(context.Background(), f.survey.ID)
	require.NoError(t, err)
	return count
}

func raw(v string) json.RawMessage { return json.RawMessage(v) }

func TestSubmit_AllValidPersistsInOrder(t *testing.T) {
	f := newSubmissionFixture(t)

	result, err := f.service.Submit(context.Background(), SubmitInput{
		SurveyID:    f.survey.ID,
		ResponderID: f.responder.ID,
		ClientIP:    "203.0.113.9",
		UserAgent:   "go-test",
		Responses: []RawResponse{
			{QuestionID: f.choice.ID, Value: raw(`"Yes"`)},
			{QuestionID: f.scale.ID, Value: raw(`"3"`)},
			{QuestionID: f.text.ID, Value: raw(`"Loved it"`)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// Cevap sayısı tam olarak istek kadar artar.
	assert.Equal(t, int64(3), f.answerCount(t))

	// Sonuç, istekteki sırayı korur.
	require.Len(t, result.Answers, 3)
	assert.Equal(t, f.choice.ID, result.Answers[0].QuestionID)
	assert.Equal(t, f.scale.ID, result.Answers[1].QuestionID)
	assert.Equal(t, f.text.ID, result.Answers[2].QuestionID)
	assert.Equal(t, 3, result.Answers[1].ResponseData.Value)
	assert.Equal(t, []int{1, 5}, result.Answers[1].ResponseData.Range)

	// İndeksleme işi commit sonrası kuyruğa atılır.
	require.Len(t, f.indexed, 1)
	doc := f.indexed[0]
	assert.Equal(t, f.survey.ID, doc.SurveyID)
	assert.Equal(t, f.responder.ID, doc.ResponderID)
	assert.Equal(t, "203.0.113.9", doc.IP)
	assert.Equal(t, "go-test", doc.UserAgent)
	assert.Len(t, doc.Answers, 3)
	assert.NotEmpty(t, doc.SubmittedAt)
}

func TestSubmit_FailFastPersistsNothing(t *testing.T) {
	f := newSubmissionFixture(t)

	// İkinci cevap (index 1) geçersiz: scale 7.
	_, err := f.service.Submit(context.Background(), SubmitInput{
		SurveyID:    f.survey.ID,
		ResponderID: f.responder.ID,
		Responses: []RawResponse{
			{QuestionID: f.text.ID, Value: raw(`"fine"`)},
			{QuestionID: f.scale.ID, Value: raw(`7`)},
			{QuestionID: f.choice.ID, Value: raw(`"Yes"`)},
		},
	})
	require.Error(t, err)

	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, FailureInvalidScale, failure.Kind)
	assert.Equal(t, "responses.1.value", failure.Field)

	// Hiçbir satır yazılmamış olmalı.
	assert.Equal(t, int64(0), f.answerCount(t))
	assert.Empty(t, f.indexed)
}

func TestSubmit_QuestionFromAnotherSurveyRejected(t *testing.T) {
	f := newSubmissionFixture(t)

	other := models.Survey{Title: "Other", Status: models.SurveyStatusActive}
	require.NoError(t, f.db.Create(&other).Error)
	foreign := models.Question{SurveyID: other.ID, Type: models.QuestionTypeText, QuestionText: "foreign"}
	require.NoError(t, f.db.Create(&foreign).Error)

	_, err := f.service.Submit(context.Background(), SubmitInput{
		SurveyID:    f.survey.ID,
		ResponderID: f.responder.ID,
		Responses: []RawResponse{
			{QuestionID: foreign.ID, Value: raw(`"sneaky"`)},
		},
	})
	require.Error(t, err)

	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, FailureQuestionNotInSurvey, failure.Kind)
	assert.Equal(t, "responses.0.question_id", failure.Field)
	assert.Equal(t, int64(0), f.answerCount(t))
}

func TestSubmit_InactiveSurveyNotFound(t *testing.T) {
	f := newSubmissionFixture(t)
	require.NoError(t, f.db.Model(&f.survey).Update("status", models.SurveyStatusInactive).Error)

	_, err := f.service.Submit(context.Background(), SubmitInput{
		SurveyID:    f.survey.ID,
		ResponderID: f.responder.ID,
		Responses:   []RawResponse{{QuestionID: f.scale.ID, Value: raw(`3`)}},
	})
	require.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestSubmit_EmptyResponsesRejected(t *testing.T) {
	f := newSubmissionFixture(t)

	_, err := f.service.Submit(context.Background(), SubmitInput{
		SurveyID:    f.survey.ID,
		ResponderID: f.responder.ID,
		Responses:   nil,
	})
	require.ErrorIs(t, err, ErrEmptyResponses)
}

func TestSubmit_MissingIdentityRejected(t *testing.T) {
	f := newSubmissionFixture(t)

	_, err := f.service.Submit(context.Background(), SubmitInput{
		SurveyID:    f.survey.ID,
		ResponderID: 0,
		Responses:   []RawResponse{{QuestionID: f.scale.ID, Value: raw(`3`)}},
	})
	require.ErrorIs(t, err, ErrSubmissionUnauthorized)
	assert.Equal(t, int64(0), f.answerCount(t))
}

func TestSubmit_StoredPayloadIsSelfDescribing(t *testing.T) {
	f := newSubmissionFixture(t)

	_, err := f.service.Submit(context.Background(), SubmitInput{
		SurveyID:    f.survey.ID,
		ResponderID: f.responder.ID,
		Responses:   []RawResponse{{QuestionID: f.scale.ID, Value: raw(`"4"`)}},
	})
	require.NoError(t, err)

	var stored models.Answer
	require.NoError(t, f.db.First(&stored).Error)

	var payload models.ResponseData
	require.NoError(t, json.Unmarshal(stored.ResponseData, &payload))
	assert.Equal(t, models.QuestionTypeScale, payload.Type)
	assert.Equal(t, float64(4), payload.Value) // JSON üzerinden sayılar float64 okunur
	assert.Equal(t, []int{1, 5}, payload.Range)
}
