package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anket.link/models"
)

func scaleQuestion(id uint) *models.Question {
	return &models.Question{BaseModel: models.BaseModel{ID: id}, SurveyID: 1, Type: models.QuestionTypeScale}
}

func textQuestion(id uint) *models.Question {
	return &models.Question{BaseModel: models.BaseModel{ID: id}, SurveyID: 1, Type: models.QuestionTypeText}
}

func choiceQuestion(id uint) *models.Question {
	return &models.Question{BaseModel: models.BaseModel{ID: id}, SurveyID: 1, Type: models.QuestionTypeMultipleChoice}
}

func rawValue(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestNormalizeAnswer_ScaleAcceptsFullRange(t *testing.T) {
	q := scaleQuestion(10)

	for v := 1; v <= 5; v++ {
		// Tam sayı olarak
		na, failure := NormalizeAnswer(0, q, RawResponse{QuestionID: 10, Value: rawValue(t, v)}, 42)
		require.Nil(t, failure, "int %d kabul edilmeli", v)
		assert.Equal(t, v, na.ResponseData.Value)
		assert.Equal(t, []int{1, 5}, na.ResponseData.Range)
		assert.Equal(t, models.QuestionTypeScale, na.ResponseData.Type)
		assert.Equal(t, uint(42), na.ResponderID)

		// Rakamlardan oluşan string olarak
		na, failure = NormalizeAnswer(0, q, RawResponse{QuestionID: 10, Value: rawValue(t, fmt.Sprintf("%d", v))}, 42)
		require.Nil(t, failure, "string %q kabul edilmeli", fmt.Sprintf("%d", v))
		assert.Equal(t, v, na.ResponseData.Value)
	}
}

func TestNormalizeAnswer_ScaleRejectsInvalidValues(t *testing.T) {
	q := scaleQuestion(10)

	invalid := []any{0, 6, 7, -1, "0", "6", "abc", "3.5", "3.0", "+3", "-1", "", true, []int{3}}
	for _, v := range invalid {
		_, failure := NormalizeAnswer(2, q, RawResponse{QuestionID: 10, Value: rawValue(t, v)}, 42)
		require.NotNil(t, failure, "%v reddedilmeli", v)
		assert.Equal(t, FailureInvalidScale, failure.Kind)
		assert.Equal(t, "responses.2.value", failure.Field)
	}

	// JSON ondalık sayı token'ı da reddedilir.
	_, failure := NormalizeAnswer(0, q, RawResponse{QuestionID: 10, Value: json.RawMessage("3.5")}, 42)
	require.NotNil(t, failure)
	assert.Equal(t, FailureInvalidScale, failure.Kind)
}

func TestNormalizeAnswer_TextBounds(t *testing.T) {
	q := textQuestion(20)

	// Geçerli: kırpılmamış hali korunur.
	na, failure := NormalizeAnswer(0, q, RawResponse{QuestionID: 20, Value: rawValue(t, "  great product  ")}, 7)
	require.Nil(t, failure)
	assert.Equal(t, "  great product  ", na.ResponseData.Value)
	assert.Equal(t, models.QuestionTypeText, na.ResponseData.Type)
	assert.Empty(t, na.ResponseData.Range)
	assert.Empty(t, na.ResponseData.Options)

	// Tam 2000 karakter sınırda geçerlidir.
	na, failure = NormalizeAnswer(0, q, RawResponse{QuestionID: 20, Value: rawValue(t, strings.Repeat("a", 2000))}, 7)
	require.Nil(t, failure)
	assert.Len(t, na.ResponseData.Value, 2000)

	// Geçersizler
	invalid := []any{"", "   ", "\t\n", strings.Repeat("a", 2001), 5, true}
	for _, v := range invalid {
		_, failure := NormalizeAnswer(1, q, RawResponse{QuestionID: 20, Value: rawValue(t, v)}, 7)
		require.NotNil(t, failure, "%v reddedilmeli", v)
		assert.Equal(t, FailureInvalidText, failure.Kind)
		assert.Equal(t, "responses.1.value", failure.Field)
	}
}

func TestNormalizeAnswer_MultipleChoiceExactMatch(t *testing.T) {
	q := choiceQuestion(30)

	for _, v := range []string{"Yes", "No", "  Yes  ", "No\n"} {
		na, failure := NormalizeAnswer(0, q, RawResponse{QuestionID: 30, Value: rawValue(t, v)}, 7)
		require.Nil(t, failure, "%q kabul edilmeli", v)
		assert.Contains(t, []any{"Yes", "No"}, na.ResponseData.Value)
		assert.Equal(t, []string{"Yes", "No"}, na.ResponseData.Options)
	}

	invalid := []any{"yes", "YES", "no", "Maybe", "", 1, true}
	for _, v := range invalid {
		_, failure := NormalizeAnswer(0, q, RawResponse{QuestionID: 30, Value: rawValue(t, v)}, 7)
		require.NotNil(t, failure, "%v reddedilmeli", v)
		assert.Equal(t, FailureInvalidChoice, failure.Kind)
	}
}

func TestNormalizeAnswer_UnsupportedType(t *testing.T) {
	q := &models.Question{BaseModel: models.BaseModel{ID: 40}, SurveyID: 1, Type: "ranking"}

	_, failure := NormalizeAnswer(3, q, RawResponse{QuestionID: 40, Value: rawValue(t, "x")}, 7)
	require.NotNil(t, failure)
	assert.Equal(t, FailureUnsupportedQuestionType, failure.Kind)
	assert.Equal(t, "responses.3.question_id", failure.Field)
	assert.Contains(t, failure.Message, "ranking")
}

func TestNormalizeAnswer_QuestionNotInSurvey(t *testing.T) {
	_, failure := NormalizeAnswer(1, nil, RawResponse{QuestionID: 99, Value: rawValue(t, "x")}, 7)
	require.NotNil(t, failure)
	assert.Equal(t, FailureQuestionNotInSurvey, failure.Kind)
	assert.Equal(t, "responses.1.question_id", failure.Field)
	assert.Contains(t, failure.Message, "99")
}
