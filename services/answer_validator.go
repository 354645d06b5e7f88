package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"anket.link/models"
)

// ValidationFailureKind doğrulama hatasının türünü tanımlar.
type ValidationFailureKind string

const (
	FailureInvalidText             ValidationFailureKind = "invalid_text"
	FailureInvalidScale            ValidationFailureKind = "invalid_scale"
	FailureInvalidChoice           ValidationFailureKind = "invalid_choice"
	FailureUnsupportedQuestionType ValidationFailureKind = "unsupported_question_type"
	FailureQuestionNotInSurvey     ValidationFailureKind = "question_not_in_survey"
)

// ValidationFailure tek bir cevabın doğrulama hatasını taşır.
// Field, isteğin hangi alanının hatalı olduğunu gösterir (örn. responses.0.value).
type ValidationFailure struct {
	Kind    ValidationFailureKind
	Field   string
	Message string
}

func (f *ValidationFailure) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// RawResponse istemciden gelen, henüz doğrulanmamış tek bir cevaptır.
// Value kasıtlı olarak ham JSON tutulur; tip kontrolü normalizasyonda yapılır.
type RawResponse struct {
	QuestionID uint            `json:"question_id"`
	Value      json.RawMessage `json:"value"`
}

const maxTextAnswerLength = 2000

// NormalizeAnswer ham bir cevabı soru tipine göre doğrulayıp normalize eder.
// Saf bir fonksiyondur: yan etkisi yoktur, tüm hatalar dönüş değeriyle bildirilir.
// idx, hata mesajlarındaki alan yolunu üretmek için cevabın istekteki sırasıdır.
func NormalizeAnswer(idx int, question *models.Question, raw RawResponse, responderID uint) (*models.NormalizedAnswer, *ValidationFailure) {
	if question == nil {
		return nil, &ValidationFailure{
			Kind:    FailureQuestionNotInSurvey,
			Field:   fmt.Sprintf("responses.%d.question_id", idx),
			Message: fmt.Sprintf("Question %d does not belong to this survey.", raw.QuestionID),
		}
	}

	valueField := fmt.Sprintf("responses.%d.value", idx)

	switch question.Type {
	case models.QuestionTypeText:
		value, ok := decodeJSONString(raw.Value)
		if !ok || strings.TrimSpace(value) == "" || utf8.RuneCountInString(value) > maxTextAnswerLength {
			return nil, &ValidationFailure{
				Kind:    FailureInvalidText,
				Field:   valueField,
				Message: "Text answer must be a non-empty string up to 2000 characters.",
			}
		}
		return &models.NormalizedAnswer{
			QuestionID:   question.ID,
			ResponderID:  responderID,
			ResponseData: models.NewTextResponseData(value),
		}, nil

	case models.QuestionTypeScale:
		value, ok := decodeScaleValue(raw.Value)
		if !ok || value < 1 || value > 5 {
			return nil, &ValidationFailure{
				Kind:    FailureInvalidScale,
				Field:   valueField,
				Message: "Scale answer must be an integer between 1 and 5.",
			}
		}
		return &models.NormalizedAnswer{
			QuestionID:   question.ID,
			ResponderID:  responderID,
			ResponseData: models.NewScaleResponseData(value),
		}, nil

	case models.QuestionTypeMultipleChoice:
		value, ok := decodeJSONString(raw.Value)
		if ok {
			value = strings.TrimSpace(value)
		}
		if !ok || !isAllowedChoice(value) {
			return nil, &ValidationFailure{
				Kind:    FailureInvalidChoice,
				Field:   valueField,
				Message: "Multiple choice must be one of: Yes, No.",
			}
		}
		return &models.NormalizedAnswer{
			QuestionID:   question.ID,
			ResponderID:  responderID,
			ResponseData: models.NewMultipleChoiceResponseData(value),
		}, nil

	default:
		return nil, &ValidationFailure{
			Kind:    FailureUnsupportedQuestionType,
			Field:   fmt.Sprintf("responses.%d.question_id", idx),
			Message: fmt.Sprintf("Unsupported question type: %s.", question.Type),
		}
	}
}

// decodeJSONString ham değeri string olarak çözer. String değilse ok=false döner.
func decodeJSONString(raw json.RawMessage) (string, bool) {
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// decodeScaleValue ölçek değerini çözer. Kabul edilenler: JSON tam sayı
// veya yalnızca rakamlardan oluşan string. Başka hiçbir dönüşüm yapılmaz;
// "3.0", "+3", "-1" ve ondalıklı sayılar reddedilir.
func decodeScaleValue(raw json.RawMessage) (int, bool) {
	if s, ok := decodeJSONString(raw); ok {
		if s == "" || !isDigitsOnly(s) {
			return 0, false
		}
		value, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return value, true
	}
	// String değilse JSON sayı token'ı olmalı; ParseInt ondalıklıları eler.
	value, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, false
	}
	return int(value), true
}

func isDigitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAllowedChoice(value string) bool {
	for _, option := range models.MultipleChoiceOptions {
		if value == option {
			return true
		}
	}
	return false
}
