package api

import (
	"errors"

	"anket.link/configs/configslog"
	"anket.link/pkg/apiresponse"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SurveyHandler public anket okuma uçları için handler.
type SurveyHandler struct {
	service services.ISurveyService
}

// NewSurveyHandler yeni bir SurveyHandler örneği oluşturur.
func NewSurveyHandler() *SurveyHandler {
	return &SurveyHandler{service: services.NewSurveyService()}
}

// ListSurveys aktif anketleri listeler.
func (h *SurveyHandler) ListSurveys(c *fiber.Ctx) error {
	surveys, err := h.service.GetActiveSurveys(c.UserContext())
	if err != nil {
		configslog.Log.Error("API - ListSurveys Error", zap.Error(err))
		return apiresponse.Error(c, fiber.StatusInternalServerError, apiresponse.StatusError, "Could not list surveys.")
	}
	return apiresponse.Success(c, fiber.StatusOK, "Active surveys", surveys)
}

// ShowSurvey bir anketi soruları ile birlikte döndürür.
func (h *SurveyHandler) ShowSurvey(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apiresponse.Error(c, fiber.StatusNotFound, apiresponse.StatusNotFound, "Survey not found or inactive.")
	}

	survey, err := h.service.GetActiveSurveyWithQuestions(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrSurveyNotFound) {
			return apiresponse.Error(c, fiber.StatusNotFound, apiresponse.StatusNotFound, "Survey not found or inactive.")
		}
		configslog.Log.Error("API - ShowSurvey Error", zap.Int("id", id), zap.Error(err))
		return apiresponse.Error(c, fiber.StatusInternalServerError, apiresponse.StatusError, "Could not load survey.")
	}

	return apiresponse.Success(c, fiber.StatusOK, "Survey details", survey)
}
