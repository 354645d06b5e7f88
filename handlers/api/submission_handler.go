package api

import (
	"errors"

	"anket.link/configs/configslog"
	"anket.link/pkg/apiresponse"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SubmissionHandler anket gönderim ucu için handler.
type SubmissionHandler struct {
	service services.ISubmissionService
}

// NewSubmissionHandler yeni bir SubmissionHandler örneği oluşturur.
func NewSubmissionHandler() *SubmissionHandler {
	return &SubmissionHandler{service: services.NewSubmissionService()}
}

type submitRequest struct {
	Responses []services.RawResponse `json:"responses"`
}

// SubmitSurvey doğrulanmış responder'ın cevaplarını kabul eder.
// Başarıda 201 ile normalize edilmiş cevap listesi döner.
func (h *SubmissionHandler) SubmitSurvey(c *fiber.Ctx) error {
	responderID, ok := c.Locals("responderID").(uint)
	if !ok || responderID == 0 {
		return apiresponse.Error(c, fiber.StatusUnauthorized, apiresponse.StatusUnauthorized, "Authentication required.")
	}

	surveyID, err := c.ParamsInt("id")
	if err != nil || surveyID <= 0 {
		return apiresponse.Error(c, fiber.StatusNotFound, apiresponse.StatusNotFound, "Survey not found or inactive.")
	}

	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.Error(c, fiber.StatusUnprocessableEntity, apiresponse.StatusValidationError, "Invalid request body.")
	}

	result, err := h.service.Submit(c.UserContext(), services.SubmitInput{
		SurveyID:    uint(surveyID),
		ResponderID: responderID,
		ClientIP:    c.IP(),
		UserAgent:   string(c.Request().Header.UserAgent()),
		Responses:   req.Responses,
	})
	if err != nil {
		var failure *services.ValidationFailure
		switch {
		case errors.As(err, &failure):
			return apiresponse.Error(c, fiber.StatusUnprocessableEntity, apiresponse.StatusValidationError, failure.Error())
		case errors.Is(err, services.ErrSurveyNotFound):
			return apiresponse.Error(c, fiber.StatusNotFound, apiresponse.StatusNotFound, "Survey not found or inactive.")
		case errors.Is(err, services.ErrEmptyResponses):
			return apiresponse.Error(c, fiber.StatusUnprocessableEntity, apiresponse.StatusValidationError, "At least one response is required.")
		case errors.Is(err, services.ErrSubmissionUnauthorized):
			return apiresponse.Error(c, fiber.StatusUnauthorized, apiresponse.StatusUnauthorized, "Authentication required.")
		default:
			configslog.Log.Error("API - SubmitSurvey Error",
				zap.Int("survey_id", surveyID),
				zap.Uint("responder_id", responderID),
				zap.Error(err),
			)
			return apiresponse.Error(c, fiber.StatusInternalServerError, apiresponse.StatusError, "Could not persist answers, please retry.")
		}
	}

	return apiresponse.Success(c, fiber.StatusCreated, "Survey submitted successfully.", result)
}
