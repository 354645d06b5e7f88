package api

import (
	"errors"

	"anket.link/configs/configslog"
	"anket.link/pkg/apiresponse"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler responder kayıt/giriş/kimlik uçları için handler.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type responderPayload struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type authPayload struct {
	Token     string           `json:"token"`
	Responder responderPayload `json:"responder"`
}

// Register yeni bir responder kaydeder ve token döndürür.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.Error(c, fiber.StatusUnprocessableEntity, apiresponse.StatusValidationError, "Invalid request body.")
	}

	result, err := h.service.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailInvalid),
			errors.Is(err, services.ErrEmailTaken),
			errors.Is(err, services.ErrPasswordTooShort):
			return apiresponse.Error(c, fiber.StatusUnprocessableEntity, apiresponse.StatusValidationError, err.Error())
		default:
			configslog.Log.Error("API - Register Error", zap.String("email", req.Email), zap.Error(err))
			return apiresponse.Error(c, fiber.StatusInternalServerError, apiresponse.StatusError, "Registration failed.")
		}
	}

	return apiresponse.Success(c, fiber.StatusCreated, "Registered successfully.", authPayload{
		Token:     result.Token,
		Responder: responderPayload{ID: result.Responder.ID, Email: result.Responder.Email},
	})
}

// Login kimlik bilgilerini doğrular ve token döndürür.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.Error(c, fiber.StatusUnprocessableEntity, apiresponse.StatusValidationError, "Invalid request body.")
	}

	result, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Orijinal sözleşme: hatalı kimlik bilgisi email alanında
			// validation hatası olarak döner.
			return apiresponse.Error(c, fiber.StatusUnprocessableEntity, apiresponse.StatusValidationError, "email: Invalid credentials.")
		}
		configslog.Log.Error("API - Login Error", zap.String("email", req.Email), zap.Error(err))
		return apiresponse.Error(c, fiber.StatusInternalServerError, apiresponse.StatusError, "Login failed.")
	}

	return apiresponse.Success(c, fiber.StatusOK, "Logged in.", authPayload{
		Token:     result.Token,
		Responder: responderPayload{ID: result.Responder.ID, Email: result.Responder.Email},
	})
}

// Me token'dan çözülen responder kimliğini döndürür.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	responderID, ok := c.Locals("responderID").(uint)
	if !ok || responderID == 0 {
		return apiresponse.Error(c, fiber.StatusUnauthorized, apiresponse.StatusUnauthorized, "Authentication required.")
	}

	responder, err := h.service.GetResponderByID(c.UserContext(), responderID)
	if err != nil {
		if errors.Is(err, services.ErrResponderNotFound) {
			return apiresponse.Error(c, fiber.StatusUnauthorized, apiresponse.StatusUnauthorized, "Authentication required.")
		}
		configslog.Log.Error("API - Me Error", zap.Uint("responder_id", responderID), zap.Error(err))
		return apiresponse.Error(c, fiber.StatusInternalServerError, apiresponse.StatusError, "Could not load responder.")
	}

	return apiresponse.Success(c, fiber.StatusOK, "Current responder.", responderPayload{
		ID:    responder.ID,
		Email: responder.Email,
	})
}
