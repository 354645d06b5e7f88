package apiresponse

import "github.com/gofiber/fiber/v2"

// Durum kodları: success dışındaki her değer bir hata türünü adlandırır.
const (
	StatusSuccess         = "success"
	StatusValidationError = "validation_error"
	StatusNotFound        = "not_found"
	StatusUnauthorized    = "unauthorized"
	StatusTooManyRequests = "too_many_requests"
	StatusError           = "error"
)

// Envelope tüm API cevaplarının ortak zarfıdır.
// Başarıda data tipli payload'u taşır; hatada null'dur.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success verilen HTTP koduyla başarı zarfı yazar.
func Success(c *fiber.Ctx, httpStatus int, message string, data any) error {
	return c.Status(httpStatus).JSON(Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Error verilen HTTP koduyla hata zarfı yazar; data her zaman null'dur.
func Error(c *fiber.Ctx, httpStatus int, status, message string) error {
	return c.Status(httpStatus).JSON(Envelope{
		Status:  status,
		Message: message,
		Data:    nil,
	})
}
