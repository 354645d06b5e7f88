package middlewares

import (
	"strings"

	"anket.link/pkg/apiresponse"
	"anket.link/services"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware bearer token'ı doğrular ve responder kimliğini
// c.Locals("responderID") olarak aşağıya taşır. Token yoksa veya
// geçersizse istek 401 ile kesilir.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return apiresponse.Error(c, fiber.StatusUnauthorized, apiresponse.StatusUnauthorized, "Authentication required.")
	}

	tokenString := strings.TrimSpace(header[len("bearer "):])
	responderID, err := services.ParseResponderToken(tokenString)
	if err != nil {
		return apiresponse.Error(c, fiber.StatusUnauthorized, apiresponse.StatusUnauthorized, "Invalid or expired token.")
	}

	c.Locals("responderID", responderID)
	return c.Next()
}
