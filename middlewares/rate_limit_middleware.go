package middlewares

import (
	"strconv"
	"time"

	"anket.link/configs"
	"anket.link/pkg/apiresponse"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// SubmitRateLimiter submit ucunu kimlik başına dakikalık kotaya bağlar.
// Anahtar doğrulanmış responder ID'sidir; auth middleware'inden önce
// çalışırsa IP'ye düşer. Kota aşımı 429 zarfı ile döner.
func SubmitRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        configs.GetSubmitRateLimit(),
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if responderID, ok := c.Locals("responderID").(uint); ok && responderID != 0 {
				return "responder:" + strconv.FormatUint(uint64(responderID), 10)
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return apiresponse.Error(c, fiber.StatusTooManyRequests, apiresponse.StatusTooManyRequests, "Too many requests, slow down.")
		},
	})
}
