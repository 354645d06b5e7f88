package routes

import (
	"anket.link/pkg/apiresponse"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama

	// --- API Rotaları ---
	registerAPIRoutes(app)

	// --- Sağlık Kontrolü ---
	app.Get("/health", healthHandler)

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

func healthHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "name": "anket.link API"})
}

func notFoundHandler(c *fiber.Ctx) error {
	return apiresponse.Error(c, fiber.StatusNotFound, apiresponse.StatusNotFound, "Resource not found.")
}
