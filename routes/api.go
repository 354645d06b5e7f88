package routes

import (
	"anket.link/configs"
	api_handlers "anket.link/handlers/api" // İsim çakışmasını önlemek için alias
	"anket.link/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
)

// registerAPIRoutes JSON API uçlarını tanımlar.
func registerAPIRoutes(app *fiber.App) {
	authHandler := api_handlers.NewAuthHandler()
	surveyHandler := api_handlers.NewSurveyHandler()
	submissionHandler := api_handlers.NewSubmissionHandler()

	// Public uçlar
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Anket listesi TTL'li cache arkasında sunulur; tekil anket her
	// istekte taze okunur (durum değişikliği gecikmesiz görünsün diye).
	surveyListCache := cache.New(cache.Config{
		Expiration: configs.GetSurveyCacheTTL(),
		Methods:    []string{fiber.MethodGet},
	})
	app.Get("/surveys", surveyListCache, surveyHandler.ListSurveys)
	app.Get("/surveys/:id", surveyHandler.ShowSurvey)

	// Token gerektiren uçlar
	authRoutes := app.Group("")
	authRoutes.Use(middlewares.AuthMiddleware)
	authRoutes.Get("/me", authHandler.Me)
	authRoutes.Post("/surveys/:id/submit", middlewares.SubmitRateLimiter(), submissionHandler.SubmitSurvey)
}
