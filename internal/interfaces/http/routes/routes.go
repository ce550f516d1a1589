package routes

import (
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// Dependencies reúne o que as rotas precisam
type Dependencies struct {
	Handlers      *handlers.Handlers
	Authorizer    middleware.TokenAuthorizer
	SubmitLimiter *middleware.RateLimiter
	LoginLimiter  *middleware.RateLimiter
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	h := deps.Handlers

	// Health check
	app.Get("/health", h.Health)

	groups := middleware.SetupRouteGroups(app, middleware.AuthJWT(deps.Authorizer))

	// Submissão pública, limitada por IP
	groups.Public.Post("/surveys", deps.SubmitLimiter.Handler(), h.Survey.Submit)

	// Autenticação, com limite próprio por IP
	groups.Auth.Post("/login", deps.LoginLimiter.Handler(), h.Auth.Login)
	groups.Auth.Post("/logout", middleware.AuthJWT(deps.Authorizer), h.Auth.Logout)

	// Painel
	groups.Admin.Get("/surveys", h.Survey.List)
	groups.Admin.Get("/surveys/export", h.Survey.Export)
	groups.Admin.Get("/statistics", h.Dashboard.GetStatistics)

	// Rotas de Performance
	setupPerformanceRoutes(groups.Admin, h.Performance)
}

// setupPerformanceRoutes configura as rotas de teste de performance
func setupPerformanceRoutes(router fiber.Router, performanceHandler *handlers.PerformanceHandler) {
	if performanceHandler != nil {
		perfGroup := router.Group("/performance")
		perfGroup.Get("/statistics", performanceHandler.TestStatisticsPerformance)
	}
}
