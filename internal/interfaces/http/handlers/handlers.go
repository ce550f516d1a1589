package handlers

import (
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// Version é informada no health check
const Version = "1.0.0"

type Handlers struct {
	Survey      *SurveyHandler
	Dashboard   *DashboardHandler
	Auth        *AuthHandler
	Performance *PerformanceHandler
}

func NewHandlers(surveys *usecases.SurveyUseCase, authUseCase *usecases.AuthUseCase, perf *PerformanceHandler, location *time.Location) *Handlers {
	return &Handlers{
		Survey:      NewSurveyHandler(surveys, location),
		Dashboard:   NewDashboardHandler(surveys, location),
		Auth:        NewAuthHandler(authUseCase),
		Performance: perf,
	}
}

// Health informa se a API está no ar
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"version": Version,
	})
}
