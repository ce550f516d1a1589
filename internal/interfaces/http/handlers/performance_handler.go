package handlers

import (
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/statistics"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"github.com/gofiber/fiber/v2"
)

type PerformanceHandler struct {
	surveyRepo repositories.SurveyRepository
	source     string
	location   *time.Location
}

func NewPerformanceHandler(surveyRepo repositories.SurveyRepository, source string, location *time.Location) *PerformanceHandler {
	return &PerformanceHandler{
		surveyRepo: surveyRepo,
		source:     source,
		location:   location,
	}
}

// TestStatisticsPerformance mede separadamente a busca na fonte e o cálculo das estatísticas
func (h *PerformanceHandler) TestStatisticsPerformance(c *fiber.Ctx) error {
	filter, err := ParseDateFilter(c, h.location)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	startFetch := time.Now()
	records, err := h.surveyRepo.Fetch(c.UserContext(), filter)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Erro ao carregar dados")
	}
	fetchDuration := time.Since(startFetch)

	startAggregate := time.Now()
	summary := statistics.Aggregate(records)
	aggregateDuration := time.Since(startAggregate)

	return c.JSON(fiber.Map{
		"success": true,
		"source":  h.source,
		"records": summary.Total,
		"days":    len(summary.DailyResponses),
		"performance": fiber.Map{
			"fetch_ms":     fetchDuration.Milliseconds(),
			"aggregate_ms": aggregateDuration.Milliseconds(),
			"total_ms":     (fetchDuration + aggregateDuration).Milliseconds(),
		},
	})
}
