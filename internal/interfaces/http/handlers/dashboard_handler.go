package handlers

import (
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler lida com as estatísticas do painel
type DashboardHandler struct {
	surveyUseCase *usecases.SurveyUseCase
	location      *time.Location
}

// NewDashboardHandler cria uma nova instância de DashboardHandler
func NewDashboardHandler(surveyUseCase *usecases.SurveyUseCase, location *time.Location) *DashboardHandler {
	return &DashboardHandler{
		surveyUseCase: surveyUseCase,
		location:      location,
	}
}

// GetStatistics retorna o resumo estatístico do período
// @Summary Retorna as estatísticas da pesquisa
// @Description Total, médias, distribuição por seção, respostas por dia e contagens de hoje e dos últimos 7 dias
// @Tags admin
// @Produce json
// @Param start_date query string false "Data inicial (RFC3339 ou 2006-01-02)"
// @Param end_date query string false "Data final (RFC3339 ou 2006-01-02)"
// @Success 200 {object} entities.DashboardResult "Estatísticas"
// @Success 304 "Não modificado"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /admin/statistics [get]
func (h *DashboardHandler) GetStatistics(c *fiber.Ctx) error {
	startTime := time.Now()

	filter, err := ParseDateFilter(c, h.location)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.surveyUseCase.Statistics(c.UserContext(), filter)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Erro ao carregar dados")
	}

	// Verificar se o cliente já tem a versão mais recente
	if c.Get(fiber.HeaderIfNoneMatch) == result.ETag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderETag, result.ETag)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
		"performance": fiber.Map{
			"execution_time_ms": time.Since(startTime).Milliseconds(),
		},
	})
}
