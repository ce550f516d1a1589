package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/export"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// SurveyHandler lida com submissões e consultas de pesquisas
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
	location      *time.Location
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase, location *time.Location) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
		location:      location,
	}
}

// Submit registra um questionário respondido
// @Summary Envia uma pesquisa de satisfação
// @Description Grava as seis avaliações e os comentários opcionais. Se o armazenamento falhar, a pesquisa é enfileirada.
// @Tags surveys
// @Accept json
// @Produce json
// @Param survey body usecases.SubmitInput true "Respostas da pesquisa"
// @Success 201 {object} map[string]interface{} "Pesquisa gravada"
// @Success 202 {object} map[string]interface{} "Pesquisa enfileirada"
// @Failure 400 {object} map[string]interface{} "Dados inválidos"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /surveys [post]
func (h *SurveyHandler) Submit(c *fiber.Ctx) error {
	var input usecases.SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	input.IPAddress = c.IP()
	input.UserAgent = c.Get(fiber.HeaderUserAgent)

	result, err := h.surveyUseCase.Submit(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, usecases.ErrValidation) {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Erro ao enviar pesquisa. Tente novamente.")
	}

	status := fiber.StatusCreated
	if result.Queued {
		status = fiber.StatusAccepted
	}
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// List retorna as pesquisas paginadas, mais recentes primeiro
// @Summary Lista as pesquisas
// @Tags admin
// @Produce json
// @Param start_date query string false "Data inicial (RFC3339 ou 2006-01-02)"
// @Param end_date query string false "Data final (RFC3339 ou 2006-01-02)"
// @Param page query int false "Página" default(1)
// @Param limit query int false "Itens por página" default(10)
// @Success 200 {object} map[string]interface{} "Lista de pesquisas"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /admin/surveys [get]
func (h *SurveyHandler) List(c *fiber.Ctx) error {
	filter, err := ParseDateFilter(c, h.location)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if limit > 100 {
		limit = 100
	}

	result, err := h.surveyUseCase.ListPage(c.UserContext(), filter, page, limit)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Erro ao carregar dados")
	}

	totalPages := (result.Total + result.Limit - 1) / result.Limit
	return c.JSON(fiber.Map{
		"success": true,
		"data":    result.Data,
		"meta": fiber.Map{
			"page":          result.Page,
			"limit":         result.Limit,
			"total":         result.Total,
			"total_pages":   totalPages,
			"has_next_page": result.Page < totalPages,
		},
	})
}

// Export baixa as pesquisas do período em CSV
// @Summary Exporta as pesquisas em CSV
// @Tags admin
// @Produce text/csv
// @Param start_date query string false "Data inicial (RFC3339 ou 2006-01-02)"
// @Param end_date query string false "Data final (RFC3339 ou 2006-01-02)"
// @Success 200 {string} string "Arquivo CSV"
// @Failure 400 {object} map[string]interface{} "Erro de parâmetros"
// @Failure 500 {object} map[string]interface{} "Erro interno do servidor"
// @Router /admin/surveys/export [get]
func (h *SurveyHandler) Export(c *fiber.Ctx) error {
	filter, err := ParseDateFilter(c, h.location)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	var buf bytes.Buffer
	fileName, err := h.surveyUseCase.Export(c.UserContext(), filter, &buf)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Erro ao exportar dados")
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, strings.ReplaceAll(fileName, `"`, "")))
	return c.Send(buf.Bytes())
}
