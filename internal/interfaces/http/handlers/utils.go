package handlers

import (
	"fmt"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// errorResponse envia o resultado de erro padronizado da API
func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// ParseDateFilter lê start_date e end_date da query.
// end_date sem horário vale até o fim do dia; o filtro só é aplicado com os dois limites.
func ParseDateFilter(c *fiber.Ctx, loc *time.Location) (repositories.DateFilter, error) {
	var filter repositories.DateFilter

	start, _, err := utils.ParseDateParam(c.Query("start_date"), loc)
	if err != nil {
		return filter, fmt.Errorf("start_date: %w", err)
	}
	end, endDateOnly, err := utils.ParseDateParam(c.Query("end_date"), loc)
	if err != nil {
		return filter, fmt.Errorf("end_date: %w", err)
	}

	if start.IsZero() || end.IsZero() {
		return filter, nil
	}
	if endDateOnly {
		end = utils.EndOfDay(end)
	}

	filter.Start = &start
	filter.End = &end
	return filter, nil
}
