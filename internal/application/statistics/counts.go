package statistics

import (
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/utils"
)

// CountToday conta os registros criados no mesmo dia de calendário de now, em loc
func CountToday(records []entities.SurveyRecord, now time.Time, loc *time.Location) int {
	count := 0
	for _, r := range records {
		if utils.SameDay(r.Timestamp, now, loc) {
			count++
		}
	}
	return count
}

// CountLastWeek conta os registros da janela móvel de 7 dias que termina em now
func CountLastWeek(records []entities.SurveyRecord, now time.Time) int {
	weekAgo := now.AddDate(0, 0, -7)
	count := 0
	for _, r := range records {
		if !r.Timestamp.Before(weekAgo) {
			count++
		}
	}
	return count
}
