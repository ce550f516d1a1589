// Package statistics calcula o resumo da pesquisa de satisfação a partir dos registros já carregados.
// Nenhuma função daqui faz I/O ou altera os registros recebidos.
package statistics

import (
	"fmt"
	"sort"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
)

// sectionTally acumula as respostas válidas de uma seção
type sectionTally struct {
	sum          int
	distribution entities.Distribution
}

// Aggregate transforma os registros em totais, médias por seção, distribuições e série diária.
// Registros com respostas ausentes ou fora da escala contam apenas no total e nas demais seções.
func Aggregate(records []entities.SurveyRecord) entities.Summary {
	summary := entities.Summary{
		Total:              len(records),
		AverageRatings:     make(map[entities.Section]string),
		RatingDistribution: make(map[entities.Section]entities.Distribution),
		DailyResponses:     []entities.DailyCount{},
	}
	if len(records) == 0 {
		return summary
	}

	tallies := make(map[entities.Section]*sectionTally)
	perDay := make(map[string]int)

	for _, record := range records {
		for _, section := range entities.Sections() {
			rating, state := record.RatingFor(section)
			if state != entities.AnswerValid {
				continue
			}
			t, ok := tallies[section]
			if !ok {
				t = &sectionTally{}
				tallies[section] = t
			}
			t.sum += rating.Weight()
			t.distribution.Add(rating)
		}

		perDay[DayKey(record)]++
	}

	for section, t := range tallies {
		summary.AverageRatings[section] = FormatAverage(t.sum, t.distribution.Count())
		summary.RatingDistribution[section] = t.distribution
	}

	summary.DailyResponses = make([]entities.DailyCount, 0, len(perDay))
	for date, count := range perDay {
		summary.DailyResponses = append(summary.DailyResponses, entities.DailyCount{Date: date, Count: count})
	}
	// YYYY-MM-DD ordena lexicograficamente na mesma ordem cronológica
	sort.Slice(summary.DailyResponses, func(i, j int) bool {
		return summary.DailyResponses[i].Date < summary.DailyResponses[j].Date
	})

	return summary
}

// DayKey é o dia de calendário do registro, no fuso do próprio timestamp
func DayKey(record entities.SurveyRecord) string {
	return record.Timestamp.Format("2006-01-02")
}

// FormatAverage formata sum/n com duas casas, arredondando metade para longe de zero.
// A conta é feita em inteiros para não depender da representação em ponto flutuante.
func FormatAverage(sum, n int) string {
	if n <= 0 {
		return "0.00"
	}
	neg := (sum < 0) != (n < 0)
	if sum < 0 {
		sum = -sum
	}
	if n < 0 {
		n = -n
	}
	// round(sum*100/n) = floor((2*sum*100 + n) / (2*n)) para valores não negativos
	cents := (2*sum*100 + n) / (2 * n)
	sign := ""
	if neg && cents != 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
