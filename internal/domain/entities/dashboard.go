package entities

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
)

// Summary é o resumo estatístico recalculado a cada consulta (nunca persistido)
type Summary struct {
	Total              int                      `json:"total"`
	AverageRatings     map[Section]string       `json:"averageRatings"`
	RatingDistribution map[Section]Distribution `json:"ratingDistribution"`
	DailyResponses     []DailyCount             `json:"dailyResponses"`
}

// Distribution conta cada símbolo da escala dentro de uma seção
type Distribution struct {
	MuitoSatisfeito int `json:"muito_satisfeito"`
	Satisfeito      int `json:"satisfeito"`
	Regular         int `json:"regular"`
	Ruim            int `json:"ruim"`
}

// Add incrementa o contador do símbolo
func (d *Distribution) Add(r Rating) {
	switch r {
	case RatingMuitoSatisfeito:
		d.MuitoSatisfeito++
	case RatingSatisfeito:
		d.Satisfeito++
	case RatingRegular:
		d.Regular++
	case RatingRuim:
		d.Ruim++
	}
}

// Count retorna quantas respostas válidas a distribuição contém
func (d Distribution) Count() int {
	return d.MuitoSatisfeito + d.Satisfeito + d.Regular + d.Ruim
}

// DailyCount é a quantidade de respostas em um dia (YYYY-MM-DD)
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DashboardResult é a resposta do painel administrativo
type DashboardResult struct {
	Summary
	Today    int           `json:"today"`
	LastWeek int           `json:"lastWeek"`
	Filters  DashboardMeta `json:"filters"`
	ETag     string        `json:"-"` // Campo interno para geração de ETag
}

// DashboardMeta contém metadados sobre os filtros aplicados
type DashboardMeta struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// CalculateETag gera um hash único para identificar a versão dos dados
func (d *DashboardResult) CalculateETag() string {
	data, _ := json.Marshal(d)
	hash := md5.Sum(data)
	d.ETag = fmt.Sprintf(`W/"%x"`, hash)
	return d.ETag
}
