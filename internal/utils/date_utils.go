package utils

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// DefaultTimezone é o fuso horário da clínica
const DefaultTimezone = "America/Sao_Paulo"

// GetBrasilLocation retorna a localização de São Paulo (UTC-3)
// Esta função deve ser usada em todo o projeto para obter o fuso horário padrão brasileiro,
// garantindo consistência em todas as operações relacionadas a data e hora.
func GetBrasilLocation() *time.Location {
	return GetLocation(DefaultTimezone)
}

// GetLocation carrega o fuso informado, caindo para UTC-3 se não estiver disponível no sistema
func GetLocation(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		// Fallback para UTC-3 se não conseguir carregar a localização
		location = time.FixedZone("BRT", -3*60*60)
	}
	return location
}

// ParseDateParam converte uma string de data para time.Time.
// Aceita RFC3339, "2006-01-02T15:04:05" e "2006-01-02" (interpretadas no fuso informado).
// O booleano indica se a string continha apenas a data, sem horário.
func ParseDateParam(dateStr string, loc *time.Location) (time.Time, bool, error) {
	if dateStr == "" {
		return time.Time{}, false, nil
	}

	// Tentar formato ISO8601 com timezone
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, false, nil
	}

	// Tentar formato de data e hora sem timezone
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", dateStr, loc); err == nil {
		return t, false, nil
	}

	// Tentar formato de data simples (início do dia)
	t, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("formato de data inválido: %q", dateStr)
	}
	return t, true, nil
}

// EndOfDay retorna o último instante do dia de t, no fuso de t
func EndOfDay(t time.Time) time.Time {
	return now.With(t).EndOfDay()
}

// SameDay indica se a e b caem no mesmo dia de calendário em loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	start := now.With(b.In(loc)).BeginningOfDay()
	end := now.With(b.In(loc)).EndOfDay()
	return !a.Before(start) && !a.After(end)
}
