package utils

import "time"

// Clock fornece o instante atual. Injetado nos casos de uso para que os testes usem um horário fixo.
type Clock interface {
	Now() time.Time
}

// SystemClock lê o relógio do sistema no fuso configurado
type SystemClock struct {
	Location *time.Location
}

// NewSystemClock cria um relógio de sistema no fuso informado
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = GetBrasilLocation()
	}
	return SystemClock{Location: loc}
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.Location)
}

// FixedClock sempre devolve o mesmo instante
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
