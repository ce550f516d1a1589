package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
)

// ErrAdminNotFound indica que o e-mail/ID não pertence a um administrador
var ErrAdminNotFound = errors.New("administrador não encontrado")

// DateFilter é o intervalo [Start, End] (inclusivo) aplicado na busca.
// O filtro só vale quando os dois limites são informados.
type DateFilter struct {
	Start *time.Time
	End   *time.Time
}

// Active indica se o filtro de data deve ser aplicado
func (f DateFilter) Active() bool {
	return f.Start != nil && f.End != nil
}

// Contains indica se t está dentro do intervalo (sempre true quando o filtro está inativo)
func (f DateFilter) Contains(t time.Time) bool {
	if !f.Active() {
		return true
	}
	return !t.Before(*f.Start) && !t.After(*f.End)
}

// SurveyRepository é a fonte de registros e o destino das submissões
type SurveyRepository interface {
	// Fetch retorna os registros em ordem decrescente de timestamp
	Fetch(ctx context.Context, filter DateFilter) ([]entities.SurveyRecord, error)
	// Create grava um novo registro; repetir o mesmo ID não gera duplicata
	Create(ctx context.Context, record *entities.SurveyRecord) error
}

// AdminRepository consulta os administradores do painel
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.AdminUser, error)
	FindByID(ctx context.Context, id string) (*entities.AdminUser, error)
	Create(ctx context.Context, admin *entities.AdminUser) error
}
