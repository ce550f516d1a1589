package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

const (
	surveysTable = "surveys"
	adminsTable  = "admin_users"
)

// SurveyRepository lê e grava pesquisas na tabela `surveys` via PostgREST.
// O cliente PostgREST não recebe context; o ctx é verificado antes de cada chamada.
type SurveyRepository struct {
	client   *supa.Client
	location *time.Location
}

// NewSurveyRepository cria uma nova instância de SurveyRepository
func NewSurveyRepository(client *supa.Client, location *time.Location) *SurveyRepository {
	return &SurveyRepository{client: client, location: location}
}

// FilterValue formata um instante como o PostgREST espera em gte/lte
func FilterValue(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (r *SurveyRepository) Fetch(ctx context.Context, filter repositories.DateFilter) ([]entities.SurveyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := r.client.From(surveysTable).Select("*", "", false)
	if filter.Active() {
		query = query.
			Gte("timestamp", FilterValue(*filter.Start)).
			Lte("timestamp", FilterValue(*filter.End))
	}

	var records []entities.SurveyRecord
	if _, err := query.Order("timestamp", &postgrest.OrderOpts{Ascending: false}).ExecuteTo(&records); err != nil {
		return nil, fmt.Errorf("erro ao buscar pesquisas no supabase: %w", err)
	}

	for i := range records {
		records[i].Timestamp = records[i].Timestamp.In(r.location)
	}
	return records, nil
}

// Create usa upsert por id: reenviar o mesmo registro apenas reescreve os mesmos valores
func (r *SurveyRepository) Create(ctx context.Context, record *entities.SurveyRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row := *record
	row.Timestamp = record.Timestamp.UTC()
	if _, _, err := r.client.From(surveysTable).Insert(row, true, "id", "minimal", "").Execute(); err != nil {
		return fmt.Errorf("erro ao salvar pesquisa no supabase: %w", err)
	}
	return nil
}

// AdminRepository consulta a tabela admin_users pelo PostgREST
type AdminRepository struct {
	client *supa.Client
}

// NewAdminRepository cria uma nova instância de AdminRepository
func NewAdminRepository(client *supa.Client) *AdminRepository {
	return &AdminRepository{client: client}
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	return r.findOne(ctx, "email", email)
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*entities.AdminUser, error) {
	return r.findOne(ctx, "id", id)
}

// Create registra o usuário do Supabase Auth como administrador (sem senha local)
func (r *AdminRepository) Create(ctx context.Context, admin *entities.AdminUser) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, _, err := r.client.From(adminsTable).Insert(admin, false, "", "minimal", "").Execute(); err != nil {
		return fmt.Errorf("erro ao criar administrador no supabase: %w", err)
	}
	return nil
}

func (r *AdminRepository) findOne(ctx context.Context, column, value string) (*entities.AdminUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var admins []entities.AdminUser
	_, err := r.client.From(adminsTable).
		Select("id,email,created_at", "", false).
		Eq(column, value).
		Limit(1, "").
		ExecuteTo(&admins)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar administrador no supabase: %w", err)
	}
	if len(admins) == 0 {
		return nil, repositories.ErrAdminNotFound
	}
	return &admins[0], nil
}
