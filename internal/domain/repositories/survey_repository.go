package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSurveyRepository implementa o acesso às pesquisas no Postgres
type GormSurveyRepository struct {
	db       *gorm.DB
	location *time.Location
}

// NewSurveyRepository cria uma nova instância de GormSurveyRepository
func NewSurveyRepository(db *gorm.DB, location *time.Location) *GormSurveyRepository {
	return &GormSurveyRepository{
		db:       db,
		location: location,
	}
}

// Fetch retorna as pesquisas, opcionalmente filtradas pelo intervalo de datas
func (r *GormSurveyRepository) Fetch(ctx context.Context, filter DateFilter) ([]entities.SurveyRecord, error) {
	var records []entities.SurveyRecord

	query := r.db.WithContext(ctx).Model(&entities.SurveyRecord{})

	// Aplicando filtro de data apenas quando início e fim foram informados
	if filter.Active() {
		query = query.Where("timestamp BETWEEN ? AND ?", filter.Start.UTC(), filter.End.UTC())
	}

	if err := query.Order("timestamp DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("erro ao buscar pesquisas: %w", err)
	}

	// Converter timestamps para o fuso da clínica
	for i := range records {
		records[i].Timestamp = records[i].Timestamp.In(r.location)
	}

	return records, nil
}

// Create grava a pesquisa ignorando IDs já existentes (reenvios da fila)
func (r *GormSurveyRepository) Create(ctx context.Context, record *entities.SurveyRecord) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("erro ao salvar pesquisa: %w", err)
	}
	return nil
}

// GormAdminRepository consulta a tabela admin_users
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository cria uma nova instância de GormAdminRepository
func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

func (r *GormAdminRepository) FindByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *GormAdminRepository) FindByID(ctx context.Context, id string) (*entities.AdminUser, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormAdminRepository) Create(ctx context.Context, admin *entities.AdminUser) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("erro ao criar administrador: %w", err)
	}
	return nil
}

func (r *GormAdminRepository) first(ctx context.Context, cond string, arg interface{}) (*entities.AdminUser, error) {
	var admin entities.AdminUser
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("erro ao buscar administrador: %w", err)
	}
	return &admin, nil
}
