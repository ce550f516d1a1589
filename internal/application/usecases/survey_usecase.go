package usecases

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/export"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/application/statistics"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubmitEnqueuer agenda uma nova tentativa de gravação em segundo plano
type SubmitEnqueuer interface {
	EnqueueSubmit(ctx context.Context, record entities.SurveyRecord) error
}

// SubmitResult é o resultado de uma submissão aceita
type SubmitResult struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Queued    bool      `json:"queued"`
}

// Page é uma página da listagem de pesquisas
type Page struct {
	Data  []entities.SurveyRecord `json:"data"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
}

// SurveyUseCase implementa os casos de uso relacionados a pesquisas
type SurveyUseCase struct {
	surveyRepo repositories.SurveyRepository
	queue      SubmitEnqueuer
	clock      utils.Clock
	location   *time.Location
	validate   *validator.Validate
}

// NewSurveyUseCase cria uma nova instância de SurveyUseCase.
// queue pode ser nil; nesse caso falhas de gravação são devolvidas ao chamador.
func NewSurveyUseCase(surveyRepo repositories.SurveyRepository, queue SubmitEnqueuer, clock utils.Clock, location *time.Location) *SurveyUseCase {
	if location == nil {
		location = utils.GetBrasilLocation()
	}
	return &SurveyUseCase{
		surveyRepo: surveyRepo,
		queue:      queue,
		clock:      clock,
		location:   location,
		validate:   validator.New(),
	}
}

// Submit valida e grava um novo questionário com ID e horário atribuídos pelo servidor
func (u *SurveyUseCase) Submit(ctx context.Context, input SubmitInput) (SubmitResult, error) {
	if err := u.validate.Struct(input); err != nil {
		return SubmitResult{}, validationError(err)
	}

	record := entities.SurveyRecord{
		ID:        uuid.NewString(),
		Timestamp: u.clock.Now().In(u.location),
		Responses: input.Responses(),
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	}
	result := SubmitResult{ID: record.ID, Timestamp: record.Timestamp}

	err := u.surveyRepo.Create(ctx, &record)
	if err == nil {
		return result, nil
	}

	if u.queue == nil {
		return SubmitResult{}, fmt.Errorf("erro ao salvar pesquisa: %w", err)
	}

	log.Printf("⚠️ Falha ao gravar pesquisa %s, enviando para a fila: %v", record.ID, err)
	if qerr := u.queue.EnqueueSubmit(ctx, record); qerr != nil {
		return SubmitResult{}, fmt.Errorf("erro ao salvar pesquisa: %w (fila: %v)", err, qerr)
	}
	result.Queued = true
	return result, nil
}

// List retorna os registros do período em ordem decrescente de data
func (u *SurveyUseCase) List(ctx context.Context, filter repositories.DateFilter) ([]entities.SurveyRecord, error) {
	records, err := u.surveyRepo.Fetch(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pesquisas: %w", err)
	}
	return records, nil
}

// ListPage retorna uma página da listagem
func (u *SurveyUseCase) ListPage(ctx context.Context, filter repositories.DateFilter, page, limit int) (Page, error) {
	records, err := u.List(ctx, filter)
	if err != nil {
		return Page{}, err
	}
	return Paginate(records, page, limit), nil
}

// Paginate recorta os registros na página pedida (page começa em 1)
func Paginate(records []entities.SurveyRecord, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	out := Page{Data: []entities.SurveyRecord{}, Total: len(records), Page: page, Limit: limit}

	// compara a página antes de multiplicar para não estourar int
	if len(records) == 0 || page-1 > (len(records)-1)/limit {
		return out
	}
	offset := (page - 1) * limit
	end := len(records)
	if limit < end-offset {
		end = offset + limit
	}
	out.Data = records[offset:end]
	return out
}

// Statistics calcula o resumo do período e as contagens de hoje e dos últimos 7 dias
func (u *SurveyUseCase) Statistics(ctx context.Context, filter repositories.DateFilter) (*entities.DashboardResult, error) {
	startTime := time.Now()

	records, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	result := &entities.DashboardResult{
		Summary:  statistics.Aggregate(records),
		Today:    statistics.CountToday(records, now, u.location),
		LastWeek: statistics.CountLastWeek(records, now),
	}
	if filter.Active() {
		result.Filters = entities.DashboardMeta{
			StartDate: filter.Start.In(u.location).Format(time.RFC3339),
			EndDate:   filter.End.In(u.location).Format(time.RFC3339),
		}
	}
	result.CalculateETag()

	log.Printf("📊 Estatísticas calculadas em %v (%d registros)", time.Since(startTime), len(records))
	return result, nil
}

// Export escreve o CSV do período em w e devolve o nome do arquivo
func (u *SurveyUseCase) Export(ctx context.Context, filter repositories.DateFilter, w io.Writer) (string, error) {
	records, err := u.List(ctx, filter)
	if err != nil {
		return "", err
	}
	if err := export.WriteCSV(w, records); err != nil {
		return "", fmt.Errorf("erro ao gerar CSV: %w", err)
	}
	return export.FileName(u.clock.Now().In(u.location)), nil
}
