package queue

import (
	"context"
	"fmt"
	"log"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/repositories"
	"github.com/hibiken/asynq"
)

// SubmitHandler grava no armazenamento as pesquisas enfileiradas
type SubmitHandler struct {
	repo repositories.SurveyRepository
}

// NewSubmitHandler cria uma nova instância de SubmitHandler
func NewSubmitHandler(repo repositories.SurveyRepository) *SubmitHandler {
	return &SubmitHandler{repo: repo}
}

func (h *SubmitHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	payload, err := DecodeSubmitPayload(t)
	if err != nil {
		log.Println("❌ Payload decode error:", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	record := payload.Record
	if err := h.repo.Create(ctx, &record); err != nil {
		log.Printf("❌ Falha ao gravar pesquisa %s: %v", record.ID, err)
		return err
	}

	log.Printf("✅ Pesquisa %s gravada pelo worker", record.ID)
	return nil
}

// RegisterHandlers associa os handlers de pesquisa aos tipos de task
func RegisterHandlers(mux *asynq.ServeMux, repo repositories.SurveyRepository) {
	mux.Handle(TypeSurveySubmit, NewSubmitHandler(repo))
}
