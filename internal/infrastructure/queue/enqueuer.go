package queue

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/hibiken/asynq"
)

// Enqueuer envia pesquisas para reprocessamento em segundo plano
type Enqueuer struct {
	client   *asynq.Client
	maxRetry int
}

// NewEnqueuer cria uma nova instância de Enqueuer
func NewEnqueuer(redisAddr string, maxRetry int) *Enqueuer {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	log.Println("✅ Asynq Client initialized successfully")
	return &Enqueuer{client: client, maxRetry: maxRetry}
}

func (e *Enqueuer) EnqueueSubmit(ctx context.Context, record entities.SurveyRecord) error {
	task, err := NewSubmitTask(record)
	if err != nil {
		return err
	}

	_, err = e.client.EnqueueContext(ctx, task,
		asynq.TaskID(TaskID(record.ID)),
		asynq.MaxRetry(e.maxRetry),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("erro ao enfileirar pesquisa: %w", err)
	}

	log.Printf("📥 Pesquisa %s enfileirada para nova tentativa", record.ID)
	return nil
}

func (e *Enqueuer) Close() error {
	return e.client.Close()
}
