package queue

import (
	"encoding/json"
	"fmt"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/hibiken/asynq"
)

// TypeSurveySubmit reenvia ao armazenamento uma pesquisa que falhou na gravação
const TypeSurveySubmit = "survey:submit"

// SubmitPayload carrega o registro completo, com ID já atribuído
type SubmitPayload struct {
	Record entities.SurveyRecord `json:"record"`
}

func NewSubmitTask(record entities.SurveyRecord) (*asynq.Task, error) {
	payload, err := json.Marshal(SubmitPayload{Record: record})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar pesquisa: %w", err)
	}
	return asynq.NewTask(TypeSurveySubmit, payload), nil
}

// DecodeSubmitPayload lê o payload de uma task survey:submit
func DecodeSubmitPayload(t *asynq.Task) (SubmitPayload, error) {
	var payload SubmitPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("payload inválido: %w", err)
	}
	if payload.Record.ID == "" {
		return payload, fmt.Errorf("payload inválido: id ausente")
	}
	return payload, nil
}

// TaskID identifica a task pelo ID da pesquisa, evitando enfileirar o mesmo registro duas vezes
func TaskID(recordID string) string {
	return "survey-submit-" + recordID
}
