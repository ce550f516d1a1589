package usecases

import (
	"fmt"
	"strings"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// SubmitInput é o questionário enviado pelo paciente
type SubmitInput struct {
	AtendimentoRecepcao string `json:"atendimento_recepcao" validate:"required,oneof=muito_satisfeito satisfeito regular ruim"`
	AtendimentoTriagem  string `json:"atendimento_triagem" validate:"required,oneof=muito_satisfeito satisfeito regular ruim"`
	AtendimentoMedico   string `json:"atendimento_medico" validate:"required,oneof=muito_satisfeito satisfeito regular ruim"`
	CapacidadeMedico    string `json:"capacidade_medico" validate:"required,oneof=muito_satisfeito satisfeito regular ruim"`
	Higienizacao        string `json:"higienizacao" validate:"required,oneof=muito_satisfeito satisfeito regular ruim"`
	AtendimentoTecnicos string `json:"atendimento_tecnicos" validate:"required,oneof=muito_satisfeito satisfeito regular ruim"`

	GinasticaCloud     string `json:"ginastica_cloud" validate:"max=2000"`
	EspacoColaborativo string `json:"espaco_colaborativo" validate:"max=2000"`
	VisitaAtendimento  string `json:"visita_atendimento" validate:"max=2000"`
	GostouEspaco       string `json:"gostou_espaco" validate:"max=2000"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// Responses monta o mapa `responses` gravado no registro; comentários vazios são omitidos
func (in SubmitInput) Responses() datatypes.JSONMap {
	responses := datatypes.JSONMap{
		entities.SectionRecepcao.Key():         in.AtendimentoRecepcao,
		entities.SectionTriagem.Key():          in.AtendimentoTriagem,
		entities.SectionMedico.Key():           in.AtendimentoMedico,
		entities.SectionCapacidadeMedico.Key(): in.CapacidadeMedico,
		entities.SectionHigienizacao.Key():     in.Higienizacao,
		entities.SectionTecnicos.Key():         in.AtendimentoTecnicos,
	}

	comments := map[entities.CommentKey]string{
		entities.CommentGinasticaCloud:     in.GinasticaCloud,
		entities.CommentEspacoColaborativo: in.EspacoColaborativo,
		entities.CommentVisitaAtendimento:  in.VisitaAtendimento,
		entities.CommentGostouEspaco:       in.GostouEspaco,
	}
	for key, text := range comments {
		if text = strings.TrimSpace(text); text != "" {
			responses[string(key)] = text
		}
	}
	return responses
}

// validationError traduz os erros do validator para uma mensagem por campo
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s é obrigatório", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s deve ser um de: %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s excede %s caracteres", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s inválido", fe.Field()))
		}
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}
