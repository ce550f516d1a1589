package entities

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Section identifica um dos seis aspectos do atendimento avaliados na pesquisa
type Section int

const (
	SectionRecepcao Section = iota
	SectionTriagem
	SectionMedico
	SectionCapacidadeMedico
	SectionHigienizacao
	SectionTecnicos
)

var sectionKeys = [...]string{
	SectionRecepcao:         "atendimento_recepcao",
	SectionTriagem:          "atendimento_triagem",
	SectionMedico:           "atendimento_medico",
	SectionCapacidadeMedico: "capacidade_medico",
	SectionHigienizacao:     "higienizacao",
	SectionTecnicos:         "atendimento_tecnicos",
}

// Sections retorna as seções na ordem fixa do formulário
func Sections() []Section {
	return []Section{
		SectionRecepcao,
		SectionTriagem,
		SectionMedico,
		SectionCapacidadeMedico,
		SectionHigienizacao,
		SectionTecnicos,
	}
}

// Key retorna a chave usada em `responses` e nos mapas do resumo
func (s Section) Key() string {
	if s < 0 || int(s) >= len(sectionKeys) {
		return ""
	}
	return sectionKeys[s]
}

func (s Section) String() string {
	return s.Key()
}

// MarshalText permite usar Section como chave de mapa em JSON
func (s Section) MarshalText() ([]byte, error) {
	key := s.Key()
	if key == "" {
		return nil, fmt.Errorf("seção inválida: %d", int(s))
	}
	return []byte(key), nil
}

func (s *Section) UnmarshalText(text []byte) error {
	parsed, ok := ParseSection(string(text))
	if !ok {
		return fmt.Errorf("seção desconhecida: %q", string(text))
	}
	*s = parsed
	return nil
}

// ParseSection converte a chave textual na seção correspondente
func ParseSection(key string) (Section, bool) {
	for i, k := range sectionKeys {
		if k == key {
			return Section(i), true
		}
	}
	return 0, false
}

// Rating é um dos quatro símbolos da escala de satisfação
type Rating int

const (
	RatingRuim Rating = iota + 1
	RatingRegular
	RatingSatisfeito
	RatingMuitoSatisfeito
)

var ratingSymbols = map[Rating]string{
	RatingMuitoSatisfeito: "muito_satisfeito",
	RatingSatisfeito:      "satisfeito",
	RatingRegular:         "regular",
	RatingRuim:            "ruim",
}

// Ratings retorna a escala do maior para o menor peso
func Ratings() []Rating {
	return []Rating{RatingMuitoSatisfeito, RatingSatisfeito, RatingRegular, RatingRuim}
}

// Weight é o peso numérico usado na média (4 a 1)
func (r Rating) Weight() int {
	return int(r)
}

// Symbol retorna o símbolo armazenado nas respostas
func (r Rating) Symbol() string {
	return ratingSymbols[r]
}

func (r Rating) String() string {
	return r.Symbol()
}

// ParseRating converte um símbolo da escala; qualquer outro valor é inválido
func ParseRating(symbol string) (Rating, bool) {
	for r, s := range ratingSymbols {
		if s == symbol {
			return r, true
		}
	}
	return 0, false
}

// AnswerState classifica a resposta de uma seção
type AnswerState int

const (
	AnswerAbsent AnswerState = iota
	AnswerInvalid
	AnswerValid
)

// CommentKey identifica as perguntas abertas (texto livre)
type CommentKey string

const (
	CommentGinasticaCloud     CommentKey = "ginastica_cloud"
	CommentEspacoColaborativo CommentKey = "espaco_colaborativo"
	CommentVisitaAtendimento  CommentKey = "visita_atendimento"
	CommentGostouEspaco       CommentKey = "gostou_espaco"
)

// CommentKeys retorna as perguntas abertas na ordem do formulário
func CommentKeys() []CommentKey {
	return []CommentKey{
		CommentGinasticaCloud,
		CommentEspacoColaborativo,
		CommentVisitaAtendimento,
		CommentGostouEspaco,
	}
}

// SurveyRecord representa um questionário enviado por um paciente
type SurveyRecord struct {
	ID        string            `json:"id" bson:"_id" gorm:"primaryKey;column:id;type:uuid"`
	Timestamp time.Time         `json:"timestamp" bson:"timestamp" gorm:"column:timestamp;not null;index"`
	Responses datatypes.JSONMap `json:"responses,omitempty" bson:"responses,omitempty" gorm:"column:responses;type:jsonb"`
	IPAddress string            `json:"ip_address,omitempty" bson:"ip_address,omitempty" gorm:"column:ip_address"`
	UserAgent string            `json:"user_agent,omitempty" bson:"user_agent,omitempty" gorm:"column:user_agent"`
}

// TableName define o nome da tabela
func (SurveyRecord) TableName() string { return "surveys" }

// RatingFor classifica a resposta do registro para a seção.
// Sem `responses` ou sem a chave: ausente. Valor fora da escala (ou não textual): inválido.
func (r SurveyRecord) RatingFor(section Section) (Rating, AnswerState) {
	if r.Responses == nil {
		return 0, AnswerAbsent
	}
	raw, ok := r.Responses[section.Key()]
	if !ok || raw == nil {
		return 0, AnswerAbsent
	}
	symbol, ok := raw.(string)
	if !ok {
		return 0, AnswerInvalid
	}
	rating, ok := ParseRating(symbol)
	if !ok {
		return 0, AnswerInvalid
	}
	return rating, AnswerValid
}

// Answer retorna o texto bruto de uma chave de `responses` (vazio se ausente ou não textual)
func (r SurveyRecord) Answer(key string) string {
	if r.Responses == nil {
		return ""
	}
	s, _ := r.Responses[key].(string)
	return s
}
