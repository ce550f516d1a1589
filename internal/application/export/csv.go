package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"
)

// ContentType do arquivo exportado
const ContentType = "text/csv; charset=utf-8"

// timestampLayout reproduz o formato pt-BR de data e hora
const timestampLayout = "02/01/2006 15:04:05"

// Header é a linha de cabeçalho fixa da planilha
var Header = []string{
	"Data/Hora",
	"Recepção",
	"Triagem",
	"Médico",
	"Capacidade Médico",
	"Higienização",
	"Técnicos/Enfermeiros",
}

// Row converte um registro em uma linha: data/hora seguida do símbolo bruto de cada seção
func Row(record entities.SurveyRecord) []string {
	row := make([]string, 0, len(Header))
	row = append(row, record.Timestamp.Format(timestampLayout))
	for _, section := range entities.Sections() {
		row = append(row, record.Answer(section.Key()))
	}
	return row
}

// WriteCSV escreve o cabeçalho e uma linha por registro, preservando a ordem recebida
func WriteCSV(w io.Writer, records []entities.SurveyRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(Row(record)); err != nil {
			return fmt.Errorf("erro ao escrever registro %s: %w", record.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// FileName gera o nome do arquivo com a data atual
func FileName(now time.Time) string {
	return fmt.Sprintf("pesquisa-satisfacao-%s.csv", now.Format("2006-01-02"))
}
