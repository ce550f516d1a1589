package migrations

import (
	"log"

	"gorm.io/gorm"
)

// AddIndexes adiciona os índices usados pelo painel
func AddIndexes(db *gorm.DB) error {
	indexes := []string{
		// Índice BRIN para consultas por período (inserções em ordem cronológica)
		"CREATE INDEX IF NOT EXISTS idx_surveys_timestamp_brin ON surveys USING BRIN (timestamp)",
		// Consultas ad hoc sobre respostas específicas
		"CREATE INDEX IF NOT EXISTS idx_surveys_responses_gin ON surveys USING GIN (responses)",
		"CREATE INDEX IF NOT EXISTS idx_admin_users_email_lower ON admin_users (lower(email))",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}

	log.Println("Índices criados com sucesso!")
	return nil
}
