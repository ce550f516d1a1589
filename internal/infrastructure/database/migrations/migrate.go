package migrations

import (
	"github.com/PavaniTiago/pesquisa-satisfacao-api/internal/domain/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&entities.SurveyRecord{}, &entities.AdminUser{})
}
