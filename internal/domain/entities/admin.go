package entities

import "time"

// AdminUser representa um usuário autorizado a acessar o painel
type AdminUser struct {
	ID           string    `json:"id" bson:"_id" gorm:"primaryKey;column:id;type:uuid"`
	Email        string    `json:"email" bson:"email" gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `json:"-" bson:"password_hash,omitempty" gorm:"column:password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" gorm:"column:created_at"`
}

// TableName define o nome da tabela
func (AdminUser) TableName() string { return "admin_users" }
