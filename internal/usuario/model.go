package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é um operador do sistema da locadora.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:150;not null" json:"nome"`
	Email     string    `gorm:"size:150;not null;unique" json:"email"`
	Senha     string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
