package cliente

import (
	"time"

	"gorm.io/gorm"
)

// Cliente representa um locatário cadastrado.
type Cliente struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:150;not null" json:"nome"`
	CPF       string    `gorm:"size:14;not null;unique" json:"cpf"`
	Telefone  string    `gorm:"size:20" json:"telefone"`
	Email     string    `gorm:"size:150" json:"email,omitempty"`
	Endereco  string    `gorm:"size:255" json:"endereco"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
