package veiculo

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de um veículo da frota.
const (
	StatusDisponivel = "disponivel"
	StatusAlugado    = "alugado"
	StatusManutencao = "manutencao"
)

// Veiculo representa um veículo da frota da locadora.
type Veiculo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Placa     string    `gorm:"size:10;not null;unique" json:"placa"`
	Modelo    string    `gorm:"size:100;not null" json:"modelo"`
	Marca     string    `gorm:"size:100;not null" json:"marca"`
	Ano       int       `gorm:"not null" json:"ano"`
	Cor       string    `gorm:"size:50" json:"cor"`
	Foto      string    `gorm:"size:255" json:"foto,omitempty"`
	Status    string    `gorm:"size:50;not null;default:'disponivel';index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Veiculo{})
}
