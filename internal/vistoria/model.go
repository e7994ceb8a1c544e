package vistoria

import (
	"time"

	"gorm.io/gorm"

	"github.com/gestaolocadora/api-locadora/internal/aluguel"
	"github.com/gestaolocadora/api-locadora/internal/veiculo"
)

// Tipos de vistoria.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
	TipoMensal  = "mensal"
)

// Vistoria registra a inspeção fotográfica de um veículo, opcionalmente
// vinculada a um aluguel (entrada/saída).
type Vistoria struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	VeiculoID   uint      `gorm:"not null;index" json:"veiculoId"`
	AluguelID   *uint     `gorm:"index" json:"aluguelId,omitempty"`
	Data        time.Time `gorm:"not null" json:"data"`
	Tipo        string    `gorm:"size:50;not null" json:"tipo"`
	Fotos       []string  `gorm:"serializer:json" json:"fotos"`
	Observacoes string    `gorm:"size:500" json:"observacoes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Veiculo veiculo.Veiculo  `gorm:"foreignKey:VeiculoID" json:"veiculo,omitempty"`
	Aluguel *aluguel.Aluguel `gorm:"foreignKey:AluguelID" json:"aluguel,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Vistoria{})
}
