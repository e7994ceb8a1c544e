package aluguel

import (
	"time"

	"gorm.io/gorm"

	"github.com/gestaolocadora/api-locadora/internal/cliente"
	"github.com/gestaolocadora/api-locadora/internal/veiculo"
)

// Status possíveis de um aluguel.
const (
	StatusAtivo      = "ativo"
	StatusFinalizado = "finalizado"
	StatusCancelado  = "cancelado"
)

// Aluguel representa um contrato de locação de um veículo para um cliente.
// ValorTotal é derivado da diária e do período no momento da criação e só é
// recalculado quando datas e diária são editadas explicitamente.
type Aluguel struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	VeiculoID   uint            `gorm:"not null;index" json:"veiculoId"`
	ClienteID   uint            `gorm:"not null;index" json:"clienteId"`
	DataInicio  time.Time       `gorm:"not null" json:"dataInicio"`
	DataFim     time.Time       `gorm:"not null" json:"dataFim"`
	ValorDiaria float64         `gorm:"not null" json:"valorDiaria"`
	ValorTotal  float64         `gorm:"not null" json:"valorTotal"`
	Status      string          `gorm:"size:50;not null;default:'ativo';index" json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Veiculo     veiculo.Veiculo `gorm:"foreignKey:VeiculoID" json:"veiculo,omitempty"`
	Cliente     cliente.Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Aluguel{})
}
