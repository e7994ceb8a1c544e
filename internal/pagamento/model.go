package pagamento

import (
	"time"

	"gorm.io/gorm"

	"github.com/gestaolocadora/api-locadora/internal/aluguel"
)

// Status possíveis de um pagamento. "pago" é terminal.
const (
	StatusPendente = "pendente"
	StatusParcial  = "parcial"
	StatusPago     = "pago"
	StatusAtrasado = "atrasado"
)

// Pagamento representa uma cobrança vinculada a um aluguel.
//
// Multa e Juros são um retrato persistido apenas pela varredura de atraso ou
// pelo processamento de um pagamento; a projeção "ao vivo" exibida nas
// leituras fica em PagamentoProjetado e nunca é gravada.
type Pagamento struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	AluguelID      uint       `gorm:"not null;index" json:"aluguelId"`
	Valor          float64    `gorm:"not null" json:"valor"`
	DataVencimento time.Time  `gorm:"not null;index" json:"dataVencimento"`
	DataPagamento  *time.Time `json:"dataPagamento,omitempty"`
	Status         string     `gorm:"size:50;not null;default:'pendente';index" json:"status"`
	Multa          float64    `gorm:"not null;default:0" json:"multa"`
	Juros          float64    `gorm:"not null;default:0" json:"juros"`
	ValorPago      float64    `gorm:"not null;default:0" json:"valorPago"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	Aluguel aluguel.Aluguel `gorm:"foreignKey:AluguelID" json:"aluguel,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pagamento{})
}
