package manutencao

import (
	"time"

	"gorm.io/gorm"

	"github.com/gestaolocadora/api-locadora/internal/veiculo"
)

// Tipos de manutenção.
const (
	TipoPreventiva = "preventiva"
	TipoCorretiva  = "corretiva"
)

// Manutencao registra um serviço realizado em um veículo e seu custo.
type Manutencao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VeiculoID uint      `gorm:"not null;index" json:"veiculoId"`
	Tipo      string    `gorm:"size:50;not null" json:"tipo"`
	Categoria string    `gorm:"size:100;not null" json:"categoria"`
	Custo     float64   `gorm:"not null" json:"custo"`
	Data      time.Time `gorm:"not null" json:"data"`
	Descricao string    `gorm:"size:500" json:"descricao"`
	Km        *int      `json:"km,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Veiculo veiculo.Veiculo `gorm:"foreignKey:VeiculoID" json:"veiculo,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Manutencao{})
}
