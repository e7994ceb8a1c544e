package pagamento

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository encapsula o acesso a dados de Pagamentos.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(p *Pagamento) error {
	return r.DB.Create(p).Error
}

func (r *Repository) BuscarPorID(id uint) (*Pagamento, error) {
	var p Pagamento
	err := r.DB.
		Preload("Aluguel").
		Preload("Aluguel.Veiculo").
		Preload("Aluguel.Cliente").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarTodos retorna todos os pagamentos ordenados pelo vencimento.
func (r *Repository) ListarTodos() ([]Pagamento, error) {
	var pagamentos []Pagamento
	err := r.DB.
		Preload("Aluguel").
		Preload("Aluguel.Veiculo").
		Preload("Aluguel.Cliente").
		Order("data_vencimento ASC").
		Find(&pagamentos).Error
	return pagamentos, err
}

// ListarPorAluguel retorna os pagamentos de um aluguel específico.
func (r *Repository) ListarPorAluguel(aluguelID uint) ([]Pagamento, error) {
	var pagamentos []Pagamento
	err := r.DB.
		Where("aluguel_id = ?", aluguelID).
		Order("data_vencimento ASC").
		Find(&pagamentos).Error
	return pagamentos, err
}

// ListarEmAberto retorna pagamentos pendentes ou parciais, o conjunto de
// trabalho da varredura de atraso.
func (r *Repository) ListarEmAberto() ([]Pagamento, error) {
	var pagamentos []Pagamento
	err := r.DB.
		Where("status IN ?", []string{StatusPendente, StatusParcial}).
		Find(&pagamentos).Error
	return pagamentos, err
}

// ListarProximosVencimento retorna pagamentos em aberto que vencem até a
// data limite, do vencimento mais próximo para o mais distante.
func (r *Repository) ListarProximosVencimento(limite time.Time) ([]Pagamento, error) {
	var pagamentos []Pagamento
	err := r.DB.
		Preload("Aluguel").
		Preload("Aluguel.Veiculo").
		Preload("Aluguel.Cliente").
		Where("data_vencimento <= ?", limite).
		Where("status IN ?", []string{StatusPendente, StatusParcial}).
		Order("data_vencimento ASC").
		Find(&pagamentos).Error
	return pagamentos, err
}

func (r *Repository) Atualizar(p *Pagamento) error {
	return r.DB.Save(p).Error
}

// AtualizarAcrescimos grava o retrato de multa/juros e o status calculados
// pela varredura de atraso.
func (r *Repository) AtualizarAcrescimos(id uint, status string, multa, juros float64) error {
	return r.DB.Model(&Pagamento{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": status,
			"multa":  multa,
			"juros":  juros,
		}).Error
}

// ProcessarComBloqueio lê o pagamento com trava de linha (SELECT ... FOR
// UPDATE), aplica fn e grava o resultado na mesma transação. Dois
// processamentos concorrentes do mesmo pagamento serializam aqui, evitando
// perda de atualização em valor_pago.
func (r *Repository) ProcessarComBloqueio(id uint, fn func(p *Pagamento) error) (*Pagamento, error) {
	var resultado *Pagamento
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var p Pagamento
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error; err != nil {
			return err
		}
		if err := fn(&p); err != nil {
			return err
		}
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		resultado = &p
		return nil
	})
	return resultado, err
}

// DeletarPorID apaga o pagamento; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Pagamento{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
