package aluguel

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Aluguéis.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(a *Aluguel) error {
	return r.DB.Create(a).Error
}

func (r *Repository) BuscarPorID(id uint) (*Aluguel, error) {
	var a Aluguel
	err := r.DB.
		Preload("Veiculo").
		Preload("Cliente").
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListarTodos retorna todos os aluguéis com veículo e cliente, mais
// recentes primeiro.
func (r *Repository) ListarTodos() ([]Aluguel, error) {
	var alugueis []Aluguel
	err := r.DB.
		Preload("Veiculo").
		Preload("Cliente").
		Order("created_at DESC").
		Find(&alugueis).Error
	return alugueis, err
}

// ListarAtivos retorna aluguéis em andamento, ordenados pela devolução
// mais próxima.
func (r *Repository) ListarAtivos() ([]Aluguel, error) {
	var alugueis []Aluguel
	err := r.DB.
		Preload("Veiculo").
		Preload("Cliente").
		Where("status = ?", StatusAtivo).
		Order("data_fim ASC").
		Find(&alugueis).Error
	return alugueis, err
}

func (r *Repository) Atualizar(a *Aluguel) error {
	return r.DB.Save(a).Error
}

func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Aluguel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
