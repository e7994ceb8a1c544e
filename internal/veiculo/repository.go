package veiculo

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Veículos.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(v *Veiculo) error {
	return r.DB.Create(v).Error
}

func (r *Repository) BuscarPorID(id uint) (*Veiculo, error) {
	var v Veiculo
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// ListarTodos retorna a frota completa, mais recentes primeiro.
func (r *Repository) ListarTodos() ([]Veiculo, error) {
	var veiculos []Veiculo
	err := r.DB.Order("created_at DESC").Find(&veiculos).Error
	return veiculos, err
}

// ListarDisponiveis retorna apenas veículos livres para locação.
func (r *Repository) ListarDisponiveis() ([]Veiculo, error) {
	var veiculos []Veiculo
	err := r.DB.
		Where("status = ?", StatusDisponivel).
		Order("modelo ASC").
		Find(&veiculos).Error
	return veiculos, err
}

func (r *Repository) Atualizar(v *Veiculo) error {
	return r.DB.Save(v).Error
}

// AtualizarStatus troca apenas o status do veículo (alugado/disponível).
func (r *Repository) AtualizarStatus(id uint, status string) error {
	return r.DB.Model(&Veiculo{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// DeletarPorID apaga o veículo; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Veiculo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
