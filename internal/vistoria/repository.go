package vistoria

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Vistorias.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(v *Vistoria) error {
	return r.DB.Create(v).Error
}

func (r *Repository) BuscarPorID(id uint) (*Vistoria, error) {
	var v Vistoria
	err := r.DB.
		Preload("Veiculo").
		Preload("Aluguel").
		Preload("Aluguel.Cliente").
		First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) ListarTodas() ([]Vistoria, error) {
	var vistorias []Vistoria
	err := r.DB.
		Preload("Veiculo").
		Preload("Aluguel").
		Preload("Aluguel.Cliente").
		Order("data DESC").
		Find(&vistorias).Error
	return vistorias, err
}

func (r *Repository) ListarPorVeiculo(veiculoID uint) ([]Vistoria, error) {
	var vistorias []Vistoria
	err := r.DB.
		Preload("Aluguel").
		Preload("Aluguel.Cliente").
		Where("veiculo_id = ?", veiculoID).
		Order("data DESC").
		Find(&vistorias).Error
	return vistorias, err
}

func (r *Repository) Atualizar(v *Vistoria) error {
	return r.DB.Save(v).Error
}

func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Vistoria{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
