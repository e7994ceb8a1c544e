package manutencao

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Manutenções.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(m *Manutencao) error {
	return r.DB.Create(m).Error
}

func (r *Repository) BuscarPorID(id uint) (*Manutencao, error) {
	var m Manutencao
	if err := r.DB.Preload("Veiculo").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) ListarTodas() ([]Manutencao, error) {
	var manutencoes []Manutencao
	err := r.DB.
		Preload("Veiculo").
		Order("data DESC").
		Find(&manutencoes).Error
	return manutencoes, err
}

func (r *Repository) ListarPorVeiculo(veiculoID uint) ([]Manutencao, error) {
	var manutencoes []Manutencao
	err := r.DB.
		Where("veiculo_id = ?", veiculoID).
		Order("data DESC").
		Find(&manutencoes).Error
	return manutencoes, err
}

func (r *Repository) Atualizar(m *Manutencao) error {
	return r.DB.Save(m).Error
}

func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Manutencao{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
