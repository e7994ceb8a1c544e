package cliente

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de Clientes.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(c *Cliente) error {
	return r.DB.Create(c).Error
}

func (r *Repository) BuscarPorID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListarTodos() ([]Cliente, error) {
	var clientes []Cliente
	err := r.DB.Order("nome ASC").Find(&clientes).Error
	return clientes, err
}

func (r *Repository) Atualizar(c *Cliente) error {
	return r.DB.Save(c).Error
}

func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Cliente{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
