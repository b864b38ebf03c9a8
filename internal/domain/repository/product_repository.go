package repository

import "github.com/jhoicas/Inventario-client/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product del backend de demostración.
type ProductRepository interface {
	// Create asigna el ID y persiste el producto.
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]entity.Product, error)
	Delete(id int64) error
}
