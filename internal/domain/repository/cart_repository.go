package repository

import "github.com/jhoicas/Inventario-client/internal/domain/entity"

// CartRepository define el puerto de persistencia de las líneas del carrito.
// Las lecturas embeben el producto vigente o, si ya no existe, la última copia conocida.
type CartRepository interface {
	Add(product entity.Product, quantity int) (*entity.CartItem, error)
	GetByID(id int64) (*entity.CartItem, error)
	List() ([]entity.CartItem, error)
	UpdateQuantity(id int64, quantity int) (*entity.CartItem, error)
	Delete(id int64) error
}
