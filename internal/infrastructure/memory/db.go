// Package memory implementa los repositorios del backend de demostración en memoria.
package memory

import (
	"sync"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// DB estado compartido por los repositorios (equivalente al pool de conexiones).
type DB struct {
	mu       sync.RWMutex
	products map[int64]entity.Product
	items    map[int64]cartRow
	nextPID  int64
	nextIID  int64
}

type cartRow struct {
	id        int64
	productID int64
	quantity  int
	snapshot  entity.Product // última copia conocida del producto
}

// NewDB crea una base vacía; los ids empiezan en 1.
func NewDB() *DB {
	return &DB{
		products: make(map[int64]entity.Product),
		items:    make(map[int64]cartRow),
		nextPID:  1,
		nextIID:  1,
	}
}

// itemLocked arma la línea con el producto vigente. Requiere db.mu tomado.
func (db *DB) itemLocked(row cartRow) entity.CartItem {
	p, ok := db.products[row.productID]
	if !ok {
		p = row.snapshot
	}
	return entity.CartItem{ID: row.id, Quantity: row.quantity, Product: p}
}
