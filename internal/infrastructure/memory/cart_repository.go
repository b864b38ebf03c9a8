package memory

import (
	"fmt"
	"slices"

	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación en memoria de CartRepository.
type CartRepo struct {
	db *DB
}

// NewCartRepository construye el repositorio sobre db.
func NewCartRepository(db *DB) *CartRepo {
	return &CartRepo{db: db}
}

// Add crea una línea nueva para product.
func (r *CartRepo) Add(product entity.Product, quantity int) (*entity.CartItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	row := cartRow{id: r.db.nextIID, productID: product.ID, quantity: quantity, snapshot: product}
	r.db.nextIID++
	r.db.items[row.id] = row
	item := r.db.itemLocked(row)
	return &item, nil
}

// GetByID devuelve nil, nil si no existe.
func (r *CartRepo) GetByID(id int64) (*entity.CartItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	row, ok := r.db.items[id]
	if !ok {
		return nil, nil
	}
	item := r.db.itemLocked(row)
	return &item, nil
}

// List devuelve las líneas ordenadas por id.
func (r *CartRepo) List() ([]entity.CartItem, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	list := make([]entity.CartItem, 0, len(r.db.items))
	for _, row := range r.db.items {
		list = append(list, r.db.itemLocked(row))
	}
	slices.SortFunc(list, func(a, b entity.CartItem) int { return compareID(a.ID, b.ID) })
	return list, nil
}

// UpdateQuantity guarda la cantidad sin validarla.
func (r *CartRepo) UpdateQuantity(id int64, quantity int) (*entity.CartItem, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	row, ok := r.db.items[id]
	if !ok {
		return nil, fmt.Errorf("update cart item %d: %w", id, domain.ErrNotFound)
	}
	row.quantity = quantity
	r.db.items[id] = row
	item := r.db.itemLocked(row)
	return &item, nil
}

// Delete elimina la línea.
func (r *CartRepo) Delete(id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.items[id]; !ok {
		return fmt.Errorf("delete cart item %d: %w", id, domain.ErrNotFound)
	}
	delete(r.db.items, id)
	return nil
}
