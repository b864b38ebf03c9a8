package memory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	db *DB
}

// NewProductRepository construye el repositorio sobre db.
func NewProductRepository(db *DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create asigna el siguiente id y guarda el producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	product.ID = r.db.nextPID
	r.db.nextPID++
	r.db.products[product.ID] = *product
	return nil
}

// GetByID devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByName busca por nombre exacto (sin distinguir mayúsculas); nil, nil si no existe.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, p := range r.db.products {
		if strings.EqualFold(p.Name, name) {
			return &p, nil
		}
	}
	return nil, nil
}

// Update sobrescribe el producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.products[product.ID]; !ok {
		return fmt.Errorf("update product %d: %w", product.ID, domain.ErrNotFound)
	}
	r.db.products[product.ID] = *product
	return nil
}

// List devuelve los productos ordenados por id.
func (r *ProductRepo) List() ([]entity.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	list := make([]entity.Product, 0, len(r.db.products))
	for _, p := range r.db.products {
		list = append(list, p)
	}
	slices.SortFunc(list, func(a, b entity.Product) int { return compareID(a.ID, b.ID) })
	return list, nil
}

// Delete elimina el producto. Las líneas del carrito conservan su última copia.
func (r *ProductRepo) Delete(id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.products[id]
	if !ok {
		return fmt.Errorf("delete product %d: %w", id, domain.ErrNotFound)
	}
	for k, row := range r.db.items {
		if row.productID == id {
			row.snapshot = p
			r.db.items[k] = row
		}
	}
	delete(r.db.products, id)
	return nil
}

func compareID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
