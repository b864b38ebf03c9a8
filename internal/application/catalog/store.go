// Package catalog mantiene la réplica local del catálogo de productos.
//
// El snapshot se reemplaza completo en cada Refresh; la única modificación local
// permitida es DecrementStockLocally, usada por la reserva optimista del carrito.
package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/observable"
	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

// Store dueño exclusivo del snapshot de productos.
type Store struct {
	gw       ports.ProductGateway
	log      *logger.Logger
	products *observable.Subject[[]entity.Product]
}

// NewStore construye el store con snapshot vacío. La carga inicial la hace bootstrap.
func NewStore(gw ports.ProductGateway, log *logger.Logger) *Store {
	return &Store{
		gw:       gw,
		log:      log.Named("catalog"),
		products: observable.NewSubject([]entity.Product{}),
	}
}

// Refresh lee el catálogo completo y reemplaza el snapshot. Si falla, el snapshot no cambia.
func (s *Store) Refresh(ctx context.Context) error {
	list, err := s.gw.ListProducts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("refrescar catálogo")
		return fmt.Errorf("catalog: refrescar: %w", err)
	}
	if list == nil {
		list = []entity.Product{}
	}
	s.products.Next(list)
	s.log.Debug().Int("products", len(list)).Msg("snapshot de catálogo reemplazado")
	return nil
}

// Create crea el producto en el backend y luego refresca. No inserta localmente.
func (s *Store) Create(ctx context.Context, in dto.CreateProductDTO) (*entity.Product, error) {
	created, err := s.gw.CreateProduct(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Str("name", in.Name).Msg("crear producto falló")
		return nil, fmt.Errorf("catalog: crear producto: %w", err)
	}
	s.log.Info().Int64("product_id", created.ID).Msg("producto creado")
	return created, s.Refresh(ctx)
}

// Update sobrescribe el producto id y luego refresca.
func (s *Store) Update(ctx context.Context, id int64, in dto.UpdateProductDTO) (*entity.Product, error) {
	updated, err := s.gw.UpdateProduct(ctx, id, in)
	if err != nil {
		s.log.Warn().Err(err).Int64("product_id", id).Msg("actualizar producto falló")
		return nil, fmt.Errorf("catalog: actualizar producto %d: %w", id, err)
	}
	s.log.Info().Int64("product_id", id).Msg("producto actualizado")
	return updated, s.Refresh(ctx)
}

// Remove elimina el producto id y luego refresca.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if _, err := s.gw.DeleteProduct(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("product_id", id).Msg("eliminar producto falló")
		return fmt.Errorf("catalog: eliminar producto %d: %w", id, err)
	}
	s.log.Info().Int64("product_id", id).Msg("producto eliminado")
	return s.Refresh(ctx)
}

// Fetch lee un producto directamente del backend sin tocar el snapshot.
func (s *Store) Fetch(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := s.gw.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog: obtener producto %d: %w", id, err)
	}
	return p, nil
}

// DecrementStockLocally descuenta amount del stock local del producto id, sin llamada
// de red, hasta el próximo Refresh. Sólo aplica si el stock actual es > 0 y nunca
// deja el stock negativo. Devuelve true si el snapshot cambió.
func (s *Store) DecrementStockLocally(id int64, amount int) bool {
	if amount <= 0 {
		return false
	}
	applied := s.products.Update(func(current []entity.Product) ([]entity.Product, bool) {
		i := slices.IndexFunc(current, func(p entity.Product) bool { return p.ID == id })
		if i < 0 || current[i].Stock <= 0 {
			return current, false
		}
		next := slices.Clone(current)
		next[i].Stock = max(next[i].Stock-amount, 0)
		return next, true
	})
	if applied {
		s.log.Debug().Int64("product_id", id).Int("amount", amount).Msg("stock descontado localmente")
	}
	return applied
}

// Products copia del snapshot actual.
func (s *Store) Products() []entity.Product {
	return slices.Clone(s.products.Value())
}

// Product busca un producto en el snapshot actual.
func (s *Store) Product(id int64) (entity.Product, bool) {
	for _, p := range s.products.Value() {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Subscribe entrega el snapshot actual y cada reemplazo posterior.
// Los slices recibidos son de sólo lectura.
func (s *Store) Subscribe() (<-chan []entity.Product, func()) {
	return s.products.Subscribe()
}
