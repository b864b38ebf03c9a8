// Package cart mantiene la réplica local del carrito y coordina el stock con el catálogo.
package cart

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/observable"
	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

// StockReserver parte del catálogo que usa el carrito para la reserva optimista.
type StockReserver interface {
	DecrementStockLocally(id int64, amount int) bool
	Refresh(ctx context.Context) error
}

// Options política del carrito.
type Options struct {
	// ResyncStockOnFailure relee el catálogo si falla un Add con stock ya descontado.
	ResyncStockOnFailure bool
}

// Store dueño exclusivo del snapshot del carrito y de su total derivado.
type Store struct {
	gw      ports.CartGateway
	catalog StockReserver
	opts    Options
	log     *logger.Logger

	mu    sync.Mutex // serializa la publicación de items y total
	items *observable.Subject[[]entity.CartItem]
	total *observable.Subject[decimal.Decimal]
}

// NewStore construye el store con carrito vacío. La carga inicial la hace bootstrap.
func NewStore(gw ports.CartGateway, catalog StockReserver, opts Options, log *logger.Logger) *Store {
	return &Store{
		gw:      gw,
		catalog: catalog,
		opts:    opts,
		log:     log.Named("cart"),
		items:   observable.NewSubject([]entity.CartItem{}),
		total:   observable.NewSubject(decimal.Zero),
	}
}

func (s *Store) publish(items []entity.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Next(items)
	s.total.Next(Total(items))
}

// Refresh lee el carrito completo y reemplaza el snapshot.
func (s *Store) Refresh(ctx context.Context) error {
	items, err := s.gw.ListCartItems(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("refrescar carrito")
		return fmt.Errorf("cart: refrescar: %w", err)
	}
	if items == nil {
		items = []entity.CartItem{}
	}
	s.publish(items)
	s.log.Debug().Int("items", len(items)).Msg("snapshot de carrito reemplazado")
	return nil
}

// Add agrega una línea y luego refresca.
func (s *Store) Add(ctx context.Context, in dto.AddToCartDTO) (*entity.CartItem, error) {
	if err := dto.Validate(in); err != nil {
		return nil, fmt.Errorf("cart: agregar: %w", err)
	}
	item, err := s.gw.AddToCart(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Int64("product_id", in.ProductID).Msg("agregar al carrito falló")
		return nil, fmt.Errorf("cart: agregar producto %d: %w", in.ProductID, err)
	}
	return item, s.Refresh(ctx)
}

// Remove elimina la línea id y luego refresca.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if _, err := s.gw.RemoveFromCart(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("item_id", id).Msg("quitar del carrito falló")
		return fmt.Errorf("cart: quitar línea %d: %w", id, err)
	}
	return s.Refresh(ctx)
}

// SetQuantity cambia la cantidad de la línea id. Una cantidad <= 0 elimina la línea.
func (s *Store) SetQuantity(ctx context.Context, id int64, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, s.Remove(ctx, id)
	}
	item, err := s.gw.UpdateCartItem(ctx, id, quantity)
	if err != nil {
		s.log.Warn().Err(err).Int64("item_id", id).Int("quantity", quantity).Msg("actualizar cantidad falló")
		return nil, fmt.Errorf("cart: actualizar línea %d: %w", id, err)
	}
	return item, s.Refresh(ctx)
}

// AddWithStockReservation agrega una unidad de product al carrito. El stock local del
// catálogo se descuenta antes de que responda el backend; si la llamada falla el
// descuento no se compensa localmente y, según Options, el catálogo se relee del servidor.
func (s *Store) AddWithStockReservation(ctx context.Context, product entity.Product) (*entity.CartItem, error) {
	in := dto.AddToCartDTO{ProductID: product.ID, Quantity: 1}
	reserved := s.catalog.DecrementStockLocally(product.ID, 1)

	item, err := s.Add(ctx, in)
	if err == nil || item != nil {
		// el backend confirmó la línea; un fallo posterior sólo afecta al refresh
		return item, err
	}
	if !reserved {
		return nil, err
	}

	s.log.Warn().Err(err).Int64("product_id", product.ID).
		Bool("resync", s.opts.ResyncStockOnFailure).
		Msg("stock descontado localmente sin confirmación del servidor")
	if s.opts.ResyncStockOnFailure {
		if rerr := s.catalog.Refresh(ctx); rerr != nil {
			s.log.Error().Err(rerr).Int64("product_id", product.ID).Msg("resincronizar catálogo tras fallo")
		}
	}
	return nil, err
}

// Items copia del snapshot actual.
func (s *Store) Items() []entity.CartItem {
	return slices.Clone(s.items.Value())
}

// Total total derivado del snapshot actual.
func (s *Store) Total() decimal.Decimal {
	return s.total.Value()
}

// Subscribe entrega el snapshot actual y cada reemplazo posterior.
func (s *Store) Subscribe() (<-chan []entity.CartItem, func()) {
	return s.items.Subscribe()
}

// SubscribeTotal entrega el total recalculado con cada snapshot.
func (s *Store) SubscribeTotal() (<-chan decimal.Decimal, func()) {
	return s.total.Subscribe()
}
