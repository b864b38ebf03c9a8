package cart_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-client/internal/application/cart"
	"github.com/jhoicas/Inventario-client/internal/application/catalog"
	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/ports/portstest"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/pkg/logger"
)

type fixture struct {
	gw      *portstest.FakeGateway
	catalog *catalog.Store
	cart    *cart.Store
}

func newFixture(t *testing.T, opts cart.Options, products ...entity.Product) fixture {
	t.Helper()
	gw := portstest.NewFakeGateway(products...)
	cat := catalog.NewStore(gw, logger.NewNop())
	c := cart.NewStore(gw, cat, opts, logger.NewNop())
	require.NoError(t, cat.Refresh(context.Background()))
	require.NoError(t, c.Refresh(context.Background()))
	return fixture{gw: gw, catalog: cat, cart: c}
}

func widget() entity.Product {
	return entity.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 3}
}

func soldOut() entity.Product {
	return entity.Product{ID: 2, Name: "Agotado", Price: decimal.NewFromInt(4), Stock: 0}
}

func stockOf(t *testing.T, s *catalog.Store, id int64) int {
	t.Helper()
	p, ok := s.Product(id)
	require.True(t, ok)
	return p.Stock
}

func TestAdd_RefrescaCarritoYTotal(t *testing.T) {
	f := newFixture(t, cart.Options{}, widget())

	_, err := f.cart.Add(context.Background(), dto.AddToCartDTO{ProductID: 1, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, f.cart.Items(), 1)
	assert.Equal(t, "19.98", f.cart.Total().StringFixed(2))
	assert.Equal(t, 2, f.gw.Calls("ListCartItems"))
}

func TestAdd_CantidadInvalidaNoLlamaAlBackend(t *testing.T) {
	f := newFixture(t, cart.Options{}, widget())

	_, err := f.cart.Add(context.Background(), dto.AddToCartDTO{ProductID: 1, Quantity: 0})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.gw.Calls("AddToCart"))
}

func TestRemove_TotalExcluyeLaLinea(t *testing.T) {
	f := newFixture(t, cart.Options{}, widget(), soldOut())
	ctx := context.Background()
	first, err := f.cart.Add(ctx, dto.AddToCartDTO{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = f.cart.Add(ctx, dto.AddToCartDTO{ProductID: 2, Quantity: 3})
	require.NoError(t, err)
	require.Equal(t, "21.99", f.cart.Total().StringFixed(2))

	require.NoError(t, f.cart.Remove(ctx, first.ID))

	assert.Equal(t, "12.00", f.cart.Total().StringFixed(2))
	assert.True(t, cart.Total(f.cart.Items()).Equal(f.cart.Total()))
}

func TestSetQuantity_Actualiza(t *testing.T) {
	f := newFixture(t, cart.Options{}, widget())
	ctx := context.Background()
	item, err := f.cart.Add(ctx, dto.AddToCartDTO{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	_, err = f.cart.SetQuantity(ctx, item.ID, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, f.cart.Items()[0].Quantity)
	assert.Equal(t, 1, f.gw.Calls("UpdateCartItem"))
}

func TestSetQuantity_CeroEliminaLaLinea(t *testing.T) {
	f := newFixture(t, cart.Options{}, widget())
	ctx := context.Background()
	item, err := f.cart.Add(ctx, dto.AddToCartDTO{ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	_, err = f.cart.SetQuantity(ctx, item.ID, 0)
	require.NoError(t, err)

	assert.Empty(t, f.cart.Items())
	assert.Equal(t, 0, f.gw.Calls("UpdateCartItem"))
	assert.Equal(t, 1, f.gw.Calls("RemoveFromCart"))
	assert.True(t, f.cart.Total().IsZero())
}

func TestSetQuantity_FalloNoRefresca(t *testing.T) {
	f := newFixture(t, cart.Options{}, widget())

	_, err := f.cart.SetQuantity(context.Background(), 99, 2)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, f.gw.Calls("ListCartItems"))
}

// Escenario: Widget con stock 3 → stock local 2 antes de que responda el backend;
// la línea devuelta conserva la copia del servidor con stock 3.
func TestAddWithStockReservation_DescuentaAntesDeLaRespuesta(t *testing.T) {
	f := newFixture(t, cart.Options{}, widget())
	f.gw.SetNextCartItemID(7)
	gate := f.gw.Block("AddToCart")

	type result struct {
		item *entity.CartItem
		err  error
	}
	done := make(chan result, 1)
	go func() {
		item, err := f.cart.AddWithStockReservation(context.Background(), widget())
		done <- result{item, err}
	}()

	require.Eventually(t, func() bool { return f.gw.Calls("AddToCart") == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, 2, stockOf(t, f.catalog, 1), "el descuento ocurre antes de la respuesta")

	close(gate)
	res := <-done
	require.NoError(t, res.err)

	items := f.cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 3, items[0].Product.Stock, "copia del servidor sin descontar")
	assert.Equal(t, 2, stockOf(t, f.catalog, 1), "el descuento local se mantiene hasta el próximo refresh")
}

func TestAddWithStockReservation_StockCeroNoDescuenta(t *testing.T) {
	f := newFixture(t, cart.Options{}, soldOut())
	ch, cancel := f.catalog.Subscribe()
	defer cancel()
	<-ch

	_, err := f.cart.AddWithStockReservation(context.Background(), soldOut())
	require.NoError(t, err)

	assert.Equal(t, 0, stockOf(t, f.catalog, 2))
	select {
	case <-ch:
		t.Fatal("el catálogo no debe notificar cambios de stock")
	default:
	}
}

func TestAddWithStockReservation_FalloSinResyncMantieneDescuento(t *testing.T) {
	f := newFixture(t, cart.Options{ResyncStockOnFailure: false}, widget())
	f.gw.Fail("AddToCart", domain.ErrNetwork)

	_, err := f.cart.AddWithStockReservation(context.Background(), widget())

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, 2, stockOf(t, f.catalog, 1), "sin compensación local")
	assert.Equal(t, 1, f.gw.Calls("ListProducts"))
	assert.Empty(t, f.cart.Items())
}

func TestAddWithStockReservation_FalloConResyncReleeCatalogo(t *testing.T) {
	f := newFixture(t, cart.Options{ResyncStockOnFailure: true}, widget())
	f.gw.Fail("AddToCart", domain.ErrNetwork)

	_, err := f.cart.AddWithStockReservation(context.Background(), widget())

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, 2, f.gw.Calls("ListProducts"), "carga inicial + resync")
	assert.Equal(t, 3, stockOf(t, f.catalog, 1), "vuelve el valor autoritativo")
}

func TestAddWithStockReservation_RefreshSustituyeElDescuentoLocal(t *testing.T) {
	f := newFixture(t, cart.Options{}, widget())
	ctx := context.Background()

	_, err := f.cart.AddWithStockReservation(ctx, widget())
	require.NoError(t, err)
	require.Equal(t, 2, stockOf(t, f.catalog, 1))

	// otra venta en el servidor deja el stock autoritativo en 1
	f.gw.SetServerStock(1, 1)
	require.NoError(t, f.catalog.Refresh(ctx))

	assert.Equal(t, 1, stockOf(t, f.catalog, 1), "el refresh manda sobre el descuento local")
}

func TestSubscribeTotal_SeRecalculaConCadaSnapshot(t *testing.T) {
	f := newFixture(t, cart.Options{}, widget())
	totals, cancel := f.cart.SubscribeTotal()
	defer cancel()
	assert.True(t, (<-totals).IsZero())

	_, err := f.cart.Add(context.Background(), dto.AddToCartDTO{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, "29.97", (<-totals).StringFixed(2))
}
