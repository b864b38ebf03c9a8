package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-client/internal/application/cart"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

func line(id int64, qty int, price string) entity.CartItem {
	return entity.CartItem{
		ID:       id,
		Quantity: qty,
		Product:  entity.Product{ID: id * 10, Name: "p", Price: decimal.RequireFromString(price)},
	}
}

func TestTotal_SumaCantidadPorPrecio(t *testing.T) {
	items := []entity.CartItem{line(1, 2, "9.99"), line(2, 1, "0.01"), line(3, 3, "10")}

	assert.Equal(t, "50.99", cart.Total(items).StringFixed(2))
}

func TestTotal_SinLineasEsCero(t *testing.T) {
	assert.True(t, cart.Total(nil).IsZero())
}

func TestTotal_QuitarLineaExcluyeSuAporte(t *testing.T) {
	items := []entity.CartItem{line(1, 2, "9.99"), line(2, 4, "2.50")}
	full := cart.Total(items)

	without := cart.Total(items[:1])

	assert.True(t, full.Sub(without).Equal(decimal.RequireFromString("10")))
}
