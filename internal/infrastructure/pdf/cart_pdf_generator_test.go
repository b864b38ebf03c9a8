package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0.00", formatMoney(decimal.Zero))
	assert.Equal(t, "$9.99", formatMoney(decimal.RequireFromString("9.99")))
	assert.Equal(t, "$1,234.50", formatMoney(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "$1,000,000.00", formatMoney(decimal.NewFromInt(1000000)))
	assert.Equal(t, "-$12.00", formatMoney(decimal.NewFromInt(-12)))
}

func TestGenerateCartPDF(t *testing.T) {
	items := []entity.CartItem{
		{ID: 1, Quantity: 2, Product: entity.Product{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 3}},
		{ID: 2, Quantity: 1, Product: entity.Product{ID: 2, Name: "Gadget", Price: decimal.RequireFromString("24.5"), Stock: 10}},
	}

	out, err := NewCartPDFGenerator("Resumen del carrito").GenerateCartPDF(context.Background(), items, decimal.RequireFromString("44.48"))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateCartPDF_CarritoVacio(t *testing.T) {
	out, err := NewCartPDFGenerator("Resumen").GenerateCartPDF(context.Background(), nil, decimal.Zero)

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateCartPDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCartPDFGenerator("Resumen").GenerateCartPDF(ctx, nil, decimal.Zero)

	assert.ErrorIs(t, err, context.Canceled)
}
