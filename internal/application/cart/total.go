package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// Total suma quantity × product.price de todas las líneas.
func Total(items []entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
