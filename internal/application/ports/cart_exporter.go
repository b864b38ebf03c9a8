package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// CartExporter genera un resumen imprimible del carrito (PDF).
type CartExporter interface {
	GenerateCartPDF(ctx context.Context, items []entity.CartItem, total decimal.Decimal) ([]byte, error)
}
