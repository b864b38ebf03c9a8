package ports

import (
	"context"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// ProductGateway puerto de salida hacia los endpoints /products del backend.
// Cada método emite exactamente una petición, sin reintentos.
type ProductGateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	// GetProduct devuelve domain.ErrNotFound si el id no existe.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, in dto.CreateProductDTO) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductDTO) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) (*dto.MessageResponse, error)
}

// CartGateway puerto de salida hacia los endpoints /cart/items del backend.
type CartGateway interface {
	ListCartItems(ctx context.Context) ([]entity.CartItem, error)
	AddToCart(ctx context.Context, in dto.AddToCartDTO) (*entity.CartItem, error)
	RemoveFromCart(ctx context.Context, id int64) (*dto.MessageResponse, error)
	// UpdateCartItem envía quantity tal cual, sin interpretar valores <= 0.
	UpdateCartItem(ctx context.Context, id int64, quantity int) (*entity.CartItem, error)
}

// CatalogGateway contrato completo del backend remoto.
type CatalogGateway interface {
	ProductGateway
	CartGateway
}
