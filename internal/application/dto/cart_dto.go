package dto

import "github.com/jhoicas/Inventario-client/internal/domain/entity"

// AddToCartDTO entrada para agregar una línea al carrito.
type AddToCartDTO struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"gt=0"`
}

// CartItemResponse representación JSON de una línea del carrito.
type CartItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id,omitempty"`
	Quantity  int             `json:"quantity"`
	Product   ProductResponse `json:"product"`
}

// ToCartItem convierte la respuesta del backend en la entidad local.
func ToCartItem(r CartItemResponse) entity.CartItem {
	return entity.CartItem{
		ID:       r.ID,
		Quantity: r.Quantity,
		Product:  ToProduct(r.Product),
	}
}

// FromCartItem construye la representación JSON de una línea.
func FromCartItem(i entity.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:        i.ID,
		ProductID: i.Product.ID,
		Quantity:  i.Quantity,
		Product:   FromProduct(i.Product),
	}
}
