package usecase

import (
	"fmt"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/repository"
)

// CartUseCase casos de uso del carrito del backend de demostración. No toca el stock.
type CartUseCase struct {
	cart     repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cart repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cart: cart, products: products}
}

// List devuelve las líneas con el producto embebido.
func (uc *CartUseCase) List() ([]dto.CartItemResponse, error) {
	items, err := uc.cart.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromCartItem(it))
	}
	return out, nil
}

// Add crea una línea. El producto debe existir.
func (uc *CartUseCase) Add(in dto.AddToCartDTO) (*dto.CartItemResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}
	item, err := uc.cart.Add(*product, in.Quantity)
	if err != nil {
		return nil, err
	}
	out := dto.FromCartItem(*item)
	return &out, nil
}

// UpdateQuantity cambia la cantidad; quantity debe ser > 0.
func (uc *CartUseCase) UpdateQuantity(id int64, quantity int) (*dto.CartItemResponse, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser > 0", domain.ErrInvalidInput)
	}
	item, err := uc.cart.UpdateQuantity(id, quantity)
	if err != nil {
		return nil, err
	}
	out := dto.FromCartItem(*item)
	return &out, nil
}

// Remove elimina la línea id.
func (uc *CartUseCase) Remove(id int64) error {
	return uc.cart.Delete(id)
}
