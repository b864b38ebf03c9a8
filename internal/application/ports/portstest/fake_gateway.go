// Package portstest provee un CatalogGateway en memoria que registra llamadas,
// pensado para tests de los stores y del coordinador.
package portstest

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/application/ports"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

var _ ports.CatalogGateway = (*FakeGateway)(nil)

// FakeGateway imita al backend: asigna ids, guarda productos y líneas de carrito,
// cuenta llamadas por método y permite inyectar errores o bloquear un método.
type FakeGateway struct {
	mu       sync.Mutex
	products []entity.Product
	items    []entity.CartItem
	nextPID  int64
	nextIID  int64
	calls    map[string]int
	failures map[string]error
	gates    map[string]chan struct{}
}

// NewFakeGateway crea el fake con un catálogo inicial.
func NewFakeGateway(products ...entity.Product) *FakeGateway {
	f := &FakeGateway{
		calls:    make(map[string]int),
		failures: make(map[string]error),
		gates:    make(map[string]chan struct{}),
		nextPID:  1,
		nextIID:  1,
	}
	for _, p := range products {
		f.products = append(f.products, p)
		if p.ID >= f.nextPID {
			f.nextPID = p.ID + 1
		}
	}
	return f
}

// SetNextCartItemID fija el id que recibirá la próxima línea del carrito.
func (f *FakeGateway) SetNextCartItemID(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextIID = id
}

// Fail hace que method devuelva err hasta que se llame a Fail(method, nil).
func (f *FakeGateway) Fail(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.failures, method)
		return
	}
	f.failures[method] = err
}

// Block hace que method espere hasta que se cierre el canal devuelto.
func (f *FakeGateway) Block(method string) chan<- struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	gate := make(chan struct{})
	f.gates[method] = gate
	return gate
}

// Calls número de invocaciones de method.
func (f *FakeGateway) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// MutationCalls suma las llamadas a métodos que modifican estado.
func (f *FakeGateway) MutationCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range []string{"CreateProduct", "UpdateProduct", "DeleteProduct", "AddToCart", "RemoveFromCart", "UpdateCartItem"} {
		n += f.calls[m]
	}
	return n
}

// ServerProducts copia del catálogo del lado servidor.
func (f *FakeGateway) ServerProducts() []entity.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.products)
}

// SetServerStock cambia el stock autoritativo de un producto.
func (f *FakeGateway) SetServerStock(id int64, stock int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.productIndex(id); i >= 0 {
		f.products[i].Stock = stock
	}
}

func (f *FakeGateway) enter(ctx context.Context, method string) error {
	f.mu.Lock()
	f.calls[method]++
	gate := f.gates[method]
	err := f.failures[method]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (f *FakeGateway) productIndex(id int64) int {
	return slices.IndexFunc(f.products, func(p entity.Product) bool { return p.ID == id })
}

func (f *FakeGateway) itemIndex(id int64) int {
	return slices.IndexFunc(f.items, func(i entity.CartItem) bool { return i.ID == id })
}

func fromDTO(id int64, in dto.CreateProductDTO) entity.Product {
	return entity.Product{
		ID:          id,
		Name:        in.Name,
		Price:       decimal.NewFromFloat(in.Price),
		Description: in.Description,
		Stock:       in.Stock,
	}
}

func (f *FakeGateway) ListProducts(ctx context.Context) ([]entity.Product, error) {
	if err := f.enter(ctx, "ListProducts"); err != nil {
		return nil, err
	}
	return f.ServerProducts(), nil
}

func (f *FakeGateway) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	if err := f.enter(ctx, "GetProduct"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.productIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	p := f.products[i]
	return &p, nil
}

func (f *FakeGateway) CreateProduct(ctx context.Context, in dto.CreateProductDTO) (*entity.Product, error) {
	if err := f.enter(ctx, "CreateProduct"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p := fromDTO(f.nextPID, in)
	f.nextPID++
	f.products = append(f.products, p)
	return &p, nil
}

func (f *FakeGateway) UpdateProduct(ctx context.Context, id int64, in dto.UpdateProductDTO) (*entity.Product, error) {
	if err := f.enter(ctx, "UpdateProduct"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.productIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	f.products[i] = fromDTO(id, in.CreateProductDTO)
	p := f.products[i]
	return &p, nil
}

func (f *FakeGateway) DeleteProduct(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := f.enter(ctx, "DeleteProduct"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.productIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	f.products = slices.Delete(f.products, i, i+1)
	return &dto.MessageResponse{Message: "Product deleted successfully"}, nil
}

func (f *FakeGateway) ListCartItems(ctx context.Context) ([]entity.CartItem, error) {
	if err := f.enter(ctx, "ListCartItems"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items), nil
}

func (f *FakeGateway) AddToCart(ctx context.Context, in dto.AddToCartDTO) (*entity.CartItem, error) {
	if err := f.enter(ctx, "AddToCart"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.productIndex(in.ProductID)
	if i < 0 {
		return nil, fmt.Errorf("producto %d: %w", in.ProductID, domain.ErrNotFound)
	}
	item := entity.CartItem{ID: f.nextIID, Quantity: in.Quantity, Product: f.products[i]}
	f.nextIID++
	f.items = append(f.items, item)
	return &item, nil
}

func (f *FakeGateway) RemoveFromCart(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if err := f.enter(ctx, "RemoveFromCart"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.itemIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("línea %d: %w", id, domain.ErrNotFound)
	}
	f.items = slices.Delete(f.items, i, i+1)
	return &dto.MessageResponse{Message: "Item removed from cart"}, nil
}

func (f *FakeGateway) UpdateCartItem(ctx context.Context, id int64, quantity int) (*entity.CartItem, error) {
	if err := f.enter(ctx, "UpdateCartItem"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.itemIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("línea %d: %w", id, domain.ErrNotFound)
	}
	f.items[i].Quantity = quantity
	item := f.items[i]
	return &item, nil
}
