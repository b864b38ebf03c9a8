package entity

import "github.com/shopspring/decimal"

// CartItem línea del carrito. Product es una copia del producto tal como lo devolvió
// el backend al leer el carrito; no se sincroniza con el catálogo.
type CartItem struct {
	ID       int64
	Quantity int
	Product  Product
}

// Subtotal devuelve quantity × product.price.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
