package entity

import "github.com/shopspring/decimal"

// Product réplica local de un producto del catálogo. ID lo asigna el servidor y no cambia.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description string
	Stock       int
}

// InStock indica si queda al menos una unidad disponible.
func (p Product) InStock() bool { return p.Stock > 0 }
