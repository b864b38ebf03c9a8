package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-client/internal/domain/entity"
)

// CreateProductDTO datos necesarios para crear un producto (sin id).
type CreateProductDTO struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"finite,gte=0"`
	Description string  `json:"description,omitempty"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// UpdateProductDTO datos de CreateProductDTO más el id del producto a sobrescribir.
type UpdateProductDTO struct {
	ID int64 `json:"id" validate:"gt=0"`
	CreateProductDTO
}

// ProductResponse representación JSON de un producto en el backend.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	Stock       int     `json:"stock"`
}

// ToProduct convierte la respuesta del backend en la entidad local.
func ToProduct(r ProductResponse) entity.Product {
	p := entity.Product{
		ID:    r.ID,
		Name:  r.Name,
		Price: decimal.NewFromFloat(r.Price),
		Stock: r.Stock,
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	return p
}

// FromProduct construye la representación JSON de una entidad.
func FromProduct(p entity.Product) ProductResponse {
	r := ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price.InexactFloat64(),
		Stock: p.Stock,
	}
	if p.Description != "" {
		desc := p.Description
		r.Description = &desc
	}
	return r
}

// EditFrom precarga el formulario de edición con los valores actuales del producto.
func EditFrom(p entity.Product) UpdateProductDTO {
	return UpdateProductDTO{
		ID: p.ID,
		CreateProductDTO: CreateProductDTO{
			Name:        p.Name,
			Price:       p.Price.InexactFloat64(),
			Description: p.Description,
			Stock:       p.Stock,
		},
	}
}
