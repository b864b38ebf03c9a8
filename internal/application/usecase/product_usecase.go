package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-client/internal/application/dto"
	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/domain/entity"
	"github.com/jhoicas/Inventario-client/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del backend de demostración para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Rechaza nombres repetidos con domain.ErrDuplicate.
func (uc *ProductUseCase) Create(in dto.CreateProductDTO) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := fromInput(0, in)
	if err := uc.repo.Create(&product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// GetByID obtiene un producto por ID; nil, nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := dto.FromProduct(*product)
	return &out, nil
}

// Update sobrescribe todos los campos del producto id; nil, nil si no existe.
func (uc *ProductUseCase) Update(id int64, in dto.CreateProductDTO) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	product := fromInput(id, in)
	if err := uc.repo.Update(&product); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// Seed carga productos de ejemplo si el catálogo está vacío.
func (uc *ProductUseCase) Seed(products []dto.CreateProductDTO) error {
	list, err := uc.repo.List()
	if err != nil {
		return err
	}
	if len(list) > 0 {
		return nil
	}
	for _, in := range products {
		if _, err := uc.Create(in); err != nil {
			return fmt.Errorf("seed %q: %w", in.Name, err)
		}
	}
	return nil
}

func fromInput(id int64, in dto.CreateProductDTO) entity.Product {
	return entity.Product{
		ID:          id,
		Name:        in.Name,
		Price:       decimal.NewFromFloat(in.Price),
		Description: in.Description,
		Stock:       in.Stock,
	}
}
