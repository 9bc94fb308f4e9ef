package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/othmaneb0100/ecommerce-product-api/internal/application/dto"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD + búsqueda filtrada para productos.
// Las escrituras corren dentro de TxRunner para que la verificación de la
// categoría y el insert/update sean atómicos.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	tx         TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, tx: tx}
}

// validPrice: decimal no negativo con máximo 2 decimales.
// Exponent() es negativo para decimales con parte fraccionaria (-2 = centavos).
func validPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.Exponent() >= -2
}

// Create crea un producto. El dueño es el usuario autenticado que hace la llamada;
// la categoría referenciada debe existir.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !validPrice(in.Price) {
		return nil, domain.ErrInvalidPrice
	}
	if in.StockQuantity < 0 {
		return nil, domain.ErrInvalidStock
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		CategoryID:    in.CategoryID,
		StockQuantity: in.StockQuantity,
		ImageURL:      in.ImageURL,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err := uc.tx.Run(context.Background(), func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		category, err := categories.GetByID(in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrCategoryNotFound
		}
		product.CategoryName = category.Name
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualización parcial: solo los campos presentes cambian, el resto
// conserva su valor anterior.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !validPrice(*in.Price) {
			return nil, domain.ErrInvalidPrice
		}
		product.Price = *in.Price
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrInvalidStock
		}
		product.StockQuantity = *in.StockQuantity
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	product.UpdatedAt = time.Now()

	err = uc.tx.Run(context.Background(), func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		if in.CategoryID != nil {
			category, err := categories.GetByID(*in.CategoryID)
			if err != nil {
				return err
			}
			if category == nil {
				return domain.ErrCategoryNotFound
			}
			product.CategoryID = *in.CategoryID
			product.CategoryName = category.Name
		}
		return products.Update(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List aplica el filtro completo y pagina; Total refleja todas las coincidencias.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, total, err := uc.products.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: total},
	}, nil
}

// Delete elimina un producto. Cualquier actor autenticado puede borrar
// cualquier producto; el comportamiento permisivo se preserva a propósito
// (ver DESIGN.md). Devuelve ErrNotFound si el ID no existe.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
		UserID:        p.UserID,
		CreatedDate:   p.CreatedAt,
	}
}
