package repository

import "github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// List aplica el filtro completo antes de paginar y devuelve además el total
// de coincidencias (independiente de limit/offset).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter) ([]*entity.Product, int, error)
	Delete(id string) error
}
