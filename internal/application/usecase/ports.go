package usecase

import (
	"context"

	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción, de modo que el
// chequeo de existencia de la categoría y la escritura del producto sean
// atómicos frente a un delete concurrente de la categoría.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		categories repository.CategoryRepository,
	) error) error
}
