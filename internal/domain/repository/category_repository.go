package repository

import "github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// El listado no se pagina (asimetría heredada del comportamiento original).
// Delete elimina en cascada los productos de la categoría.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
