package repository

import "github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Create devuelve domain.ErrUsernameTaken si el username ya existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Delete(id string) error
}
