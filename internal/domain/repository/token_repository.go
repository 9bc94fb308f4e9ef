package repository

import "github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"

// TokenRepository define el puerto de persistencia para Token (DIP).
type TokenRepository interface {
	// GetOrCreate devuelve el token existente del usuario o persiste uno nuevo
	// con la key propuesta. El bool indica si se creó (false = reutilizado).
	GetOrCreate(userID, key string) (*entity.Token, bool, error)
	// FindUserByKey resuelve la key opaca al usuario dueño. nil si no existe.
	FindUserByKey(key string) (*entity.User, error)
}
