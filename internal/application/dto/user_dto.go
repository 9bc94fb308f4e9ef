package dto

import "time"

// RegisterUserRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse salida pública de un usuario (sin password ni token).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ObtainTokenRequest entrada para emisión de token (username + password).
type ObtainTokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse salida de la emisión de token. El mismo par de credenciales
// devuelve siempre el mismo token (no rota por login).
type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
