package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidPrice       = errors.New("price debe ser un decimal no negativo con máximo 2 decimales")
	ErrInvalidStock       = errors.New("stock_quantity debe ser un entero no negativo")
	ErrCategoryNotFound   = errors.New("la categoría no existe")
	ErrInvalidCredentials = errors.New("no es posible iniciar sesión con las credenciales proporcionadas")
	ErrUnauthorized       = errors.New("no autorizado")
)
