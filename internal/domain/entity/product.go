package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Price se maneja como decimal con 2 decimales (NUMERIC en DB); la comparación
// de rangos es siempre numérica. UserID es el usuario que lo creó.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	CategoryID    string
	CategoryName  string // solo lectura, se llena con el JOIN a categories
	StockQuantity int
	ImageURL      string
	UserID        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
