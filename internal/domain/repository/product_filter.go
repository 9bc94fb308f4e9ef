package repository

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"
)

// Valores aceptados para ProductFilter.Ordering. Cualquier otro valor cae en
// el orden por defecto (created_at, id) para que la paginación sea estable.
const (
	OrderPrice           = "price"
	OrderPriceDesc       = "-price"
	OrderCreatedDate     = "created_date"
	OrderCreatedDateDesc = "-created_date"
)

// ProductFilter agrupa los predicados opcionales del listado de productos.
// Todos se combinan con AND. El adaptador postgres lo traduce a SQL; el
// adaptador en memoria lo evalúa con Matches/Compare, de modo que la semántica
// de filtrado se prueba sin base de datos.
type ProductFilter struct {
	Search        string           // substring case-insensitive sobre name, description y nombre de categoría
	CategoryID    string           // igualdad exacta
	MinPrice      *decimal.Decimal // cota inferior inclusiva
	MaxPrice      *decimal.Decimal // cota superior inclusiva
	Price         *decimal.Decimal // igualdad exacta
	StockQuantity *int             // igualdad exacta
	Ordering      string
	Limit         int
	Offset        int
}

// Matches reporta si el producto satisface todos los predicados del filtro.
func (f ProductFilter) Matches(p *entity.Product) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(p.CategoryName), q) {
			return false
		}
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Price != nil && !p.Price.Equal(*f.Price) {
		return false
	}
	if f.StockQuantity != nil && p.StockQuantity != *f.StockQuantity {
		return false
	}
	return true
}

// Compare ordena dos productos según Ordering. Devuelve <0 si a va antes que b.
// Siempre desempata por ID para que el orden sea determinista.
func (f ProductFilter) Compare(a, b *entity.Product) int {
	switch f.Ordering {
	case OrderPrice:
		if c := a.Price.Cmp(b.Price); c != 0 {
			return c
		}
	case OrderPriceDesc:
		if c := b.Price.Cmp(a.Price); c != 0 {
			return c
		}
	case OrderCreatedDate:
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
	case OrderCreatedDateDesc:
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
	default:
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
	}
	return strings.Compare(a.ID, b.ID)
}
