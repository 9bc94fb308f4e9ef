// Package memory implementa los puertos de persistencia sobre maps en memoria.
// Evalúa ProductFilter con sus métodos Matches/Compare, sirviendo de
// implementación de referencia de los predicados y de backend para los tests
// de use cases y handlers, sin PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/othmaneb0100/ecommerce-product-api/internal/application/usecase"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/repository"
)

// Store contiene todas las colecciones bajo un mismo mutex, igual que la DB
// relacional es el único recurso compartido en el modelo de concurrencia.
type Store struct {
	mu         sync.RWMutex
	products   map[string]*entity.Product
	categories map[string]*entity.Category
	users      map[string]*entity.User
	tokens     map[string]*entity.Token // userID -> token
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]*entity.Product),
		categories: make(map[string]*entity.Category),
		users:      make(map[string]*entity.User),
		tokens:     make(map[string]*entity.Token),
	}
}

// Products devuelve la vista ProductRepository del store.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Categories devuelve la vista CategoryRepository del store.
func (s *Store) Categories() repository.CategoryRepository { return &categoryRepo{s: s} }

// Users devuelve la vista UserRepository del store.
func (s *Store) Users() repository.UserRepository { return &userRepo{s: s} }

// Tokens devuelve la vista TokenRepository del store.
func (s *Store) Tokens() repository.TokenRepository { return &tokenRepo{s: s} }

var _ usecase.TxRunner = (*Store)(nil)

// Run satisface usecase.TxRunner. En memoria no hay transacción real: el mutex
// del store ya serializa cada operación.
func (s *Store) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
) error) error {
	return fn(s.Products(), s.Categories())
}
