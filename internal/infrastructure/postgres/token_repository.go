package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implementación del puerto TokenRepository sobre PostgreSQL.
// auth_tokens tiene user_id único con FK ON DELETE CASCADE hacia users: borrar
// el usuario invalida el token.
type TokenRepo struct {
	pool *pgxpool.Pool
}

// NewTokenRepository construye el adaptador de persistencia para tokens.
func NewTokenRepository(pool *pgxpool.Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

// GetOrCreate inserta la key propuesta solo si el usuario aún no tiene token
// (ON CONFLICT DO NOTHING sobre user_id); si ya existe, devuelve el guardado.
// Dos logins concurrentes convergen al mismo token.
func (r *TokenRepo) GetOrCreate(userID, key string) (*entity.Token, bool, error) {
	now := time.Now()
	cmd, err := r.pool.Exec(context.Background(),
		`INSERT INTO auth_tokens (key, user_id, created_at) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO NOTHING`,
		key, userID, now,
	)
	if err != nil {
		return nil, false, fmt.Errorf("insert token: %w", err)
	}
	if cmd.RowsAffected() == 1 {
		return &entity.Token{Key: key, UserID: userID, CreatedAt: now}, true, nil
	}
	var tok entity.Token
	err = r.pool.QueryRow(context.Background(),
		`SELECT key, user_id, created_at FROM auth_tokens WHERE user_id = $1`,
		userID,
	).Scan(&tok.Key, &tok.UserID, &tok.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("get token: %w", err)
	}
	return &tok, false, nil
}

// FindUserByKey resuelve la key opaca al usuario dueño con un JOIN. nil si la
// key no existe.
func (r *TokenRepo) FindUserByKey(key string) (*entity.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.password_hash, u.active, u.created_at, u.updated_at
		FROM auth_tokens t JOIN users u ON u.id = t.user_id
		WHERE t.key = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, key).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by token: %w", err)
	}
	return &u, nil
}
