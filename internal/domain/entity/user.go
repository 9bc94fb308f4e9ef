package entity

import "time"

// User representa una cuenta registrada.
// Username es único; Email se valida en formato pero no es único.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
