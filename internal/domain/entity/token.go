package entity

import "time"

// Token credencial opaca uno-a-uno con User.
// Se crea en el primer login exitoso y se reutiliza en los siguientes (no rota).
// Eliminar el User elimina su Token (FK ON DELETE CASCADE).
type Token struct {
	Key       string // 40 caracteres hex
	UserID    string
	CreatedAt time.Time
}
