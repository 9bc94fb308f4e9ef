// Package token genera las llaves opacas de autenticación.
package token

import (
	"crypto/rand"
	"encoding/hex"
)

// NewKey devuelve una llave opaca de 40 caracteres hex (20 bytes aleatorios).
func NewKey() string {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand solo falla si el SO no puede dar entropía
		panic("token: " + err.Error())
	}
	return hex.EncodeToString(b)
}
