package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/othmaneb0100/ecommerce-product-api/internal/application/auth"
	"github.com/othmaneb0100/ecommerce-product-api/internal/application/dto"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"
	"github.com/othmaneb0100/ecommerce-product-api/internal/infrastructure/memory"
)

func newAuthUC() (*auth.AuthUseCase, *memory.Store) {
	store := memory.NewStore()
	return auth.NewAuthUseCase(store.Users(), store.Tokens()), store
}

func TestRegister_CreaUsuarioConPasswordHasheado(t *testing.T) {
	uc, store := newAuthUC()

	out, err := uc.Register(dto.RegisterUserRequest{
		Username: "testuser",
		Email:    "testuser@example.com",
		Password: "testpass123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)
	assert.Equal(t, "testuser", out.Username)
	assert.Equal(t, "testuser@example.com", out.Email)
	assert.True(t, out.Active)

	// Persistido solo como hash bcrypt, nunca en claro.
	saved, err := store.Users().GetByUsername("testuser")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEqual(t, "testpass123", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("testpass123")))
}

func TestRegister_UsernameDuplicadoNoCreaSegundoUsuario(t *testing.T) {
	uc, store := newAuthUC()

	primero, err := uc.Register(dto.RegisterUserRequest{
		Username: "existinguser", Email: "existing@example.com", Password: "existingpass",
	})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterUserRequest{
		Username: "existinguser", Email: "otro@example.com", Password: "otropass123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// El usuario original sigue intacto.
	saved, err := store.Users().GetByUsername("existinguser")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, primero.ID, saved.ID)
	assert.Equal(t, "existing@example.com", saved.Email)
}

func TestObtainToken_DevuelveTokenUserIDYEmail(t *testing.T) {
	uc, _ := newAuthUC()
	user, err := uc.Register(dto.RegisterUserRequest{
		Username: "existinguser", Email: "existing@example.com", Password: "existingpass",
	})
	require.NoError(t, err)

	out, created, err := uc.ObtainToken(dto.ObtainTokenRequest{
		Username: "existinguser", Password: "existingpass",
	})
	require.NoError(t, err)
	assert.True(t, created, "el primer login crea el token")
	assert.Len(t, out.Token, 40, "la key opaca tiene 40 caracteres hex")
	assert.Equal(t, user.ID, out.UserID)
	assert.Equal(t, "existing@example.com", out.Email)
}

func TestObtainToken_EsIdempotente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Register(dto.RegisterUserRequest{
		Username: "existinguser", Email: "existing@example.com", Password: "existingpass",
	})
	require.NoError(t, err)

	creds := dto.ObtainTokenRequest{Username: "existinguser", Password: "existingpass"}
	primero, created, err := uc.ObtainToken(creds)
	require.NoError(t, err)
	assert.True(t, created)

	segundo, created, err := uc.ObtainToken(creds)
	require.NoError(t, err)
	assert.False(t, created, "los logins siguientes reutilizan el token")
	assert.Equal(t, primero.Token, segundo.Token, "mismo valor de token en cada login exitoso")
}

// Username desconocido, password incorrecto y cuenta inactiva producen el
// mismo error, sin revelar cuál campo falló.
func TestObtainToken_CredencialesInvalidas(t *testing.T) {
	uc, store := newAuthUC()
	_, err := uc.Register(dto.RegisterUserRequest{
		Username: "existinguser", Email: "existing@example.com", Password: "existingpass",
	})
	require.NoError(t, err)

	_, _, err = uc.ObtainToken(dto.ObtainTokenRequest{Username: "existinguser", Password: "wrongpassword"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = uc.ObtainToken(dto.ObtainTokenRequest{Username: "nadie", Password: "existingpass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Cuenta inactiva.
	hash, err := bcrypt.GenerateFromPassword([]byte("inactivepass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, store.Users().Create(&entity.User{
		ID: uuid.New().String(), Username: "inactivo", Email: "in@example.com",
		PasswordHash: string(hash), Active: false, CreatedAt: now, UpdatedAt: now,
	}))
	_, _, err = uc.ObtainToken(dto.ObtainTokenRequest{Username: "inactivo", Password: "inactivepass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// La vida del token está atada a la del usuario: borrar el usuario lo invalida.
func TestToken_SeInvalidaAlEliminarElUsuario(t *testing.T) {
	uc, store := newAuthUC()
	user, err := uc.Register(dto.RegisterUserRequest{
		Username: "efimero", Email: "e@example.com", Password: "pass12345",
	})
	require.NoError(t, err)

	out, _, err := uc.ObtainToken(dto.ObtainTokenRequest{Username: "efimero", Password: "pass12345"})
	require.NoError(t, err)

	resolved, err := store.Tokens().FindUserByKey(out.Token)
	require.NoError(t, err)
	require.NotNil(t, resolved)

	require.NoError(t, store.Users().Delete(user.ID))

	resolved, err = store.Tokens().FindUserByKey(out.Token)
	require.NoError(t, err)
	assert.Nil(t, resolved, "el token muere con el usuario")
}
