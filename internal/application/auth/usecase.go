package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/othmaneb0100/ecommerce-product-api/internal/application/dto"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/entity"
	"github.com/othmaneb0100/ecommerce-product-api/internal/domain/repository"
	"github.com/othmaneb0100/ecommerce-product-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase registro de usuarios y emisión de tokens.
type AuthUseCase struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, tokens repository.TokenRepository) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrUsernameTaken si el username ya existe; el registro no inicia
// sesión ni emite token.
func (uc *AuthUseCase) Register(in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// El constraint único de la DB cubre la carrera entre el check y el insert.
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ObtainToken verifica username/password y devuelve el token del usuario.
// La emisión es idempotente: el primer login crea el token, los siguientes
// devuelven exactamente el mismo valor. Username desconocido, password
// incorrecto y cuenta inactiva producen el mismo error, sin revelar cuál
// campo falló. El bool indica si el token se creó en esta llamada.
func (uc *AuthUseCase) ObtainToken(in dto.ObtainTokenRequest) (*dto.TokenResponse, bool, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, false, err
	}
	if user == nil {
		return nil, false, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, false, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, false, domain.ErrInvalidCredentials
	}
	tok, created, err := uc.tokens.GetOrCreate(user.ID, token.NewKey())
	if err != nil {
		return nil, false, err
	}
	return &dto.TokenResponse{Token: tok.Key, UserID: user.ID, Email: user.Email}, created, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
