package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/internal/domain/repository"
	"github.com/misikss/nova-salud-api/pkg/config"
	"github.com/misikss/nova-salud-api/pkg/jwt"
)

// AuthUseCase casos de uso de autenticación: login, refresco de tokens y
// perfil del usuario autenticado.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Apellido:  u.Apellido,
		Email:     u.Email,
		Rol:       u.Rol,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// tokenPair genera el par access+refresh para el usuario. Cada token se firma
// con su propio secreto y expiración.
func (uc *AuthUseCase) tokenPair(u *entity.User) (access, refresh string, err error) {
	access, err = jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.Generate(uc.jwtCfg.RefreshSecret, u.ID, u.Email, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpiration)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Login verifica email/password y devuelve el par de tokens más el usuario.
// Un email inexistente y una contraseña incorrecta responden el mismo error
// para no revelar qué cuentas existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Activo {
		return nil, domain.ErrInactiveUser
	}
	access, refresh, err := uc.tokenPair(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success:      true,
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      toUserResponse(user),
	}, nil
}

// Refresh valida el refresh token contra su secreto y, si el usuario sigue
// activo, emite un par nuevo (rotación: el refresh anterior queda reemplazado).
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.LoginResponse, error) {
	claims, err := jwt.Parse(uc.jwtCfg.RefreshSecret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Activo {
		return nil, domain.ErrInactiveUser
	}
	access, refresh, err := uc.tokenPair(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success:      true,
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      toUserResponse(user),
	}, nil
}

// Profile devuelve los datos del usuario autenticado.
func (uc *AuthUseCase) Profile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}
