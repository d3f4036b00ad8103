package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-admin-api/internal/application/dto"
	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/repository"
	"github.com/tu-usuario/tienda-admin-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login contra el repositorio de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica identificador (email o username) y contraseña contra el hash
// bcrypt, exige que el usuario esté habilitado y emite un JWT firmado.
// Credenciales incompletas → ErrInvalidInput; inválidas o usuario
// deshabilitado → ErrUnauthorized (sin distinguir el motivo en la respuesta).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Identifier == "" || in.Password == "" {
		return nil, domain.NewValidationError("se deben proporcionar el identificador y la contraseña")
	}
	user, err := uc.userRepo.GetByIdentifier(in.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsEnabled {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Username:    u.Username,
		Email:       u.Email,
		Roles:       u.Roles,
		IsEnabled:   u.IsEnabled,
		Permissions: u.Permissions,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
