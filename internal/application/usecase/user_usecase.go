package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-admin-api/internal/application/dto"
	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/repository"
)

// UserUseCase casos de uso de gestión de usuarios.
// Los usuarios no se eliminan: se deshabilitan (isEnabled=false).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario: deriva username del nombre completo, hashea la
// contraseña con bcrypt y asigna la tabla de permisos fija del catálogo de roles.
// ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(in.FullName) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.NewValidationError("fullName, email y password son requeridos")
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	username, err := uc.generateUsername(in.FullName)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Username:     username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Roles:        in.Roles,
		IsEnabled:    true,
		Permissions:  entity.PermissionsForRoles(in.Roles),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetAll devuelve todos los usuarios, habilitados o no.
func (uc *UserUseCase) GetAll() ([]dto.UserResponse, error) {
	users, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// GetEnabled devuelve solo los usuarios habilitados.
func (uc *UserUseCase) GetEnabled() ([]dto.UserResponse, error) {
	users, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		if u.IsEnabled {
			out = append(out, *toUserResponse(u))
		}
	}
	return out, nil
}

// GetByID devuelve un usuario habilitado. ErrUserNotFound si no existe o está deshabilitado.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsEnabled {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Update actualiza los datos de un usuario habilitado. Si cambian los roles se
// re-deriva la tabla de permisos. ErrEmailAlreadyExists si el nuevo email ya
// está en uso por otro usuario.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsEnabled {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil && *in.Email != user.Email {
		other, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Roles != nil {
		user.Roles = in.Roles
		user.Permissions = entity.PermissionsForRoles(in.Roles)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Disable deshabilita un usuario (soft delete). ErrUserNotFound si no existe
// o ya está deshabilitado.
func (uc *UserUseCase) Disable(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || !user.IsEnabled {
		return domain.ErrUserNotFound
	}
	user.IsEnabled = false
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// generateUsername deriva un username único: nombre completo en minúsculas sin
// espacios más un sufijo numérico de cuatro dígitos.
func (uc *UserUseCase) generateUsername(fullName string) (string, error) {
	base := strings.ToLower(strings.ReplaceAll(fullName, " ", ""))
	for attempts := 0; attempts < 1000; attempts++ {
		candidate := fmt.Sprintf("%s%d", base, 1000+rand.Intn(9000))
		existing, err := uc.repo.GetByIdentifier(candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no se pudo generar un username único para %q", fullName)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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
