package dto

import (
	"time"

	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario.
type CreateUserRequest struct {
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	FullName *string  `json:"fullName"`
	Email    *string  `json:"email"`
	Password *string  `json:"password"`
	Roles    []string `json:"roles"`
}

// UserResponse salida de un usuario. Nunca incluye el hash de contraseña.
type UserResponse struct {
	ID          string             `json:"id"`
	FullName    string             `json:"fullName"`
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	Roles       []string           `json:"roles"`
	IsEnabled   bool               `json:"isEnabled"`
	Permissions entity.Permissions `json:"permissions"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// LoginRequest credenciales de inicio de sesión. Identifier acepta email o username.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse token JWT firmado más los datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
