package repository

import "github.com/tu-usuario/tienda-admin-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Los getters devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByIdentifier busca por email o por username (para login).
	GetByIdentifier(identifier string) (*entity.User, error)
	Update(user *entity.User) error
	// ListAll devuelve todos los usuarios, habilitados o no, en orden de creación.
	ListAll() ([]*entity.User, error)
}
