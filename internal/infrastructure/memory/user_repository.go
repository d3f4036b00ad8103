package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/repository"
)

// UserRepository guarda usuarios en memoria, indexados por ID.
type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.User
	order []string
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[string]*entity.User)}
}

// Create guarda una copia del usuario. El ID debe ser único.
func (r *UserRepository) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[user.ID]; exists {
		return fmt.Errorf("usuario con id %q ya existe", user.ID)
	}
	cp := cloneUser(user)
	r.byID[user.ID] = cp
	r.order = append(r.order, user.ID)
	return nil
}

// GetByID devuelve una copia del usuario, o (nil, nil) si no existe.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

// GetByEmail busca por email exacto. (nil, nil) si no hay coincidencia.
func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.byID[id].Email == email {
			return cloneUser(r.byID[id]), nil
		}
	}
	return nil, nil
}

// GetByIdentifier busca por email o username (para login). (nil, nil) si no hay coincidencia.
func (r *UserRepository) GetByIdentifier(identifier string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identifier = strings.TrimSpace(identifier)
	for _, id := range r.order {
		u := r.byID[id]
		if u.Email == identifier || u.Username == identifier {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario almacenado. ErrUserNotFound si el ID no existe.
func (r *UserRepository) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.byID[user.ID] = cloneUser(user)
	return nil
}

// ListAll devuelve todos los usuarios en orden de creación.
func (r *UserRepository) ListAll() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneUser(r.byID[id]))
	}
	return out, nil
}

// cloneUser copia el usuario incluyendo roles y permisos.
func cloneUser(u *entity.User) *entity.User {
	cp := *u
	cp.Roles = append([]string(nil), u.Roles...)
	cp.Permissions = make(entity.Permissions, len(u.Permissions))
	for k, v := range u.Permissions {
		cp.Permissions[k] = v
	}
	return &cp
}
