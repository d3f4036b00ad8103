package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-admin-api/internal/application/dto"
	"github.com/tu-usuario/tienda-admin-api/internal/application/usecase"
	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/infrastructure/memory"
)

func newUserFixture() (*usecase.UserUseCase, *memory.UserRepository) {
	repo := memory.NewUserRepository()
	return usecase.NewUserUseCase(repo), repo
}

func createUserRequest(fullName, email string, roles ...string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		FullName: fullName,
		Email:    email,
		Password: "secreto123",
		Roles:    roles,
	}
}

// Crear deriva el username del nombre completo, hashea la contraseña y asigna
// la tabla de permisos del catálogo de roles.
func TestCreateUser_DerivaUsernamePermisosYHash(t *testing.T) {
	uc, repo := newUserFixture()

	out, err := uc.Create(createUserRequest("Ana María López", "ana@tienda.local", entity.RoleAdmin))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Username, "anamaríalópez"),
		"username derivado del nombre sin espacios, fue %q", out.Username)
	assert.True(t, out.IsEnabled)
	assert.Equal(t, entity.Capability{Read: true, Write: true, Delete: true},
		out.Permissions[entity.ModuleUsers], "admin tiene acceso total")

	stored, err := repo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

// El rol employee solo opera ventas; roles desconocidos no otorgan nada.
func TestCreateUser_TablaDePermisosPorRol(t *testing.T) {
	uc, _ := newUserFixture()

	emp, err := uc.Create(createUserRequest("Pedro Pérez", "pedro@tienda.local", entity.RoleEmployee))
	require.NoError(t, err)
	assert.Equal(t, entity.Capability{Read: true, Write: true, Delete: false},
		emp.Permissions[entity.ModuleSales])
	assert.Equal(t, entity.Capability{}, emp.Permissions[entity.ModuleInventory])

	unknown, err := uc.Create(createUserRequest("Rol Raro", "raro@tienda.local", "auditor"))
	require.NoError(t, err)
	assert.Empty(t, unknown.Permissions)
}

func TestCreateUser_EmailDuplicado(t *testing.T) {
	uc, _ := newUserFixture()
	_, err := uc.Create(createUserRequest("Ana López", "ana@tienda.local", entity.RoleAdmin))
	require.NoError(t, err)

	_, err = uc.Create(createUserRequest("Otra Ana", "ana@tienda.local", entity.RoleEmployee))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_CamposRequeridos(t *testing.T) {
	uc, _ := newUserFixture()
	_, err := uc.Create(dto.CreateUserRequest{FullName: "Ana", Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// GetByID solo devuelve usuarios habilitados.
func TestDisableUser_DesapareceDeConsultas(t *testing.T) {
	uc, _ := newUserFixture()
	out, err := uc.Create(createUserRequest("Ana López", "ana@tienda.local", entity.RoleAdmin))
	require.NoError(t, err)

	require.NoError(t, uc.Disable(out.ID))

	_, err = uc.GetByID(out.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// Deshabilitar dos veces también es not-found.
	assert.ErrorIs(t, uc.Disable(out.ID), domain.ErrUserNotFound)

	all, err := uc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1, "GetAll incluye deshabilitados")

	enabled, err := uc.GetEnabled()
	require.NoError(t, err)
	assert.Empty(t, enabled, "GetEnabled los excluye")
}

func TestUpdateUser_EmailEnUsoPorOtro(t *testing.T) {
	uc, _ := newUserFixture()
	_, err := uc.Create(createUserRequest("Ana López", "ana@tienda.local", entity.RoleAdmin))
	require.NoError(t, err)
	other, err := uc.Create(createUserRequest("Pedro Pérez", "pedro@tienda.local", entity.RoleEmployee))
	require.NoError(t, err)

	taken := "ana@tienda.local"
	_, err = uc.Update(other.ID, dto.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Cambiar roles re-deriva la tabla de permisos.
func TestUpdateUser_CambioDeRolRederivaPermisos(t *testing.T) {
	uc, _ := newUserFixture()
	out, err := uc.Create(createUserRequest("Pedro Pérez", "pedro@tienda.local", entity.RoleEmployee))
	require.NoError(t, err)

	updated, err := uc.Update(out.ID, dto.UpdateUserRequest{Roles: []string{entity.RoleAdmin}})
	require.NoError(t, err)
	assert.Equal(t, entity.Capability{Read: true, Write: true, Delete: true},
		updated.Permissions[entity.ModuleInventory])
}
