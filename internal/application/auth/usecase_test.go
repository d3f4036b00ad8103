package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-admin-api/internal/application/auth"
	"github.com/tu-usuario/tienda-admin-api/internal/application/dto"
	"github.com/tu-usuario/tienda-admin-api/internal/domain"
	"github.com/tu-usuario/tienda-admin-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-admin-api/internal/infrastructure/memory"
	"github.com/tu-usuario/tienda-admin-api/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *memory.UserRepository) {
	t.Helper()
	repo := memory.NewUserRepository()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "tienda-admin-api",
	})
	return uc, repo
}

func seedUser(t *testing.T, repo *memory.UserRepository, enabled bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave123"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FullName:     "Ana López",
		Username:     "analopez1234",
		Email:        "ana@tienda.local",
		PasswordHash: string(hash),
		Roles:        []string{entity.RoleAdmin},
		IsEnabled:    enabled,
		Permissions:  entity.PermissionsForRoles([]string{entity.RoleAdmin}),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(user))
	return user
}

// Un login correcto emite un JWT verificable con los claims del usuario.
func TestLogin_EmiteTokenVerificable(t *testing.T) {
	uc, repo := newAuthFixture(t)
	user := seedUser(t, repo, true)

	out, err := uc.Login(dto.LoginRequest{Identifier: "ana@tienda.local", Password: "clave123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "analopez1234", claims.Username)
	assert.Equal(t, []string{entity.RoleAdmin}, claims.Roles)
	assert.True(t, claims.ExpiresAt.After(time.Now()), "el token no debe nacer expirado")
}

// El identificador acepta indistintamente email o username.
func TestLogin_PorUsername(t *testing.T) {
	uc, repo := newAuthFixture(t)
	seedUser(t, repo, true)

	_, err := uc.Login(dto.LoginRequest{Identifier: "analopez1234", Password: "clave123"})
	assert.NoError(t, err)
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	uc, repo := newAuthFixture(t)
	seedUser(t, repo, true)

	_, err := uc.Login(dto.LoginRequest{Identifier: "ana@tienda.local", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Identifier: "nadie@tienda.local", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Un usuario deshabilitado no puede iniciar sesión aunque la contraseña sea válida.
func TestLogin_UsuarioDeshabilitado(t *testing.T) {
	uc, repo := newAuthFixture(t)
	seedUser(t, repo, false)

	_, err := uc.Login(dto.LoginRequest{Identifier: "ana@tienda.local", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CredencialesIncompletas(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Identifier: "", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Identifier: "ana@tienda.local", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un token firmado con otro secreto no pasa la verificación.
func TestParse_FirmaInvalida(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "id", "user", nil, "tienda-admin-api", 60)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}
