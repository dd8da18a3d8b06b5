package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lreinoso/riostore/internal/application/auth"
	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newAuthUseCase arma el caso de uso sobre un almacén en memoria.
func newAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store, err := sqlite.OpenMemory()
	require.NoError(t, err, "debe abrirse el almacén en memoria")
	t.Cleanup(func() { _ = store.Close() })
	return auth.NewAuthUseCase(sqlite.NewUserRepository(store.DB))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureInitialAdmin_CreaSoloUnaVez(t *testing.T) {
	uc := newAuthUseCase(t)

	created, err := uc.EnsureInitialAdmin("Luis Reinoso", "admin", "secreta123")
	require.NoError(t, err)
	assert.True(t, created, "el primer arranque debe crear el administrador")

	created, err = uc.EnsureInitialAdmin("Otro", "otro", "otra456")
	require.NoError(t, err)
	assert.False(t, created, "con usuarios existentes no debe crear otro admin")

	has, err := uc.HasUsers()
	require.NoError(t, err)
	assert.True(t, has)
}

func TestAuthenticate_CredencialesValidas(t *testing.T) {
	uc := newAuthUseCase(t)
	_, err := uc.EnsureInitialAdmin("Luis Reinoso", "admin", "secreta123")
	require.NoError(t, err)

	user, err := uc.Authenticate("admin", "secreta123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, entity.RoleAdministrador, user.Role, "el admin inicial debe tener rol administrador")

	// El usuario autenticado es el actor de las operaciones con permisos.
	actor := dto.ActorFromUser(user)
	assert.Equal(t, user.ID, actor.ID)
	assert.True(t, actor.IsAdmin())
}

func TestAuthenticate_PasswordIncorrecta(t *testing.T) {
	uc := newAuthUseCase(t)
	_, err := uc.EnsureInitialAdmin("Luis Reinoso", "admin", "secreta123")
	require.NoError(t, err)

	_, err = uc.Authenticate("admin", "equivocada")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestAuthenticate_UsuarioInexistente(t *testing.T) {
	uc := newAuthUseCase(t)

	// Mismo sentinel que password incorrecta: el error no distingue casos.
	_, err := uc.Authenticate("fantasma", "loquesea")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}

func TestAuthenticate_EntradaVacia(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Authenticate("", "")
	assert.ErrorIs(t, err, domain.ErrCredencialesInvalidas)
}
