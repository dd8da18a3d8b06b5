package backup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lreinoso/riostore/internal/application/backup"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/infrastructure/sqlite"
	"github.com/lreinoso/riostore/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// newStoreOnDisk abre un almacén real en disco y deja un usuario adentro para
// poder verificar el round-trip.
func newStoreOnDisk(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, sqlite.NewUserRepository(store.DB).Create(&entity.User{
		FullName:     "Luis Reinoso",
		Username:     "admin",
		PasswordHash: "x",
		Role:         entity.RoleAdministrador,
	}))
	return store
}

func TestExport_CopiaCompleta(t *testing.T) {
	store := newStoreOnDisk(t)
	uc := backup.NewBackupUseCase(store.Path, testLogger())

	dest := filepath.Join(t.TempDir(), "respaldo.db")
	require.NoError(t, uc.Export(dest))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// El respaldo es una copia byte a byte: debe llevar la cabecera SQLite.
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("SQLite format 3\x00"), data[:16])
}

func TestExport_SinTemporalesResiduales(t *testing.T) {
	store := newStoreOnDisk(t)
	uc := backup.NewBackupUseCase(store.Path, testLogger())

	destDir := t.TempDir()
	require.NoError(t, uc.Export(filepath.Join(destDir, "respaldo.db")))

	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "solo debe quedar el respaldo final, sin archivos .tmp")
	assert.Equal(t, "respaldo.db", entries[0].Name())
}

func TestImportExport_RoundTrip(t *testing.T) {
	store := newStoreOnDisk(t)
	uc := backup.NewBackupUseCase(store.Path, testLogger())

	dest := filepath.Join(t.TempDir(), "respaldo.db")
	require.NoError(t, uc.Export(dest))
	require.NoError(t, store.Close())

	// Restaurar sobre el mismo almacén y reabrir (simula el reinicio).
	require.NoError(t, uc.Import(dest))
	reopened, err := sqlite.Open(filepath.Dir(store.Path))
	require.NoError(t, err)
	defer reopened.Close()

	user, err := sqlite.NewUserRepository(reopened.DB).GetByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, user, "los datos del respaldo deben sobrevivir el round-trip")
	assert.Equal(t, "Luis Reinoso", user.FullName)
}

func TestImport_RechazaArchivoInvalido(t *testing.T) {
	store := newStoreOnDisk(t)
	uc := backup.NewBackupUseCase(store.Path, testLogger())

	garbage := filepath.Join(t.TempDir(), "nota.txt")
	require.NoError(t, os.WriteFile(garbage, []byte("esto no es un almacén"), 0o644))

	err := uc.Import(garbage)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un archivo ajeno no debe pisar el almacén")
}

func TestImport_RechazaInexistente(t *testing.T) {
	store := newStoreOnDisk(t)
	uc := backup.NewBackupUseCase(store.Path, testLogger())

	err := uc.Import(filepath.Join(t.TempDir(), "no-existe.db"))
	assert.Error(t, err)
}
