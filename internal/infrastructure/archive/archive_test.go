package archive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/infrastructure/archive"
)

func TestArchiver_SaveYFind(t *testing.T) {
	dir := t.TempDir()
	a := archive.New(dir)

	require.NoError(t, a.Save(entity.TypeNota, 7, []byte("%PDF fake")))

	found, err := a.Find(entity.TypeNota, 7)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "NOTA_7.pdf"), found)
}

func TestArchiver_FindNombreHistorico(t *testing.T) {
	dir := t.TempDir()
	a := archive.New(dir)

	// Copia vieja nombrada con el ID del documento en seis dígitos.
	legacy := filepath.Join(dir, "NOTA_000007.pdf")
	require.NoError(t, os.WriteFile(legacy, []byte("%PDF fake"), 0o644))

	found, err := a.Find(entity.TypeNota, 7)
	require.NoError(t, err)
	assert.Equal(t, legacy, found, "debe encontrar la convención histórica")
}

func TestArchiver_FindAusente(t *testing.T) {
	a := archive.New(t.TempDir())

	found, err := a.Find(entity.TypeNota, 1)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestArchiver_RemoveAmbasConvenciones(t *testing.T) {
	dir := t.TempDir()
	a := archive.New(dir)

	require.NoError(t, a.Save(entity.TypeNota, 7, []byte("%PDF fake")))
	legacy := filepath.Join(dir, "NOTA_000007.pdf")
	require.NoError(t, os.WriteFile(legacy, []byte("%PDF fake"), 0o644))

	require.NoError(t, a.Remove(entity.TypeNota, 7))

	_, err := os.Stat(legacy)
	assert.True(t, os.IsNotExist(err), "la copia histórica también se borra")
	found, err := a.Find(entity.TypeNota, 7)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestArchiver_RemoveIdempotente(t *testing.T) {
	a := archive.New(t.TempDir())

	// Sin copia archivada: no es error.
	assert.NoError(t, a.Remove(entity.TypeNota, 42))
}
