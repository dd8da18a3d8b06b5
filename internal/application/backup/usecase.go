package backup

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/pkg/logger"
)

// sqliteMagic cabecera de todo archivo SQLite válido.
var sqliteMagic = []byte("SQLite format 3\x00")

// BackupUseCase exporta e importa el archivo único del almacén. El respaldo
// es una copia completa del archivo, sin formato propio.
type BackupUseCase struct {
	storePath string
	log       *logger.Logger
}

// NewBackupUseCase construye el caso de uso apuntando al archivo del almacén.
func NewBackupUseCase(storePath string, log *logger.Logger) *BackupUseCase {
	return &BackupUseCase{storePath: storePath, log: log}
}

// Export copia el almacén a destPath. Escribe a un archivo temporal y hace
// rename al final, así nunca queda un respaldo a medio escribir.
func (uc *BackupUseCase) Export(destPath string) error {
	if destPath == "" {
		return fmt.Errorf("%w: falta la ruta de destino", domain.ErrInvalidInput)
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("create backup dir: %w", err)
	}
	n, err := copyViaTemp(uc.storePath, destPath)
	if err != nil {
		return err
	}
	uc.log.Info().Str("dest", destPath).Int64("bytes", n).Msg("respaldo exportado")
	return nil
}

// Import reemplaza el almacén con el respaldo srcPath. El proceso debe
// reiniciarse después: los handles abiertos siguen apuntando al contenido
// anterior.
func (uc *BackupUseCase) Import(srcPath string) error {
	if err := validateStoreFile(srcPath); err != nil {
		return err
	}
	n, err := copyViaTemp(srcPath, uc.storePath)
	if err != nil {
		return err
	}
	uc.log.Info().Str("src", srcPath).Int64("bytes", n).Msg("respaldo importado; reinicie la aplicación")
	return nil
}

// validateStoreFile verifica que el respaldo sea un archivo SQLite real antes
// de pisar el almacén vigente.
func validateStoreFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(sqliteMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		return fmt.Errorf("%w: el respaldo es ilegible o está truncado", domain.ErrInvalidInput)
	}
	if !bytes.Equal(header, sqliteMagic) {
		return fmt.Errorf("%w: el archivo no es un almacén válido", domain.ErrInvalidInput)
	}
	return nil
}

// copyViaTemp copia src sobre dest pasando por un temporal con sufijo único
// en el mismo directorio, y termina con un rename atómico.
func copyViaTemp(src, dest string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	tmp := fmt.Sprintf("%s.%s.tmp", dest, uuid.NewString())
	out, err := os.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("copy store: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("rename temp file: %w", err)
	}
	return n, nil
}
