package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lreinoso/riostore/internal/application/document"
)

// Ensure Archiver implements document.Archiver.
var _ document.Archiver = (*Archiver)(nil)

// Archiver guarda las copias PDF de los documentos emitidos en un directorio
// fijo. Conviven dos convenciones de nombre: {TIPO}_{id}.pdf (actual) y
// {TIPO}_{NNNNNN}.pdf con el mismo id en seis dígitos (histórica), así que
// toda búsqueda o borrado revisa ambas.
type Archiver struct {
	dir string
}

// New construye el archivador sobre dir.
func New(dir string) *Archiver {
	return &Archiver{dir: dir}
}

// Save escribe la copia con el nombre actual {TIPO}_{id}.pdf.
func (a *Archiver) Save(docType string, id int64, data []byte) error {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	path := filepath.Join(a.dir, fmt.Sprintf("%s_%d.pdf", docType, id))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write archive copy: %w", err)
	}
	return nil
}

// Find devuelve la ruta de la copia archivada probando ambas convenciones de
// nombre, o "" si no existe ninguna.
func (a *Archiver) Find(docType string, id int64) (string, error) {
	for _, path := range a.candidates(docType, id) {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat archive copy: %w", err)
		}
	}
	return "", nil
}

// Remove borra las copias archivadas en ambas convenciones de nombre. La
// ausencia del archivo no es error.
func (a *Archiver) Remove(docType string, id int64) error {
	for _, path := range a.candidates(docType, id) {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove archive copy: %w", err)
		}
	}
	return nil
}

func (a *Archiver) candidates(docType string, id int64) []string {
	return []string{
		filepath.Join(a.dir, fmt.Sprintf("%s_%d.pdf", docType, id)),
		filepath.Join(a.dir, fmt.Sprintf("%s_%06d.pdf", docType, id)),
	}
}
