package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
)

// GeneratePDF renderiza el documento y lo escribe en destDir con el nombre
// sugerido. Si la copia de archivo se perdió, la repone.
//
// Retorna la ruta del PDF escrito.
func (uc *DocumentUseCase) GeneratePDF(id int64, destDir string) (string, error) {
	if uc.generator == nil {
		return "", fmt.Errorf("%w: no hay generador de PDF configurado", domain.ErrInvalidInput)
	}
	resp, err := uc.GetByID(id)
	if err != nil {
		return "", err
	}
	data, err := uc.generator.Render(resp)
	if err != nil {
		return "", fmt.Errorf("renderizar documento %d: %w", id, err)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create dest dir: %w", err)
	}
	path := filepath.Join(destDir, SuggestedFilename(resp))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	if uc.archiver != nil {
		if found, err := uc.archiver.Find(resp.Type, resp.ID); err == nil && found == "" {
			if err := uc.archiver.Save(resp.Type, resp.ID, data); err != nil {
				uc.log.Warn().Err(err).Int64("id", id).Msg("no se pudo reponer la copia de archivo")
			}
		}
	}
	return path, nil
}

// SuggestedFilename arma el nombre de descarga: prefijo por tipo, cliente y
// fecha con separadores seguros para el sistema de archivos.
func SuggestedFilename(doc *dto.DocumentResponse) string {
	prefix := "Proforma"
	if doc.Type == entity.TypeNota {
		prefix = "NotaVenta"
	}
	date := strings.NewReplacer("/", "-", ":", "-").Replace(doc.Date)
	return fmt.Sprintf("%s_%s_%s.pdf", prefix, sanitizeFilePart(doc.ClientName), date)
}

// sanitizeFilePart reemplaza los caracteres problemáticos de un fragmento de
// nombre de archivo.
func sanitizeFilePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return "cliente"
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ':
			b.WriteRune('_')
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
