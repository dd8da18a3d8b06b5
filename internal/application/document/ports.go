package document

import (
	"context"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del almacén, con repos atados
// a la tx. El motor lo usa para que numeración, cabecera, ítems y descuento de
// stock queden en una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// PDFGenerator renderiza un documento como PDF.
type PDFGenerator interface {
	Render(doc *dto.DocumentResponse) ([]byte, error)
}

// Archiver persiste las copias PDF de los documentos emitidos.
type Archiver interface {
	// Save guarda la copia de archivo del documento emitido.
	Save(docType string, id int64, data []byte) error
	// Find devuelve la ruta de la copia archivada, o "" si no existe.
	Find(docType string, id int64) (string, error)
	// Remove borra la copia archivada si existe; la ausencia no es error.
	Remove(docType string, id int64) error
}
