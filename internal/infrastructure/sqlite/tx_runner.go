package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/lreinoso/riostore/internal/application/document"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

// Ensure TxRunner implements document.TxRunner.
var _ document.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción del almacén embebido.
type TxRunner struct {
	db *gorm.DB
}

// NewTxRunner construye el runner sobre el handle del almacén.
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback según el error devuelto.
func (r *TxRunner) Run(ctx context.Context, fn func(
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewDocumentRepository(tx), NewProductRepository(tx))
	})
}
