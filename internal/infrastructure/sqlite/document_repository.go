package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentRepository sobre el almacén
// embebido (usable con el handle principal o una tx).
type DocumentRepo struct {
	db *gorm.DB
}

// NewDocumentRepository construye el adaptador de persistencia para
// documentos.
func NewDocumentRepository(db *gorm.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Create persiste la cabecera del documento. Los ítems se insertan aparte vía
// CreateItem, dentro de la misma tx.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	if err := r.db.Omit(clause.Associations).Create(doc).Error; err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de detalle.
func (r *DocumentRepo) CreateItem(item *entity.DocumentItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("insert document item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un documento por ID. Devuelve nil sin error
// si no existe.
func (r *DocumentRepo) GetByID(id int64) (*entity.Document, error) {
	var d entity.Document
	if err := r.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// GetItemsByDocumentID devuelve las líneas de detalle de un documento.
func (r *DocumentRepo) GetItemsByDocumentID(docID int64) ([]*entity.DocumentItem, error) {
	var items []*entity.DocumentItem
	err := r.db.Where("document_id = ?", docID).Order("id").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("get document items: %w", err)
	}
	return items, nil
}

// List devuelve todas las cabeceras, más recientes primero.
func (r *DocumentRepo) List() ([]*entity.Document, error) {
	var list []*entity.Document
	if err := r.db.Order("id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return list, nil
}

// DeleteItemsByDocumentID borra todas las líneas de un documento.
func (r *DocumentRepo) DeleteItemsByDocumentID(docID int64) error {
	err := r.db.Where("document_id = ?", docID).Delete(&entity.DocumentItem{}).Error
	if err != nil {
		return fmt.Errorf("delete document items: %w", err)
	}
	return nil
}

// Delete borra la cabecera de un documento.
func (r *DocumentRepo) Delete(id int64) error {
	if err := r.db.Delete(&entity.Document{}, id).Error; err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// NextNumber incrementa y devuelve el consecutivo persistido del tipo dado.
// Debe ejecutarse dentro de la tx que crea el documento: si esta hace
// rollback, el consecutivo tampoco avanza.
func (r *DocumentRepo) NextNumber(docType string) (int64, error) {
	err := r.db.Exec(
		`INSERT INTO document_counters (type, next) VALUES (?, 1) ON CONFLICT(type) DO NOTHING`,
		docType,
	).Error
	if err != nil {
		return 0, fmt.Errorf("seed document counter: %w", err)
	}
	var n int64
	err = r.db.Raw(
		`UPDATE document_counters SET next = next + 1 WHERE type = ? RETURNING next - 1`,
		docType,
	).Scan(&n).Error
	if err != nil {
		return 0, fmt.Errorf("next document number: %w", err)
	}
	return n, nil
}
