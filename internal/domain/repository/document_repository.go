package repository

import "github.com/lreinoso/riostore/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para Document y sus
// ítems. El Document es dueño exclusivo de sus DocumentItems; el borrado en
// cascada lo orquesta el motor de documentos, no el almacén.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	CreateItem(item *entity.DocumentItem) error
	GetByID(id int64) (*entity.Document, error)
	GetItemsByDocumentID(docID int64) ([]*entity.DocumentItem, error)
	// List devuelve los documentos más recientes primero.
	List() ([]*entity.Document, error)
	DeleteItemsByDocumentID(docID int64) error
	Delete(id int64) error
	// NextNumber incrementa y devuelve el consecutivo del tipo dado. Debe
	// llamarse dentro de la misma transacción que crea el documento.
	NextNumber(docType string) (int64, error)
}
