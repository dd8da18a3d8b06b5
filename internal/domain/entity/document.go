package entity

import "github.com/shopspring/decimal"

// Tipos válidos para Document.
const (
	TypeProforma = "PROFORMA" // cotización: no afecta inventario
	TypeNota     = "NOTA"     // nota de venta: descuenta stock
)

// DateLayout es el formato de fecha de los documentos, heredado del esquema
// original (texto, no timestamp).
const DateLayout = "02/01/2006/15:04"

// Document es la cabecera de una proforma o nota de venta. Number es el
// consecutivo por tipo asignado al crear (persiste aunque se eliminen
// documentos anteriores). Total = suma de subtotales de ítems menos Discount.
type Document struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	Type           string          `gorm:"not null"` // PROFORMA, NOTA
	Number         int64           `gorm:"not null"`
	Date           string          `gorm:"not null"` // DD/MM/YYYY/HH:MM
	ClientID       int64           `gorm:"not null;index"`
	Discount       decimal.Decimal `gorm:"type:numeric"`
	Total          decimal.Decimal `gorm:"type:numeric"`
	PaymentMethod  string          ``
	AdditionalInfo string          ``
	Items          []DocumentItem  `gorm:"foreignKey:DocumentID"`
}

// TableName fija el nombre de tabla del esquema original.
func (Document) TableName() string { return "documents" }

// IsSale indica si el documento descuenta inventario.
func (d *Document) IsSale() bool { return d.Type == TypeNota }

// DocumentItem es una línea de detalle. Subtotal = Qty × UnitPrice.
type DocumentItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	DocumentID int64           `gorm:"not null;index"`
	ProductID  int64           `gorm:"not null;index"`
	Qty        int64           `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric"`
	Subtotal   decimal.Decimal `gorm:"type:numeric"`
}

// TableName fija el nombre de tabla del esquema original.
func (DocumentItem) TableName() string { return "document_items" }

// DocumentCounter lleva el consecutivo monotónico por tipo de documento.
// Reemplaza la numeración por conteo de filas del diseño original, que se
// encogía al eliminar documentos.
type DocumentCounter struct {
	Type string `gorm:"primaryKey"`
	Next int64  `gorm:"not null"`
}

// TableName fija el nombre de tabla de contadores.
func (DocumentCounter) TableName() string { return "document_counters" }
