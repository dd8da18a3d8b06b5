package dto

import "github.com/shopspring/decimal"

// DocumentItemRequest una línea de detalle al crear un documento.
type DocumentItemRequest struct {
	ProductID int64
	Qty       int64
	UnitPrice decimal.Decimal
}

// CreateDocumentRequest entrada para crear una proforma o nota de venta.
// Total es el total calculado por el formulario; el motor lo recalcula desde
// los ítems y el descuento y rechaza la creación si no coincide.
type CreateDocumentRequest struct {
	Type           string // PROFORMA, NOTA
	Date           string // DD/MM/YYYY/HH:MM; vacío usa la hora actual
	ClientID       int64
	Discount       decimal.Decimal
	Total          decimal.Decimal
	PaymentMethod  string
	AdditionalInfo string
	Items          []DocumentItemRequest
}

// DocumentFilter filtros del listado de documentos (los del navegador
// original: tipo, cliente y mes).
type DocumentFilter struct {
	Type     string // vacío = todos
	ClientID int64  // 0 = todos
	Month    int    // 1-12; 0 = todos
}

// DocumentItemResponse línea de detalle enriquecida con datos del producto.
type DocumentItemResponse struct {
	ID          int64
	ProductID   int64
	ProductCode string
	ProductName string
	Qty         int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// DocumentResponse salida de un documento con su detalle.
type DocumentResponse struct {
	ID             int64
	Type           string
	Number         int64
	Date           string
	ClientID       int64
	ClientName     string
	ClientCedula   string
	Discount       decimal.Decimal
	Total          decimal.Decimal
	PaymentMethod  string
	AdditionalInfo string
	Items          []DocumentItemResponse
}
