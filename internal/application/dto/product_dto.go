package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Para tipo Servicio,
// el caso de uso fuerza stock = 0, costo = 0 y categoría vacía.
type CreateProductRequest struct {
	Code      string // opcional; vacío se guarda como NULL
	Name      string
	Category  string
	CostPrice decimal.Decimal
	SellPrice decimal.Decimal
	Type      string // Producto, Servicio
	Stock     int64
}

// UpdateProductRequest entrada para actualizar un producto (reemplazo
// completo, como el formulario original).
type UpdateProductRequest struct {
	Code      string
	Name      string
	Category  string
	CostPrice decimal.Decimal
	SellPrice decimal.Decimal
	Type      string
	Stock     int64
}

// AdjustStockRequest entrada para un ajuste manual de stock. Delta negativo
// (egreso) requiere rol administrador.
type AdjustStockRequest struct {
	ProductID int64
	Delta     int64
}

// ProductResponse salida de un producto, con los campos derivados que los
// listados muestran.
type ProductResponse struct {
	ID          int64
	Code        string
	Name        string
	Category    string
	CostPrice   decimal.Decimal
	SellPrice   decimal.Decimal
	Type        string
	Stock       int64
	Margin      decimal.Decimal
	MarginPct   decimal.Decimal
	StockStatus string
}
