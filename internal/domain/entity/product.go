package entity

import "github.com/shopspring/decimal"

// Tipos válidos para Product.
const (
	TypeProducto = "Producto" // bien físico con stock
	TypeServicio = "Servicio" // servicio, siempre stock = 0
)

// Estados de stock para listados. Los servicios quedan fuera de estos
// umbrales.
const (
	StockOK       = ""
	StockBajo     = "low_stock"    // queda exactamente 1 unidad
	StockAgotado  = "out_of_stock" // stock en 0
	lowStockLimit = 1
)

// Product representa un producto o servicio del catálogo. Code es opcional y
// Category es texto libre (posiblemente vacío). Stock solo tiene sentido para
// el tipo Producto.
type Product struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Code      *string         `gorm:"index"`
	Name      string          `gorm:"not null"`
	Category  string          ``
	CostPrice decimal.Decimal `gorm:"type:numeric"`
	SellPrice decimal.Decimal `gorm:"type:numeric"`
	Type      string          `gorm:"not null"` // Producto, Servicio
	Stock     int64           `gorm:"not null;default:0"`
}

// TableName fija el nombre de tabla del esquema original.
func (Product) TableName() string { return "products" }

// IsService indica si el producto es de tipo Servicio.
func (p *Product) IsService() bool { return p.Type == TypeServicio }

// Margin devuelve la ganancia absoluta por unidad (venta menos costo).
func (p *Product) Margin() decimal.Decimal {
	return p.SellPrice.Sub(p.CostPrice)
}

// MarginPct devuelve el porcentaje de ganancia sobre el costo. Para servicios
// es 100 por convención del listado original; con costo 0 devuelve 0.
func (p *Product) MarginPct() decimal.Decimal {
	if p.IsService() {
		return decimal.NewFromInt(100)
	}
	if p.CostPrice.IsZero() {
		return decimal.Zero
	}
	return p.Margin().Div(p.CostPrice).Mul(decimal.NewFromInt(100))
}

// StockStatus clasifica el stock para el coloreado de listados. Los servicios
// siempre devuelven StockOK.
func (p *Product) StockStatus() string {
	if p.IsService() {
		return StockOK
	}
	switch {
	case p.Stock == 0:
		return StockAgotado
	case p.Stock <= lowStockLimit:
		return StockBajo
	default:
		return StockOK
	}
}
