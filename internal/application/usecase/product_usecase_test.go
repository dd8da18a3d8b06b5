package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/application/usecase"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/infrastructure/sqlite"
	"github.com/lreinoso/riostore/pkg/logger"
)

func newProductUseCase(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	store := newStore(t)
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return usecase.NewProductUseCase(sqlite.NewProductRepository(store.DB), log)
}

func createProduct(t *testing.T, uc *usecase.ProductUseCase, name string, stock int64) *dto.ProductResponse {
	t.Helper()
	p, err := uc.Create(dto.CreateProductRequest{
		Name:      name,
		Category:  "Repuestos",
		CostPrice: decimal.NewFromFloat(5.50),
		SellPrice: decimal.NewFromFloat(10.00),
		Type:      entity.TypeProducto,
		Stock:     stock,
	})
	require.NoError(t, err)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Producto(t *testing.T) {
	uc := newProductUseCase(t)
	p := createProduct(t, uc, "Pantalla LCD", 10)

	assert.NotZero(t, p.ID)
	assert.Equal(t, "Repuestos", p.Category)
	assert.True(t, p.Margin.Equal(decimal.NewFromFloat(4.50)), "margen = venta - costo")
}

func TestProductCreate_ServicioForzadoACero(t *testing.T) {
	uc := newProductUseCase(t)

	// Aunque la entrada traiga stock, costo y categoría, un servicio los anula.
	p, err := uc.Create(dto.CreateProductRequest{
		Name:      "Mantenimiento de PC",
		Category:  "Servicios",
		CostPrice: decimal.NewFromFloat(3.00),
		SellPrice: decimal.NewFromFloat(15.00),
		Type:      entity.TypeServicio,
		Stock:     7,
	})
	require.NoError(t, err)
	assert.Zero(t, p.Stock, "un servicio no maneja stock")
	assert.True(t, p.CostPrice.IsZero(), "un servicio no tiene costo")
	assert.Empty(t, p.Category, "un servicio no tiene categoría")
	assert.True(t, p.MarginPct.Equal(decimal.NewFromInt(100)), "el margen de un servicio es 100%")
}

func TestProductCreate_TipoInvalido(t *testing.T) {
	uc := newProductUseCase(t)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:      "Cosa",
		SellPrice: decimal.NewFromInt(1),
		Type:      "Insumo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_BajarStockRequiereAdmin(t *testing.T) {
	uc := newProductUseCase(t)
	p := createProduct(t, uc, "Teclado", 10)

	in := dto.UpdateProductRequest{
		Name:      p.Name,
		Category:  p.Category,
		CostPrice: p.CostPrice,
		SellPrice: p.SellPrice,
		Type:      p.Type,
		Stock:     4,
	}
	_, err := uc.Update(empleado, p.ID, in)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un empleado no puede bajar stock al editar")

	updated, err := uc.Update(admin, p.ID, in)
	require.NoError(t, err)
	assert.EqualValues(t, 4, updated.Stock)
}

func TestProductUpdate_SubirStockNoRequiereAdmin(t *testing.T) {
	uc := newProductUseCase(t)
	p := createProduct(t, uc, "Mouse", 3)

	updated, err := uc.Update(empleado, p.ID, dto.UpdateProductRequest{
		Name:      p.Name,
		Category:  p.Category,
		CostPrice: p.CostPrice,
		SellPrice: p.SellPrice,
		Type:      p.Type,
		Stock:     8,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 8, updated.Stock)
}

func TestProductAdjustStock_EgresoRequiereAdmin(t *testing.T) {
	uc := newProductUseCase(t)
	p := createProduct(t, uc, "Cargador", 5)

	_, err := uc.AdjustStock(empleado, dto.AdjustStockRequest{ProductID: p.ID, Delta: -2})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := uc.AdjustStock(admin, dto.AdjustStockRequest{ProductID: p.ID, Delta: -2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, updated.Stock)
}

func TestProductAdjustStock_IngresoAbiertoATodos(t *testing.T) {
	uc := newProductUseCase(t)
	p := createProduct(t, uc, "Cable HDMI", 5)

	updated, err := uc.AdjustStock(empleado, dto.AdjustStockRequest{ProductID: p.ID, Delta: 4})
	require.NoError(t, err)
	assert.EqualValues(t, 9, updated.Stock)
}

func TestProductAdjustStock_PuedeQuedarNegativo(t *testing.T) {
	uc := newProductUseCase(t)
	p := createProduct(t, uc, "Batería", 1)

	// Se permite quedar en negativo (se registra advertencia, no se bloquea).
	updated, err := uc.AdjustStock(admin, dto.AdjustStockRequest{ProductID: p.ID, Delta: -3})
	require.NoError(t, err)
	assert.EqualValues(t, -2, updated.Stock)
}

func TestProductAdjustStock_ServicioRechazado(t *testing.T) {
	uc := newProductUseCase(t)
	svc, err := uc.Create(dto.CreateProductRequest{
		Name:      "Formateo",
		SellPrice: decimal.NewFromInt(20),
		Type:      entity.TypeServicio,
	})
	require.NoError(t, err)

	_, err = uc.AdjustStock(admin, dto.AdjustStockRequest{ProductID: svc.ID, Delta: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductSearch_PorNombreOCodigo(t *testing.T) {
	uc := newProductUseCase(t)
	_, err := uc.Create(dto.CreateProductRequest{
		Code:      "LCD-015",
		Name:      "Pantalla LCD 15",
		SellPrice: decimal.NewFromInt(80),
		Type:      entity.TypeProducto,
		Stock:     2,
	})
	require.NoError(t, err)
	createProduct(t, uc, "Teclado mecánico", 4)

	byName, err := uc.Search("pantalla", "")
	require.NoError(t, err)
	assert.Len(t, byName, 1)

	byCode, err := uc.Search("lcd-0", "")
	require.NoError(t, err)
	assert.Len(t, byCode, 1)

	none, err := uc.Search("inexistente", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductCategories_RenombrarYEliminar(t *testing.T) {
	uc := newProductUseCase(t)
	p1 := createProduct(t, uc, "Pantalla", 1)
	createProduct(t, uc, "Teclado", 1)

	cats, err := uc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Repuestos"}, cats)

	require.NoError(t, uc.RenameCategory("Repuestos", "Partes"))
	cats, err = uc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Partes"}, cats)

	// Renombrar hacia una categoría que ya existe se rechaza.
	_, err = uc.Create(dto.CreateProductRequest{
		Name:      "Cable USB",
		Category:  "Cables",
		SellPrice: decimal.NewFromInt(3),
		Type:      entity.TypeProducto,
		Stock:     1,
	})
	require.NoError(t, err)
	assert.ErrorIs(t, uc.RenameCategory("Partes", "Cables"), domain.ErrDuplicate)

	// Eliminar la categoría deja los productos sin categoría pero intactos.
	require.NoError(t, uc.DeleteCategory("Partes"))
	cats, err = uc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Cables"}, cats)

	p, err := uc.GetByID(p1.ID)
	require.NoError(t, err)
	assert.Empty(t, p.Category)
	assert.Equal(t, "Pantalla", p.Name)
}

func TestProductStockStatus(t *testing.T) {
	uc := newProductUseCase(t)

	agotado := createProduct(t, uc, "Agotado", 0)
	bajo := createProduct(t, uc, "Bajo", 1)
	ok := createProduct(t, uc, "Normal", 5)

	assert.Equal(t, entity.StockAgotado, agotado.StockStatus)
	assert.Equal(t, entity.StockBajo, bajo.StockStatus)
	assert.Equal(t, entity.StockOK, ok.StockStatus)
}
