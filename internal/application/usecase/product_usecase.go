package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/domain/repository"
	"github.com/lreinoso/riostore/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos y servicios, más el manejo
// de categorías y ajustes manuales de stock.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log}
}

// Create crea un producto o servicio. Para Servicio se fuerzan stock = 0,
// costo = 0 y categoría vacía, sin importar lo que traiga la entrada.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Code:      normalizeCode(in.Code),
		Name:      strings.TrimSpace(in.Name),
		Category:  strings.TrimSpace(in.Category),
		CostPrice: in.CostPrice,
		SellPrice: in.SellPrice,
		Type:      in.Type,
		Stock:     in.Stock,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	normalizeService(product)
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (reemplazo completo). Bajar el stock de un
// producto de tipo Producto requiere rol Administrador.
func (uc *ProductUseCase) Update(actor dto.Actor, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	updated := &entity.Product{
		ID:        product.ID,
		Code:      normalizeCode(in.Code),
		Name:      strings.TrimSpace(in.Name),
		Category:  strings.TrimSpace(in.Category),
		CostPrice: in.CostPrice,
		SellPrice: in.SellPrice,
		Type:      in.Type,
		Stock:     in.Stock,
	}
	if err := validateProduct(updated); err != nil {
		return nil, err
	}
	normalizeService(updated)
	if updated.Stock < product.Stock && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := uc.repo.Update(updated); err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista todos los productos.
func (uc *ProductUseCase) List(orderBy string) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List(orderBy)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Search busca productos por substring en nombre o código.
func (uc *ProductUseCase) Search(term, orderBy string) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.Search(term, orderBy)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByCategory lista los productos de una categoría.
func (uc *ProductUseCase) ListByCategory(category, orderBy string) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.ListByCategory(category, orderBy)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Categories devuelve las categorías existentes (no vacías).
func (uc *ProductUseCase) Categories() ([]string, error) {
	return uc.repo.Categories()
}

// RenameCategory renombra una categoría completa. El nombre nuevo no puede
// chocar con otra categoría existente.
func (uc *ProductUseCase) RenameCategory(oldName, newName string) error {
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return fmt.Errorf("%w: la categoría no puede ser vacía", domain.ErrInvalidInput)
	}
	if oldName == newName {
		return nil
	}
	existing, err := uc.repo.Categories()
	if err != nil {
		return err
	}
	for _, cat := range existing {
		if cat == newName {
			return domain.ErrDuplicate
		}
	}
	return uc.repo.RenameCategory(oldName, newName)
}

// DeleteCategory elimina una categoría dejando sus productos sin categoría.
// Los productos no se tocan más allá de ese campo.
func (uc *ProductUseCase) DeleteCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("%w: la categoría no puede ser vacía", domain.ErrInvalidInput)
	}
	return uc.repo.ClearCategory(category)
}

// AdjustStock aplica un ajuste manual de stock. Un delta negativo (egreso)
// requiere rol Administrador. El stock resultante puede quedar negativo; se
// registra una advertencia pero no se bloquea.
func (uc *ProductUseCase) AdjustStock(actor dto.Actor, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if in.Delta == 0 {
		return nil, fmt.Errorf("%w: el ajuste no puede ser cero", domain.ErrInvalidInput)
	}
	if in.Delta < 0 && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	product, err := uc.repo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.IsService() {
		return nil, fmt.Errorf("%w: los servicios no manejan stock", domain.ErrInvalidInput)
	}
	if err := uc.repo.AdjustStock(in.ProductID, in.Delta); err != nil {
		return nil, err
	}
	product, err = uc.repo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Stock < 0 {
		uc.log.Warn().
			Int64("product_id", product.ID).
			Int64("stock", product.Stock).
			Msg("stock negativo tras ajuste manual")
	}
	return toProductResponse(product), nil
}

// normalizeService fuerza los invariantes de un servicio.
func normalizeService(p *entity.Product) {
	if p.IsService() {
		p.Stock = 0
		p.CostPrice = decimal.Zero
		p.Category = ""
	}
}

func normalizeCode(code string) *string {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	return &code
}

func validateProduct(p *entity.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if p.Type != entity.TypeProducto && p.Type != entity.TypeServicio {
		return fmt.Errorf("%w: tipo desconocido %q", domain.ErrInvalidInput, p.Type)
	}
	if p.CostPrice.IsNegative() || p.SellPrice.IsNegative() {
		return fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	code := ""
	if p.Code != nil {
		code = *p.Code
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        code,
		Name:        p.Name,
		Category:    p.Category,
		CostPrice:   p.CostPrice,
		SellPrice:   p.SellPrice,
		Type:        p.Type,
		Stock:       p.Stock,
		Margin:      p.Margin(),
		MarginPct:   p.MarginPct(),
		StockStatus: p.StockStatus(),
	}
}

func toProductResponses(products []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
