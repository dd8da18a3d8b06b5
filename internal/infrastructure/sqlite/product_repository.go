package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productOrderColumns = map[string]string{
	"":           "id",
	"id":         "id",
	"code":       "code",
	"name":       "name",
	"category":   "category",
	"cost_price": "cost_price",
	"sell_price": "sell_price",
	"type":       "type",
	"stock":      "stock",
}

// ProductRepo implementación del puerto ProductRepository sobre el almacén
// embebido (usable con el handle principal o una tx).
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil sin error si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente (reemplazo completo de la fila).
func (r *ProductRepo) Update(product *entity.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	if err := r.db.Delete(&entity.Product{}, id).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List lista todos los productos ordenados por la columna pedida.
func (r *ProductRepo) List(orderBy string) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.db.Order(orderColumn(productOrderColumns, orderBy)).Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// Search busca productos por substring (case-insensitive) en nombre o código.
func (r *ProductRepo) Search(term, orderBy string) ([]*entity.Product, error) {
	pattern := likePattern(term)
	var list []*entity.Product
	err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(IFNULL(code, '')) LIKE ?", pattern, pattern).
		Order(orderColumn(productOrderColumns, orderBy)).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return list, nil
}

// ListByCategory lista los productos de una categoría exacta.
func (r *ProductRepo) ListByCategory(category, orderBy string) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.db.
		Where("category = ?", category).
		Order(orderColumn(productOrderColumns, orderBy)).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return list, nil
}

// Categories devuelve las categorías distintas no vacías, ordenadas.
func (r *ProductRepo) Categories() ([]string, error) {
	var cats []string
	err := r.db.Model(&entity.Product{}).
		Distinct().
		Where("category <> ''").
		Order("category").
		Pluck("category", &cats).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// RenameCategory renombra una categoría en todos los productos que la tienen.
func (r *ProductRepo) RenameCategory(oldName, newName string) error {
	err := r.db.Model(&entity.Product{}).
		Where("category = ?", oldName).
		Update("category", newName).Error
	if err != nil {
		return fmt.Errorf("rename category: %w", err)
	}
	return nil
}

// ClearCategory deja sin categoría a todos los productos de la categoría dada.
func (r *ProductRepo) ClearCategory(category string) error {
	err := r.db.Model(&entity.Product{}).
		Where("category = ?", category).
		Update("category", "").Error
	if err != nil {
		return fmt.Errorf("clear category: %w", err)
	}
	return nil
}

// AdjustStock suma delta (puede ser negativo) al stock del producto en una
// sola sentencia, sin read-modify-write.
func (r *ProductRepo) AdjustStock(id int64, delta int64) error {
	res := r.db.Model(&entity.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return fmt.Errorf("adjust stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
