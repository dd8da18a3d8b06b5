package repository

import "github.com/lreinoso/riostore/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	List(orderBy string) ([]*entity.Product, error)
	// Search hace substring match (case-insensitive) sobre name y code.
	Search(term, orderBy string) ([]*entity.Product, error)
	ListByCategory(category, orderBy string) ([]*entity.Product, error)
	Categories() ([]string, error)
	RenameCategory(oldName, newName string) error
	ClearCategory(category string) error
	// AdjustStock suma delta (puede ser negativo) al stock del producto.
	AdjustStock(id int64, delta int64) error
}
