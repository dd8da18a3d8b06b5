package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

var clientOrderColumns = map[string]string{
	"":          "id",
	"id":        "id",
	"full_name": "full_name",
	"cedula":    "cedula",
}

// ClientRepo implementación del puerto ClientRepository sobre el almacén
// embebido.
type ClientRepo struct {
	db *gorm.DB
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(db *gorm.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	if err := r.db.Create(client).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve nil sin error si no existe.
func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	var c entity.Client
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// GetByCedula obtiene un cliente por cédula. Devuelve nil sin error si no
// existe.
func (r *ClientRepo) GetByCedula(cedula string) (*entity.Client, error) {
	var c entity.Client
	if err := r.db.Where("cedula = ?", cedula).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by cedula: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente existente.
func (r *ClientRepo) Update(client *entity.Client) error {
	if err := r.db.Save(client).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(id int64) error {
	if err := r.db.Delete(&entity.Client{}, id).Error; err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// List lista todos los clientes ordenados por la columna pedida.
func (r *ClientRepo) List(orderBy string) ([]*entity.Client, error) {
	var list []*entity.Client
	err := r.db.Order(orderColumn(clientOrderColumns, orderBy)).Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return list, nil
}

// Search busca clientes por substring (case-insensitive) en nombre o cédula.
func (r *ClientRepo) Search(term, orderBy string) ([]*entity.Client, error) {
	pattern := likePattern(term)
	var list []*entity.Client
	err := r.db.
		Where("LOWER(full_name) LIKE ? OR LOWER(IFNULL(cedula, '')) LIKE ?", pattern, pattern).
		Order(orderColumn(clientOrderColumns, orderBy)).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	return list, nil
}
