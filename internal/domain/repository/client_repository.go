package repository

import "github.com/lreinoso/riostore/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int64) (*entity.Client, error)
	// GetByCedula devuelve nil sin error si no hay cliente con esa cédula.
	GetByCedula(cedula string) (*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id int64) error
	List(orderBy string) ([]*entity.Client, error)
	// Search hace substring match (case-insensitive) sobre full_name y cedula.
	Search(term, orderBy string) ([]*entity.Client, error)
}
