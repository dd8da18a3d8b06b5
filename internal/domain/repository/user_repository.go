package repository

import "github.com/lreinoso/riostore/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	List(orderBy string) ([]*entity.User, error)
	Delete(id int64) error
	// Count se usa para saber si ya existe algún usuario (gate del setup inicial).
	Count() (int64, error)
}
