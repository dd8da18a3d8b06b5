package sqlite

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

var userOrderColumns = map[string]string{
	"":          "id",
	"id":        "id",
	"full_name": "full_name",
	"username":  "username",
	"role":      "role",
}

// UserRepo implementación del puerto UserRepository sobre el almacén embebido.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve nil sin error si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	var u entity.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetByUsername obtiene un usuario por nombre de usuario. Devuelve nil sin
// error si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario existente.
func (r *UserRepo) Update(user *entity.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista todos los usuarios ordenados por la columna pedida.
func (r *UserRepo) List(orderBy string) ([]*entity.User, error) {
	var list []*entity.User
	err := r.db.Order(orderColumn(userOrderColumns, orderBy)).Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id int64) error {
	if err := r.db.Delete(&entity.User{}, id).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Count devuelve la cantidad total de usuarios registrados.
func (r *UserRepo) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&entity.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
