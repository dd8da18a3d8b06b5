package usecase

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios. Toda la administración de
// usuarios es exclusiva del rol Administrador.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario con la contraseña hasheada con bcrypt.
func (uc *UserUseCase) Create(actor dto.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := validateUserInput(in.FullName, in.Username, in.Role); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: la contraseña es obligatoria", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		FullName:     strings.TrimSpace(in.FullName),
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(actor dto.Actor, id int64) (*dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Update actualiza un usuario. Password nil conserva el hash actual.
func (uc *UserUseCase) Update(actor dto.Actor, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := validateUserInput(in.FullName, in.Username, in.Role); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.FullName = strings.TrimSpace(in.FullName)
	user.Username = strings.TrimSpace(in.Username)
	user.Role = in.Role
	if in.Password != nil {
		if *in.Password == "" {
			return nil, fmt.Errorf("%w: la contraseña no puede ser vacía", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. Un usuario no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(actor dto.Actor, id int64) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if actor.ID == id {
		return domain.ErrSelfDelete
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista todos los usuarios.
func (uc *UserUseCase) List(actor dto.Actor, orderBy string) ([]*dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	users, err := uc.repo.List(orderBy)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func validateUserInput(fullName, username, role string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("%w: el nombre completo es obligatorio", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: el nombre de usuario es obligatorio", domain.ErrInvalidInput)
	}
	if role != entity.RoleAdministrador && role != entity.RoleEmpleado {
		return fmt.Errorf("%w: rol desconocido %q", domain.ErrInvalidInput, role)
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Username: u.Username,
		Role:     u.Role,
	}
}
