package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

// dummyHash se compara cuando el usuario no existe, para que Authenticate
// haga siempre una comparación bcrypt y el tiempo de respuesta no revele si
// el nombre de usuario está registrado.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("riostore"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// AuthUseCase casos de uso de autenticación: login local y alta del
// administrador inicial.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Authenticate verifica usuario/contraseña contra el almacén local. Cualquier
// fallo (usuario inexistente o contraseña incorrecta) devuelve el mismo
// ErrCredencialesInvalidas.
func (uc *AuthUseCase) Authenticate(username, password string) (*dto.UserResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrCredencialesInvalidas
	}
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrCredencialesInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrCredencialesInvalidas
	}
	return toUserResponse(user), nil
}

// HasUsers indica si ya existe algún usuario registrado.
func (uc *AuthUseCase) HasUsers() (bool, error) {
	n, err := uc.userRepo.Count()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// EnsureInitialAdmin crea el administrador inicial si el almacén está vacío.
// Devuelve true solo cuando efectivamente lo creó.
func (uc *AuthUseCase) EnsureInitialAdmin(fullName, username, password string) (bool, error) {
	exists, err := uc.HasUsers()
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, domain.ErrInvalidInput
	}
	if fullName == "" {
		fullName = username
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	admin := &entity.User{
		FullName:     fullName,
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdministrador,
	}
	if err := uc.userRepo.Create(admin); err != nil {
		return false, err
	}
	return true, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Username: u.Username,
		Role:     u.Role,
	}
}
