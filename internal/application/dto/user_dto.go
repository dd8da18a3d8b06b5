package dto

// CreateUserRequest entrada para crear un usuario.
type CreateUserRequest struct {
	FullName string
	Username string
	Password string
	Role     string
}

// UpdateUserRequest entrada para actualizar un usuario. Password nil deja el
// hash actual sin tocar.
type UpdateUserRequest struct {
	FullName string
	Username string
	Role     string
	Password *string
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID       int64
	FullName string
	Username string
	Role     string
}
