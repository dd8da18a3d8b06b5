package dto

import "github.com/lreinoso/riostore/internal/domain/entity"

// Actor identifica al usuario que ejecuta una operación. Las reglas de
// permisos (eliminar documentos, egresar stock, administrar usuarios) se
// evalúan contra su rol antes de cualquier mutación.
type Actor struct {
	ID   int64
	Role string
}

// IsAdmin indica si el actor tiene rol de administrador.
func (a Actor) IsAdmin() bool { return a.Role == entity.RoleAdministrador }

// ActorFromUser construye el actor a partir del usuario que devolvió el
// login, para pasarlo a las operaciones con reglas de permiso.
func ActorFromUser(u *UserResponse) Actor {
	return Actor{ID: u.ID, Role: u.Role}
}
