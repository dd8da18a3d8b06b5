package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrTotalMismatch         = errors.New("el total no coincide con los ítems y el descuento")
	ErrSelfDelete            = errors.New("un usuario no puede eliminarse a sí mismo")
)
