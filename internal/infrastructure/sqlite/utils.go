package sqlite

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// orderColumn resuelve la columna de ordenamiento contra la whitelist de la
// tabla; claves desconocidas caen al orden por defecto.
func orderColumn(allowed map[string]string, key string) string {
	if col, ok := allowed[key]; ok {
		return col
	}
	return allowed[""]
}

// likePattern arma el patrón de substring case-insensitive para búsquedas.
func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}
