package entity

// Roles válidos para User.
const (
	RoleAdministrador = "Administrador"
	RoleEmpleado      = "Empleado"
)

// User representa un usuario del sistema. El password nunca se guarda en
// claro: PasswordHash es un hash bcrypt calculado al crear o actualizar.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FullName     string `gorm:"not null"`
	Username     string `gorm:"not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"` // Administrador, Empleado
}

// TableName fija el nombre de tabla del esquema original.
func (User) TableName() string { return "users" }

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool { return u.Role == RoleAdministrador }
