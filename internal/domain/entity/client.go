package entity

// Client representa un cliente de la tienda. Cedula (cédula/RUC) es opcional
// pero única cuando está presente; los campos vacíos se guardan como NULL para
// que la unicidad no aplique entre clientes sin cédula.
type Client struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	FullName string  `gorm:"not null"`
	Cedula   *string `gorm:"uniqueIndex"`
	Contact  *string ``
	Address  *string ``
	Email    *string ``
}

// TableName fija el nombre de tabla del esquema original.
func (Client) TableName() string { return "clients" }

// CedulaDisplay devuelve la cédula o "-" si no tiene (formato de listados y PDF).
func (c *Client) CedulaDisplay() string {
	if c.Cedula == nil || *c.Cedula == "" {
		return "-"
	}
	return *c.Cedula
}
