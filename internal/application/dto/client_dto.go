package dto

// CreateClientRequest entrada para crear un cliente. Los campos opcionales
// vacíos se guardan como NULL (la cédula vacía no participa de la unicidad).
type CreateClientRequest struct {
	FullName string
	Cedula   string
	Contact  string
	Address  string
	Email    string
}

// UpdateClientRequest entrada para actualizar un cliente.
type UpdateClientRequest struct {
	FullName string
	Cedula   string
	Contact  string
	Address  string
	Email    string
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID       int64
	FullName string
	Cedula   string
	Contact  string
	Address  string
	Email    string
}
