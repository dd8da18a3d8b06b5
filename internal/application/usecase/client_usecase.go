package usecase

import (
	"fmt"
	"strings"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD para clientes. La cédula es única solo
// cuando no es vacía: puede haber cualquier cantidad de clientes sin cédula.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: el nombre completo es obligatorio", domain.ErrInvalidInput)
	}
	cedula := strings.TrimSpace(in.Cedula)
	if cedula != "" {
		existing, err := uc.repo.GetByCedula(cedula)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	client := &entity.Client{
		FullName: fullName,
		Cedula:   optString(cedula),
		Contact:  optString(in.Contact),
		Address:  optString(in.Address),
		Email:    optString(in.Email),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id int64) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update actualiza un cliente. La cédula puede quedar igual a la propia, pero
// no igual a la de otro cliente.
func (uc *ClientUseCase) Update(id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: el nombre completo es obligatorio", domain.ErrInvalidInput)
	}
	cedula := strings.TrimSpace(in.Cedula)
	if cedula != "" {
		existing, err := uc.repo.GetByCedula(cedula)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	client.FullName = fullName
	client.Cedula = optString(cedula)
	client.Contact = optString(in.Contact)
	client.Address = optString(in.Address)
	client.Email = optString(in.Email)
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente por ID.
func (uc *ClientUseCase) Delete(id int64) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista todos los clientes.
func (uc *ClientUseCase) List(orderBy string) ([]*dto.ClientResponse, error) {
	clients, err := uc.repo.List(orderBy)
	if err != nil {
		return nil, err
	}
	return toClientResponses(clients), nil
}

// Search busca clientes por substring en nombre o cédula.
func (uc *ClientUseCase) Search(term, orderBy string) ([]*dto.ClientResponse, error) {
	clients, err := uc.repo.Search(term, orderBy)
	if err != nil {
		return nil, err
	}
	return toClientResponses(clients), nil
}

// optString convierte "" en NULL para los campos opcionales.
func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:       c.ID,
		FullName: c.FullName,
		Cedula:   deref(c.Cedula),
		Contact:  deref(c.Contact),
		Address:  deref(c.Address),
		Email:    deref(c.Email),
	}
}

func toClientResponses(clients []*entity.Client) []*dto.ClientResponse {
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
