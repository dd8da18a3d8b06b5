package document

import (
	"fmt"
	"time"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
)

// GetByID devuelve el documento con su detalle enriquecido con los datos
// actuales del catálogo.
func (uc *DocumentUseCase) GetByID(id int64) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.docRepo.GetItemsByDocumentID(id)
	if err != nil {
		return nil, err
	}
	clientName, clientCedula := uc.clientLabel(doc.ClientID)
	resp := toHeaderResponse(doc, clientName, clientCedula)
	for _, item := range items {
		code, name := uc.productLabel(item.ProductID)
		resp.Items = append(resp.Items, toItemResponse(item, code, name))
	}
	return resp, nil
}

// List devuelve cabeceras (sin detalle) filtradas por tipo, cliente y mes,
// más recientes primero.
func (uc *DocumentUseCase) List(filter dto.DocumentFilter) ([]*dto.DocumentResponse, error) {
	if filter.Type != "" && filter.Type != entity.TypeProforma && filter.Type != entity.TypeNota {
		return nil, fmt.Errorf("%w: tipo de documento desconocido %q", domain.ErrInvalidInput, filter.Type)
	}
	if filter.Month < 0 || filter.Month > 12 {
		return nil, fmt.Errorf("%w: mes fuera de rango %d", domain.ErrInvalidInput, filter.Month)
	}
	docs, err := uc.docRepo.List()
	if err != nil {
		return nil, err
	}
	clientNames := make(map[int64][2]string)
	out := make([]*dto.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		if filter.Type != "" && doc.Type != filter.Type {
			continue
		}
		if filter.ClientID != 0 && doc.ClientID != filter.ClientID {
			continue
		}
		if filter.Month != 0 && !matchesMonth(doc.Date, filter.Month) {
			continue
		}
		labels, ok := clientNames[doc.ClientID]
		if !ok {
			name, cedula := uc.clientLabel(doc.ClientID)
			labels = [2]string{name, cedula}
			clientNames[doc.ClientID] = labels
		}
		out = append(out, toHeaderResponse(doc, labels[0], labels[1]))
	}
	return out, nil
}

// matchesMonth compara el mes de la fecha del documento. Fechas ilegibles no
// matchean ningún filtro.
func matchesMonth(date string, month int) bool {
	t, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return false
	}
	return int(t.Month()) == month
}
