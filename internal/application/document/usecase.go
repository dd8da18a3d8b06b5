package document

import (
	"fmt"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/domain/repository"
	"github.com/lreinoso/riostore/pkg/logger"
)

// DocumentUseCase motor de documentos: creación numerada de proformas y notas
// de venta, consulta, eliminación y render a PDF.
type DocumentUseCase struct {
	txRunner    TxRunner
	docRepo     repository.DocumentRepository
	productRepo repository.ProductRepository
	clientRepo  repository.ClientRepository
	generator   PDFGenerator
	archiver    Archiver
	log         *logger.Logger
}

// NewDocumentUseCase construye el motor inyectando todas sus dependencias.
// generator y archiver pueden ser nil (modo sin PDF, usado en tests).
func NewDocumentUseCase(
	txRunner TxRunner,
	docRepo repository.DocumentRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	generator PDFGenerator,
	archiver Archiver,
	log *logger.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		txRunner:    txRunner,
		docRepo:     docRepo,
		productRepo: productRepo,
		clientRepo:  clientRepo,
		generator:   generator,
		archiver:    archiver,
		log:         log,
	}
}

// toHeaderResponse mapea la cabecera; el detalle lo agregan los callers que
// lo necesitan.
func toHeaderResponse(doc *entity.Document, clientName, clientCedula string) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:             doc.ID,
		Type:           doc.Type,
		Number:         doc.Number,
		Date:           doc.Date,
		ClientID:       doc.ClientID,
		ClientName:     clientName,
		ClientCedula:   clientCedula,
		Discount:       doc.Discount,
		Total:          doc.Total,
		PaymentMethod:  doc.PaymentMethod,
		AdditionalInfo: doc.AdditionalInfo,
	}
}

// productLabel resuelve código y nombre del producto de una línea. Si el
// producto ya fue eliminado del catálogo, el documento sigue siendo legible.
func (uc *DocumentUseCase) productLabel(productID int64) (code, name string) {
	name = fmt.Sprintf("Producto %d", productID) // fallback
	if product, err := uc.productRepo.GetByID(productID); err == nil && product != nil {
		name = product.Name
		if product.Code != nil {
			code = *product.Code
		}
	}
	return code, name
}

// clientLabel resuelve nombre y cédula del cliente de un documento, tolerando
// clientes ya eliminados.
func (uc *DocumentUseCase) clientLabel(clientID int64) (name, cedula string) {
	name, cedula = "-", "-"
	if client, err := uc.clientRepo.GetByID(clientID); err == nil && client != nil {
		name = client.FullName
		cedula = client.CedulaDisplay()
	}
	return name, cedula
}

func toItemResponse(item *entity.DocumentItem, code, name string) dto.DocumentItemResponse {
	return dto.DocumentItemResponse{
		ID:          item.ID,
		ProductID:   item.ProductID,
		ProductCode: code,
		ProductName: name,
		Qty:         item.Qty,
		UnitPrice:   item.UnitPrice,
		Subtotal:    item.Subtotal,
	}
}
