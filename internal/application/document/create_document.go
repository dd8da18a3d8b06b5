package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain"
	"github.com/lreinoso/riostore/internal/domain/entity"
	"github.com/lreinoso/riostore/internal/domain/repository"
)

// Create valida, numera y persiste un documento. Para una NOTA descuenta el
// stock de los productos físicos línea por línea; numeración, cabecera,
// detalle y descuento de stock van en una sola transacción. Una PROFORMA
// nunca toca stock.
func (uc *DocumentUseCase) Create(ctx context.Context, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if in.Type != entity.TypeProforma && in.Type != entity.TypeNota {
		return nil, fmt.Errorf("%w: tipo de documento desconocido %q", domain.ErrInvalidInput, in.Type)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: el documento no tiene ítems", domain.ErrInvalidInput)
	}
	if in.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: el descuento no puede ser negativo", domain.ErrInvalidInput)
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = time.Now().Format(entity.DateLayout)
	} else if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: la fecha %q no cumple el formato %s", domain.ErrInvalidInput, in.Date, entity.DateLayout)
	}

	// ── Cliente ───────────────────────────────────────────────────────────────
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: cliente %d", domain.ErrNotFound, in.ClientID)
	}

	// ── Validar líneas y recalcular el total (solo lectura, fuera de la tx) ──
	productsByID := make(map[int64]*entity.Product)
	var sum decimal.Decimal
	for _, item := range in.Items {
		if item.Qty <= 0 {
			return nil, fmt.Errorf("%w: cantidad inválida para el producto %d", domain.ErrInvalidInput, item.ProductID)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: precio negativo para el producto %d", domain.ErrInvalidInput, item.ProductID)
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, item.ProductID)
		}
		productsByID[item.ProductID] = product
		sum = sum.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Qty)))
	}
	total := sum.Sub(in.Discount)
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: el descuento supera la suma de los ítems", domain.ErrInvalidInput)
	}
	// El total lo manda el recálculo, no el caller: cualquier diferencia con
	// lo enviado aborta la creación.
	if !total.Equal(in.Total) {
		return nil, domain.ErrTotalMismatch
	}

	doc := &entity.Document{
		Type:           in.Type,
		Date:           date,
		ClientID:       in.ClientID,
		Discount:       in.Discount,
		Total:          total,
		PaymentMethod:  strings.TrimSpace(in.PaymentMethod),
		AdditionalInfo: strings.TrimSpace(in.AdditionalInfo),
	}

	// ── Transacción: consecutivo + cabecera + detalle + stock ─────────────────
	err = uc.txRunner.Run(ctx, func(
		docRepo repository.DocumentRepository,
		productRepo repository.ProductRepository,
	) error {
		number, err := docRepo.NextNumber(in.Type)
		if err != nil {
			return err
		}
		doc.Number = number
		if err := docRepo.Create(doc); err != nil {
			return err
		}
		for _, item := range in.Items {
			di := &entity.DocumentItem{
				DocumentID: doc.ID,
				ProductID:  item.ProductID,
				Qty:        item.Qty,
				UnitPrice:  item.UnitPrice,
				Subtotal:   item.UnitPrice.Mul(decimal.NewFromInt(item.Qty)),
			}
			if err := docRepo.CreateItem(di); err != nil {
				return err
			}
			doc.Items = append(doc.Items, *di)
		}
		if doc.IsSale() {
			for _, item := range in.Items {
				// Los servicios no manejan stock.
				if productsByID[item.ProductID].IsService() {
					continue
				}
				if err := productRepo.AdjustStock(item.ProductID, -item.Qty); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if doc.IsSale() {
		uc.warnNegativeStock(in.Items, productsByID)
	}

	resp := toHeaderResponse(doc, client.FullName, client.CedulaDisplay())
	for i := range doc.Items {
		item := &doc.Items[i]
		product := productsByID[item.ProductID]
		code := ""
		if product.Code != nil {
			code = *product.Code
		}
		resp.Items = append(resp.Items, toItemResponse(item, code, product.Name))
	}

	// Copia de archivo: best effort, un PDF fallido nunca invalida el documento.
	uc.saveArchiveCopy(resp)

	uc.log.Info().
		Str("type", doc.Type).
		Int64("id", doc.ID).
		Int64("number", doc.Number).
		Str("total", doc.Total.String()).
		Msg("documento creado")
	return resp, nil
}

// warnNegativeStock registra las líneas que dejaron stock bajo cero tras una
// venta. La venta no se bloquea.
func (uc *DocumentUseCase) warnNegativeStock(items []dto.DocumentItemRequest, productsByID map[int64]*entity.Product) {
	seen := make(map[int64]bool)
	for _, item := range items {
		if productsByID[item.ProductID].IsService() || seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			continue
		}
		if product.Stock < 0 {
			uc.log.Warn().
				Int64("product_id", product.ID).
				Int64("stock", product.Stock).
				Msg("stock negativo tras venta")
		}
	}
}

// saveArchiveCopy renderiza y guarda la copia de archivo del documento recién
// creado. Los errores solo se registran.
func (uc *DocumentUseCase) saveArchiveCopy(resp *dto.DocumentResponse) {
	if uc.generator == nil || uc.archiver == nil {
		return
	}
	data, err := uc.generator.Render(resp)
	if err != nil {
		uc.log.Warn().Err(err).Int64("id", resp.ID).Msg("no se pudo renderizar la copia de archivo")
		return
	}
	if err := uc.archiver.Save(resp.Type, resp.ID, data); err != nil {
		uc.log.Warn().Err(err).Int64("id", resp.ID).Msg("no se pudo guardar la copia de archivo")
	}
}
