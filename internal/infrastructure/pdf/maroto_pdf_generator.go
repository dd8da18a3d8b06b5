// Package pdf implementa el render de proformas y notas de venta con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del local + RUC  │  Tipo + N° + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Cédula + contacto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Código | Descripción | P.Unit | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / TOTAL                      │
//	│  Forma de pago + información adicional                      │
//	│  FIRMAS (solo nota de venta)                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/lreinoso/riostore/internal/application/document"
	"github.com/lreinoso/riostore/internal/application/dto"
	"github.com/lreinoso/riostore/internal/domain/entity"
)

// Ensure MarotoPDFGenerator implements document.PDFGenerator.
var _ document.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Business identidad del local que encabeza cada documento.
type Business struct {
	Name    string
	RUC     string
	Address string
	Phone   string
	Email   string
}

// MarotoPDFGenerator renderiza documentos usando Maroto v2.
type MarotoPDFGenerator struct {
	business Business
}

// NewMarotoPDFGenerator construye el generador con la identidad del local.
func NewMarotoPDFGenerator(business Business) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{business: business}
}

// Render genera el PDF del documento y devuelve sus bytes.
func (g *MarotoPDFGenerator) Render(doc *dto.DocumentResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(docTitle(doc.Type), true).
		WithAuthor(g.business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))

	for _, r := range footerRows(doc) {
		m.AddRows(r)
	}
	if doc.Type == entity.TypeNota {
		m.AddRows(signatureRow())
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: local + RUC (izq), tipo + consecutivo + fecha (der).
func (g *MarotoPDFGenerator) headerRow(doc *dto.DocumentResponse) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RUC: "+nonEmpty(g.business.RUC, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%s   |   Tel: %s",
				nonEmpty(g.business.Address, "—"),
				nonEmpty(g.business.Phone, "—"),
			), props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(docTitle(doc.Type), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %06d", doc.Number), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
			text.New("Fecha: "+doc.Date, props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente.
func clientRow(doc *dto.DocumentResponse) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Cédula/RUC: "+nonEmpty(doc.ClientCedula, "-"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Código", 2, align.Left),
		h("Descripción", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableItemRows: una fila por línea del documento.
func tableItemRows(items []dto.DocumentItemResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Qty),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(item.ProductCode, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				item.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money(item.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				money(item.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: subtotal, descuento y total alineados a la derecha.
func totalsRow(doc *dto.DocumentResponse) core.Row {
	subtotal := doc.Total.Add(doc.Discount)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(24).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:"),
			label("Descuento:"),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 14,
			}),
		),
		col.New(3).Add(
			value(money(subtotal)),
			value(money(doc.Discount)),
			text.New(money(doc.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 14,
			}),
		),
	)
}

// footerRows: forma de pago e información adicional, si las hay.
func footerRows(doc *dto.DocumentResponse) []core.Row {
	var rows []core.Row
	if doc.PaymentMethod != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Forma de pago: "+doc.PaymentMethod, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)))
	}
	if doc.AdditionalInfo != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Información adicional: "+doc.AdditionalInfo, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)))
	}
	if doc.Type == entity.TypeProforma {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Proforma: documento sin valor tributario. Precios sujetos a cambio.", props.Text{
				Size: 7, Top: 2, Color: colorGray,
			}),
		)))
	}
	return rows
}

// signatureRow: líneas de firma para la nota de venta.
func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(5).Add(
			text.New("_______________________", props.Text{
				Size: 9, Align: align.Center, Top: 12,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 18, Color: colorGray,
			}),
		)
	}
	return row.New(26).Add(
		sig("Entregué conforme"),
		col.New(2),
		sig("Recibí conforme"),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func docTitle(docType string) string {
	if docType == entity.TypeNota {
		return "NOTA DE VENTA"
	}
	return "PROFORMA"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
