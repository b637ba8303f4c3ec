// Package pdf implementa la representación PDF de la nota de entrega que el
// chofer lleva impresa y el receptor firma en la obra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + RIF  │  N° Pedido + Fecha entrega   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECEPTOR: cliente final + dirección de entrega              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cantidad | Unidad | Planta de origen      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TRANSPORTE: chofer, cédula, chuto, placa, batea             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: emisor / recibido conforme                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	mconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/fletes-pro/internal/application/documents"
	"github.com/tu-usuario/fletes-pro/internal/domain/entity"
	domorder "github.com/tu-usuario/fletes-pro/internal/domain/order"
	"github.com/tu-usuario/fletes-pro/pkg/config"
)

var _ documents.DeliveryNotePDFGenerator = (*MarotoDeliveryNoteGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoDeliveryNoteGenerator implementa documents.DeliveryNotePDFGenerator
// usando Maroto v2.
type MarotoDeliveryNoteGenerator struct{}

// NewMarotoDeliveryNoteGenerator construye el generador.
func NewMarotoDeliveryNoteGenerator() *MarotoDeliveryNoteGenerator {
	return &MarotoDeliveryNoteGenerator{}
}

// GenerateDeliveryNotePDF genera el PDF de la nota de entrega y devuelve sus bytes.
func (g *MarotoDeliveryNoteGenerator) GenerateDeliveryNotePDF(
	_ context.Context,
	o entity.Order,
	cfg config.CompanyConfig,
) ([]byte, error) {
	mcfg := mconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de Entrega "+o.ID, true).
		WithAuthor(cfg.Name, true).
		Build()

	m := maroto.New(mcfg)

	m.AddRows(headerRow(o, cfg))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(receiverRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(cargoHeaderRow())
	m.AddRows(cargoRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(transportRow(o))
	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRow(cfg))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar nota de entrega: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + RIF (izq) y N° de pedido + fecha de entrega (der).
func headerRow(o entity.Order, cfg config.CompanyConfig) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(cfg.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RIF: "+cfg.RIF+"   |   Telf: "+cfg.ContactPhone, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("NOTA DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(o.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Entrega: "+nonEmpty(o.DeliveryDate, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// receiverRow: cliente final y dirección efectiva de entrega.
func receiverRow(o entity.Order) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("RECEPTOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(o.FinalClient, o.Client), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RIF: %s   |   %s",
				nonEmpty(o.RIF, "—"),
				nonEmpty(o.FinalAddress, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// cargoHeaderRow: cabecera de la tabla de carga.
func cargoHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Cantidad", 3, align.Right),
		h("Unidad", 2, align.Center),
		h("Planta de origen", 2, align.Left),
	)
}

// cargoRow: la línea única de carga del pedido.
func cargoRow(o entity.Order) core.Row {
	qtyVal, qtyUnit := domorder.ParseQuantity(o.Quantity)
	return row.New(7).Add(
		col.New(5).Add(text.New(o.Product, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(qtyVal.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(qtyUnit, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(o.Origin, props.Text{Size: 8, Top: 1, Left: 1})),
	)
}

// transportRow: chofer y unidad.
func transportRow(o entity.Order) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TRANSPORTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Chofer: %s (C.I. %s)   |   Chuto: %s placa %s   |   Batea: %s",
				nonEmpty(o.Driver, "—"),
				nonEmpty(o.DriverCedula, "—"),
				nonEmpty(o.Truck, "—"),
				nonEmpty(o.Plate, "—"),
				nonEmpty(o.TrailerPlate, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// signatureRow: firma del emisor y recibido conforme.
func signatureRow(cfg config.CompanyConfig) core.Row {
	return row.New(20).Add(
		col.New(6).Add(
			text.New("_______________________", props.Text{Size: 9, Align: align.Center, Top: 8}),
			text.New(cfg.IssuerName+" — "+cfg.IssuerRole, props.Text{
				Size: 8, Align: align.Center, Top: 14, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("_______________________", props.Text{Size: 9, Align: align.Center, Top: 8}),
			text.New("Recibido conforme (nombre, C.I. y firma)", props.Text{
				Size: 8, Align: align.Center, Top: 14, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
