// Package pdf genera el comprobante de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nova Salud  │  N° Comprobante + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + documento  │  VENDEDOR + método de pago   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Código | Producto | P.Unit | Subtotal         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuestos / Descuento / TOTAL           │
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
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/misikss/nova-salud-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 96, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera el comprobante de una venta usando Maroto v2.
type ReceiptGenerator struct {
	farmacia string
}

// NewReceiptGenerator construye el generador con el nombre del negocio.
func NewReceiptGenerator(farmacia string) *ReceiptGenerator {
	if farmacia == "" {
		farmacia = "Nova Salud"
	}
	return &ReceiptGenerator{farmacia: farmacia}
}

// Generate genera el PDF del comprobante y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(_ context.Context, sale *entity.Sale, details []*entity.SaleDetail) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Venta", true).
		WithAuthor(g.farmacia, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(details) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))

	if sale.Estado == entity.SaleStatusAnulada {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("VENTA ANULADA", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: &props.Color{Red: 180, Green: 30, Blue: 30}, Top: 2,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del negocio (izq) y número + fecha (der).
func (g *ReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	fecha := sale.Fecha.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.farmacia, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Botica y Farmacia", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: cliente y vendedor con método de pago.
func partiesRow(sale *entity.Sale) core.Row {
	cliente := sale.ClienteNombre
	if cliente == "" {
		cliente = "Cliente general"
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
		col.New(5).Add(
			text.New("ATENDIDO POR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sale.UsuarioNombre, props.Text{Size: 9, Align: align.Right, Top: 6}),
			text.New("Pago: "+sale.MetodoPago, props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
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
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea de la venta.
func tableDetailRows(details []*entity.SaleDetail) []core.Row {
	result := make([]core.Row, 0, len(details))
	for _, d := range details {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", d.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				d.ProductoCodigo,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				d.ProductoNombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"S/ "+d.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"S/ "+d.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(sale *entity.Sale) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right,
		Color: colorPrimary, Right: 2, Top: 18,
	})
	grandValue := text.New("S/ "+sale.Total.StringFixed(2), props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right,
		Color: colorPrimary, Right: 1, Top: 18,
	})

	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 0),
			label("Impuestos:", 5),
			label("Descuento:", 10),
			grandLabel,
		),
		col.New(3).Add(
			value("S/ "+sale.Subtotal.StringFixed(2), 0),
			value("S/ "+sale.Impuestos.StringFixed(2), 5),
			value("S/ "+sale.Descuento.StringFixed(2), 10),
			grandValue,
		),
	)
}

// shortID recorta el UUID a un número de comprobante legible.
func shortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return "V-" + id
}
