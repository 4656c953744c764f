// Package pdf implementa la representación gráfica del resumen del dashboard.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte │ Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Costo total / Ingresos / Margen / Margen %           │
//	│  KPIs: Unidades vendidas / disponibles / totales            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Unidades | Ingresos | Costo | Margen        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/ventas-tracker/internal/application/dto"
	appstats "github.com/jhoicas/ventas-tracker/internal/application/stats"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa stats.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ appstats.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// GenerateStatsPDF genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStatsPDF(
	_ context.Context,
	stats *dto.StatsDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRows(stats)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDailyRows(stats.DailyStats) {
		m.AddRows(r)
	}
	if len(stats.DailyStats) == 0 {
		m.AddRows(row.New(7).Add(col.New(12).Add(text.New(
			"Sin ventas registradas en el período.",
			props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray},
		))))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RESUMEN DE VENTAS E INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// totalsRows: dos filas de KPIs, financieros y de unidades.
func totalsRows(stats *dto.StatsDTO) []core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		)
	}
	margin := appstats.MarginPercentage(stats.TotalProfit, stats.TotalRevenue)

	return []core.Row{
		row.New(14).Add(
			kpi("Costo total (stock)", stats.TotalCost.StringFixed(2)),
			kpi("Ingresos", stats.TotalRevenue.StringFixed(2)),
			kpi("Margen", stats.TotalProfit.StringFixed(2)),
			kpi("Margen %", margin.StringFixed(1)+" %"),
		),
		row.New(14).Add(
			kpi("Unidades vendidas", fmt.Sprintf("%d", stats.SoldCount)),
			kpi("Unidades disponibles", fmt.Sprintf("%d", stats.AvailableCount)),
			kpi("Unidades totales", fmt.Sprintf("%d", stats.TotalCount)),
			col.New(3),
		),
	}
}

// tableHeaderRow: cabecera de la tabla de la serie diaria.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Unidades", 2, align.Center),
		h("Ingresos", 2, align.Right),
		h("Costo vendido", 2, align.Right),
		h("Margen", 3, align.Right),
	)
}

// tableDailyRows: una fila por día con ventas.
func tableDailyRows(daily []dto.DailyStatDTO) []core.Row {
	result := make([]core.Row, 0, len(daily))
	for _, d := range daily {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(d.Date, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", d.Count),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				d.Revenue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				d.Cost.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				d.Profit.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}
