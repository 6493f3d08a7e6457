// Package pdf genera el reporte del dashboard de estoque en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INVENTARIO: costo | venta | cantidad | ganancia             │
//	│  VENTAS: salidas | unidades | valor | ganancia               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Valor vendido | Salidas (últimos 7 días)     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTOS POR CATEGORÍA  │  PRODUCTOS POR MARCA             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strconv"
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

	"github.com/LeandroFernandess/SGE/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.DashboardPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	appName string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(appName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{appName: appName}
}

// GenerateDashboardPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDashboardPDF(_ context.Context, d *dto.DashboardResponse, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Dashboard de estoque", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionTitle("INVENTARIO"))
	m.AddRows(kpiRow(
		kpi{"Custo total", d.ProductMetrics.TotalCostPrice},
		kpi{"Venda total", d.ProductMetrics.TotalSellingPrice},
		kpi{"Quantidade", strconv.FormatInt(d.ProductMetrics.TotalQuantity, 10)},
		kpi{"Lucro", d.ProductMetrics.TotalProfit},
	))
	m.AddRows(sectionTitle("VENDAS"))
	m.AddRows(kpiRow(
		kpi{"Saídas", strconv.FormatInt(d.SalesMetrics.TotalSales, 10)},
		kpi{"Unidades", strconv.FormatInt(d.SalesMetrics.TotalProductSold, 10)},
		kpi{"Valor vendido", d.SalesMetrics.TotalSalesValue},
		kpi{"Lucro", d.SalesMetrics.TotalSalesProfit},
	))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("ÚLTIMOS 7 DIAS"))
	m.AddRows(tableHeaderRow("Data", "Valor vendido", "Saídas"))
	for _, r := range dailyRows(d) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("PRODUTOS POR CATEGORIA"))
	for _, r := range countRows(d.ProductCountByCategory) {
		m.AddRows(r)
	}
	m.AddRows(sectionTitle("PRODUTOS POR MARCA"))
	for _, r := range countRows(d.ProductCountByBrand) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Dashboard de estoque", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Gerado em: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

type kpi struct {
	label string
	value string
}

// kpiRow cuatro indicadores en columnas de igual ancho.
func kpiRow(kpis ...kpi) core.Row {
	cols := make([]core.Col, 0, len(kpis))
	for _, k := range kpis {
		cols = append(cols, col.New(12/len(kpis)).Add(
			text.New(k.label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(k.value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		))
	}
	return row.New(14).Add(cols...)
}

func tableHeaderRow(labels ...string) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for _, l := range labels {
		cols = append(cols, col.New(12/len(labels)).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func dailyRows(d *dto.DashboardResponse) []core.Row {
	result := make([]core.Row, 0, len(d.DailySalesData.Dates))
	for i, date := range d.DailySalesData.Dates {
		var qty int64
		if i < len(d.DailySalesQuantityData.Values) {
			qty = d.DailySalesQuantityData.Values[i]
		}
		result = append(result, row.New(5).Add(
			col.New(4).Add(text.New(date, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(strconv.FormatFloat(d.DailySalesData.Values[i], 'f', 2, 64), props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(strconv.FormatInt(qty, 10), props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}

// countRows una fila por nombre, en orden alfabético.
func countRows(counts map[string]int64) []core.Row {
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)
	result := make([]core.Row, 0, len(names))
	for _, n := range names {
		result = append(result, row.New(5).Add(
			col.New(8).Add(text.New(n, props.Text{Size: 8, Top: 1, Left: 2})),
			col.New(4).Add(text.New(strconv.FormatInt(counts[n], 10), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return result
}
