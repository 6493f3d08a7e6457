// Package xlsxexport genera la planilla de posición de stock con xuri/excelize.
package xlsxexport

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

// SheetName hoja única de la planilla.
const SheetName = "Estoque"

var header = []interface{}{"ID", "Produto", "Categoria", "Marca", "Quantidade", "Preço de custo", "Preço de venda"}

// StockExporter implementa analytics.StockSpreadsheetExporter.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter { return &StockExporter{} }

// ExportStock escribe una fila por producto debajo del encabezado y una fila final con el total de unidades.
// Los precios se escriben como número con 2 decimales.
func (e *StockExporter) ExportStock(_ context.Context, lines []repository.StockLine, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsxexport: hoja: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsxexport: encabezado: %w", err)
	}

	var total int64
	for i, l := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			l.ProductID, l.Title, l.Category, l.Brand, l.Quantity,
			l.CostPrice.Round(2).InexactFloat64(), l.SellingPrice.Round(2).InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsxexport: fila %d: %w", i+2, err)
		}
		total += int64(l.Quantity)
	}

	footer, err := excelize.CoordinatesToCellName(1, len(lines)+3)
	if err != nil {
		return nil, err
	}
	summary := []interface{}{"Total", "", "", "", total, "", "Gerado em " + generatedAt.Format("2006-01-02 15:04")}
	if err := f.SetSheetRow(SheetName, footer, &summary); err != nil {
		return nil, fmt.Errorf("xlsxexport: total: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsxexport: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
