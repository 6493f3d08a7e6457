// Package xmlexport serializa la posición de stock en XML con beevik/etree.
package xmlexport

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

// StockExporter implementa analytics.StockXMLExporter.
type StockExporter struct{}

// NewStockExporter construye el exportador.
func NewStockExporter() *StockExporter { return &StockExporter{} }

// ExportStock genera:
//
//	<StockPosition generatedAt="..." products="N" totalQuantity="Q">
//	  <Product id="...">
//	    <Title/> <Category/> <Brand/> <Quantity/> <CostPrice/> <SellingPrice/>
//	  </Product>
//	</StockPosition>
func (e *StockExporter) ExportStock(_ context.Context, lines []repository.StockLine, generatedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("StockPosition")
	root.CreateAttr("generatedAt", generatedAt.Format(time.RFC3339))
	root.CreateAttr("products", strconv.Itoa(len(lines)))

	var total int64
	for _, l := range lines {
		p := root.CreateElement("Product")
		p.CreateAttr("id", l.ProductID)
		p.CreateElement("Title").SetText(l.Title)
		p.CreateElement("Category").SetText(l.Category)
		p.CreateElement("Brand").SetText(l.Brand)
		p.CreateElement("Quantity").SetText(strconv.Itoa(l.Quantity))
		p.CreateElement("CostPrice").SetText(l.CostPrice.StringFixed(2))
		p.CreateElement("SellingPrice").SetText(l.SellingPrice.StringFixed(2))
		total += int64(l.Quantity)
	}
	root.CreateAttr("totalQuantity", strconv.FormatInt(total, 10))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	return out, nil
}
