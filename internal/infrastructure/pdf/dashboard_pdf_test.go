package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/internal/infrastructure/pdf"
)

func TestGenerateDashboardPDF(t *testing.T) {
	d := &dto.DashboardResponse{
		ProductMetrics: dto.ProductMetricsResponse{TotalCostPrice: "20,00", TotalSellingPrice: "30,00", TotalQuantity: 2, TotalProfit: "10,00"},
		SalesMetrics:   dto.SalesMetricsResponse{TotalSales: 1, TotalProductSold: 3, TotalSalesValue: "45,00", TotalSalesProfit: "15,00"},
		DailySalesData: dto.DailySalesValueResponse{
			Dates:  []string{"2026-10-11", "2026-10-12", "2026-10-13", "2026-10-14", "2026-10-15", "2026-10-16", "2026-10-17"},
			Values: []float64{0, 0, 0, 0, 0, 0, 45},
		},
		DailySalesQuantityData: dto.DailySalesQuantityResponse{Values: []int64{0, 0, 0, 0, 0, 0, 1}},
		ProductCountByCategory: map[string]int64{"Audio": 1, "Video": 0},
		ProductCountByBrand:    map[string]int64{"Sony": 1},
	}

	b, err := pdf.NewMarotoPDFGenerator("SGE").GenerateDashboardPDF(context.Background(), d, time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe ser un documento PDF")
}
