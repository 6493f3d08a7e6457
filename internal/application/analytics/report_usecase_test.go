package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroFernandess/SGE/internal/application/analytics"
	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

type fakePDF struct{ got *dto.DashboardResponse }

func (f *fakePDF) GenerateDashboardPDF(_ context.Context, d *dto.DashboardResponse, _ time.Time) ([]byte, error) {
	f.got = d
	return []byte("%PDF"), nil
}

type fakeXML struct{ lines []repository.StockLine }

func (f *fakeXML) ExportStock(_ context.Context, lines []repository.StockLine, _ time.Time) ([]byte, error) {
	f.lines = lines
	return []byte("<stock/>"), nil
}

type fakeXLSX struct{ calls int }

func (f *fakeXLSX) ExportStock(_ context.Context, _ []repository.StockLine, _ time.Time) ([]byte, error) {
	f.calls++
	return []byte("PK"), nil
}

func TestReportUseCase(t *testing.T) {
	ctx := context.Background()
	repo := stubMetrics{categories: []repository.LabelCount{{Name: "Cabos", Count: 4}}}
	metrics := analytics.NewMetricsUseCase(repo, mustFormatter(t, "pt-BR"), time.UTC)
	pdf, xml, xlsx := &fakePDF{}, &fakeXML{}, &fakeXLSX{}
	uc := analytics.NewReportUseCase(metrics, repo, pdf, xml, xlsx)

	b, err := uc.DashboardPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), b)
	require.NotNil(t, pdf.got)
	assert.Equal(t, int64(4), pdf.got.ProductCountByCategory["Cabos"])
	assert.Len(t, pdf.got.DailySalesData.Dates, analytics.DailyWindow)
	assert.Equal(t, "0,00", pdf.got.SalesMetrics.TotalSalesValue)

	b, err = uc.StockXML(ctx)
	require.NoError(t, err)
	assert.Equal(t, "<stock/>", string(b))

	b, err = uc.StockXLSX(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(b))
	assert.Equal(t, 1, xlsx.calls)
}
