package analytics

import (
	"context"
	"time"

	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/internal/domain/repository"
)

// DashboardPDFGenerator genera el PDF del dashboard (implementado en infrastructure/pdf).
type DashboardPDFGenerator interface {
	GenerateDashboardPDF(ctx context.Context, dashboard *dto.DashboardResponse, generatedAt time.Time) ([]byte, error)
}

// StockXMLExporter serializa la posición de stock (implementado en infrastructure/xmlexport).
type StockXMLExporter interface {
	ExportStock(ctx context.Context, lines []repository.StockLine, generatedAt time.Time) ([]byte, error)
}

// StockSpreadsheetExporter serializa la posición de stock como planilla XLSX (implementado en infrastructure/xlsxexport).
type StockSpreadsheetExporter interface {
	ExportStock(ctx context.Context, lines []repository.StockLine, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase genera reportes descargables a partir de las métricas.
type ReportUseCase struct {
	metrics *MetricsUseCase
	repo    repository.MetricsRepository
	pdf     DashboardPDFGenerator
	xml     StockXMLExporter
	xlsx    StockSpreadsheetExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(metrics *MetricsUseCase, repo repository.MetricsRepository, pdf DashboardPDFGenerator, xml StockXMLExporter, xlsx StockSpreadsheetExporter) *ReportUseCase {
	return &ReportUseCase{metrics: metrics, repo: repo, pdf: pdf, xml: xml, xlsx: xlsx}
}

// DashboardPDF calcula el dashboard y lo renderiza como PDF.
func (uc *ReportUseCase) DashboardPDF(ctx context.Context) ([]byte, error) {
	d, err := uc.metrics.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateDashboardPDF(ctx, d, uc.metrics.now().In(uc.metrics.loc))
}

// StockXML exporta la posición de stock de todos los productos.
func (uc *ReportUseCase) StockXML(ctx context.Context) ([]byte, error) {
	lines, err := uc.repo.StockPosition(ctx)
	if err != nil {
		return nil, err
	}
	return uc.xml.ExportStock(ctx, lines, uc.metrics.now().In(uc.metrics.loc))
}

// StockXLSX exporta la misma posición de stock como planilla.
func (uc *ReportUseCase) StockXLSX(ctx context.Context) ([]byte, error) {
	lines, err := uc.repo.StockPosition(ctx)
	if err != nil {
		return nil, err
	}
	return uc.xlsx.ExportStock(ctx, lines, uc.metrics.now().In(uc.metrics.loc))
}
