package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeandroFernandess/SGE/internal/application/analytics"
	"github.com/LeandroFernandess/SGE/pkg/logger"
)

// ReportHandler descargas de reportes: PDF del dashboard y posición de stock en XML o XLSX.
type ReportHandler struct {
	uc  *analytics.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// DashboardPDF GET /api/v1/reports/dashboard.pdf
func (h *ReportHandler) DashboardPDF(c *fiber.Ctx) error {
	b, err := h.uc.DashboardPDF(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="dashboard.pdf"`)
	return c.Send(b)
}

// StockXML GET /api/v1/reports/stock.xml
func (h *ReportHandler) StockXML(c *fiber.Ctx) error {
	b, err := h.uc.StockXML(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.xml"`)
	return c.Send(b)
}

// StockXLSX GET /api/v1/reports/stock.xlsx
func (h *ReportHandler) StockXLSX(c *fiber.Ctx) error {
	b, err := h.uc.StockXLSX(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.xlsx"`)
	return c.Send(b)
}
