package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeandroFernandess/SGE/internal/application/analytics"
	"github.com/LeandroFernandess/SGE/pkg/logger"
)

// MetricsHandler expone el agregador de métricas. Todo es de solo lectura y se recalcula por request.
type MetricsHandler struct {
	uc  *analytics.MetricsUseCase
	log *logger.Logger
}

// NewMetricsHandler construye el handler.
func NewMetricsHandler(uc *analytics.MetricsUseCase, log *logger.Logger) *MetricsHandler {
	return &MetricsHandler{uc: uc, log: log}
}

// respond serializa out o traduce err.
func (h *MetricsHandler) respond(c *fiber.Ctx, out interface{}, err error) error {
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return c.JSON(out)
}

// Products GET /api/v1/metrics/products
func (h *MetricsHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.ProductMetrics(c.UserContext())
	return h.respond(c, out, err)
}

// Sales GET /api/v1/metrics/sales
func (h *MetricsHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.SalesMetrics(c.UserContext())
	return h.respond(c, out, err)
}

// DailySalesValue GET /api/v1/metrics/daily-sales-value
func (h *MetricsHandler) DailySalesValue(c *fiber.Ctx) error {
	out, err := h.uc.DailySalesValue(c.UserContext())
	return h.respond(c, out, err)
}

// DailySalesQuantity GET /api/v1/metrics/daily-sales-quantity
func (h *MetricsHandler) DailySalesQuantity(c *fiber.Ctx) error {
	out, err := h.uc.DailySalesQuantity(c.UserContext())
	return h.respond(c, out, err)
}

// ProductsByCategory GET /api/v1/metrics/products-by-category
func (h *MetricsHandler) ProductsByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ProductCountByCategory(c.UserContext())
	return h.respond(c, out, err)
}

// ProductsByBrand GET /api/v1/metrics/products-by-brand
func (h *MetricsHandler) ProductsByBrand(c *fiber.Ctx) error {
	out, err := h.uc.ProductCountByBrand(c.UserContext())
	return h.respond(c, out, err)
}

// Dashboard godoc
// @Summary      Dashboard completo (seis bloques de métricas)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/v1/dashboard [get]
func (h *MetricsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	return h.respond(c, out, err)
}
