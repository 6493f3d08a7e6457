package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/internal/application/inventory"
	"github.com/LeandroFernandess/SGE/pkg/logger"
)

// MovementHandler maneja entradas y salidas de stock. No hay update ni delete: los movimientos son inmutables.
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	query    *inventory.MovementQueryUseCase
	log      *logger.Logger
}

// NewMovementHandler construye el handler.
func NewMovementHandler(register *inventory.RegisterMovementUseCase, query *inventory.MovementQueryUseCase, log *logger.Logger) *MovementHandler {
	return &MovementHandler{register: register, query: query, log: log}
}

// CreateInflow godoc
// @Summary      Registrar entrada (suma al stock del producto)
// @Tags         inflows
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInflowRequest  true  "Entrada"
// @Success      201   {object}  dto.InflowResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/inflows [post]
func (h *MovementHandler) CreateInflow(c *fiber.Ctx) error {
	var in dto.CreateInflowRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.register.RegisterInflow(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, "producto o proveedor no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateOutflow godoc
// @Summary      Registrar salida (resta del stock; 409 si supera el disponible)
// @Tags         outflows
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutflowRequest  true  "Salida"
// @Success      201   {object}  dto.OutflowResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/outflows [post]
func (h *MovementHandler) CreateOutflow(c *fiber.Ctx) error {
	var in dto.CreateOutflowRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.register.RegisterOutflow(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, productNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetInflow godoc
// @Summary      Detalle de una entrada
// @Tags         inflows
// @Router       /api/v1/inflows/{id} [get]
func (h *MovementHandler) GetInflow(c *fiber.Ctx) error {
	out, err := h.query.GetInflow(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err, "entrada no encontrada")
	}
	return c.JSON(out)
}

// ListInflows godoc
// @Summary      Listar entradas (más recientes primero)
// @Tags         inflows
// @Param        product  query  string  false  "Título del producto (subcadena)"
// @Router       /api/v1/inflows [get]
func (h *MovementHandler) ListInflows(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if !bindQuery(c, &in) {
		return nil
	}
	out, err := h.query.ListInflows(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return c.JSON(out)
}

// GetOutflow godoc
// @Summary      Detalle de una salida
// @Tags         outflows
// @Router       /api/v1/outflows/{id} [get]
func (h *MovementHandler) GetOutflow(c *fiber.Ctx) error {
	out, err := h.query.GetOutflow(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err, "salida no encontrada")
	}
	return c.JSON(out)
}

// ListOutflows godoc
// @Summary      Listar salidas (más recientes primero)
// @Tags         outflows
// @Param        product  query  string  false  "Título del producto (subcadena)"
// @Router       /api/v1/outflows [get]
func (h *MovementHandler) ListOutflows(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if !bindQuery(c, &in) {
		return nil
	}
	out, err := h.query.ListOutflows(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return c.JSON(out)
}
