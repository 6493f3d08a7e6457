package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/LeandroFernandess/SGE/internal/application/dto"
	"github.com/LeandroFernandess/SGE/pkg/logger"
)

// ReferenceService lo implementan CategoryUseCase, BrandUseCase y SupplierUseCase.
type ReferenceService interface {
	Create(ctx context.Context, in dto.ReferenceRequest) (*dto.ReferenceResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ReferenceResponse, error)
	Update(ctx context.Context, id string, in dto.ReferenceRequest) (*dto.ReferenceResponse, error)
	List(ctx context.Context, in dto.ReferenceListRequest) (*dto.ReferenceListResponse, error)
	Delete(ctx context.Context, id string) error
}

// ReferenceHandler maneja el CRUD HTTP de categorías, marcas y proveedores.
type ReferenceHandler struct {
	svc      ReferenceService
	log      *logger.Logger
	notFound string
}

// NewReferenceHandler construye el handler. notFound es el mensaje del 404 (ej. "categoría no encontrada").
func NewReferenceHandler(svc ReferenceService, log *logger.Logger, notFound string) *ReferenceHandler {
	return &ReferenceHandler{svc: svc, log: log, notFound: notFound}
}

// Create godoc
// @Summary      Crear categoría / marca / proveedor
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReferenceRequest  true  "Nombre y descripción"
// @Success      201   {object}  dto.ReferenceResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
func (h *ReferenceHandler) Create(c *fiber.Ctx) error {
	var in dto.ReferenceRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, h.notFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener por ID
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.ReferenceResponse
// @Failure      404  {object}  dto.ErrorResponse
func (h *ReferenceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err, h.notFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar (filtro name: subcadena sin distinguir mayúsculas)
// @Produce      json
// @Param        name    query  string  false  "Nombre"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.ReferenceListResponse
func (h *ReferenceHandler) List(c *fiber.Ctx) error {
	var in dto.ReferenceListRequest
	if !bindQuery(c, &in) {
		return nil
	}
	out, err := h.svc.List(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err, h.notFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar nombre y descripción
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.ReferenceRequest  true  "Datos"
// @Success      200   {object}  dto.ReferenceResponse
// @Failure      404   {object}  dto.ErrorResponse
func (h *ReferenceHandler) Update(c *fiber.Ctx) error {
	var in dto.ReferenceRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	out, err := h.svc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err, h.notFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar (409 IN_USE si está referenciado)
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
func (h *ReferenceHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err, h.notFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
