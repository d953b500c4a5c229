package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Negocios-api/internal/application/dto"
	"github.com/jhoicas/Negocios-api/internal/application/registry"
	"github.com/jhoicas/Negocios-api/internal/application/usecase"
	"github.com/jhoicas/Negocios-api/internal/domain"
)

// BusinessHandler perfil y ajustes del negocio.
type BusinessHandler struct {
	uc       *usecase.BusinessUseCase
	registry *registry.Registry
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase, reg *registry.Registry) *BusinessHandler {
	return &BusinessHandler{uc: uc, registry: reg}
}

// Get godoc
// @Summary      Perfil del negocio
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetBusinessID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Renombrar el negocio
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RenameBusinessRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/business/name [put]
func (h *BusinessHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Rename(c.UserContext(), GetBusinessID(c), in)
	if err != nil {
		return writeBusinessError(c, err)
	}
	return c.JSON(out)
}

// ChangeType godoc
// @Summary      Cambiar el tipo de negocio
// @Description  Cambia el vocabulario de roles del tenant; invalida los snapshots de sesión de todo el negocio.
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangeBusinessTypeRequest  true  "Nuevo tipo"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/business/type [put]
func (h *BusinessHandler) ChangeType(c *fiber.Ctx) error {
	var in dto.ChangeBusinessTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeType(c.UserContext(), GetBusinessID(c), in.BusinessType)
	if err != nil {
		return writeBusinessError(c, err)
	}
	return c.JSON(out)
}

// RotateSecret godoc
// @Summary      Rotar uno de los secretos del negocio
// @Description  Solo afecta enrolamientos e ingresos futuros; las sesiones vigentes no se tocan.
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.RotateSecretRequest  true  "which: owner|staff, new_secret"
// @Success      204   "secreto rotado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/business/secret [put]
func (h *BusinessHandler) RotateSecret(c *fiber.Ctx) error {
	var in dto.RotateSecretRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.registry.RotateSecret(c.UserContext(), GetBusinessID(c), in); err != nil {
		return writeBusinessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func writeBusinessError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message, Field: vErr.Field})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
