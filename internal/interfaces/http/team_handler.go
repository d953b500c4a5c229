package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Negocios-api/internal/application/dto"
	"github.com/jhoicas/Negocios-api/internal/application/team"
	"github.com/jhoicas/Negocios-api/internal/domain"
)

// TeamHandler gestión de personal del negocio (requiere manage_team).
type TeamHandler struct {
	uc *team.Team
}

// NewTeamHandler construye el handler.
func NewTeamHandler(uc *team.Team) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// List godoc
// @Summary      Listar personal
// @Tags         team
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.UserResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/team [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	users, err := h.uc.ListStaff(c.UserContext(), GetBusinessID(c), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.JSON(out)
}

// ChangeRole godoc
// @Summary      Reasignar rol de un miembro
// @Description  El rol debe ser legal para el tipo de negocio; el rol del dueño es inmutable.
// @Tags         team
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.ChangeRoleRequest  true  "Nuevo rol"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/team/{id}/role [put]
func (h *TeamHandler) ChangeRole(c *fiber.Ctx) error {
	var in dto.ChangeRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.ChangeRole(c.UserContext(), GetBusinessID(c), c.Params("id"), in.Role)
	if err != nil {
		return writeTeamError(c, err)
	}
	return c.JSON(toUserResponse(user))
}

// ChangeStatus godoc
// @Summary      Suspender o reactivar a un miembro
// @Description  Suspender cierra todas las sesiones del afectado de inmediato.
// @Tags         team
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.ChangeStatusRequest  true  "active o suspended"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/team/{id}/status [put]
func (h *TeamHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.ChangeStatus(c.UserContext(), GetBusinessID(c), c.Params("id"), in.Status)
	if err != nil {
		return writeTeamError(c, err)
	}
	return c.JSON(toUserResponse(user))
}

// Remove godoc
// @Summary      Remover a un miembro (terminal, sin deshacer)
// @Tags         team
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      204  "removido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/team/{id} [delete]
func (h *TeamHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), GetBusinessID(c), c.Params("id")); err != nil {
		return writeTeamError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func writeTeamError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message, Field: vErr.Field})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la transición no está permitida para este usuario"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// pageParams lee limit/offset con defaults y tope.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
