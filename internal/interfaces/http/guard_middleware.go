package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Negocios-api/internal/application/dto"
	"github.com/jhoicas/Negocios-api/internal/domain/authz"
)

// accessRestricted cuerpo fijo del 403: mismo mensaje para toda denegación,
// sin filtrar qué capacidad faltó.
var accessRestricted = dto.ErrorResponse{
	Code:    "ACCESS_RESTRICTED",
	Message: "Access Restricted: contacta al dueño del negocio para obtener acceso",
}

// Guard middleware declarativo por ruta: la ruta declara su Requirement y la
// decisión pasa por authz.Allow, el mismo camino que cualquier check puntual.
func Guard(req authz.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authz.Allow(req, GetSession(c)) {
			return c.Status(fiber.StatusForbidden).JSON(accessRestricted)
		}
		return c.Next()
	}
}

// GuardAll exige que TODOS los requisitos pasen (composición estricta).
func GuardAll(reqs ...authz.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authz.AllowAll(GetSession(c), reqs...) {
			return c.Status(fiber.StatusForbidden).JSON(accessRestricted)
		}
		return c.Next()
	}
}
