package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Negocios-api/internal/application/dto"
	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalSession = "session"
)

// SessionRestorer contrato mínimo hacia el Session Manager: restaurar la
// sesión referenciada por el token contra el registro.
type SessionRestorer interface {
	Restore(ctx context.Context, sessionID string) (*authz.Session, error)
}

// AuthMiddleware valida el Bearer Token JWT y restaura la sesión persistida a
// c.Locals. Una sesión que ya no resuelve (usuario suspendido, negocio borrado,
// registro caído) responde SESSION_EXPIRED: el cliente debe re-autenticar,
// nunca recibe una sesión "autenticada pero sin capacidades".
func AuthMiddleware(jwtSecret string, sessions SessionRestorer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		sess, err := sessions.Restore(c.UserContext(), claims.SessionID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión ya no es válida, inicie sesión nuevamente"})
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// GetSession devuelve la sesión restaurada del contexto (después del middleware de auth).
func GetSession(c *fiber.Ctx) *authz.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*authz.Session)
	return s
}

// GetBusinessID devuelve el BusinessID de la sesión del contexto.
func GetBusinessID(c *fiber.Ctx) string {
	if s := GetSession(c); s != nil {
		return s.BusinessID
	}
	return ""
}

// GetUserID devuelve el UserID de la sesión del contexto.
func GetUserID(c *fiber.Ctx) string {
	if s := GetSession(c); s != nil {
		return s.UserID
	}
	return ""
}
