package http

import (
	"errors"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Negocios-api/internal/application/dto"
	"github.com/jhoicas/Negocios-api/internal/application/registry"
	"github.com/jhoicas/Negocios-api/internal/application/session"
	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
	"github.com/jhoicas/Negocios-api/pkg/config"
	"github.com/jhoicas/Negocios-api/pkg/jwt"
)

// AuthHandler alta de negocio, enrolamiento, ingreso y cierre de sesión.
type AuthHandler struct {
	registry *registry.Registry
	sessions *session.Manager
	jwtCfg   config.JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(reg *registry.Registry, sessions *session.Manager, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{registry: reg, sessions: sessions, jwtCfg: jwtCfg}
}

// CreateBusiness godoc
// @Summary      Crear negocio (alta de tenant)
// @Description  Crea el negocio con sus dos secretos y su usuario dueño, e inicia sesión como dueño.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBusinessRequest  true  "Datos del negocio y del dueño"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/business [post]
func (h *AuthHandler) CreateBusiness(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	business, owner, err := h.registry.CreateTenant(c.UserContext(), in)
	if err != nil {
		return writeAuthError(c, err)
	}
	return h.startSession(c, fiber.StatusCreated, owner, business)
}

// Enroll godoc
// @Summary      Enrolar personal
// @Description  Une a una persona a un negocio existente presentando el secreto de staff.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EnrollRequest  true  "business_id, staff_secret y datos de la persona"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/enroll [post]
func (h *AuthHandler) Enroll(c *fiber.Ctx) error {
	var in dto.EnrollRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.registry.Enroll(c.UserContext(), in)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
}

// SignIn godoc
// @Summary      Iniciar sesión
// @Description  negocio + email + secreto compartido. Toda falla responde el mismo error.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignInRequest  true  "business_id, email, secret"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, business, err := h.registry.SignIn(c.UserContext(), in)
	if err != nil {
		return writeAuthError(c, err)
	}
	return h.startSession(c, fiber.StatusOK, user, business)
}

// SignOut godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Success      204  "sesión cerrada"
// @Router       /api/auth/signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess != nil {
		if err := h.sessions.End(c.UserContext(), sess.ID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Identidad de la sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess := GetSession(c)
	return c.JSON(dto.MeResponse{
		UserID:       sess.UserID,
		BusinessID:   sess.BusinessID,
		BusinessType: sess.BusinessType,
		Role:         sess.Role,
		RoleLabel:    authz.RoleLabel(sess.Role),
		IsOwner:      sess.IsOwner,
		Capabilities: capabilityStrings(sess.Capabilities),
	})
}

// Roles godoc
// @Summary      Roles legales por tipo de negocio
// @Description  Vocabulario de roles (con etiquetas) para las pantallas de enrolamiento y gestión.
// @Tags         auth
// @Produce      json
// @Param        business_type  query  string  true  "Tipo de negocio"
// @Success      200  {array}  dto.RoleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/roles [get]
func (h *AuthHandler) Roles(c *fiber.Ctx) error {
	bt := c.Query("business_type")
	if !entity.ValidBusinessType(bt) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de negocio desconocido", Field: "business_type"})
	}
	roles := authz.RolesFor(bt)
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleResponse{Role: r.Role, Label: r.Label})
	}
	return c.JSON(out)
}

// startSession persiste la sesión, emite el JWT que la referencia y arma la
// respuesta con las capacidades efectivas.
func (h *AuthHandler) startSession(c *fiber.Ctx, status int, user *entity.User, business *entity.Business) error {
	sess, err := h.sessions.Start(c.UserContext(), user, business)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	token, err := jwt.Generate(h.jwtCfg.Secret, sess.ID, user.ID, business.ID, user.Role, h.jwtCfg.Issuer, h.jwtCfg.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(status).JSON(dto.SessionResponse{
		Token:        token,
		User:         *toUserResponse(user),
		Business:     *businessResponse(business),
		Capabilities: capabilityStrings(sess.Capabilities),
	})
}

// writeAuthError mapea errores del registro a HTTP. Credencial inválida nunca
// distingue la causa.
func writeAuthError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message, Field: vErr.Field})
	case errors.Is(err, domain.ErrInvalidCredential):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIAL", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre de negocio o el email ya está registrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// toUserResponse mapea la entidad al DTO público (nunca expone hashes).
func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		BusinessID: u.BusinessID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		RoleLabel:  authz.RoleLabel(u.Role),
		Status:     u.Status,
		IsOwner:    u.IsOwner,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func businessResponse(b *entity.Business) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:           b.ID,
		Name:         b.Name,
		BusinessType: b.BusinessType,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// capabilityStrings convierte el set a slice ordenado para respuestas estables.
func capabilityStrings(set authz.CapabilitySet) []string {
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}
