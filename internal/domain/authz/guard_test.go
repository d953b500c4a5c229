package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del guard: Allow(requirement, session)
// ──────────────────────────────────────────────────────────────────────────────

func sessionForRole(bt, role string, isOwner bool) *authz.Session {
	return &authz.Session{
		ID:           "s-1",
		UserID:       "u-1",
		BusinessID:   "b-1",
		BusinessType: bt,
		Role:         role,
		IsOwner:      isOwner,
		Capabilities: authz.CapabilitiesFor(bt, role),
	}
}

// Sesión nil o vacía: nada pasa, ni siquiera RequireNone.
func TestAllow_SesionNilNoPasa(t *testing.T) {
	assert.False(t, authz.Allow(authz.RequireNone(), nil))
	assert.False(t, authz.Allow(authz.RequireCapability(authz.CapManageTeam), nil))
	assert.False(t, authz.Allow(authz.RequireOwner(), &authz.Session{}))
}

// RequireNone: cualquier sesión activa pasa sin importar el rol.
func TestAllow_RequireNone(t *testing.T) {
	s := sessionForRole(entity.TypeTrader, authz.RoleStaff, false)
	assert.True(t, authz.Allow(authz.RequireNone(), s))
}

// Capacidad presente en el set efectivo → permitido; ausente → denegado.
func TestAllow_Capacidad(t *testing.T) {
	s := sessionForRole(entity.TypeRetailer, authz.RoleSales, false)
	assert.True(t, authz.Allow(authz.RequireCapability(authz.CapManageCustomers), s))
	assert.False(t, authz.Allow(authz.RequireCapability(authz.CapManageTeam), s))
}

// Escenario: manager sin financialReports intenta una acción que la exige.
func TestAllow_ManagerSinFinancialReports(t *testing.T) {
	s := sessionForRole(entity.TypeRetailer, authz.RoleManager, false)
	assert.False(t, authz.Allow(authz.RequireCapability(authz.CapFinancialReports), s),
		"manager sin financialReports debe ser denegado")
}

// Bypass de owner: isOwner pasa TODA capacidad del catálogo, aunque el mapeo
// de su rol no la incluya.
func TestAllow_OwnerBypassTotal(t *testing.T) {
	s := sessionForRole(entity.TypeService, authz.RoleOwner, true)
	// Set deliberadamente vacío para simular un mapeo incompleto o viejo.
	s.Capabilities = authz.CapabilitySet{}
	for _, c := range authz.Catalog {
		assert.True(t, authz.Allow(authz.RequireCapability(c), s),
			"owner debe pasar %s sin importar el mapeo", c)
	}
	assert.True(t, authz.Allow(authz.RequireOwner(), s))
}

// RequireOwner: un no-owner es denegado aunque su rol tenga todo lo demás.
func TestAllow_OwnerOnlyDenegadoParaNoOwner(t *testing.T) {
	s := sessionForRole(entity.TypeEcommerce, authz.RoleManager, false)
	assert.False(t, authz.Allow(authz.RequireOwner(), s))
}

// Composición "estricta gana": ownerOnly + capacidad exige ambos.
func TestAllowAll_EstrictaGana(t *testing.T) {
	owner := sessionForRole(entity.TypeWholesaler, authz.RoleOwner, true)
	manager := sessionForRole(entity.TypeWholesaler, authz.RoleManager, false)

	reqs := []authz.Requirement{
		authz.RequireOwner(),
		authz.RequireCapability(authz.CapManageSettings),
	}
	assert.True(t, authz.AllowAll(owner, reqs...))
	assert.False(t, authz.AllowAll(manager, reqs...),
		"manager cumple la capacidad pero no ownerOnly → denegado")
	assert.False(t, authz.AllowAll(nil, reqs...))
}
