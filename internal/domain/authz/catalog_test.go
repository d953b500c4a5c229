package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Negocios-api/internal/domain/authz"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del catálogo de permisos y el resolver de roles
// ──────────────────────────────────────────────────────────────────────────────

// El mapeo debe ser total: para todo tipo de negocio, todo rol legal tiene
// capacidades definidas (y Verify no reporta defectos de configuración).
func TestCapabilitiesFor_TotalSobreRolesLegales(t *testing.T) {
	require.NoError(t, authz.Verify(), "el mapeo rol→capacidades debe ser total")

	for _, bt := range entity.BusinessTypes {
		roles := authz.RolesFor(bt)
		require.NotEmpty(t, roles, "todo tipo de negocio debe tener roles")
		for _, ri := range roles {
			set := authz.CapabilitiesFor(bt, ri.Role)
			assert.NotNil(t, set, "CapabilitiesFor nunca debe devolver nil para (%s, %s)", bt, ri.Role)
			if ri.Role != authz.RoleOwner && ri.Role != authz.RoleStaff {
				assert.NotEmpty(t, set, "rol %s en %s debe mapear a algo", ri.Role, bt)
			}
		}
	}
}

// Rol ilegal para el tipo (ej. production en un retailer, o datos corruptos):
// conjunto vacío, nunca "todas las capacidades" y nunca panic.
func TestCapabilitiesFor_RolIlegalDevuelveVacio(t *testing.T) {
	set := authz.CapabilitiesFor(entity.TypeRetailer, authz.RoleProduction)
	assert.Empty(t, set, "production no es legal en retailer → set vacío")

	set = authz.CapabilitiesFor(entity.TypeTrader, "rol-inexistente")
	assert.Empty(t, set)

	set = authz.CapabilitiesFor("tipo-inexistente", authz.RoleManager)
	assert.Empty(t, set)
}

// production solo existe en tenants de tipo manufacturer.
func TestRolesFor_ProductionSoloEnManufacturer(t *testing.T) {
	has := func(bt, role string) bool {
		for _, ri := range authz.RolesFor(bt) {
			if ri.Role == role {
				return true
			}
		}
		return false
	}
	assert.True(t, has(entity.TypeManufacturer, authz.RoleProduction))
	for _, bt := range entity.BusinessTypes {
		if bt == entity.TypeManufacturer {
			continue
		}
		assert.False(t, has(bt, authz.RoleProduction), "production no debe existir en %s", bt)
	}
}

// Las etiquetas salen del resolver, no de tablas duplicadas por pantalla.
func TestRolesFor_IncluyeEtiquetas(t *testing.T) {
	for _, ri := range authz.RolesFor(entity.TypeService) {
		assert.NotEmpty(t, ri.Label, "el rol %s debe tener etiqueta humana", ri.Role)
	}
	assert.Equal(t, "Técnico", authz.RoleLabel(authz.RoleTechnician))
}

// El rol owner nunca es asignable por enrolamiento, en ningún tipo.
func TestAssignableRole_OwnerNuncaAsignable(t *testing.T) {
	for _, bt := range entity.BusinessTypes {
		assert.False(t, authz.AssignableRole(bt, authz.RoleOwner))
		assert.True(t, authz.AssignableRole(bt, authz.DefaultRole),
			"staff debe ser asignable en %s", bt)
	}
}

// El manager de un retailer hereda POS; el de un manufacturer, producción.
func TestCapabilitiesFor_ExtrasPorTipo(t *testing.T) {
	retail := authz.CapabilitiesFor(entity.TypeRetailer, authz.RoleManager)
	assert.True(t, retail.Has(authz.CapPOSSales))
	assert.False(t, retail.Has(authz.CapManageProduction))

	manuf := authz.CapabilitiesFor(entity.TypeManufacturer, authz.RoleManager)
	assert.True(t, manuf.Has(authz.CapManageProduction))
	assert.False(t, manuf.Has(authz.CapPOSSales))
}

// Las capacidades derivan del rol: el manager no tiene financialReports.
func TestCapabilitiesFor_ManagerSinFinancialReports(t *testing.T) {
	for _, bt := range entity.BusinessTypes {
		set := authz.CapabilitiesFor(bt, authz.RoleManager)
		assert.False(t, set.Has(authz.CapFinancialReports),
			"manager en %s no debe tener financialReports", bt)
	}
	assert.True(t, authz.CapabilitiesFor(entity.TypeTrader, authz.RoleAccountant).Has(authz.CapFinancialReports))
}
