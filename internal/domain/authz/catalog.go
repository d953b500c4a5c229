package authz

import (
	"github.com/jhoicas/Negocios-api/internal/domain"
	"github.com/jhoicas/Negocios-api/internal/domain/entity"
)

// baseCapabilities capacidades por rol, comunes a todos los tipos de negocio.
// El set efectivo de un usuario es exactamente el mapeado para su rol: las
// capacidades derivan del rol, no son editables por usuario. La única
// excepción es isOwner, que se corta en Allow (ver guard.go).
var baseCapabilities = map[string][]Capability{
	RoleOwner: {
		// El owner pasa todo check vía bypass; el mapeo completo existe de
		// todos modos para que las pantallas puedan listar sus permisos.
		CapManageTeam, CapManageSettings, CapAddEditDeleteProducts,
		CapViewAddEditOrders, CapManageCustomers, CapManageInventory,
		CapViewBasicAnalytics, CapPerformanceDashboard, CapFinancialReports,
		CapManageProduction, CapPOSSales, CapManageShipments, CapManageJobs,
	},
	RoleManager: {
		CapManageTeam, CapManageSettings, CapAddEditDeleteProducts,
		CapViewAddEditOrders, CapManageCustomers, CapManageInventory,
		CapViewBasicAnalytics, CapPerformanceDashboard,
	},
	RoleAccountant: {
		CapFinancialReports, CapViewBasicAnalytics, CapViewAddEditOrders,
	},
	RoleSales: {
		CapViewAddEditOrders, CapManageCustomers, CapViewBasicAnalytics,
	},
	RoleStaff: {
		CapViewAddEditOrders,
	},
	RoleProduction: {
		CapManageProduction, CapManageInventory,
	},
	RoleCashier: {
		CapPOSSales, CapViewAddEditOrders,
	},
	RoleWarehouse: {
		CapManageInventory, CapManageShipments,
	},
	RoleTechnician: {
		CapManageJobs,
	},
	RoleFulfillment: {
		CapManageShipments, CapViewAddEditOrders,
	},
}

// typeExtras capacidades adicionales por (tipo de negocio, rol). El gerente
// hereda la operación propia del giro: POS en retail, producción en
// manufactura, despachos en e-commerce, trabajos en servicios.
var typeExtras = map[string]map[string][]Capability{
	entity.TypeManufacturer: {RoleManager: {CapManageProduction}},
	entity.TypeRetailer:     {RoleManager: {CapPOSSales}},
	entity.TypeEcommerce:    {RoleManager: {CapManageShipments}},
	entity.TypeService:      {RoleManager: {CapManageJobs}},
}

// CapabilitiesFor devuelve el conjunto de capacidades para el par
// (tipo de negocio, rol). Pura y determinista. Si el rol no es legal para el
// tipo — corrupción de datos, o un tenant que cambió de tipo después de
// asignar el rol — devuelve el conjunto vacío: degradado pero seguro, nunca
// "todas las capacidades".
func CapabilitiesFor(businessType, role string) CapabilitySet {
	if !LegalRole(businessType, role) {
		return CapabilitySet{}
	}
	base, ok := baseCapabilities[role]
	if !ok {
		// Par legal sin mapeo: defecto de configuración. Verify lo reporta
		// en el arranque; aquí degradamos a vacío para producción.
		return CapabilitySet{}
	}
	set := NewCapabilitySet(base...)
	if extras, ok := typeExtras[businessType]; ok {
		for _, c := range extras[role] {
			set[c] = struct{}{}
		}
	}
	return set
}

// Verify comprueba que el mapeo rol→capacidades sea total sobre todos los
// pares legales y que toda llave mapeada pertenezca al catálogo. Se llama en
// el arranque: en development el main lo trata como fatal.
func Verify() error {
	for _, bt := range entity.BusinessTypes {
		for _, ri := range RolesFor(bt) {
			base, ok := baseCapabilities[ri.Role]
			if !ok {
				return &domain.ConfigurationError{BusinessType: bt, Role: ri.Role}
			}
			for _, c := range base {
				if !InCatalog(c) {
					return &domain.ConfigurationError{BusinessType: bt, Role: ri.Role}
				}
			}
			for _, c := range typeExtras[bt][ri.Role] {
				if !InCatalog(c) {
					return &domain.ConfigurationError{BusinessType: bt, Role: ri.Role}
				}
			}
		}
	}
	return nil
}
