package authz

// Capability es una llave de permiso opaca. El catálogo es cerrado y se fija
// en build time: nunca hay capacidades creadas por usuarios.
type Capability string

// Catálogo completo de capacidades. Los nombres se conservan tal como los
// consumen las pantallas (mezcla de snake y camel por razones históricas).
const (
	CapManageTeam            Capability = "manage_team"
	CapManageSettings        Capability = "manage_settings"
	CapAddEditDeleteProducts Capability = "addEditDeleteProducts"
	CapViewAddEditOrders     Capability = "viewAddEditOrders"
	CapManageCustomers       Capability = "manage_customers"
	CapManageInventory       Capability = "manage_inventory"
	CapViewBasicAnalytics    Capability = "view_basic_analytics"
	CapPerformanceDashboard  Capability = "performanceDashboard"
	CapFinancialReports      Capability = "financialReports"
	CapManageProduction      Capability = "manage_production"
	CapPOSSales              Capability = "pos_sales"
	CapManageShipments       Capability = "manage_shipments"
	CapManageJobs            Capability = "manage_jobs"
)

// Catalog lista cerrada de todas las capacidades declaradas.
var Catalog = []Capability{
	CapManageTeam,
	CapManageSettings,
	CapAddEditDeleteProducts,
	CapViewAddEditOrders,
	CapManageCustomers,
	CapManageInventory,
	CapViewBasicAnalytics,
	CapPerformanceDashboard,
	CapFinancialReports,
	CapManageProduction,
	CapPOSSales,
	CapManageShipments,
	CapManageJobs,
}

// CapabilitySet conjunto de capacidades efectivas.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet construye un set a partir de llaves.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// Has informa si c pertenece al set. Un set nil se comporta como vacío.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Clone devuelve una copia independiente del set.
func (s CapabilitySet) Clone() CapabilitySet {
	out := make(CapabilitySet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// InCatalog informa si c es una capacidad declarada en el catálogo.
func InCatalog(c Capability) bool {
	for _, k := range Catalog {
		if k == c {
			return true
		}
	}
	return false
}
