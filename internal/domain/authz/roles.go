package authz

import "github.com/jhoicas/Negocios-api/internal/domain/entity"

// Roles válidos. "owner" existe en todo tipo de negocio pero solo lo porta el
// usuario creado en el alta del tenant; nunca es asignable por enrolamiento.
const (
	RoleOwner       = "owner"
	RoleManager     = "manager"
	RoleAccountant  = "accountant"
	RoleSales       = "sales"
	RoleStaff       = "staff"
	RoleProduction  = "production"  // solo manufacturer
	RoleCashier     = "cashier"     // solo retailer
	RoleWarehouse   = "warehouse"   // wholesaler y distributor
	RoleTechnician  = "technician"  // solo service
	RoleFulfillment = "fulfillment" // solo ecommerce
)

// RoleInfo rol con su etiqueta humana. Las etiquetas viven solo aquí: las
// pantallas las piden al resolver, nunca duplican sus propias tablas.
type RoleInfo struct {
	Role  string `json:"role"`
	Label string `json:"label"`
}

// roleLabels etiqueta humana por rol.
var roleLabels = map[string]string{
	RoleOwner:       "Propietario",
	RoleManager:     "Gerente",
	RoleAccountant:  "Contador",
	RoleSales:       "Ventas",
	RoleStaff:       "Personal",
	RoleProduction:  "Producción",
	RoleCashier:     "Cajero",
	RoleWarehouse:   "Bodega",
	RoleTechnician:  "Técnico",
	RoleFulfillment: "Despachos",
}

// rolesByType roles legales por tipo de negocio, en orden de presentación.
// El rol extra de cada tipo va antes de "staff" (el de menor privilegio).
var rolesByType = map[string][]string{
	entity.TypeManufacturer: {RoleOwner, RoleManager, RoleAccountant, RoleSales, RoleProduction, RoleStaff},
	entity.TypeRetailer:     {RoleOwner, RoleManager, RoleAccountant, RoleSales, RoleCashier, RoleStaff},
	entity.TypeWholesaler:   {RoleOwner, RoleManager, RoleAccountant, RoleSales, RoleWarehouse, RoleStaff},
	entity.TypeDistributor:  {RoleOwner, RoleManager, RoleAccountant, RoleSales, RoleWarehouse, RoleStaff},
	entity.TypeTrader:       {RoleOwner, RoleManager, RoleAccountant, RoleSales, RoleStaff},
	entity.TypeService:      {RoleOwner, RoleManager, RoleAccountant, RoleSales, RoleTechnician, RoleStaff},
	entity.TypeEcommerce:    {RoleOwner, RoleManager, RoleAccountant, RoleSales, RoleFulfillment, RoleStaff},
}

// RolesFor devuelve la lista ordenada de roles que pueden existir legalmente
// en un tenant del tipo dado, cada uno con su etiqueta. Tipo desconocido →
// lista vacía (los formularios no ofrecen nada).
func RolesFor(businessType string) []RoleInfo {
	roles, ok := rolesByType[businessType]
	if !ok {
		return nil
	}
	out := make([]RoleInfo, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleInfo{Role: r, Label: roleLabels[r]})
	}
	return out
}

// LegalRole informa si role pertenece al vocabulario legal del tipo dado.
func LegalRole(businessType, role string) bool {
	for _, r := range rolesByType[businessType] {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultRole rol de menor privilegio, asignado por defecto al enrolarse.
const DefaultRole = RoleStaff

// AssignableRole informa si role puede asignarse a personal del tipo dado.
// Igual que LegalRole pero excluye owner: el owner solo nace con el tenant.
func AssignableRole(businessType, role string) bool {
	return role != RoleOwner && LegalRole(businessType, role)
}

// RoleLabel devuelve la etiqueta humana del rol ("" si no existe).
func RoleLabel(role string) string {
	return roleLabels[role]
}
