package entity

import "time"

// Tipos de negocio soportados (deben coincidir con el CHECK de la tabla businesses).
const (
	TypeManufacturer = "manufacturer"
	TypeRetailer     = "retailer"
	TypeWholesaler   = "wholesaler"
	TypeDistributor  = "distributor"
	TypeTrader       = "trader"
	TypeService      = "service"
	TypeEcommerce    = "ecommerce"
)

// BusinessTypes lista ordenada de tipos válidos (para formularios y validación).
var BusinessTypes = []string{
	TypeManufacturer,
	TypeRetailer,
	TypeWholesaler,
	TypeDistributor,
	TypeTrader,
	TypeService,
	TypeEcommerce,
}

// ValidBusinessType informa si bt pertenece a la enumeración.
func ValidBusinessType(bt string) bool {
	for _, t := range BusinessTypes {
		if t == bt {
			return true
		}
	}
	return false
}

// Business representa un negocio/tenant del sistema. Cada negocio guarda dos
// secretos independientes: el del dueño (creación/ingreso del owner) y el del
// personal (enrolamiento de staff). Invariante: los dos hashes nunca pueden
// corresponder al mismo secreto, o la distinción owner/staff pierde sentido.
type Business struct {
	ID              string
	Name            string
	BusinessType    string // ver constantes Type*
	OwnerSecretHash string // bcrypt, nunca plano después de persistir
	StaffSecretHash string // bcrypt, independiente del anterior
	Status          string // active, suspended, inactive
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
