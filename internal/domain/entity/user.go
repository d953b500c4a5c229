package entity

import "time"

// Estados de User. "removed" es terminal: un usuario removido nunca se borra
// de la tabla (puede estar referenciado por registros históricos).
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusInactive  = "inactive"
	StatusRemoved   = "removed"
)

// User representa un usuario del sistema (pertenece a un Business).
// IsOwner es true para exactamente un usuario por negocio — el creado en el
// alta del tenant — y es inmutable después.
type User struct {
	ID         string
	BusinessID string
	Name       string
	Email      string
	Phone      string
	Role       string // restringido al vocabulario legal para el businessType del tenant
	Status     string // ver constantes Status*
	IsOwner    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CanSignIn informa si el usuario está en un estado que permite iniciar sesión.
func (u *User) CanSignIn() bool {
	return u.Status == StatusActive
}
