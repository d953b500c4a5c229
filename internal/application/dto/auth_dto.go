package dto

import "time"

// CreateBusinessRequest entrada para crear un negocio (alta de tenant).
// Los dos secretos van en texto plano y se hashean en el use case; deben
// cumplir la política de fortaleza y ser distintos entre sí.
type CreateBusinessRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	BusinessType string `json:"business_type" validate:"required"`
	OwnerName    string `json:"owner_name" validate:"required,min=1,max=200"`
	OwnerEmail   string `json:"owner_email" validate:"required,email"`
	OwnerPhone   string `json:"owner_phone" validate:"omitempty,max=30"`
	OwnerSecret  string `json:"owner_secret" validate:"required,min=8"`
	StaffSecret  string `json:"staff_secret" validate:"required,min=8"`
}

// EnrollRequest entrada para enrolar personal en un negocio existente
// presentando el secreto de staff. Role es opcional; vacío → rol de menor
// privilegio.
type EnrollRequest struct {
	BusinessID  string `json:"business_id" validate:"required,uuid"`
	StaffSecret string `json:"staff_secret" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	Role        string `json:"role" validate:"omitempty"`
}

// SignInRequest entrada para iniciar sesión: negocio + email + uno de los dos
// secretos compartidos (el de owner solo sirve para el dueño).
type SignInRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
	Email      string `json:"email" validate:"required,email"`
	Secret     string `json:"secret" validate:"required"`
}

// RotateSecretRequest entrada para rotar uno de los secretos del negocio.
// Which: "owner" o "staff". Solo afecta enrolamientos/ingresos futuros.
type RotateSecretRequest struct {
	Which     string `json:"which" validate:"required,oneof=owner staff"`
	NewSecret string `json:"new_secret" validate:"required,min=8"`
}

// UserResponse salida de un usuario (nunca incluye hashes).
type UserResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	RoleLabel  string    `json:"role_label"`
	Status     string    `json:"status"`
	IsOwner    bool      `json:"is_owner"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SessionResponse salida de una sesión iniciada: token + identidad +
// capacidades efectivas para que el cliente pinte sus pantallas.
type SessionResponse struct {
	Token        string       `json:"token"`
	User         UserResponse `json:"user"`
	Business     BusinessResponse `json:"business"`
	Capabilities []string     `json:"capabilities"`
}
