package dto

import "time"

// BusinessResponse salida de un negocio (sin hashes de secretos). El contacto
// del dueño solo se completa en el perfil del negocio: es a quien el personal
// acude cuando una pantalla le niega acceso.
type BusinessResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessType string    `json:"business_type"`
	Status       string    `json:"status"`
	OwnerName    string    `json:"owner_name,omitempty"`
	OwnerEmail   string    `json:"owner_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RenameBusinessRequest entrada para renombrar el negocio.
type RenameBusinessRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ChangeBusinessTypeRequest entrada para cambiar el tipo de negocio del tenant.
type ChangeBusinessTypeRequest struct {
	BusinessType string `json:"business_type" validate:"required"`
}
