package dto

// RoleResponse rol legal para un tipo de negocio, con su etiqueta de pantalla.
type RoleResponse struct {
	Role  string `json:"role"`
	Label string `json:"label"`
}

// MeResponse identidad de la sesión actual: quién soy, en qué negocio y qué
// puedo hacer. Las pantallas del cliente se pintan con Capabilities.
type MeResponse struct {
	UserID       string   `json:"user_id"`
	BusinessID   string   `json:"business_id"`
	BusinessType string   `json:"business_type"`
	Role         string   `json:"role"`
	RoleLabel    string   `json:"role_label"`
	IsOwner      bool     `json:"is_owner"`
	Capabilities []string `json:"capabilities"`
}
