package dto

// ChangeRoleRequest reasignación de rol de un miembro del personal.
// El rol debe ser legal para el tipo de negocio del tenant.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ChangeStatusRequest transición de estado: suspend / reactivate.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}
