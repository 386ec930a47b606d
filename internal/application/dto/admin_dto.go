package dto

import "time"

// AssignDivisionRequest entrada para asignar división a un usuario.
type AssignDivisionRequest struct {
	DivisionID string `json:"divisionId"`
}

// ChangeRoleRequest entrada para cambiar el rol de un usuario.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// AdminUserResponse usuario completo para el panel de administración
// (sin hash de contraseña).
type AdminUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	OrgUnits  []string  `json:"orgUnits"`
	Divisions []string  `json:"divisions"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AssignDivisionResponse salida de asignación/remoción de división.
type AssignDivisionResponse struct {
	Msg  string            `json:"msg"`
	User AdminUserResponse `json:"user"`
}

// ChangeRoleResponse salida del cambio de rol.
type ChangeRoleResponse struct {
	Msg         string      `json:"msg"`
	UpdatedUser UserSummary `json:"updatedUser"`
}
