package dto

import "time"

// CreateCredentialRequest entrada para crear una credencial en una división.
type CreateCredentialRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateCredentialRequest actualización parcial: solo se tocan los campos
// presentes en el JSON (punteros nil = campo no enviado).
type UpdateCredentialRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// CredentialResponse credencial con el nombre de su división desnormalizado.
type CredentialResponse struct {
	ID           string    `json:"id"`
	DivisionID   string    `json:"divisionId"`
	DivisionName string    `json:"divisionName"`
	Username     string    `json:"username"`
	Password     string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
