package entity

import "time"

// Roles soportados por la aplicación, ordenados por nivel de permisos:
//   - normal:     puede ver credenciales de sus divisiones asignadas
//   - management: normal + crear y actualizar credenciales
//   - admin:      management + administración de usuarios y divisiones
const (
	RoleNormal     = "normal"
	RoleManagement = "management"
	RoleAdmin      = "admin"
)

// ValidRole indica si role pertenece a la enumeración cerrada de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleNormal, RoleManagement, RoleAdmin:
		return true
	}
	return false
}

// User cuenta de la aplicación. Email es único (minúsculas, sin espacios).
// PasswordHash nunca se serializa hacia el cliente.
// DivisionIDs es un conjunto en el esquema, pero el flujo de administración
// siempre lo escribe como singleton (la última asignación gana).
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	OrgUnitIDs   []string  `bson:"org_units" json:"orgUnits"`
	DivisionIDs  []string  `bson:"divisions" json:"divisions"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// InDivision indica si el usuario tiene asignada la división dada.
func (u *User) InDivision(divisionID string) bool {
	for _, id := range u.DivisionIDs {
		if id == divisionID {
			return true
		}
	}
	return false
}
