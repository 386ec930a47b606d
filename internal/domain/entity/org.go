package entity

import "time"

// OrgUnit agrupación organizacional de nivel superior (ej. "News management").
// No contiene credenciales directamente; agrupa divisiones.
type OrgUnit struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Division unidad mínima de alcance organizacional. Pertenece a UN OrgUnit
// y es dueña de cero o más credenciales.
type Division struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	OrgUnitID   string    `bson:"org_unit" json:"orgUnitId"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
