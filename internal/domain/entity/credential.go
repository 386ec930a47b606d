package entity

import "time"

// Credential cuenta compartida de un servicio externo, propiedad de UNA
// división. La contraseña se guarda en claro: el modelo de producto es una
// bóveda compartida cuyo valor es justamente poder leerla (ver DESIGN.md,
// donde queda registrado como riesgo conocido).
type Credential struct {
	ID         string    `bson:"_id" json:"id"`
	DivisionID string    `bson:"division" json:"divisionId"`
	Username   string    `bson:"username" json:"username"`
	Password   string    `bson:"password" json:"password"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
