package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo adaptador sobre la colección "credentials".
type CredentialRepo struct {
	col *mongo.Collection
}

// NewCredentialRepository construye el adaptador de credenciales.
func NewCredentialRepository(db *mongo.Database) *CredentialRepo {
	return &CredentialRepo{col: db.Collection("credentials")}
}

// Create persiste una nueva credencial.
func (r *CredentialRepo) Create(c *entity.Credential) error {
	if _, err := r.col.InsertOne(context.Background(), c); err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

// FindByID busca por ID; (nil, nil) si no existe.
func (r *CredentialRepo) FindByID(id string) (*entity.Credential, error) {
	var c entity.Credential
	err := r.col.FindOne(context.Background(), bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &c, nil
}

// Update reemplaza el documento completo de la credencial.
func (r *CredentialRepo) Update(c *entity.Credential) error {
	_, err := r.col.ReplaceOne(context.Background(), bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("update credential: %w", err)
	}
	return nil
}

// ListByDivision devuelve las credenciales de una división.
func (r *CredentialRepo) ListByDivision(divisionID string) ([]*entity.Credential, error) {
	return r.find(bson.M{"division": divisionID})
}

// ListByDivisions devuelve las credenciales de cualquiera de las divisiones
// dadas ($in sobre el campo division).
func (r *CredentialRepo) ListByDivisions(divisionIDs []string) ([]*entity.Credential, error) {
	return r.find(bson.M{"division": bson.M{"$in": divisionIDs}})
}

func (r *CredentialRepo) find(filter bson.M) ([]*entity.Credential, error) {
	cursor, err := r.col.Find(context.Background(), filter)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer cursor.Close(context.Background())

	var creds []*entity.Credential
	if err := cursor.All(context.Background(), &creds); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}
