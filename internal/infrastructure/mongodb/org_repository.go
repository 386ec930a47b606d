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

var (
	_ repository.OrgUnitRepository  = (*OrgUnitRepo)(nil)
	_ repository.DivisionRepository = (*DivisionRepo)(nil)
)

// OrgUnitRepo adaptador sobre la colección "org_units".
type OrgUnitRepo struct {
	col *mongo.Collection
}

// NewOrgUnitRepository construye el adaptador de unidades organizacionales.
func NewOrgUnitRepository(db *mongo.Database) *OrgUnitRepo {
	return &OrgUnitRepo{col: db.Collection("org_units")}
}

// Create persiste una unidad organizacional.
func (r *OrgUnitRepo) Create(ou *entity.OrgUnit) error {
	if _, err := r.col.InsertOne(context.Background(), ou); err != nil {
		return fmt.Errorf("insert org unit: %w", err)
	}
	return nil
}

// FindByID busca por ID; (nil, nil) si no existe.
func (r *OrgUnitRepo) FindByID(id string) (*entity.OrgUnit, error) {
	var ou entity.OrgUnit
	err := r.col.FindOne(context.Background(), bson.M{"_id": id}).Decode(&ou)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find org unit: %w", err)
	}
	return &ou, nil
}

// List devuelve todas las unidades organizacionales.
func (r *OrgUnitRepo) List() ([]*entity.OrgUnit, error) {
	cursor, err := r.col.Find(context.Background(), bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list org units: %w", err)
	}
	defer cursor.Close(context.Background())

	var orgUnits []*entity.OrgUnit
	if err := cursor.All(context.Background(), &orgUnits); err != nil {
		return nil, fmt.Errorf("decode org units: %w", err)
	}
	return orgUnits, nil
}

// Count cantidad de unidades; decide si el seed inicial corre.
func (r *OrgUnitRepo) Count() (int64, error) {
	n, err := r.col.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count org units: %w", err)
	}
	return n, nil
}

// DivisionRepo adaptador sobre la colección "divisions".
type DivisionRepo struct {
	col *mongo.Collection
}

// NewDivisionRepository construye el adaptador de divisiones.
func NewDivisionRepository(db *mongo.Database) *DivisionRepo {
	return &DivisionRepo{col: db.Collection("divisions")}
}

// Create persiste una división.
func (r *DivisionRepo) Create(d *entity.Division) error {
	if _, err := r.col.InsertOne(context.Background(), d); err != nil {
		return fmt.Errorf("insert division: %w", err)
	}
	return nil
}

// FindByID busca por ID; (nil, nil) si no existe.
func (r *DivisionRepo) FindByID(id string) (*entity.Division, error) {
	var d entity.Division
	err := r.col.FindOne(context.Background(), bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find division: %w", err)
	}
	return &d, nil
}

// List devuelve todas las divisiones.
func (r *DivisionRepo) List() ([]*entity.Division, error) {
	cursor, err := r.col.Find(context.Background(), bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	defer cursor.Close(context.Background())

	var divisions []*entity.Division
	if err := cursor.All(context.Background(), &divisions); err != nil {
		return nil, fmt.Errorf("decode divisions: %w", err)
	}
	return divisions, nil
}
