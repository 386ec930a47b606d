package repository

import "github.com/cooltech/credman-api/internal/domain/entity"

// OrgUnitRepository puerto de persistencia para unidades organizacionales.
type OrgUnitRepository interface {
	Create(ou *entity.OrgUnit) error
	FindByID(id string) (*entity.OrgUnit, error)
	List() ([]*entity.OrgUnit, error)
	// Count se usa solo para decidir si el seed inicial debe correr.
	Count() (int64, error)
}

// DivisionRepository puerto de persistencia para divisiones.
type DivisionRepository interface {
	Create(d *entity.Division) error
	FindByID(id string) (*entity.Division, error)
	List() ([]*entity.Division, error)
}
