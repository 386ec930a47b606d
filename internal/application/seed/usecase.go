package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/domain/repository"
)

// orgUnitNames unidades organizacionales iniciales.
var orgUnitNames = []string{
	"News management",
	"Software reviews",
	"Hardware reviews",
	"Opinion publishing",
}

// divisionSuffixes divisiones creadas bajo cada unidad.
var divisionSuffixes = []string{"IT", "Finance", "Editorial"}

// Seeder crea las unidades organizacionales y divisiones básicas cuando la
// base está vacía. Es el único trabajo de arranque del sistema; no hay
// tareas en segundo plano.
type Seeder struct {
	orgs repository.OrgUnitRepository
	divs repository.DivisionRepository
	log  zerolog.Logger
}

// NewSeeder construye el seeder inicial.
func NewSeeder(orgs repository.OrgUnitRepository, divs repository.DivisionRepository, log zerolog.Logger) *Seeder {
	return &Seeder{orgs: orgs, divs: divs, log: log}
}

// Run siembra los datos iniciales si no existe ninguna unidad
// organizacional. Idempotente: una segunda ejecución observa count > 0 y
// retorna sin escribir nada.
func (s *Seeder) Run() error {
	count, err := s.orgs.Count()
	if err != nil {
		return fmt.Errorf("seed: contar org units: %w", err)
	}
	if count > 0 {
		return nil
	}

	s.log.Info().Msg("sembrando unidades organizacionales y divisiones iniciales")

	now := time.Now().UTC()
	for _, name := range orgUnitNames {
		ou := &entity.OrgUnit{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.orgs.Create(ou); err != nil {
			return fmt.Errorf("seed: crear org unit %q: %w", name, err)
		}
		for _, suffix := range divisionSuffixes {
			d := &entity.Division{
				ID:        uuid.New().String(),
				Name:      fmt.Sprintf("%s – %s", name, suffix),
				OrgUnitID: ou.ID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.divs.Create(d); err != nil {
				return fmt.Errorf("seed: crear división %q: %w", d.Name, err)
			}
		}
	}

	s.log.Info().Int("orgUnits", len(orgUnitNames)).
		Int("divisions", len(orgUnitNames)*len(divisionSuffixes)).
		Msg("datos iniciales creados")
	return nil
}
