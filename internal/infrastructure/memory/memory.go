// Package memory implementa los puertos de repositorio sobre mapas en
// memoria. Se usa en las pruebas de casos de uso y de handlers; no hay
// camino de producción que lo instancie.
package memory

import (
	"sort"
	"sync"

	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/domain/repository"
)

var (
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.OrgUnitRepository    = (*OrgUnitRepo)(nil)
	_ repository.DivisionRepository   = (*DivisionRepo)(nil)
	_ repository.CredentialRepository = (*CredentialRepo)(nil)
)

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

// NewUserRepository crea un repositorio de usuarios vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[string]entity.User)}
}

func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		out := u
		return &out, nil
	}
	return nil, nil
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepo) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// OrgUnitRepo repositorio de unidades organizacionales en memoria.
type OrgUnitRepo struct {
	mu       sync.RWMutex
	orgUnits map[string]entity.OrgUnit
}

// NewOrgUnitRepository crea un repositorio de unidades vacío.
func NewOrgUnitRepository() *OrgUnitRepo {
	return &OrgUnitRepo{orgUnits: make(map[string]entity.OrgUnit)}
}

func (r *OrgUnitRepo) Create(ou *entity.OrgUnit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orgUnits[ou.ID] = *ou
	return nil
}

func (r *OrgUnitRepo) FindByID(id string) (*entity.OrgUnit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ou, ok := r.orgUnits[id]; ok {
		out := ou
		return &out, nil
	}
	return nil, nil
}

func (r *OrgUnitRepo) List() ([]*entity.OrgUnit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.OrgUnit, 0, len(r.orgUnits))
	for _, ou := range r.orgUnits {
		cp := ou
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *OrgUnitRepo) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orgUnits)), nil
}

// DivisionRepo repositorio de divisiones en memoria.
type DivisionRepo struct {
	mu        sync.RWMutex
	divisions map[string]entity.Division
}

// NewDivisionRepository crea un repositorio de divisiones vacío.
func NewDivisionRepository() *DivisionRepo {
	return &DivisionRepo{divisions: make(map[string]entity.Division)}
}

func (r *DivisionRepo) Create(d *entity.Division) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.divisions[d.ID] = *d
	return nil
}

func (r *DivisionRepo) FindByID(id string) (*entity.Division, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.divisions[id]; ok {
		out := d
		return &out, nil
	}
	return nil, nil
}

func (r *DivisionRepo) List() ([]*entity.Division, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Division, 0, len(r.divisions))
	for _, d := range r.divisions {
		cp := d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// CredentialRepo repositorio de credenciales en memoria.
type CredentialRepo struct {
	mu    sync.RWMutex
	creds map[string]entity.Credential
}

// NewCredentialRepository crea un repositorio de credenciales vacío.
func NewCredentialRepository() *CredentialRepo {
	return &CredentialRepo{creds: make(map[string]entity.Credential)}
}

func (r *CredentialRepo) Create(c *entity.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creds[c.ID] = *c
	return nil
}

func (r *CredentialRepo) FindByID(id string) (*entity.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.creds[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

func (r *CredentialRepo) Update(c *entity.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creds[c.ID] = *c
	return nil
}

func (r *CredentialRepo) ListByDivision(divisionID string) ([]*entity.Credential, error) {
	return r.ListByDivisions([]string{divisionID})
}

func (r *CredentialRepo) ListByDivisions(divisionIDs []string) ([]*entity.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wanted := make(map[string]struct{}, len(divisionIDs))
	for _, id := range divisionIDs {
		wanted[id] = struct{}{}
	}
	var out []*entity.Credential
	for _, c := range r.creds {
		if _, ok := wanted[c.DivisionID]; ok {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
