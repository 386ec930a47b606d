package admin

import (
	"fmt"
	"time"

	"github.com/cooltech/credman-api/internal/application/dto"
	"github.com/cooltech/credman-api/internal/domain"
	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/domain/repository"
)

// AdminUseCase administración de usuarios: asignación de división, cambio
// de rol y listados para el panel. Todas las rutas que lo exponen exigen
// rol admin en el router.
type AdminUseCase struct {
	users repository.UserRepository
	orgs  repository.OrgUnitRepository
	divs  repository.DivisionRepository
}

// NewAdminUseCase construye el caso de uso de administración.
func NewAdminUseCase(users repository.UserRepository, orgs repository.OrgUnitRepository, divs repository.DivisionRepository) *AdminUseCase {
	return &AdminUseCase{users: users, orgs: orgs, divs: divs}
}

// AssignUserToDivision asigna al usuario la división dada como conjunto
// singleton, sobrescribiendo cualquier asignación previa (la última
// escritura gana; el esquema admite varias divisiones pero el flujo de
// administración no).
func (uc *AdminUseCase) AssignUserToDivision(userID, divisionID string) (*dto.AssignDivisionResponse, error) {
	if divisionID == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	division, err := uc.divs.FindByID(divisionID)
	if err != nil {
		return nil, err
	}
	if division == nil {
		return nil, domain.ErrDivisionNotFound
	}

	user.DivisionIDs = []string{divisionID}
	user.UpdatedAt = time.Now().UTC()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return &dto.AssignDivisionResponse{
		Msg:  fmt.Sprintf("Usuario '%s' asignado a la división '%s'.", user.Name, division.Name),
		User: toAdminUser(user),
	}, nil
}

// RemoveUserFromDivision limpia el conjunto de divisiones del usuario.
// Falla con ErrNoDivision (400) si no tenía ninguna asignada.
func (uc *AdminUseCase) RemoveUserFromDivision(userID string) (*dto.AssignDivisionResponse, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if len(user.DivisionIDs) == 0 {
		return nil, domain.ErrNoDivision
	}

	user.DivisionIDs = []string{}
	user.UpdatedAt = time.Now().UTC()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return &dto.AssignDivisionResponse{
		Msg:  fmt.Sprintf("Usuario '%s' removido de todas sus divisiones.", user.Name),
		User: toAdminUser(user),
	}, nil
}

// ChangeUserRole cambia el rol del usuario. Cualquier valor fuera de la
// enumeración normal/management/admin se rechaza. El cambio es efectivo en
// la siguiente petición del usuario (el middleware recarga el rol); los
// tokens ya emitidos no se revocan.
func (uc *AdminUseCase) ChangeUserRole(userID, role string) (*dto.ChangeRoleResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return &dto.ChangeRoleResponse{
		Msg:         fmt.Sprintf("Rol de '%s' actualizado a '%s'.", user.Name, role),
		UpdatedUser: dto.UserSummary{ID: user.ID, Name: user.Name, Role: user.Role},
	}, nil
}

// ListUsers devuelve todos los usuarios sin hash de contraseña, sin filtros
// ni paginación (el panel de administración los consume completos).
func (uc *AdminUseCase) ListUsers() ([]dto.AdminUserResponse, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toAdminUser(u))
	}
	return out, nil
}

// ListDivisions devuelve todas las divisiones.
func (uc *AdminUseCase) ListDivisions() ([]dto.DivisionResponse, error) {
	divisions, err := uc.divs.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DivisionResponse, 0, len(divisions))
	for _, d := range divisions {
		out = append(out, dto.DivisionResponse{ID: d.ID, Name: d.Name, Description: d.Description, OrgUnitID: d.OrgUnitID})
	}
	return out, nil
}

// ListOrgUnits devuelve todas las unidades organizacionales.
func (uc *AdminUseCase) ListOrgUnits() ([]dto.OrgUnitResponse, error) {
	orgUnits, err := uc.orgs.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrgUnitResponse, 0, len(orgUnits))
	for _, ou := range orgUnits {
		out = append(out, dto.OrgUnitResponse{ID: ou.ID, Name: ou.Name, Description: ou.Description})
	}
	return out, nil
}

func toAdminUser(u *entity.User) dto.AdminUserResponse {
	return dto.AdminUserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		OrgUnits:  u.OrgUnitIDs,
		Divisions: u.DivisionIDs,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
