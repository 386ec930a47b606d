package credential

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cooltech/credman-api/internal/application/dto"
	"github.com/cooltech/credman-api/internal/domain"
	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/domain/repository"
)

// CredentialUseCase casos de uso sobre credenciales compartidas. La regla
// central es de alcance: un usuario solo actúa dentro de sus divisiones
// asignadas, evaluadas por petición contra el usuario recién cargado por el
// middleware (nunca contra los claims del token).
type CredentialUseCase struct {
	creds repository.CredentialRepository
	divs  repository.DivisionRepository
}

// NewCredentialUseCase construye el caso de uso de credenciales.
func NewCredentialUseCase(creds repository.CredentialRepository, divs repository.DivisionRepository) *CredentialUseCase {
	return &CredentialUseCase{creds: creds, divs: divs}
}

// ListMine devuelve todas las credenciales de las divisiones del usuario,
// cada una con el nombre de su división desnormalizado. Un usuario sin
// división asignada recibe ErrNoDivision (403 en el handler).
func (uc *CredentialUseCase) ListMine(user *entity.User) ([]dto.CredentialResponse, error) {
	if len(user.DivisionIDs) == 0 {
		return nil, domain.ErrNoDivision
	}
	creds, err := uc.creds.ListByDivisions(user.DivisionIDs)
	if err != nil {
		return nil, err
	}
	return uc.annotate(creds)
}

// ListByDivision devuelve las credenciales de una división concreta. Un rol
// "normal" solo puede consultar divisiones propias; management y admin no
// tienen restricción de alcance. Una división inexistente produce una lista
// vacía, no 404 (no hay chequeo de existencia en lectura).
func (uc *CredentialUseCase) ListByDivision(user *entity.User, divisionID string) ([]dto.CredentialResponse, error) {
	if user.Role == entity.RoleNormal && !user.InDivision(divisionID) {
		return nil, domain.ErrForbidden
	}
	creds, err := uc.creds.ListByDivision(divisionID)
	if err != nil {
		return nil, err
	}
	return uc.annotate(creds)
}

// Create crea una credencial en la división dada. La integridad referencial
// se garantiza solo aquí, con un chequeo de existencia en el momento de la
// escritura (no hay constraints en la base).
func (uc *CredentialUseCase) Create(divisionID string, in dto.CreateCredentialRequest) (*dto.CredentialResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	division, err := uc.divs.FindByID(divisionID)
	if err != nil {
		return nil, err
	}
	if division == nil {
		return nil, domain.ErrDivisionNotFound
	}

	now := time.Now().UTC()
	cred := &entity.Credential{
		ID:         uuid.New().String(),
		DivisionID: divisionID,
		Username:   username,
		Password:   in.Password,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.creds.Create(cred); err != nil {
		return nil, err
	}
	out := toResponse(cred, division.Name)
	return &out, nil
}

// Update actualiza parcialmente una credencial: solo los campos presentes
// en la petición; los omitidos conservan su valor.
func (uc *CredentialUseCase) Update(id string, in dto.UpdateCredentialRequest) (*dto.CredentialResponse, error) {
	cred, err := uc.creds.FindByID(id)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrCredentialNotFound
	}

	if in.Username != nil {
		cred.Username = strings.TrimSpace(*in.Username)
	}
	if in.Password != nil {
		cred.Password = *in.Password
	}
	cred.UpdatedAt = time.Now().UTC()

	if err := uc.creds.Update(cred); err != nil {
		return nil, err
	}

	divisionName := ""
	if division, err := uc.divs.FindByID(cred.DivisionID); err == nil && division != nil {
		divisionName = division.Name
	}
	out := toResponse(cred, divisionName)
	return &out, nil
}

// annotate resuelve el nombre de división de cada credencial, cacheando las
// divisiones ya consultadas dentro de la misma petición.
func (uc *CredentialUseCase) annotate(creds []*entity.Credential) ([]dto.CredentialResponse, error) {
	names := make(map[string]string)
	out := make([]dto.CredentialResponse, 0, len(creds))
	for _, c := range creds {
		name, ok := names[c.DivisionID]
		if !ok {
			division, err := uc.divs.FindByID(c.DivisionID)
			if err != nil {
				return nil, err
			}
			if division != nil {
				name = division.Name
			}
			names[c.DivisionID] = name
		}
		out = append(out, toResponse(c, name))
	}
	return out, nil
}

func toResponse(c *entity.Credential, divisionName string) dto.CredentialResponse {
	return dto.CredentialResponse{
		ID:           c.ID,
		DivisionID:   c.DivisionID,
		DivisionName: divisionName,
		Username:     c.Username,
		Password:     c.Password,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
