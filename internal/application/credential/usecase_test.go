package credential_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooltech/credman-api/internal/application/credential"
	"github.com/cooltech/credman-api/internal/application/dto"
	"github.com/cooltech/credman-api/internal/domain"
	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/infrastructure/memory"
)

type fixture struct {
	creds *memory.CredentialRepo
	divs  *memory.DivisionRepo
	uc    *credential.CredentialUseCase
}

func newFixture() *fixture {
	f := &fixture{
		creds: memory.NewCredentialRepository(),
		divs:  memory.NewDivisionRepository(),
	}
	f.uc = credential.NewCredentialUseCase(f.creds, f.divs)
	return f
}

func (f *fixture) seedDivision(t *testing.T, id, name string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, f.divs.Create(&entity.Division{ID: id, Name: name, OrgUnitID: "ou-1", CreatedAt: now, UpdatedAt: now}))
}

func (f *fixture) seedCredential(t *testing.T, id, divisionID, username string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, f.creds.Create(&entity.Credential{
		ID: id, DivisionID: divisionID, Username: username, Password: "pw-" + id,
		CreatedAt: now, UpdatedAt: now.Add(time.Duration(len(id)) * time.Millisecond),
	}))
}

func userWith(role string, divisions ...string) *entity.User {
	return &entity.User{ID: "u-1", Name: "Ana", Role: role, DivisionIDs: divisions}
}

func TestListMine_SinDivision_RetornaErrNoDivision(t *testing.T) {
	f := newFixture()

	_, err := f.uc.ListMine(userWith(entity.RoleNormal))
	assert.ErrorIs(t, err, domain.ErrNoDivision,
		"un usuario sin división asignada no tiene credenciales que ver")
}

func TestListMine_DevuelveSoloSusDivisionesConNombre(t *testing.T) {
	f := newFixture()
	f.seedDivision(t, "div-1", "News management – IT")
	f.seedDivision(t, "div-2", "Opinion publishing – Finance")
	f.seedCredential(t, "c-1", "div-1", "svc-cms")
	f.seedCredential(t, "c-2", "div-1", "svc-mail")
	f.seedCredential(t, "c-3", "div-2", "svc-ajena")

	out, err := f.uc.ListMine(userWith(entity.RoleNormal, "div-1"))
	require.NoError(t, err)
	require.Len(t, out, 2, "las credenciales de otras divisiones no aparecen")
	for _, c := range out {
		assert.Equal(t, "div-1", c.DivisionID)
		assert.Equal(t, "News management – IT", c.DivisionName,
			"cada credencial lleva el nombre de su división desnormalizado")
	}
}

func TestListMine_DivisionSinCredenciales_ListaVacia(t *testing.T) {
	f := newFixture()
	f.seedDivision(t, "div-1", "News management – IT")

	out, err := f.uc.ListMine(userWith(entity.RoleNormal, "div-1"))
	require.NoError(t, err)
	assert.Empty(t, out, "una división sin credenciales produce lista vacía, no error")
}

func TestListByDivision_NormalFueraDeSuDivision_Forbidden(t *testing.T) {
	f := newFixture()
	f.seedDivision(t, "div-2", "Opinion publishing – Finance")
	f.seedCredential(t, "c-1", "div-2", "svc")

	_, err := f.uc.ListByDivision(userWith(entity.RoleNormal, "div-1"), "div-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListByDivision_ManagementSinRestriccionDeAlcance(t *testing.T) {
	f := newFixture()
	f.seedDivision(t, "div-2", "Opinion publishing – Finance")
	f.seedCredential(t, "c-1", "div-2", "svc")

	out, err := f.uc.ListByDivision(userWith(entity.RoleManagement, "div-1"), "div-2")
	require.NoError(t, err)
	assert.Len(t, out, 1, "management consulta cualquier división, asignada o no")
}

func TestListByDivision_DivisionInexistente_ListaVaciaNoError(t *testing.T) {
	f := newFixture()

	out, err := f.uc.ListByDivision(userWith(entity.RoleAdmin), "div-que-no-existe")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCreate_DivisionInexistente_Retorna404(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create("div-fantasma", dto.CreateCredentialRequest{Username: "svc", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrDivisionNotFound)
}

func TestCreate_CamposVacios_RetornaErrInvalidInput(t *testing.T) {
	f := newFixture()
	f.seedDivision(t, "div-1", "News management – IT")

	_, err := f.uc.Create("div-1", dto.CreateCredentialRequest{Username: "   ", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create("div-1", dto.CreateCredentialRequest{Username: "svc", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_PersisteYAnotaNombreDeDivision(t *testing.T) {
	f := newFixture()
	f.seedDivision(t, "div-1", "News management – IT")

	out, err := f.uc.Create("div-1", dto.CreateCredentialRequest{Username: " svc ", Password: "pw123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "svc", out.Username, "el username se guarda sin espacios alrededor")
	assert.Equal(t, "pw123", out.Password)
	assert.Equal(t, "News management – IT", out.DivisionName)

	stored, err := f.creds.FindByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "div-1", stored.DivisionID)
}

func TestUpdate_CredencialInexistente_Retorna404(t *testing.T) {
	f := newFixture()

	nuevo := "svc2"
	_, err := f.uc.Update("c-fantasma", dto.UpdateCredentialRequest{Username: &nuevo})
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

// Actualización parcial: solo cambian los campos presentes; el resto se
// conserva tal cual.
func TestUpdate_ParcialConservaCamposOmitidos(t *testing.T) {
	f := newFixture()
	f.seedDivision(t, "div-1", "News management – IT")
	f.seedCredential(t, "c-1", "div-1", "svc")

	nueva := "pw-nueva"
	out, err := f.uc.Update("c-1", dto.UpdateCredentialRequest{Password: &nueva})
	require.NoError(t, err)

	assert.Equal(t, "svc", out.Username, "el username omitido no cambia")
	assert.Equal(t, "pw-nueva", out.Password)

	stored, err := f.creds.FindByID("c-1")
	require.NoError(t, err)
	assert.Equal(t, "svc", stored.Username)
	assert.Equal(t, "pw-nueva", stored.Password)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))
}
