package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooltech/credman-api/internal/application/admin"
	"github.com/cooltech/credman-api/internal/application/auth"
	"github.com/cooltech/credman-api/internal/application/credential"
	"github.com/cooltech/credman-api/internal/application/dto"
	"github.com/cooltech/credman-api/internal/application/seed"
	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/infrastructure/memory"
	apphttp "github.com/cooltech/credman-api/internal/interfaces/http"
)

// api aplicación completa sobre repositorios en memoria, con los datos
// iniciales ya sembrados. Replica el cableado de cmd/api sin Mongo.
type api struct {
	app   *fiber.App
	users *memory.UserRepo
}

func newAPI(t *testing.T) *api {
	t.Helper()
	users := memory.NewUserRepository()
	orgs := memory.NewOrgUnitRepository()
	divs := memory.NewDivisionRepository()
	creds := memory.NewCredentialRepository()

	require.NoError(t, seed.NewSeeder(orgs, divs, zerolog.Nop()).Run())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(users, orgs, divs, auth.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer}),
		CredentialUC: credential.NewCredentialUseCase(creds, divs),
		AdminUC:      admin.NewAdminUseCase(users, orgs, divs),
		Users:        users,
		JWTSecret:    testJWTSecret,
	})
	return &api{app: app, users: users}
}

// do lanza una petición JSON con Bearer opcional y decodifica el cuerpo en out.
func (a *api) do(t *testing.T, method, path, token string, body, out interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// register registra un usuario y devuelve su id y token de sesión.
func (a *api) register(t *testing.T, name, email, password string) (id, token string) {
	t.Helper()
	var out dto.RegisterResponse
	status := a.do(t, http.MethodPost, "/api/auth/register", "",
		dto.RegisterRequest{Name: name, Email: email, Password: password}, &out)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, out.Token)
	return out.User.ID, out.Token
}

// promote eleva el rol directamente en el repo; el siguiente login (o la
// recarga del middleware) ya lo observa.
func (a *api) promote(t *testing.T, userID, role string) {
	t.Helper()
	u, err := a.users.FindByID(userID)
	require.NoError(t, err)
	require.NotNil(t, u)
	u.Role = role
	require.NoError(t, a.users.Update(u))
}

// firstDivision devuelve la primera división sembrada.
func (a *api) firstDivision(t *testing.T) dto.DivisionResponse {
	t.Helper()
	var out dto.OrgStructureResponse
	status := a.do(t, http.MethodGet, "/api/auth/org-structure", "", nil, &out)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, out.Divisions)
	return out.Divisions[0]
}

// Flujo completo: registro, asignación por el admin, credenciales en la
// división y lectura por el usuario asignado.
func TestAPI_FlujoRegistroAsignacionYLectura(t *testing.T) {
	a := newAPI(t)

	adminID, adminToken := a.register(t, "Root", "root@example.com", "admin12345")
	a.promote(t, adminID, entity.RoleAdmin)

	userID, userToken := a.register(t, "Ana", "ana@example.com", "secreta123")
	division := a.firstDivision(t)

	// Sin división asignada el usuario no tiene credenciales que ver.
	var errBody dto.ErrorResponse
	status := a.do(t, http.MethodGet, "/api/credentials/my", userToken, nil, &errBody)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "NO_DIVISION", errBody.Code)

	// El admin asigna la división y crea dos credenciales en ella.
	status = a.do(t, http.MethodPatch, "/api/admin/users/"+userID+"/division", adminToken,
		dto.AssignDivisionRequest{DivisionID: division.ID}, nil)
	require.Equal(t, http.StatusOK, status)

	for _, username := range []string{"svc-cms", "svc-mail"} {
		status = a.do(t, http.MethodPost, "/api/divisions/"+division.ID+"/credentials", adminToken,
			dto.CreateCredentialRequest{Username: username, Password: "pw-" + username}, nil)
		require.Equal(t, http.StatusCreated, status)
	}

	// El usuario ve exactamente esas dos, anotadas con el nombre de división.
	var mine []dto.CredentialResponse
	status = a.do(t, http.MethodGet, "/api/credentials/my", userToken, nil, &mine)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, mine, 2)
	usernames := []string{mine[0].Username, mine[1].Username}
	assert.ElementsMatch(t, []string{"svc-cms", "svc-mail"}, usernames)
	for _, c := range mine {
		assert.Equal(t, division.ID, c.DivisionID)
		assert.Equal(t, division.Name, c.DivisionName)
	}
}

// Management crea una credencial y luego actualiza solo el password; el
// username sobrevive intacto a la actualización parcial.
func TestAPI_ManagementCreaYActualizaParcialmente(t *testing.T) {
	a := newAPI(t)

	mgmtID, mgmtToken := a.register(t, "Gerente", "gerente@example.com", "gestion123")
	a.promote(t, mgmtID, entity.RoleManagement)
	division := a.firstDivision(t)

	var created dto.CredentialResponse
	status := a.do(t, http.MethodPost, "/api/divisions/"+division.ID+"/credentials", mgmtToken,
		dto.CreateCredentialRequest{Username: "svc", Password: "original"}, &created)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "svc", created.Username)

	nueva := "rotada"
	var updated dto.CredentialResponse
	status = a.do(t, http.MethodPut, "/api/credentials/"+created.ID, mgmtToken,
		dto.UpdateCredentialRequest{Password: &nueva}, &updated)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "svc", updated.Username, "el username omitido conserva su valor")
	assert.Equal(t, "rotada", updated.Password)
}

// El fallo de login es uniforme también a nivel HTTP: mismo código de estado
// y mismo cuerpo para email desconocido y para password incorrecto.
func TestAPI_LoginFalloUniformeEnHTTP(t *testing.T) {
	a := newAPI(t)
	a.register(t, "Ana", "ana@example.com", "correcta1")

	call := func(email, password string) (int, string) {
		raw, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp, err := a.app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(body)
	}

	statusDesconocido, bodyDesconocido := call("nadie@example.com", "loquesea")
	statusPassword, bodyPassword := call("ana@example.com", "incorrecta")

	assert.Equal(t, http.StatusForbidden, statusDesconocido)
	assert.Equal(t, statusDesconocido, statusPassword)
	assert.Equal(t, bodyDesconocido, bodyPassword,
		"las dos causas de fallo deben ser indistinguibles para el cliente")
}

func TestAPI_RegistroDuplicado_Retorna409(t *testing.T) {
	a := newAPI(t)
	a.register(t, "Ana", "ana@example.com", "secreta123")

	var errBody dto.ErrorResponse
	status := a.do(t, http.MethodPost, "/api/auth/register", "",
		dto.RegisterRequest{Name: "Otra", Email: "ana@example.com", Password: "otra12345"}, &errBody)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "EMAIL_EXISTS", errBody.Code)
}

// El rol normal no puede escribir credenciales ni entrar al panel admin.
func TestAPI_RolNormalBloqueadoEnEscrituraYAdmin(t *testing.T) {
	a := newAPI(t)
	_, userToken := a.register(t, "Ana", "ana@example.com", "secreta123")
	division := a.firstDivision(t)

	status := a.do(t, http.MethodPost, "/api/divisions/"+division.ID+"/credentials", userToken,
		dto.CreateCredentialRequest{Username: "svc", Password: "pw"}, nil)
	assert.Equal(t, http.StatusForbidden, status, "crear credenciales exige management o admin")

	status = a.do(t, http.MethodGet, "/api/admin/users", userToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status, "el panel de administración exige rol admin")
}

// El rol normal tampoco puede listar credenciales de divisiones ajenas.
func TestAPI_RolNormalFueraDeSuDivision_Forbidden(t *testing.T) {
	a := newAPI(t)
	_, userToken := a.register(t, "Ana", "ana@example.com", "secreta123")
	division := a.firstDivision(t) // no asignada al usuario

	var errBody dto.ErrorResponse
	status := a.do(t, http.MethodGet, "/api/divisions/"+division.ID+"/credentials", userToken, nil, &errBody)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", errBody.Code)
}

// Rutas protegidas sin token responden 401 y las públicas siguen abiertas.
func TestAPI_RutasProtegidasYPublicas(t *testing.T) {
	a := newAPI(t)

	assert.Equal(t, http.StatusUnauthorized, a.do(t, http.MethodGet, "/api/credentials/my", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, a.do(t, http.MethodGet, "/api/admin/users", "", nil, nil))
	assert.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/api/auth/org-structure", "", nil, nil))
}

// El cambio de rol por el admin es efectivo en la siguiente petición del
// usuario, sin reemitir el token.
func TestAPI_CambioDeRolEfectivoConTokenViejo(t *testing.T) {
	a := newAPI(t)
	adminID, adminToken := a.register(t, "Root", "root@example.com", "admin12345")
	a.promote(t, adminID, entity.RoleAdmin)

	userID, userToken := a.register(t, "Ana", "ana@example.com", "secreta123")
	division := a.firstDivision(t)

	// Con rol normal la escritura está prohibida.
	status := a.do(t, http.MethodPost, "/api/divisions/"+division.ID+"/credentials", userToken,
		dto.CreateCredentialRequest{Username: "svc", Password: "pw"}, nil)
	require.Equal(t, http.StatusForbidden, status)

	status = a.do(t, http.MethodPatch, "/api/admin/users/"+userID+"/role", adminToken,
		dto.ChangeRoleRequest{Role: entity.RoleManagement}, nil)
	require.Equal(t, http.StatusOK, status)

	// El mismo token (claims "normal") ya abre la escritura: manda el rol vivo.
	status = a.do(t, http.MethodPost, "/api/divisions/"+division.ID+"/credentials", userToken,
		dto.CreateCredentialRequest{Username: "svc", Password: "pw"}, nil)
	assert.Equal(t, http.StatusCreated, status)
}
