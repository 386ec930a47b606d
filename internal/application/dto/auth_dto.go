package dto

// RegisterRequest entrada para registro. OrgUnitID y DivisionID son
// opcionales: pueblan los conjuntos singleton del usuario nuevo.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	OrgUnitID  string `json:"orgUnitId"`
	DivisionID string `json:"divisionId"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserSummary resumen mínimo de usuario (registro y cambio de rol).
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// RegisterResponse salida de registro: token de sesión + resumen.
type RegisterResponse struct {
	Msg   string      `json:"msg"`
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// SessionUser payload que viaja dentro del token y se devuelve tal cual
// como objeto "user" del login. Divisions y OrgUnits son nombres.
type SessionUser struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Divisions []string `json:"divisions"`
	OrgUnits  []string `json:"orgUnits"`
}

// LoginResponse salida de login.
type LoginResponse struct {
	Msg   string      `json:"msg"`
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// OrgUnitResponse unidad organizacional para el cliente.
type OrgUnitResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DivisionResponse división para el cliente.
type DivisionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OrgUnitID   string `json:"orgUnitId"`
}

// OrgStructureResponse estructura organizacional completa; alimenta los
// dropdowns del formulario de registro (endpoint público).
type OrgStructureResponse struct {
	OrgUnits  []OrgUnitResponse  `json:"orgUnits"`
	Divisions []DivisionResponse `json:"divisions"`
}
