package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cooltech/credman-api/internal/application/dto"
	"github.com/cooltech/credman-api/internal/domain"
	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/domain/repository"
	pkgjwt "github.com/cooltech/credman-api/pkg/jwt"
)

// JWTConfig configuración para la emisión de tokens de sesión.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro, login y lectura
// pública de la estructura organizacional.
type AuthUseCase struct {
	users  repository.UserRepository
	orgs   repository.OrgUnitRepository
	divs   repository.DivisionRepository
	jwtCfg JWTConfig

	// dummyHash se compara cuando el email no existe, para que login
	// falle con el mismo costo de bcrypt en ambos caminos y el tiempo de
	// respuesta no revele si la cuenta existe.
	dummyHash []byte
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, orgs repository.OrgUnitRepository, divs repository.DivisionRepository, jwtCfg JWTConfig) *AuthUseCase {
	dummy, err := bcrypt.GenerateFromPassword([]byte("credman-timing-pad"), bcrypt.DefaultCost)
	if err != nil {
		// GenerateFromPassword solo falla con un costo fuera de rango.
		panic("auth: bcrypt dummy hash: " + err.Error())
	}
	return &AuthUseCase{users: users, orgs: orgs, divs: divs, jwtCfg: jwtCfg, dummyHash: dummy}
}

// Register crea un usuario con rol "normal": normaliza el email, verifica
// duplicados, hashea el password con bcrypt y persiste. Los conjuntos de
// orgUnit/división quedan como singletons si se enviaron IDs. Devuelve un
// token de sesión firmado más el resumen mínimo del usuario.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := NormalizeEmail(in.Email)

	existing, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleNormal,
		OrgUnitIDs:   []string{},
		DivisionIDs:  []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.OrgUnitID != "" {
		user.OrgUnitIDs = []string{in.OrgUnitID}
	}
	if in.DivisionID != "" {
		user.DivisionIDs = []string{in.DivisionID}
	}

	if err := uc.users.Create(user); err != nil {
		return nil, err
	}

	token, err := uc.signToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Msg:   "Registro exitoso.",
		Token: token,
		User:  dto.UserSummary{ID: user.ID, Name: user.Name, Role: user.Role},
	}, nil
}

// Login verifica email/password y emite un token de sesión de 2 horas.
// Email desconocido y password incorrecto producen exactamente el mismo
// error (y el mismo trabajo de bcrypt): el cliente no puede distinguir
// cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(NormalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.signToken(user)
	if err != nil {
		return nil, err
	}
	divisions, orgUnits, err := uc.resolveNames(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Msg:   "Inicio de sesión exitoso.",
		Token: token,
		User: dto.SessionUser{
			ID:        user.ID,
			Name:      user.Name,
			Role:      user.Role,
			Divisions: divisions,
			OrgUnits:  orgUnits,
		},
	}, nil
}

// OrgStructure lectura pública de todas las unidades y divisiones; alimenta
// los dropdowns del formulario de registro.
func (uc *AuthUseCase) OrgStructure() (*dto.OrgStructureResponse, error) {
	orgUnits, err := uc.orgs.List()
	if err != nil {
		return nil, err
	}
	divisions, err := uc.divs.List()
	if err != nil {
		return nil, err
	}
	out := &dto.OrgStructureResponse{
		OrgUnits:  make([]dto.OrgUnitResponse, 0, len(orgUnits)),
		Divisions: make([]dto.DivisionResponse, 0, len(divisions)),
	}
	for _, ou := range orgUnits {
		out.OrgUnits = append(out.OrgUnits, dto.OrgUnitResponse{ID: ou.ID, Name: ou.Name, Description: ou.Description})
	}
	for _, d := range divisions {
		out.Divisions = append(out.Divisions, dto.DivisionResponse{ID: d.ID, Name: d.Name, Description: d.Description, OrgUnitID: d.OrgUnitID})
	}
	return out, nil
}

// signToken resuelve los NOMBRES de divisiones/unidades del usuario y los
// incrusta en el token. Es una instantánea al momento de emisión: evita un
// join por petición a cambio de frescura (el middleware recarga al usuario
// para autorizar, así que la instantánea solo se usa para mostrar).
func (uc *AuthUseCase) signToken(user *entity.User) (string, error) {
	divisions, orgUnits, err := uc.resolveNames(user)
	if err != nil {
		return "", err
	}
	return pkgjwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, user.ID, user.Name, user.Role, divisions, orgUnits, pkgjwt.SessionTTL)
}

func (uc *AuthUseCase) resolveNames(user *entity.User) (divisions, orgUnits []string, err error) {
	divisions = make([]string, 0, len(user.DivisionIDs))
	for _, id := range user.DivisionIDs {
		d, err := uc.divs.FindByID(id)
		if err != nil {
			return nil, nil, err
		}
		if d != nil {
			divisions = append(divisions, d.Name)
		}
	}
	orgUnits = make([]string, 0, len(user.OrgUnitIDs))
	for _, id := range user.OrgUnitIDs {
		ou, err := uc.orgs.FindByID(id)
		if err != nil {
			return nil, nil, err
		}
		if ou != nil {
			orgUnits = append(orgUnits, ou.Name)
		}
	}
	return divisions, orgUnits, nil
}

// NormalizeEmail lleva el email a la forma canónica almacenada: minúsculas
// y sin espacios alrededor.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
