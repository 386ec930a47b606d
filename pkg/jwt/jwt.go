package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL ventana fija de validez de un token de sesión. No hay lista de
// revocación en el servidor: un token emitido sigue siendo válido hasta su
// expiración aunque el rol o las divisiones del usuario cambien después.
const SessionTTL = 2 * time.Hour

// Claims incluye los claims estándar JWT más los campos propios de la
// aplicación. Divisions y OrgUnits llevan NOMBRES (no IDs), desnormalizados
// en el momento de la emisión: es una instantánea para mostrar en el
// cliente, nunca la fuente de decisiones de autorización (el middleware
// recarga el usuario en cada petición).
type Claims struct {
	jwt.RegisteredClaims
	Name      string   `json:"name"`
	Role      string   `json:"role"` // "normal" | "management" | "admin"
	Divisions []string `json:"divisions"`
	OrgUnits  []string `json:"orgUnits"`
}

// Generate genera un token HS256 firmado con la identidad del usuario y la
// instantánea de nombres de divisiones/unidades. ttl normalmente es
// SessionTTL; los tests pasan valores negativos para fabricar tokens
// expirados.
func Generate(secret, issuer, userID, name, role string, divisions, orgUnits []string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:      name,
		Role:      role,
		Divisions: divisions,
		OrgUnits:  orgUnits,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna error si el token es inválido, expirado o con firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
