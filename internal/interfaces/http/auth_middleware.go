package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cooltech/credman-api/internal/application/dto"
	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/domain/repository"
	pkgjwt "github.com/cooltech/credman-api/pkg/jwt"
)

// Local key para el usuario autenticado en Fiber.
const localUser = "current_user"

// AuthMiddleware valida el Bearer Token JWT y RECARGA el usuario desde la
// base antes de dejar pasar la petición. Los claims del token solo sirven
// para ubicar al sujeto: toda decisión de autorización posterior usa el
// usuario fresco (rol y divisiones vivos), nunca la instantánea firmada.
//
// Máquina de estados por petición:
//
//	sin header          → 401 MISSING_TOKEN
//	header malformado   → 401 INVALID_TOKEN
//	firma inválida/
//	token expirado      → 401 INVALID_TOKEN
//	usuario inexistente → 401 UNAUTHORIZED
//	usuario cargado     → autenticado, usuario en c.Locals
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Msg: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Msg: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Msg: "token vacío"})
		}

		claims, err := pkgjwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Msg: "token inválido o expirado"})
		}

		user, err := users.FindByID(claims.Subject)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Msg: "usuario no encontrado o eliminado"})
		}

		c.Locals(localUser, user)
		return c.Next()
	}
}

// RequireRole restringe la ruta a los roles indicados. Debe usarse DESPUÉS
// de AuthMiddleware: evalúa el rol actual del usuario recargado, no el del
// token, y no vuelve a verificar la frescura del token.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Msg: "autenticación requerida"})
		}
		for _, role := range allowedRoles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Msg: "acceso denegado: permisos insuficientes"})
	}
}

// CurrentUser devuelve el usuario autenticado del contexto (después del
// middleware de auth), o nil si no lo hay.
func CurrentUser(c *fiber.Ctx) *entity.User {
	user, _ := c.Locals(localUser).(*entity.User)
	return user
}
