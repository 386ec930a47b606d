package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cooltech/credman-api/internal/application/admin"
	"github.com/cooltech/credman-api/internal/application/auth"
	"github.com/cooltech/credman-api/internal/application/credential"
	"github.com/cooltech/credman-api/internal/domain/entity"
	"github.com/cooltech/credman-api/internal/domain/repository"
)

// RouterDeps dependencias para el router. Users lo necesita el middleware
// de auth para recargar al usuario en cada petición protegida.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CredentialUC *credential.CredentialUseCase
	AdminUC      *admin.AdminUseCase
	Users        repository.UserRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/org-structure", authHandler.OrgStructure)

	authRequired := AuthMiddleware(deps.JWTSecret, deps.Users)
	manageRoles := RequireRole(entity.RoleManagement, entity.RoleAdmin)

	// Credenciales (protegido; crear y actualizar exigen management/admin)
	credHandler := NewCredentialHandler(deps.CredentialUC)
	api.Get("/credentials/my", authRequired, credHandler.ListMine)
	api.Get("/divisions/:divisionId/credentials", authRequired, credHandler.ListByDivision)
	api.Post("/divisions/:divisionId/credentials", authRequired, manageRoles, credHandler.Create)
	api.Put("/credentials/:id", authRequired, manageRoles, credHandler.Update)

	// Panel de administración (solo admin)
	adminHandler := NewAdminHandler(deps.AdminUC)
	adminGroup := api.Group("/admin", authRequired, RequireRole(entity.RoleAdmin))
	adminGroup.Get("/users", adminHandler.ListUsers)
	adminGroup.Get("/divisions", adminHandler.ListDivisions)
	adminGroup.Get("/orgUnits", adminHandler.ListOrgUnits)
	adminGroup.Patch("/users/:userId/division", adminHandler.AssignDivision)
	adminGroup.Patch("/users/:userId/division/remove", adminHandler.RemoveDivision)
	adminGroup.Patch("/users/:userId/role", adminHandler.ChangeRole)
}
