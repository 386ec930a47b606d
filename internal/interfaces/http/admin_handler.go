package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cooltech/credman-api/internal/application/admin"
	"github.com/cooltech/credman-api/internal/application/dto"
	"github.com/cooltech/credman-api/internal/domain"
)

// AdminHandler panel de administración: usuarios, divisiones y roles.
// El router protege todas sus rutas con AuthMiddleware + RequireRole(admin).
type AdminHandler struct {
	uc *admin.AdminUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *admin.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// AssignDivision godoc
// @Summary      Asignar usuario a división (sobrescribe la anterior)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "ID del usuario"
// @Param        body  body  dto.AssignDivisionRequest  true  "divisionId"
// @Success      200  {object}  dto.AssignDivisionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{userId}/division [patch]
func (h *AdminHandler) AssignDivision(c *fiber.Ctx) error {
	var in dto.AssignDivisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Msg: "cuerpo inválido"})
	}
	out, err := h.uc.AssignUserToDivision(c.Params("userId"), in.DivisionID)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// RemoveDivision godoc
// @Summary      Quitar al usuario su división
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.AssignDivisionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{userId}/division/remove [patch]
func (h *AdminHandler) RemoveDivision(c *fiber.Ctx) error {
	out, err := h.uc.RemoveUserFromDivision(c.Params("userId"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// ChangeRole godoc
// @Summary      Cambiar el rol de un usuario
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  string  true  "ID del usuario"
// @Param        body  body  dto.ChangeRoleRequest  true  "role: normal|management|admin"
// @Success      200  {object}  dto.ChangeRoleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{userId}/role [patch]
func (h *AdminHandler) ChangeRole(c *fiber.Ctx) error {
	var in dto.ChangeRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Msg: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeUserRole(c.Params("userId"), in.Role)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Todos los usuarios (sin hash de contraseña)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.AdminUserResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers()
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// ListDivisions godoc
// @Summary      Todas las divisiones
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.DivisionResponse
// @Router       /api/admin/divisions [get]
func (h *AdminHandler) ListDivisions(c *fiber.Ctx) error {
	out, err := h.uc.ListDivisions()
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// ListOrgUnits godoc
// @Summary      Todas las unidades organizacionales
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.OrgUnitResponse
// @Router       /api/admin/orgUnits [get]
func (h *AdminHandler) ListOrgUnits(c *fiber.Ctx) error {
	out, err := h.uc.ListOrgUnits()
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

func (h *AdminHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Msg: "divisionId es requerido"})
	case errors.Is(err, domain.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Msg: "rol inválido"})
	case errors.Is(err, domain.ErrNoDivision):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_DIVISION", Msg: "el usuario no tiene división asignada"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Msg: "el usuario no existe"})
	case errors.Is(err, domain.ErrDivisionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "DIVISION_NOT_FOUND", Msg: "la división no existe"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Msg: "error interno"})
}
