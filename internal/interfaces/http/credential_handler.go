package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/cooltech/credman-api/internal/application/credential"
	"github.com/cooltech/credman-api/internal/application/dto"
	"github.com/cooltech/credman-api/internal/domain"
)

// CredentialHandler maneja el listado, creación y actualización de
// credenciales. Todas sus rutas pasan antes por AuthMiddleware.
type CredentialHandler struct {
	uc *credential.CredentialUseCase
}

// NewCredentialHandler construye el handler de credenciales.
func NewCredentialHandler(uc *credential.CredentialUseCase) *CredentialHandler {
	return &CredentialHandler{uc: uc}
}

// ListMine godoc
// @Summary      Credenciales de las divisiones del usuario autenticado
// @Tags         credentials
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.CredentialResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/credentials/my [get]
func (h *CredentialHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(CurrentUser(c))
	if err != nil {
		if errors.Is(err, domain.ErrNoDivision) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_DIVISION", Msg: "no tienes divisiones asignadas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Msg: "error cargando credenciales"})
	}
	return c.JSON(out)
}

// ListByDivision godoc
// @Summary      Credenciales de una división concreta
// @Tags         credentials
// @Produce      json
// @Security     BearerAuth
// @Param        divisionId  path  string  true  "ID de la división"
// @Success      200  {array}   dto.CredentialResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/divisions/{divisionId}/credentials [get]
func (h *CredentialHandler) ListByDivision(c *fiber.Ctx) error {
	out, err := h.uc.ListByDivision(CurrentUser(c), c.Params("divisionId"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Msg: "solo puedes ver credenciales de tu propia división"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Msg: "error cargando credenciales"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear credencial en una división (management/admin)
// @Tags         credentials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        divisionId  path  string  true  "ID de la división"
// @Param        body  body  dto.CreateCredentialRequest  true  "username, password"
// @Success      201  {object}  dto.CredentialResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/divisions/{divisionId}/credentials [post]
func (h *CredentialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCredentialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Msg: "cuerpo inválido"})
	}
	// El ID de división se persiste en la entidad: hay que copiarlo fuera
	// del buffer reutilizable de fasthttp antes de que viva más que la
	// petición.
	out, err := h.uc.Create(utils.CopyString(c.Params("divisionId")), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Msg: "username y password son requeridos"})
		case errors.Is(err, domain.ErrDivisionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "DIVISION_NOT_FOUND", Msg: "la división no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Msg: "error creando la credencial"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar credencial (parcial, management/admin)
// @Tags         credentials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID de la credencial"
// @Param        body  body  dto.UpdateCredentialRequest  true  "username?, password?"
// @Success      200  {object}  dto.CredentialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credentials/{id} [put]
func (h *CredentialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCredentialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Msg: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CREDENTIAL_NOT_FOUND", Msg: "la credencial no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Msg: "error actualizando la credencial"})
	}
	return c.JSON(out)
}
