package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a códigos de estado; ver internal/interfaces/http.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrDivisionNotFound   = errors.New("división no encontrada")
	ErrCredentialNotFound = errors.New("credencial no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrNoDivision         = errors.New("el usuario no tiene división asignada")
	ErrInvalidCredentials = errors.New("correo o contraseña inválidos")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
