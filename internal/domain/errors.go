package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// ErrInvalidCredential cubre tanto "negocio desconocido" como "secreto
	// incorrecto": ambos casos deben ser indistinguibles desde afuera para
	// no permitir enumerar tenants por diferencia de mensajes.
	ErrInvalidCredential = errors.New("credenciales inválidas")

	// ErrOrphanedSession indica que la sesión persistida referencia un
	// usuario o negocio que ya no resuelve (o no está activo). Se maneja
	// descartando la sesión, nunca como error visible al usuario.
	ErrOrphanedSession = errors.New("sesión huérfana")
)

// ValidationError entrada malformada o que viola una política; incluye el
// campo ofensor para que el formulario que llamó pueda señalarlo.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Message)
}

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation informa si err es un ValidationError y lo devuelve.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ConfigurationError un par (tipo de negocio, rol) legal sin mapeo de
// capacidades: defecto de configuración, no un estado runtime válido.
// Fatal en development; en producción se degrada a conjunto vacío.
type ConfigurationError struct {
	BusinessType string
	Role         string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuración: sin capacidades mapeadas para (%s, %s)", e.BusinessType, e.Role)
}
