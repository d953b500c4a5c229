package registry

import (
	"unicode"

	"github.com/jhoicas/Negocios-api/internal/domain"
)

// MinSecretLength largo mínimo de los secretos compartidos del negocio.
const MinSecretLength = 8

// validateSecretStrength aplica la política de fortaleza: largo mínimo,
// mayúscula, minúscula y dígito. field es el nombre del campo ofensor que se
// reporta al formulario.
func validateSecretStrength(field, secret string) error {
	if len(secret) < MinSecretLength {
		return domain.NewValidationError(field, "debe tener al menos 8 caracteres")
	}
	var upper, lower, digit bool
	for _, r := range secret {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper {
		return domain.NewValidationError(field, "debe incluir al menos una mayúscula")
	}
	if !lower {
		return domain.NewValidationError(field, "debe incluir al menos una minúscula")
	}
	if !digit {
		return domain.NewValidationError(field, "debe incluir al menos un dígito")
	}
	return nil
}
