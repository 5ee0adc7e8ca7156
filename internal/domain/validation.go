package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// DescripcionPattern accepts letters (including accented Spanish characters)
// and spaces only. The browser client applies the exact same pattern while
// typing; the server enforces it regardless of which client submitted.
var DescripcionPattern = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]+$`)

// FechaLayout is the wire format for dates.
const FechaLayout = "2006-01-02"

// ValidateDescripcion checks the letters-and-spaces rule.
func ValidateDescripcion(descripcion string) error {
	if descripcion == "" {
		return ErrFieldsRequired
	}
	if !DescripcionPattern.MatchString(descripcion) {
		return ErrDescripcionInvalid
	}
	return nil
}

// ValidateMonto checks that the amount is strictly positive.
func ValidateMonto(monto decimal.Decimal) error {
	if monto.LessThanOrEqual(decimal.Zero) {
		return ErrMontoInvalid
	}
	return nil
}

// ParseFecha parses a wire-format date.
func ParseFecha(fecha string) (time.Time, error) {
	parsed, err := time.Parse(FechaLayout, fecha)
	if err != nil {
		return time.Time{}, ErrFechaInvalid
	}
	return parsed, nil
}
