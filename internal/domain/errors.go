package domain

import "errors"

// Domain errors
var (
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrDescripcionInvalid = errors.New("descripcion must contain only letters and spaces")
	ErrMontoInvalid       = errors.New("monto must be greater than zero")
	ErrFechaInvalid       = errors.New("fecha must be a valid calendar date")
)
