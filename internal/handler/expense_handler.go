package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dnavarrov/gastos/internal/domain"
	"github.com/dnavarrov/gastos/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the create/update request body. Monto accepts
// both a JSON number and a quoted decimal string.
type ExpenseRequest struct {
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Categoria   string          `json:"categoria"`
	Fecha       string          `json:"fecha"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          int32  `json:"id"`
	Descripcion string `json:"descripcion"`
	Monto       string `json:"monto"`
	Categoria   string `json:"categoria"`
	Fecha       string `json:"fecha"`
}

func toExpenseResponse(expense *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID,
		Descripcion: expense.Descripcion,
		Monto:       expense.Monto.StringFixed(2),
		Categoria:   expense.Categoria,
		Fecha:       expense.Fecha.Format(domain.FechaLayout),
	}
}

// ListExpenses godoc
// @Summary List all expenses
// @Description List every expense, ordered by date descending then id descending
// @Tags gastos
// @Produce json
// @Success 200 {array} ExpenseResponse
// @Failure 500 {object} ErrorResponse
// @Router /gastos [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	expenses, err := h.expenseService.ListExpenses()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list expenses")
		return storeErrorWithDetails(c, "Error al obtener gastos de la base de datos", err)
	}

	response := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		response[i] = toExpenseResponse(expense)
	}
	return c.JSON(http.StatusOK, response)
}

// GetExpense godoc
// @Summary Get an expense
// @Description Get a single expense by id
// @Tags gastos
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gastos/{id} [get]
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return validationError(c, "El id debe ser un número")
	}

	expense, err := h.expenseService.GetExpense(id)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return notFoundError(c, "Gasto no encontrado")
		}
		log.Error().Err(err).Int32("id", id).Msg("Failed to get expense")
		return storeError(c, "Error interno del servidor")
	}
	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// CreateExpense godoc
// @Summary Create an expense
// @Description Create a new expense; the server assigns the id
// @Tags gastos
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "Expense creation request"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gastos [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return validationError(c, "Cuerpo de la solicitud inválido")
	}

	expense, err := h.expenseService.CreateExpense(toInput(req))
	if err != nil {
		if message, ok := validationMessage(err); ok {
			return validationError(c, message)
		}
		log.Error().Err(err).Msg("Failed to create expense")
		return storeErrorWithDetails(c, "Error al crear gasto", err)
	}

	log.Info().Int32("id", expense.ID).Msg("Expense created")
	return c.JSON(http.StatusCreated, CreatedResponse{
		ID:      expense.ID,
		Message: "Gasto creado correctamente",
	})
}

// UpdateExpense godoc
// @Summary Update an expense
// @Description Replace all four mutable fields of an expense
// @Tags gastos
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body ExpenseRequest true "Expense update request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gastos/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return validationError(c, "El id debe ser un número")
	}

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return validationError(c, "Cuerpo de la solicitud inválido")
	}

	if err := h.expenseService.UpdateExpense(id, toInput(req)); err != nil {
		if message, ok := validationMessage(err); ok {
			return validationError(c, message)
		}
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return notFoundError(c, "Gasto no encontrado")
		}
		log.Error().Err(err).Int32("id", id).Msg("Failed to update expense")
		return storeError(c, "Error interno del servidor")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Gasto actualizado correctamente"})
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Description Delete an expense by id
// @Tags gastos
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /gastos/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return validationError(c, "El id debe ser un número")
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return notFoundError(c, "Gasto no encontrado")
		}
		log.Error().Err(err).Int32("id", id).Msg("Failed to delete expense")
		return storeError(c, "Error interno del servidor")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Gasto eliminado correctamente"})
}

func parseID(c echo.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(id), nil
}

func toInput(req ExpenseRequest) service.ExpenseInput {
	return service.ExpenseInput{
		Descripcion: req.Descripcion,
		Monto:       req.Monto,
		Categoria:   req.Categoria,
		Fecha:       req.Fecha,
	}
}

// validationMessage maps validation sentinels to the user-facing messages the
// API speaks on 400 responses.
func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrFieldsRequired):
		return "Todos los campos son obligatorios", true
	case errors.Is(err, domain.ErrDescripcionInvalid):
		return "La descripción solo puede contener letras y espacios", true
	case errors.Is(err, domain.ErrMontoInvalid):
		return "El monto debe ser mayor a 0", true
	case errors.Is(err, domain.ErrFechaInvalid):
		return "La fecha debe tener el formato AAAA-MM-DD", true
	}
	return "", false
}
