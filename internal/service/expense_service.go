package service

import (
	"strings"

	"github.com/dnavarrov/gastos/internal/domain"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense-related business logic
type ExpenseService struct {
	expenseRepo domain.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ExpenseInput holds the input for creating or updating an expense
type ExpenseInput struct {
	Descripcion string
	Monto       decimal.Decimal
	Categoria   string
	Fecha       string
}

// ListExpenses retrieves all expenses, newest first
func (s *ExpenseService) ListExpenses() ([]*domain.Expense, error) {
	return s.expenseRepo.List()
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(id int32) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(id)
}

// CreateExpense validates the input and inserts a new expense
func (s *ExpenseService) CreateExpense(input ExpenseInput) (*domain.Expense, error) {
	expense, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	return s.expenseRepo.Create(expense)
}

// UpdateExpense validates the input and replaces all four mutable fields
func (s *ExpenseService) UpdateExpense(id int32, input ExpenseInput) error {
	expense, err := s.validate(input)
	if err != nil {
		return err
	}
	expense.ID = id

	affected, err := s.expenseRepo.Update(expense)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

// DeleteExpense removes an expense by ID
func (s *ExpenseService) DeleteExpense(id int32) error {
	affected, err := s.expenseRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

// validate applies the authoritative validation rules regardless of what the
// client already checked: all fields present, letters-and-spaces description,
// strictly positive amount, well-formed date.
func (s *ExpenseService) validate(input ExpenseInput) (*domain.Expense, error) {
	descripcion := strings.TrimSpace(input.Descripcion)
	categoria := strings.TrimSpace(input.Categoria)
	fecha := strings.TrimSpace(input.Fecha)

	if descripcion == "" || categoria == "" || fecha == "" || input.Monto.IsZero() {
		return nil, domain.ErrFieldsRequired
	}
	if err := domain.ValidateDescripcion(descripcion); err != nil {
		return nil, err
	}
	if err := domain.ValidateMonto(input.Monto); err != nil {
		return nil, err
	}
	parsedFecha, err := domain.ParseFecha(fecha)
	if err != nil {
		return nil, err
	}

	return &domain.Expense{
		Descripcion: descripcion,
		Monto:       input.Monto,
		Categoria:   categoria,
		Fecha:       parsedFecha,
	}, nil
}
