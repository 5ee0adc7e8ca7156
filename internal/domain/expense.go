package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single persisted expense row.
type Expense struct {
	ID          int32           `json:"id"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Categoria   string          `json:"categoria"`
	Fecha       time.Time       `json:"fecha"`
}

// ExpenseRepository is the persistence contract for expenses.
// List returns rows ordered by fecha descending, ties broken by id descending.
// Update and Delete return the number of affected rows (0 or 1).
type ExpenseRepository interface {
	List() ([]*Expense, error)
	GetByID(id int32) (*Expense, error)
	Create(expense *Expense) (*Expense, error)
	Update(expense *Expense) (int64, error)
	Delete(id int32) (int64, error)
}
