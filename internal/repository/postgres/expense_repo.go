package postgres

import (
	"context"
	"fmt"

	"github.com/dnavarrov/gastos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	listExpensesQuery = `SELECT id, descripcion, monto, categoria, fecha
FROM gastos
ORDER BY fecha DESC, id DESC`

	getExpenseQuery = `SELECT id, descripcion, monto, categoria, fecha
FROM gastos
WHERE id = $1`

	createExpenseQuery = `INSERT INTO gastos (descripcion, monto, categoria, fecha)
VALUES ($1, $2, $3, $4)
RETURNING id`

	updateExpenseQuery = `UPDATE gastos
SET descripcion = $1, monto = $2, categoria = $3, fecha = $4
WHERE id = $5`

	deleteExpenseQuery = `DELETE FROM gastos WHERE id = $1`
)

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// List retrieves all expenses ordered by fecha descending, id descending
func (r *ExpenseRepository) List() ([]*domain.Expense, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, listExpensesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return expenses, nil
}

// GetByID retrieves an expense by its ID
func (r *ExpenseRepository) GetByID(id int32) (*domain.Expense, error) {
	ctx := context.Background()

	row := r.pool.QueryRow(ctx, getExpenseQuery, id)
	expense, err := scanExpense(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// Create inserts a new expense and returns it with the assigned ID
func (r *ExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	ctx := context.Background()

	monto, err := decimalToPgNumeric(expense.Monto)
	if err != nil {
		return nil, fmt.Errorf("invalid monto: %w", err)
	}

	var fecha pgtype.Date
	fecha.Time = expense.Fecha
	fecha.Valid = true

	var id int32
	err = r.pool.QueryRow(ctx, createExpenseQuery, expense.Descripcion, monto, expense.Categoria, fecha).Scan(&id)
	if err != nil {
		return nil, err
	}

	created := *expense
	created.ID = id
	return &created, nil
}

// Update replaces the four mutable fields of an expense, returning the
// number of affected rows (0 when the id does not exist)
func (r *ExpenseRepository) Update(expense *domain.Expense) (int64, error) {
	ctx := context.Background()

	monto, err := decimalToPgNumeric(expense.Monto)
	if err != nil {
		return 0, fmt.Errorf("invalid monto: %w", err)
	}

	var fecha pgtype.Date
	fecha.Time = expense.Fecha
	fecha.Valid = true

	tag, err := r.pool.Exec(ctx, updateExpenseQuery, expense.Descripcion, monto, expense.Categoria, fecha, expense.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes an expense, returning the number of affected rows
func (r *ExpenseRepository) Delete(id int32) (int64, error) {
	ctx := context.Background()

	tag, err := r.pool.Exec(ctx, deleteExpenseQuery, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var (
		expense domain.Expense
		monto   pgtype.Numeric
		fecha   pgtype.Date
	)
	if err := row.Scan(&expense.ID, &expense.Descripcion, &monto, &expense.Categoria, &fecha); err != nil {
		return nil, err
	}
	expense.Monto = pgNumericToDecimal(monto)
	expense.Fecha = fecha.Time
	return &expense, nil
}

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	if n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
