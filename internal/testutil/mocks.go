package testutil

import (
	"sort"

	"github.com/dnavarrov/gastos/internal/domain"
)

// MockExpenseRepository is an in-memory implementation of
// domain.ExpenseRepository. The *Fn hooks let tests inject store failures.
type MockExpenseRepository struct {
	Expenses map[int32]*domain.Expense
	NextID   int32

	ListFn   func() ([]*domain.Expense, error)
	GetFn    func(id int32) (*domain.Expense, error)
	CreateFn func(expense *domain.Expense) (*domain.Expense, error)
	UpdateFn func(expense *domain.Expense) (int64, error)
	DeleteFn func(id int32) (int64, error)
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses: make(map[int32]*domain.Expense),
		NextID:   1,
	}
}

// List returns all expenses ordered by fecha descending, id descending,
// matching the real repository's ordering
func (m *MockExpenseRepository) List() ([]*domain.Expense, error) {
	if m.ListFn != nil {
		return m.ListFn()
	}

	expenses := make([]*domain.Expense, 0, len(m.Expenses))
	for _, expense := range m.Expenses {
		expenses = append(expenses, expense)
	}
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Fecha.Equal(expenses[j].Fecha) {
			return expenses[i].Fecha.After(expenses[j].Fecha)
		}
		return expenses[i].ID > expenses[j].ID
	})
	return expenses, nil
}

// GetByID retrieves an expense by ID
func (m *MockExpenseRepository) GetByID(id int32) (*domain.Expense, error) {
	if m.GetFn != nil {
		return m.GetFn(id)
	}
	if expense, ok := m.Expenses[id]; ok {
		copied := *expense
		return &copied, nil
	}
	return nil, domain.ErrExpenseNotFound
}

// Create inserts an expense and assigns the next ID
func (m *MockExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	if m.CreateFn != nil {
		return m.CreateFn(expense)
	}
	created := *expense
	created.ID = m.NextID
	m.NextID++
	m.Expenses[created.ID] = &created
	return &created, nil
}

// Update replaces an expense's fields, returning the affected row count
func (m *MockExpenseRepository) Update(expense *domain.Expense) (int64, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(expense)
	}
	if _, ok := m.Expenses[expense.ID]; !ok {
		return 0, nil
	}
	copied := *expense
	m.Expenses[expense.ID] = &copied
	return 1, nil
}

// Delete removes an expense, returning the affected row count
func (m *MockExpenseRepository) Delete(id int32) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Expenses[id]; !ok {
		return 0, nil
	}
	delete(m.Expenses, id)
	return 1, nil
}

// AddExpense adds an expense to the mock repository (helper for tests)
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	m.Expenses[expense.ID] = expense
	if expense.ID >= m.NextID {
		m.NextID = expense.ID + 1
	}
}
