package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, expenseHandler *ExpenseHandler) {
	gastos := e.Group("/gastos")
	gastos.GET("", expenseHandler.ListExpenses)
	gastos.GET("/:id", expenseHandler.GetExpense)
	gastos.POST("", expenseHandler.CreateExpense)
	gastos.PUT("/:id", expenseHandler.UpdateExpense)
	gastos.DELETE("/:id", expenseHandler.DeleteExpense)
}
