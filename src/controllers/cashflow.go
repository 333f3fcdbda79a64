package controllers

import (
	"context"
	"errors"
	"sort"
	"time"

	"fintrack/src/models"
	"fintrack/src/repositories"
	"fintrack/src/schemas"
	"fintrack/src/utils"
)

// ErrInvalidRange reports a cash-flow summary request with a missing bound.
var ErrInvalidRange = errors.New("startDate and endDate are required")

type CashFlowControllerI interface {
	GetCashFlowSummary(ctx context.Context, startDate, endDate time.Time) (*schemas.CashFlowSummary, error)
	GetIncomeByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error)
	GetExpensesByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error)
	GetMonthlyCashFlow(ctx context.Context, year int) ([]schemas.MonthlyCashFlow, error)
	GetRecurringTransactions(ctx context.Context) (*schemas.RecurringTransactions, error)
	GetRecentTransactions(ctx context.Context, limit int) ([]schemas.TransactionRecord, error)
}

type CashFlowController struct {
	Income   repositories.IncomeRepository
	Expenses repositories.ExpenseRepository
}

func NewCashFlowController(income repositories.IncomeRepository, expenses repositories.ExpenseRepository) *CashFlowController {
	return &CashFlowController{Income: income, Expenses: expenses}
}

// GetCashFlowSummary sums income and expenses over the inclusive date range.
func (c *CashFlowController) GetCashFlowSummary(ctx context.Context, startDate, endDate time.Time) (*schemas.CashFlowSummary, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return nil, ErrInvalidRange
	}

	totalIncome, err := c.Income.SumInRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := c.Expenses.SumInRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &schemas.CashFlowSummary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetCashFlow:   totalIncome - totalExpenses,
		Period: schemas.Period{
			StartDate: utils.FormatDate(startDate),
			EndDate:   utils.FormatDate(endDate),
		},
	}, nil
}

func (c *CashFlowController) GetIncomeByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error) {
	return c.Income.SumByCategory(ctx, startDate, endDate)
}

func (c *CashFlowController) GetExpensesByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error) {
	return c.Expenses.SumByCategory(ctx, startDate, endDate)
}

// GetMonthlyCashFlow returns one summary per calendar month of the year, in
// month order, with period bounds on the actual first and last day of each
// month.
func (c *CashFlowController) GetMonthlyCashFlow(ctx context.Context, year int) ([]schemas.MonthlyCashFlow, error) {
	monthly := make([]schemas.MonthlyCashFlow, 0, 12)
	for month := time.January; month <= time.December; month++ {
		startDate, endDate := utils.MonthRange(year, month)
		summary, err := c.GetCashFlowSummary(ctx, startDate, endDate)
		if err != nil {
			return nil, err
		}
		monthly = append(monthly, schemas.MonthlyCashFlow{
			Month:           int(month),
			MonthName:       utils.MonthName(month),
			CashFlowSummary: *summary,
		})
	}
	return monthly, nil
}

func (c *CashFlowController) GetRecurringTransactions(ctx context.Context) (*schemas.RecurringTransactions, error) {
	income, err := c.Income.GetRecurring(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := c.Expenses.GetRecurring(ctx)
	if err != nil {
		return nil, err
	}

	result := &schemas.RecurringTransactions{Income: income, Expenses: expenses}
	for _, inc := range income {
		result.TotalRecurringIncome += inc.Amount
	}
	for _, exp := range expenses {
		result.TotalRecurringExpenses += exp.Amount
	}
	return result, nil
}

// GetRecentTransactions merges the most recently created income and expense
// records, newest first. ceil(limit/2) candidates are fetched per kind before
// merging, so a history dominated by one kind can come back with fewer than
// limit records. Ties on created_at keep income ahead of expenses (stable
// merge) so the ordering is reproducible.
func (c *CashFlowController) GetRecentTransactions(ctx context.Context, limit int) ([]schemas.TransactionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	perKind := (limit + 1) / 2

	income, err := c.Income.GetRecent(ctx, perKind)
	if err != nil {
		return nil, err
	}
	expenses, err := c.Expenses.GetRecent(ctx, perKind)
	if err != nil {
		return nil, err
	}

	merged := make([]schemas.TransactionRecord, 0, len(income)+len(expenses))
	for _, inc := range income {
		merged = append(merged, incomeRecord(inc))
	}
	for _, exp := range expenses {
		merged = append(merged, expenseRecord(exp))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func incomeRecord(inc models.Income) schemas.TransactionRecord {
	return schemas.TransactionRecord{
		Type:        models.KindIncome,
		ID:          inc.ID,
		Description: inc.Source,
		Amount:      inc.Amount,
		Date:        inc.Date,
		Category:    inc.Category,
		IsRecurring: inc.IsRecurring,
		CreatedAt:   inc.CreatedAt,
	}
}

func expenseRecord(exp models.Expense) schemas.TransactionRecord {
	return schemas.TransactionRecord{
		Type:        models.KindExpense,
		ID:          exp.ID,
		Description: exp.Description,
		Amount:      exp.Amount,
		Date:        exp.Date,
		Category:    exp.Category,
		IsRecurring: exp.IsRecurring,
		CreatedAt:   exp.CreatedAt,
	}
}
