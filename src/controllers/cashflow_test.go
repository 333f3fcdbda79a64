package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fintrack/src/models"
)

func newCashFlowFixture() (*CashFlowController, *mockIncomeRepo, *mockExpenseRepo) {
	income := new(mockIncomeRepo)
	expenses := new(mockExpenseRepo)
	return NewCashFlowController(income, expenses), income, expenses
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestGetCashFlowSummary(t *testing.T) {
	controller, income, expenses := newCashFlowFixture()

	start := day(2024, time.January, 1)
	end := day(2024, time.January, 31)
	income.On("SumInRange", mock.Anything, start, end).Return(5000.0, nil)
	expenses.On("SumInRange", mock.Anything, start, end).Return(3200.0, nil)

	summary, err := controller.GetCashFlowSummary(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, summary.TotalIncome)
	assert.Equal(t, 3200.0, summary.TotalExpenses)
	assert.Equal(t, 1800.0, summary.NetCashFlow)
	assert.Equal(t, "2024-01-01", summary.Period.StartDate)
	assert.Equal(t, "2024-01-31", summary.Period.EndDate)
}

func TestGetCashFlowSummary_NegativeNet(t *testing.T) {
	controller, income, expenses := newCashFlowFixture()

	start := day(2024, time.March, 1)
	end := day(2024, time.March, 31)
	income.On("SumInRange", mock.Anything, start, end).Return(1000.0, nil)
	expenses.On("SumInRange", mock.Anything, start, end).Return(2500.0, nil)

	summary, err := controller.GetCashFlowSummary(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, -1500.0, summary.NetCashFlow)
}

func TestGetCashFlowSummary_MissingBound(t *testing.T) {
	controller, _, _ := newCashFlowFixture()

	_, err := controller.GetCashFlowSummary(context.Background(), time.Time{}, day(2024, time.January, 31))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = controller.GetCashFlowSummary(context.Background(), day(2024, time.January, 1), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestGetMonthlyCashFlow(t *testing.T) {
	controller, income, expenses := newCashFlowFixture()

	income.On("SumInRange", mock.Anything, mock.Anything, mock.Anything).Return(100.0, nil)
	expenses.On("SumInRange", mock.Anything, mock.Anything, mock.Anything).Return(40.0, nil)

	monthly, err := controller.GetMonthlyCashFlow(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, monthly, 12)

	assert.Equal(t, 1, monthly[0].Month)
	assert.Equal(t, "January", monthly[0].MonthName)
	assert.Equal(t, "2024-01-01", monthly[0].Period.StartDate)
	assert.Equal(t, "2024-01-31", monthly[0].Period.EndDate)

	// leap year February
	assert.Equal(t, "2024-02-29", monthly[1].Period.EndDate)

	assert.Equal(t, 12, monthly[11].Month)
	assert.Equal(t, "2024-12-31", monthly[11].Period.EndDate)
	for _, m := range monthly {
		assert.Equal(t, 60.0, m.NetCashFlow)
	}
}

func TestGetRecurringTransactions(t *testing.T) {
	controller, income, expenses := newCashFlowFixture()

	monthly := models.FrequencyMonthly
	income.On("GetRecurring", mock.Anything).Return([]models.Income{
		{ID: 1, Source: "Salary", Amount: 4000, IsRecurring: true, Frequency: &monthly},
		{ID: 2, Source: "Rental", Amount: 900, IsRecurring: true, Frequency: &monthly},
	}, nil)
	expenses.On("GetRecurring", mock.Anything).Return([]models.Expense{
		{ID: 3, Description: "Rent", Amount: 1500, IsRecurring: true, Frequency: &monthly},
	}, nil)

	recurring, err := controller.GetRecurringTransactions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4900.0, recurring.TotalRecurringIncome)
	assert.Equal(t, 1500.0, recurring.TotalRecurringExpenses)
	assert.Len(t, recurring.Income, 2)
	assert.Len(t, recurring.Expenses, 1)
}

func TestGetRecentTransactions_MergesNewestFirst(t *testing.T) {
	controller, income, expenses := newCashFlowFixture()

	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	income.On("GetRecent", mock.Anything, 3).Return([]models.Income{
		{ID: 1, Source: "Salary", Amount: 4000, CreatedAt: base.Add(3 * time.Hour)},
		{ID: 2, Source: "Refund", Amount: 50, CreatedAt: base.Add(1 * time.Hour)},
	}, nil)
	expenses.On("GetRecent", mock.Anything, 3).Return([]models.Expense{
		{ID: 3, Description: "Groceries", Amount: 120, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Description: "Gas", Amount: 45, CreatedAt: base},
	}, nil)

	recent, err := controller.GetRecentTransactions(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 4)

	assert.Equal(t, models.KindIncome, recent[0].Type)
	assert.Equal(t, "Salary", recent[0].Description)
	assert.Equal(t, "Groceries", recent[1].Description)
	assert.Equal(t, "Refund", recent[2].Description)
	assert.Equal(t, "Gas", recent[3].Description)
}

func TestGetRecentTransactions_TieKeepsIncomeFirst(t *testing.T) {
	controller, income, expenses := newCashFlowFixture()

	created := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	income.On("GetRecent", mock.Anything, 1).Return([]models.Income{
		{ID: 1, Source: "Salary", Amount: 4000, CreatedAt: created},
	}, nil)
	expenses.On("GetRecent", mock.Anything, 1).Return([]models.Expense{
		{ID: 2, Description: "Rent", Amount: 1500, CreatedAt: created},
	}, nil)

	recent, err := controller.GetRecentTransactions(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	assert.Equal(t, models.KindIncome, recent[0].Type)
	assert.Equal(t, models.KindExpense, recent[1].Type)
}

func TestGetRecentTransactions_TruncatesToLimit(t *testing.T) {
	controller, income, expenses := newCashFlowFixture()

	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	income.On("GetRecent", mock.Anything, 2).Return([]models.Income{
		{ID: 1, Source: "a", CreatedAt: base.Add(4 * time.Hour)},
		{ID: 2, Source: "b", CreatedAt: base.Add(3 * time.Hour)},
	}, nil)
	expenses.On("GetRecent", mock.Anything, 2).Return([]models.Expense{
		{ID: 3, Description: "c", CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Description: "d", CreatedAt: base.Add(1 * time.Hour)},
	}, nil)

	recent, err := controller.GetRecentTransactions(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestGetRecentTransactions_DefaultLimit(t *testing.T) {
	controller, income, expenses := newCashFlowFixture()

	// limit <= 0 falls back to 10, so 5 per kind
	income.On("GetRecent", mock.Anything, 5).Return([]models.Income{}, nil)
	expenses.On("GetRecent", mock.Anything, 5).Return([]models.Expense{}, nil)

	recent, err := controller.GetRecentTransactions(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, recent)
	income.AssertExpectations(t)
	expenses.AssertExpectations(t)
}
