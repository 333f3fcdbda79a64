package schemas

import (
	"time"

	"fintrack/src/models"
)

// Period is an inclusive date range rendered as yyyy-mm-dd.
type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type CashFlowSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetCashFlow   float64 `json:"netCashFlow"`
	Period        Period  `json:"period"`
}

// CategoryTotal is one group-by bucket of a cash-flow breakdown, ordered
// descending by total.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type MonthlyCashFlow struct {
	Month     int    `json:"month"`
	MonthName string `json:"monthName"`
	CashFlowSummary
}

type RecurringTransactions struct {
	Income                 []models.Income  `json:"income"`
	Expenses               []models.Expense `json:"expenses"`
	TotalRecurringIncome   float64          `json:"totalRecurringIncome"`
	TotalRecurringExpenses float64          `json:"totalRecurringExpenses"`
}

// TransactionRecord is the tagged union used by the merged recent-transactions
// listing. Income sources are carried in Description.
type TransactionRecord struct {
	Type        models.TransactionKind `json:"type"`
	ID          int                    `json:"id"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount"`
	Date        time.Time              `json:"date"`
	Category    string                 `json:"category"`
	IsRecurring bool                   `json:"is_recurring"`
	CreatedAt   time.Time              `json:"created_at"`
}
