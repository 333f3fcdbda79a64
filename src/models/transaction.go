package models

import "time"

// TransactionKind discriminates the merged income/expense listing.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

type Income struct {
	ID          int       `db:"id" json:"id"`
	Source      string    `db:"source" json:"source"`
	Amount      float64   `db:"amount" json:"amount"`
	Date        time.Time `db:"date" json:"date"`
	Category    string    `db:"category" json:"category"`
	IsRecurring bool      `db:"is_recurring" json:"is_recurring"`
	Frequency   *string   `db:"frequency" json:"frequency,omitempty"`
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Expense struct {
	ID          int       `db:"id" json:"id"`
	Description string    `db:"description" json:"description"`
	Amount      float64   `db:"amount" json:"amount"`
	Date        time.Time `db:"date" json:"date"`
	Category    string    `db:"category" json:"category"`
	IsRecurring bool      `db:"is_recurring" json:"is_recurring"`
	Frequency   *string   `db:"frequency" json:"frequency,omitempty"`
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

const (
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyAnnually  = "annually"
)
