package models

import "time"

// Liability category is free text (mortgage, car loan, credit card, ...).
// CurrentBalance reaching 0 means the liability is paid off but kept on record.
type Liability struct {
	ID              int        `db:"id" json:"id"`
	Name            string     `db:"name" json:"name"`
	Category        string     `db:"category" json:"category"`
	PrincipalAmount float64    `db:"principal_amount" json:"principal_amount"`
	CurrentBalance  float64    `db:"current_balance" json:"current_balance"`
	InterestRate    float64    `db:"interest_rate" json:"interest_rate"`
	MonthlyPayment  float64    `db:"monthly_payment" json:"monthly_payment"`
	DueDate         *time.Time `db:"due_date" json:"due_date,omitempty"`
	Notes           *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
