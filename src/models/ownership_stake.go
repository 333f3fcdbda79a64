package models

import "time"

type OwnershipStake struct {
	ID             int        `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	BusinessName   string     `db:"business_name" json:"business_name"`
	Percentage     float64    `db:"percentage" json:"percentage"`
	CurrentValue   float64    `db:"current_value" json:"current_value"`
	InvestmentDate *time.Time `db:"investment_date" json:"investment_date,omitempty"`
	Notes          *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
