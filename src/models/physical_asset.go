package models

import "time"

type PhysicalAsset struct {
	ID            int        `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Category      string     `db:"category" json:"category"`
	CurrentValue  float64    `db:"current_value" json:"current_value"`
	PurchaseValue *float64   `db:"purchase_value" json:"purchase_value,omitempty"`
	PurchaseDate  *time.Time `db:"purchase_date" json:"purchase_date,omitempty"`
	Condition     *string    `db:"condition" json:"condition,omitempty"`
	Notes         *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
