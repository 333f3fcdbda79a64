package models

import "time"

// Investment value is carried in TotalValue; Shares and PricePerShare are
// informational and TotalValue is not required to equal their product.
type Investment struct {
	ID            int        `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Type          string     `db:"type" json:"type"`
	Symbol        *string    `db:"symbol" json:"symbol,omitempty"`
	Shares        *float64   `db:"shares" json:"shares,omitempty"`
	PricePerShare *float64   `db:"price_per_share" json:"price_per_share,omitempty"`
	TotalValue    float64    `db:"total_value" json:"total_value"`
	PurchaseDate  *time.Time `db:"purchase_date" json:"purchase_date,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

const (
	InvestmentTypeStock      = "stock"
	InvestmentTypeBond       = "bond"
	InvestmentTypeETF        = "etf"
	InvestmentTypeMutualFund = "mutual_fund"
)
