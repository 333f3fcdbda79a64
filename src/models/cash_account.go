package models

import "time"

type CashAccount struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	AccountType  string    `db:"account_type" json:"account_type"`
	Balance      float64   `db:"balance" json:"balance"`
	InterestRate float64   `db:"interest_rate" json:"interest_rate"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

const (
	AccountTypeChecking    = "checking"
	AccountTypeSavings     = "savings"
	AccountTypeMoneyMarket = "money_market"
)
