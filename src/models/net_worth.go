package models

import "time"

// NetWorthSnapshot is a date-keyed record of net worth and its components.
// At most one snapshot exists per calendar date; saves upsert by date.
type NetWorthSnapshot struct {
	ID               int       `db:"id" json:"id"`
	Date             time.Time `db:"date" json:"date"`
	TotalAssets      float64   `db:"total_assets" json:"total_assets"`
	TotalLiabilities float64   `db:"total_liabilities" json:"total_liabilities"`
	NetWorth         float64   `db:"net_worth" json:"net_worth"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}
