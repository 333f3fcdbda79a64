package schemas

import (
	"time"

	"fintrack/src/models"
)

type CurrentNetWorth struct {
	TotalAssets      float64         `json:"totalAssets"`
	TotalLiabilities float64         `json:"totalLiabilities"`
	NetWorth         float64         `json:"netWorth"`
	AssetBreakdown   TotalAssetValue `json:"assetBreakdown"`
	CalculatedAt     time.Time       `json:"calculatedAt"`
}

// SnapshotResult reports an upsert outcome: exactly one of Created/Updated is
// true.
type SnapshotResult struct {
	models.NetWorthSnapshot
	Created bool `json:"created"`
	Updated bool `json:"updated"`
}

const (
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

type TrendPeriod struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type NetWorthTrend struct {
	Trend         string       `json:"trend"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"changePercent"`
	Period        *TrendPeriod `json:"period,omitempty"`
	DataPoints    int          `json:"dataPoints"`
}

type Goal struct {
	Name      string  `json:"name"`
	Target    float64 `json:"target"`
	Achieved  bool    `json:"achieved"`
	Remaining float64 `json:"remaining"`
}

type NetWorthGoals struct {
	CurrentNetWorth float64 `json:"currentNetWorth"`
	Goals           []Goal  `json:"goals"`
	NextGoal        *Goal   `json:"nextGoal"`
}

// MonthlyNetWorth reports the latest snapshot of a calendar month; the value
// fields are nil for months without one.
type MonthlyNetWorth struct {
	Month            int                      `json:"month"`
	MonthName        string                   `json:"monthName"`
	Year             int                      `json:"year"`
	Snapshot         *models.NetWorthSnapshot `json:"snapshot"`
	NetWorth         *float64                 `json:"netWorth"`
	TotalAssets      *float64                 `json:"totalAssets"`
	TotalLiabilities *float64                 `json:"totalLiabilities"`
}
