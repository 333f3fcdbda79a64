package schemas

import (
	"time"

	"fintrack/src/models"
)

type DashboardSummary struct {
	NetWorth           *CurrentNetWorth    `json:"netWorth"`
	RecentTransactions []TransactionRecord `json:"recentTransactions"`
	UpcomingPayments   []models.Liability  `json:"upcomingPayments"`
	MonthlyCashFlow    *CashFlowSummary    `json:"monthlyCashFlow"`
	AssetBreakdown     *AssetBreakdown     `json:"assetBreakdown"`
	LiabilityBreakdown []CategoryTotal     `json:"liabilityBreakdown"`
	LastUpdated        time.Time           `json:"lastUpdated"`
}

type QuickStats struct {
	NetWorth            float64        `json:"netWorth"`
	TotalAssets         float64        `json:"totalAssets"`
	TotalLiabilities    float64        `json:"totalLiabilities"`
	MonthlyIncome       float64        `json:"monthlyIncome"`
	MonthlyExpenses     float64        `json:"monthlyExpenses"`
	MonthlyNetCashFlow  float64        `json:"monthlyNetCashFlow"`
	MonthlyDebtPayments float64        `json:"monthlyDebtPayments"`
	NetWorthTrend       *NetWorthTrend `json:"netWorthTrend"`
	CalculatedAt        time.Time      `json:"calculatedAt"`
}

type CashFlowOverview struct {
	Year                  int                    `json:"year"`
	MonthlyCashFlow       []MonthlyCashFlow      `json:"monthlyCashFlow"`
	RecurringTransactions *RecurringTransactions `json:"recurringTransactions"`
	IncomeByCategory      []CategoryTotal        `json:"incomeByCategory"`
	ExpensesByCategory    []CategoryTotal        `json:"expensesByCategory"`
	YearToDateSummary     *CashFlowSummary       `json:"yearToDateSummary"`
}

type NetWorthOverview struct {
	History []models.NetWorthSnapshot `json:"history"`
	Current *CurrentNetWorth          `json:"current"`
	Trend   *NetWorthTrend            `json:"trend"`
}
