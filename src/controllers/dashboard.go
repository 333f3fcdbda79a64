package controllers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/src/models"
	"fintrack/src/schemas"
	"fintrack/src/utils"
)

type DashboardControllerI interface {
	GetSummary(ctx context.Context) (*schemas.DashboardSummary, error)
	GetQuickStats(ctx context.Context) (*schemas.QuickStats, error)
	GetCashFlowOverview(ctx context.Context, year int) (*schemas.CashFlowOverview, error)
	GetNetWorthOverview(ctx context.Context, startDate, endDate *time.Time, limit int) (*schemas.NetWorthOverview, error)
}

// DashboardController assembles the dashboard views from the four core
// aggregators. The aggregates are read-only and commute, so they are issued
// concurrently.
type DashboardController struct {
	Valuation   ValuationControllerI
	CashFlow    CashFlowControllerI
	Liabilities LiabilityControllerI
	NetWorth    NetWorthControllerI
}

func NewDashboardController(
	valuation ValuationControllerI,
	cashFlow CashFlowControllerI,
	liabilities LiabilityControllerI,
	netWorth NetWorthControllerI,
) *DashboardController {
	return &DashboardController{
		Valuation:   valuation,
		CashFlow:    cashFlow,
		Liabilities: liabilities,
		NetWorth:    netWorth,
	}
}

func (c *DashboardController) GetSummary(ctx context.Context) (*schemas.DashboardSummary, error) {
	today := utils.Today()
	monthStart, monthEnd := utils.MonthRange(today.Year(), today.Month())

	var (
		netWorth           *schemas.CurrentNetWorth
		recentTransactions []schemas.TransactionRecord
		upcomingPayments   []models.Liability
		monthlyCashFlow    *schemas.CashFlowSummary
		assetBreakdown     *schemas.AssetBreakdown
		liabilityBreakdown []schemas.CategoryTotal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		netWorth, err = c.NetWorth.CalculateCurrentNetWorth(gctx)
		return err
	})
	g.Go(func() (err error) {
		recentTransactions, err = c.CashFlow.GetRecentTransactions(gctx, 5)
		return err
	})
	g.Go(func() (err error) {
		upcomingPayments, err = c.Liabilities.GetUpcomingPayments(gctx, 30)
		return err
	})
	g.Go(func() (err error) {
		monthlyCashFlow, err = c.CashFlow.GetCashFlowSummary(gctx, monthStart, monthEnd)
		return err
	})
	g.Go(func() (err error) {
		assetBreakdown, err = c.Valuation.GetAssetBreakdown(gctx)
		return err
	})
	g.Go(func() (err error) {
		liabilityBreakdown, err = c.Liabilities.GetLiabilitiesByCategory(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &schemas.DashboardSummary{
		NetWorth:           netWorth,
		RecentTransactions: recentTransactions,
		UpcomingPayments:   upcomingPayments,
		MonthlyCashFlow:    monthlyCashFlow,
		AssetBreakdown:     assetBreakdown,
		LiabilityBreakdown: liabilityBreakdown,
		LastUpdated:        time.Now().UTC(),
	}, nil
}

func (c *DashboardController) GetQuickStats(ctx context.Context) (*schemas.QuickStats, error) {
	today := utils.Today()
	monthStart, monthEnd := utils.MonthRange(today.Year(), today.Month())

	var (
		netWorth        *schemas.CurrentNetWorth
		monthlyPayments float64
		monthlyCashFlow *schemas.CashFlowSummary
		trend           *schemas.NetWorthTrend
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		netWorth, err = c.NetWorth.CalculateCurrentNetWorth(gctx)
		return err
	})
	g.Go(func() (err error) {
		monthlyPayments, err = c.Liabilities.GetTotalMonthlyPayments(gctx)
		return err
	})
	g.Go(func() (err error) {
		monthlyCashFlow, err = c.CashFlow.GetCashFlowSummary(gctx, monthStart, monthEnd)
		return err
	})
	g.Go(func() (err error) {
		trend, err = c.NetWorth.GetTrend(gctx, 6)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &schemas.QuickStats{
		NetWorth:            netWorth.NetWorth,
		TotalAssets:         netWorth.TotalAssets,
		TotalLiabilities:    netWorth.TotalLiabilities,
		MonthlyIncome:       monthlyCashFlow.TotalIncome,
		MonthlyExpenses:     monthlyCashFlow.TotalExpenses,
		MonthlyNetCashFlow:  monthlyCashFlow.NetCashFlow,
		MonthlyDebtPayments: monthlyPayments,
		NetWorthTrend:       trend,
		CalculatedAt:        netWorth.CalculatedAt,
	}, nil
}

func (c *DashboardController) GetCashFlowOverview(ctx context.Context, year int) (*schemas.CashFlowOverview, error) {
	if year <= 0 {
		year = utils.Today().Year()
	}
	yearStart, yearEnd := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	monthly, err := c.CashFlow.GetMonthlyCashFlow(ctx, year)
	if err != nil {
		return nil, err
	}
	recurring, err := c.CashFlow.GetRecurringTransactions(ctx)
	if err != nil {
		return nil, err
	}
	incomeByCategory, err := c.CashFlow.GetIncomeByCategory(ctx, &yearStart, &yearEnd)
	if err != nil {
		return nil, err
	}
	expensesByCategory, err := c.CashFlow.GetExpensesByCategory(ctx, &yearStart, &yearEnd)
	if err != nil {
		return nil, err
	}

	ytdEnd := utils.Today()
	if ytdEnd.After(yearEnd) || ytdEnd.Before(yearStart) {
		ytdEnd = yearEnd
	}
	yearToDate, err := c.CashFlow.GetCashFlowSummary(ctx, yearStart, ytdEnd)
	if err != nil {
		return nil, err
	}

	return &schemas.CashFlowOverview{
		Year:                  year,
		MonthlyCashFlow:       monthly,
		RecurringTransactions: recurring,
		IncomeByCategory:      incomeByCategory,
		ExpensesByCategory:    expensesByCategory,
		YearToDateSummary:     yearToDate,
	}, nil
}

func (c *DashboardController) GetNetWorthOverview(ctx context.Context, startDate, endDate *time.Time, limit int) (*schemas.NetWorthOverview, error) {
	history, err := c.NetWorth.GetHistory(ctx, startDate, endDate, limit)
	if err != nil {
		return nil, err
	}
	current, err := c.NetWorth.CalculateCurrentNetWorth(ctx)
	if err != nil {
		return nil, err
	}

	overview := &schemas.NetWorthOverview{History: history, Current: current}
	if len(history) > 1 {
		trend, err := c.NetWorth.GetTrend(ctx, 12)
		if err != nil {
			return nil, err
		}
		overview.Trend = trend
	}
	return overview, nil
}
