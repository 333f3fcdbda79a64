package controllers

import (
	"context"
	"math"
	"time"

	"fintrack/src/models"
	"fintrack/src/repositories"
	"fintrack/src/schemas"
	"fintrack/src/utils"
)

type NetWorthControllerI interface {
	CalculateCurrentNetWorth(ctx context.Context) (*schemas.CurrentNetWorth, error)
	SaveSnapshot(ctx context.Context, date *time.Time) (*schemas.SnapshotResult, error)
	GetHistory(ctx context.Context, startDate, endDate *time.Time, limit int) ([]models.NetWorthSnapshot, error)
	GetTrend(ctx context.Context, months int) (*schemas.NetWorthTrend, error)
	GetGoals(ctx context.Context) (*schemas.NetWorthGoals, error)
	GetMonthlySummary(ctx context.Context, year int) ([]schemas.MonthlyNetWorth, error)
	DeleteSnapshot(ctx context.Context, id int) (bool, error)
}

// NetWorthController persists point-in-time snapshots and derives trends and
// milestones from them.
type NetWorthController struct {
	Valuation ValuationControllerI
	Snapshots repositories.SnapshotRepository
}

func NewNetWorthController(valuation ValuationControllerI, snapshots repositories.SnapshotRepository) *NetWorthController {
	return &NetWorthController{Valuation: valuation, Snapshots: snapshots}
}

func (c *NetWorthController) CalculateCurrentNetWorth(ctx context.Context) (*schemas.CurrentNetWorth, error) {
	assetValues, err := c.Valuation.GetTotalAssetValue(ctx)
	if err != nil {
		return nil, err
	}
	totalLiabilities, err := c.Valuation.GetTotalLiabilities(ctx)
	if err != nil {
		return nil, err
	}

	return &schemas.CurrentNetWorth{
		TotalAssets:      assetValues.Total,
		TotalLiabilities: totalLiabilities,
		NetWorth:         assetValues.Total - totalLiabilities,
		AssetBreakdown:   *assetValues,
		CalculatedAt:     time.Now().UTC(),
	}, nil
}

// SaveSnapshot upserts the snapshot for the given date (default today):
// an existing row for that date gets its totals overwritten, otherwise a new
// row is inserted. The result flags which of the two happened.
func (c *NetWorthController) SaveSnapshot(ctx context.Context, date *time.Time) (*schemas.SnapshotResult, error) {
	current, err := c.CalculateCurrentNetWorth(ctx)
	if err != nil {
		return nil, err
	}

	snapshotDate := utils.Today()
	if date != nil {
		snapshotDate = *date
	}

	snapshot := models.NetWorthSnapshot{
		Date:             snapshotDate,
		TotalAssets:      current.TotalAssets,
		TotalLiabilities: current.TotalLiabilities,
		NetWorth:         current.NetWorth,
	}

	existing, err := c.Snapshots.GetByDate(ctx, snapshotDate)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		snapshot.ID = existing.ID
		snapshot.CreatedAt = existing.CreatedAt
		if err := c.Snapshots.UpdateByDate(ctx, &snapshot); err != nil {
			return nil, err
		}
		return &schemas.SnapshotResult{NetWorthSnapshot: snapshot, Updated: true}, nil
	}

	if err := c.Snapshots.Insert(ctx, &snapshot); err != nil {
		return nil, err
	}
	return &schemas.SnapshotResult{NetWorthSnapshot: snapshot, Created: true}, nil
}

func (c *NetWorthController) GetHistory(ctx context.Context, startDate, endDate *time.Time, limit int) ([]models.NetWorthSnapshot, error) {
	return c.Snapshots.GetHistory(ctx, startDate, endDate, limit)
}

// GetTrend compares the most recent snapshot to the oldest one within the
// trailing window of the given number of months. With fewer than two
// snapshots it reports insufficient_data rather than failing.
func (c *NetWorthController) GetTrend(ctx context.Context, months int) (*schemas.NetWorthTrend, error) {
	if months <= 0 {
		months = 12
	}
	endDate := utils.Today()
	startDate := endDate.AddDate(0, -months, 0)

	history, err := c.Snapshots.GetHistory(ctx, &startDate, &endDate, 0)
	if err != nil {
		return nil, err
	}

	if len(history) < 2 {
		return &schemas.NetWorthTrend{Trend: schemas.TrendInsufficientData}, nil
	}

	latest := history[0]
	oldest := history[len(history)-1]

	change := latest.NetWorth - oldest.NetWorth
	var changePercent float64
	if oldest.NetWorth != 0 {
		changePercent = change / math.Abs(oldest.NetWorth) * 100
	}

	trend := schemas.TrendStable
	switch {
	case change > 0:
		trend = schemas.TrendIncreasing
	case change < 0:
		trend = schemas.TrendDecreasing
	}

	return &schemas.NetWorthTrend{
		Trend:         trend,
		Change:        change,
		ChangePercent: changePercent,
		Period:        &schemas.TrendPeriod{From: oldest.Date, To: latest.Date},
		DataPoints:    len(history),
	}, nil
}

var goalMilestones = []struct {
	name   string
	target float64
}{
	{"Break Even", 0},
	{"First $10K", 10000},
	{"First $50K", 50000},
	{"First $100K", 100000},
}

// GetGoals evaluates the fixed net-worth milestones against the current net
// worth. NextGoal is the first unachieved milestone, or nil when all are met.
func (c *NetWorthController) GetGoals(ctx context.Context) (*schemas.NetWorthGoals, error) {
	current, err := c.CalculateCurrentNetWorth(ctx)
	if err != nil {
		return nil, err
	}

	goals := make([]schemas.Goal, 0, len(goalMilestones))
	for _, milestone := range goalMilestones {
		goal := schemas.Goal{
			Name:     milestone.name,
			Target:   milestone.target,
			Achieved: current.NetWorth >= milestone.target,
		}
		if !goal.Achieved {
			goal.Remaining = milestone.target - current.NetWorth
		}
		goals = append(goals, goal)
	}

	result := &schemas.NetWorthGoals{CurrentNetWorth: current.NetWorth, Goals: goals}
	for i := range goals {
		if !goals[i].Achieved {
			result.NextGoal = &goals[i]
			break
		}
	}
	return result, nil
}

// GetMonthlySummary reports the latest snapshot of each calendar month of the
// year; months without a snapshot carry nil values.
func (c *NetWorthController) GetMonthlySummary(ctx context.Context, year int) ([]schemas.MonthlyNetWorth, error) {
	monthly := make([]schemas.MonthlyNetWorth, 0, 12)
	for month := time.January; month <= time.December; month++ {
		startDate, endDate := utils.MonthRange(year, month)
		snapshot, err := c.Snapshots.GetLatestInRange(ctx, startDate, endDate)
		if err != nil {
			return nil, err
		}

		entry := schemas.MonthlyNetWorth{
			Month:     int(month),
			MonthName: utils.MonthName(month),
			Year:      year,
			Snapshot:  snapshot,
		}
		if snapshot != nil {
			entry.NetWorth = &snapshot.NetWorth
			entry.TotalAssets = &snapshot.TotalAssets
			entry.TotalLiabilities = &snapshot.TotalLiabilities
		}
		monthly = append(monthly, entry)
	}
	return monthly, nil
}

func (c *NetWorthController) DeleteSnapshot(ctx context.Context, id int) (bool, error) {
	return c.Snapshots.Delete(ctx, id)
}
