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

type LiabilityControllerI interface {
	GetUpcomingPayments(ctx context.Context, days int) ([]models.Liability, error)
	GetPayoffProjections(ctx context.Context) ([]schemas.PayoffProjection, error)
	GetLiabilitiesByCategory(ctx context.Context) ([]schemas.CategoryTotal, error)
	GetTotalMonthlyPayments(ctx context.Context) (float64, error)
}

// LiabilityController computes payoff projections and upcoming-payment lists.
type LiabilityController struct {
	Liabilities repositories.LiabilityRepository
}

func NewLiabilityController(liabilities repositories.LiabilityRepository) *LiabilityController {
	return &LiabilityController{Liabilities: liabilities}
}

// GetUpcomingPayments lists open liabilities due within [today, today+days],
// soonest first.
func (c *LiabilityController) GetUpcomingPayments(ctx context.Context, days int) ([]models.Liability, error) {
	if days <= 0 {
		days = 30
	}
	today := utils.Today()
	return c.Liabilities.GetDueBetween(ctx, today, today.AddDate(0, 0, days))
}

// GetPayoffProjections projects months-to-payoff and total interest for every
// liability that still carries a balance. Liabilities without a monthly
// payment, and ones whose payment cannot outpace interest accrual, come back
// with nil projection fields instead of an error.
func (c *LiabilityController) GetPayoffProjections(ctx context.Context) ([]schemas.PayoffProjection, error) {
	liabilities, err := c.Liabilities.GetOpen(ctx)
	if err != nil {
		return nil, err
	}

	projections := make([]schemas.PayoffProjection, 0, len(liabilities))
	for _, l := range liabilities {
		projection := schemas.PayoffProjection{ID: l.ID, Name: l.Name}
		if l.MonthlyPayment > 0 {
			if months, totalInterest, ok := amortizationMonths(l.CurrentBalance, l.MonthlyPayment, l.InterestRate); ok {
				// 30-day-month approximation, kept for compatibility with the
				// existing dashboard rather than calendar month arithmetic.
				payoffDate := utils.Today().Add(time.Duration(months) * 30 * 24 * time.Hour)
				projection.MonthsToPayoff = &months
				projection.TotalInterest = &totalInterest
				projection.PayoffDate = &payoffDate
			}
		}
		projections = append(projections, projection)
	}
	return projections, nil
}

// amortizationMonths inverts the standard amortization formula. It reports
// ok=false when the payment cannot cover the monthly interest accrual, in
// which case the balance never amortizes.
func amortizationMonths(balance, payment, annualRate float64) (months int, totalInterest float64, ok bool) {
	monthlyRate := annualRate / 100 / 12

	if monthlyRate == 0 {
		months = int(math.Ceil(balance / payment))
		return months, 0, true
	}

	arg := 1 - balance*monthlyRate/payment
	if arg <= 0 {
		return 0, 0, false
	}
	raw := math.Ceil(-math.Log(arg) / math.Log(1+monthlyRate))
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, 0, false
	}

	months = int(raw)
	totalInterest = payment*float64(months) - balance
	return months, totalInterest, true
}

func (c *LiabilityController) GetLiabilitiesByCategory(ctx context.Context) ([]schemas.CategoryTotal, error) {
	return c.Liabilities.SumByCategory(ctx)
}

func (c *LiabilityController) GetTotalMonthlyPayments(ctx context.Context) (float64, error) {
	return c.Liabilities.SumMonthlyPayments(ctx)
}
