package controllers

import (
	"context"

	"fintrack/src/repositories"
	"fintrack/src/schemas"
)

type ValuationControllerI interface {
	GetTotalAssetValue(ctx context.Context) (*schemas.TotalAssetValue, error)
	GetAssetBreakdown(ctx context.Context) (*schemas.AssetBreakdown, error)
	GetTotalLiabilities(ctx context.Context) (float64, error)
}

// ValuationController rolls the four asset classes and the liability balances
// up into net-worth inputs.
type ValuationController struct {
	Investments     repositories.InvestmentRepository
	CashAccounts    repositories.CashAccountRepository
	PhysicalAssets  repositories.PhysicalAssetRepository
	OwnershipStakes repositories.OwnershipStakeRepository
	Liabilities     repositories.LiabilityRepository
}

func NewValuationController(
	investments repositories.InvestmentRepository,
	cashAccounts repositories.CashAccountRepository,
	physicalAssets repositories.PhysicalAssetRepository,
	ownershipStakes repositories.OwnershipStakeRepository,
	liabilities repositories.LiabilityRepository,
) *ValuationController {
	return &ValuationController{
		Investments:     investments,
		CashAccounts:    cashAccounts,
		PhysicalAssets:  physicalAssets,
		OwnershipStakes: ownershipStakes,
		Liabilities:     liabilities,
	}
}

func (c *ValuationController) GetTotalAssetValue(ctx context.Context) (*schemas.TotalAssetValue, error) {
	investments, err := c.Investments.SumTotalValue(ctx)
	if err != nil {
		return nil, err
	}
	cash, err := c.CashAccounts.SumBalance(ctx)
	if err != nil {
		return nil, err
	}
	physical, err := c.PhysicalAssets.SumCurrentValue(ctx)
	if err != nil {
		return nil, err
	}
	ownership, err := c.OwnershipStakes.SumCurrentValue(ctx)
	if err != nil {
		return nil, err
	}

	return &schemas.TotalAssetValue{
		Investments: investments,
		Cash:        cash,
		Physical:    physical,
		Ownership:   ownership,
		Total:       investments + cash + physical + ownership,
	}, nil
}

func (c *ValuationController) GetAssetBreakdown(ctx context.Context) (*schemas.AssetBreakdown, error) {
	investments, err := c.Investments.SumByType(ctx)
	if err != nil {
		return nil, err
	}
	cashAccounts, err := c.CashAccounts.SumByAccountType(ctx)
	if err != nil {
		return nil, err
	}
	physicalAssets, err := c.PhysicalAssets.SumByCategory(ctx)
	if err != nil {
		return nil, err
	}

	return &schemas.AssetBreakdown{
		Investments:    investments,
		CashAccounts:   cashAccounts,
		PhysicalAssets: physicalAssets,
	}, nil
}

func (c *ValuationController) GetTotalLiabilities(ctx context.Context) (float64, error) {
	return c.Liabilities.SumCurrentBalance(ctx)
}
