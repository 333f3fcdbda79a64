package controllers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fintrack/src/models"
	"fintrack/src/schemas"
)

type mockInvestmentRepo struct {
	mock.Mock
}

func (m *mockInvestmentRepo) GetAll(ctx context.Context) ([]models.Investment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Investment), args.Error(1)
}

func (m *mockInvestmentRepo) GetByID(ctx context.Context, id int) (*models.Investment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Investment), args.Error(1)
}

func (m *mockInvestmentRepo) Create(ctx context.Context, investment *models.Investment) error {
	return m.Called(ctx, investment).Error(0)
}

func (m *mockInvestmentRepo) Update(ctx context.Context, id int, investment *models.Investment) (bool, error) {
	args := m.Called(ctx, id, investment)
	return args.Bool(0), args.Error(1)
}

func (m *mockInvestmentRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockInvestmentRepo) SumTotalValue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockInvestmentRepo) SumByType(ctx context.Context) ([]schemas.CategoryValue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CategoryValue), args.Error(1)
}

type mockCashAccountRepo struct {
	mock.Mock
}

func (m *mockCashAccountRepo) GetAll(ctx context.Context) ([]models.CashAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CashAccount), args.Error(1)
}

func (m *mockCashAccountRepo) GetByID(ctx context.Context, id int) (*models.CashAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CashAccount), args.Error(1)
}

func (m *mockCashAccountRepo) Create(ctx context.Context, account *models.CashAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockCashAccountRepo) Update(ctx context.Context, id int, account *models.CashAccount) (bool, error) {
	args := m.Called(ctx, id, account)
	return args.Bool(0), args.Error(1)
}

func (m *mockCashAccountRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCashAccountRepo) SumBalance(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockCashAccountRepo) SumByAccountType(ctx context.Context) ([]schemas.CategoryValue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CategoryValue), args.Error(1)
}

type mockPhysicalAssetRepo struct {
	mock.Mock
}

func (m *mockPhysicalAssetRepo) GetAll(ctx context.Context) ([]models.PhysicalAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PhysicalAsset), args.Error(1)
}

func (m *mockPhysicalAssetRepo) GetByID(ctx context.Context, id int) (*models.PhysicalAsset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PhysicalAsset), args.Error(1)
}

func (m *mockPhysicalAssetRepo) Create(ctx context.Context, asset *models.PhysicalAsset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *mockPhysicalAssetRepo) Update(ctx context.Context, id int, asset *models.PhysicalAsset) (bool, error) {
	args := m.Called(ctx, id, asset)
	return args.Bool(0), args.Error(1)
}

func (m *mockPhysicalAssetRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPhysicalAssetRepo) SumCurrentValue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockPhysicalAssetRepo) SumByCategory(ctx context.Context) ([]schemas.CategoryValue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CategoryValue), args.Error(1)
}

type mockOwnershipStakeRepo struct {
	mock.Mock
}

func (m *mockOwnershipStakeRepo) GetAll(ctx context.Context) ([]models.OwnershipStake, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OwnershipStake), args.Error(1)
}

func (m *mockOwnershipStakeRepo) GetByID(ctx context.Context, id int) (*models.OwnershipStake, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OwnershipStake), args.Error(1)
}

func (m *mockOwnershipStakeRepo) Create(ctx context.Context, stake *models.OwnershipStake) error {
	return m.Called(ctx, stake).Error(0)
}

func (m *mockOwnershipStakeRepo) Update(ctx context.Context, id int, stake *models.OwnershipStake) (bool, error) {
	args := m.Called(ctx, id, stake)
	return args.Bool(0), args.Error(1)
}

func (m *mockOwnershipStakeRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockOwnershipStakeRepo) SumCurrentValue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type mockLiabilityRepo struct {
	mock.Mock
}

func (m *mockLiabilityRepo) GetAll(ctx context.Context) ([]models.Liability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Liability), args.Error(1)
}

func (m *mockLiabilityRepo) GetByID(ctx context.Context, id int) (*models.Liability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Liability), args.Error(1)
}

func (m *mockLiabilityRepo) Create(ctx context.Context, liability *models.Liability) error {
	return m.Called(ctx, liability).Error(0)
}

func (m *mockLiabilityRepo) Update(ctx context.Context, id int, liability *models.Liability) (bool, error) {
	args := m.Called(ctx, id, liability)
	return args.Bool(0), args.Error(1)
}

func (m *mockLiabilityRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockLiabilityRepo) SumCurrentBalance(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockLiabilityRepo) SumByCategory(ctx context.Context) ([]schemas.CategoryTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CategoryTotal), args.Error(1)
}

func (m *mockLiabilityRepo) SumMonthlyPayments(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockLiabilityRepo) GetDueBetween(ctx context.Context, from, to time.Time) ([]models.Liability, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Liability), args.Error(1)
}

func (m *mockLiabilityRepo) GetOpen(ctx context.Context) ([]models.Liability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Liability), args.Error(1)
}

type mockIncomeRepo struct {
	mock.Mock
}

func (m *mockIncomeRepo) GetAll(ctx context.Context, startDate, endDate *time.Time) ([]models.Income, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Income), args.Error(1)
}

func (m *mockIncomeRepo) GetByID(ctx context.Context, id int) (*models.Income, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Income), args.Error(1)
}

func (m *mockIncomeRepo) Create(ctx context.Context, income *models.Income) error {
	return m.Called(ctx, income).Error(0)
}

func (m *mockIncomeRepo) Update(ctx context.Context, id int, income *models.Income) (bool, error) {
	args := m.Called(ctx, id, income)
	return args.Bool(0), args.Error(1)
}

func (m *mockIncomeRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockIncomeRepo) SumInRange(ctx context.Context, startDate, endDate time.Time) (float64, error) {
	args := m.Called(ctx, startDate, endDate)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockIncomeRepo) SumByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CategoryTotal), args.Error(1)
}

func (m *mockIncomeRepo) GetRecurring(ctx context.Context) ([]models.Income, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Income), args.Error(1)
}

func (m *mockIncomeRepo) GetRecent(ctx context.Context, limit int) ([]models.Income, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Income), args.Error(1)
}

type mockExpenseRepo struct {
	mock.Mock
}

func (m *mockExpenseRepo) GetAll(ctx context.Context, startDate, endDate *time.Time) ([]models.Expense, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *mockExpenseRepo) GetByID(ctx context.Context, id int) (*models.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense *models.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *mockExpenseRepo) Update(ctx context.Context, id int, expense *models.Expense) (bool, error) {
	args := m.Called(ctx, id, expense)
	return args.Bool(0), args.Error(1)
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockExpenseRepo) SumInRange(ctx context.Context, startDate, endDate time.Time) (float64, error) {
	args := m.Called(ctx, startDate, endDate)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockExpenseRepo) SumByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CategoryTotal), args.Error(1)
}

func (m *mockExpenseRepo) GetRecurring(ctx context.Context) ([]models.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *mockExpenseRepo) GetRecent(ctx context.Context, limit int) ([]models.Expense, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

type mockSnapshotRepo struct {
	mock.Mock
}

func (m *mockSnapshotRepo) GetByDate(ctx context.Context, date time.Time) (*models.NetWorthSnapshot, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NetWorthSnapshot), args.Error(1)
}

func (m *mockSnapshotRepo) Insert(ctx context.Context, snapshot *models.NetWorthSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *mockSnapshotRepo) UpdateByDate(ctx context.Context, snapshot *models.NetWorthSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *mockSnapshotRepo) GetHistory(ctx context.Context, startDate, endDate *time.Time, limit int) ([]models.NetWorthSnapshot, error) {
	args := m.Called(ctx, startDate, endDate, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NetWorthSnapshot), args.Error(1)
}

func (m *mockSnapshotRepo) GetLatestInRange(ctx context.Context, startDate, endDate time.Time) (*models.NetWorthSnapshot, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NetWorthSnapshot), args.Error(1)
}

func (m *mockSnapshotRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockValuationController struct {
	mock.Mock
}

func (m *mockValuationController) GetTotalAssetValue(ctx context.Context) (*schemas.TotalAssetValue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.TotalAssetValue), args.Error(1)
}

func (m *mockValuationController) GetAssetBreakdown(ctx context.Context) (*schemas.AssetBreakdown, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.AssetBreakdown), args.Error(1)
}

func (m *mockValuationController) GetTotalLiabilities(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type mockCashFlowController struct {
	mock.Mock
}

func (m *mockCashFlowController) GetCashFlowSummary(ctx context.Context, startDate, endDate time.Time) (*schemas.CashFlowSummary, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.CashFlowSummary), args.Error(1)
}

func (m *mockCashFlowController) GetIncomeByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CategoryTotal), args.Error(1)
}

func (m *mockCashFlowController) GetExpensesByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CategoryTotal), args.Error(1)
}

func (m *mockCashFlowController) GetMonthlyCashFlow(ctx context.Context, year int) ([]schemas.MonthlyCashFlow, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.MonthlyCashFlow), args.Error(1)
}

func (m *mockCashFlowController) GetRecurringTransactions(ctx context.Context) (*schemas.RecurringTransactions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.RecurringTransactions), args.Error(1)
}

func (m *mockCashFlowController) GetRecentTransactions(ctx context.Context, limit int) ([]schemas.TransactionRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.TransactionRecord), args.Error(1)
}

type mockLiabilityController struct {
	mock.Mock
}

func (m *mockLiabilityController) GetUpcomingPayments(ctx context.Context, days int) ([]models.Liability, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Liability), args.Error(1)
}

func (m *mockLiabilityController) GetPayoffProjections(ctx context.Context) ([]schemas.PayoffProjection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.PayoffProjection), args.Error(1)
}

func (m *mockLiabilityController) GetLiabilitiesByCategory(ctx context.Context) ([]schemas.CategoryTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CategoryTotal), args.Error(1)
}

func (m *mockLiabilityController) GetTotalMonthlyPayments(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type mockNetWorthController struct {
	mock.Mock
}

func (m *mockNetWorthController) CalculateCurrentNetWorth(ctx context.Context) (*schemas.CurrentNetWorth, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.CurrentNetWorth), args.Error(1)
}

func (m *mockNetWorthController) SaveSnapshot(ctx context.Context, date *time.Time) (*schemas.SnapshotResult, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.SnapshotResult), args.Error(1)
}

func (m *mockNetWorthController) GetHistory(ctx context.Context, startDate, endDate *time.Time, limit int) ([]models.NetWorthSnapshot, error) {
	args := m.Called(ctx, startDate, endDate, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NetWorthSnapshot), args.Error(1)
}

func (m *mockNetWorthController) GetTrend(ctx context.Context, months int) (*schemas.NetWorthTrend, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.NetWorthTrend), args.Error(1)
}

func (m *mockNetWorthController) GetGoals(ctx context.Context) (*schemas.NetWorthGoals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.NetWorthGoals), args.Error(1)
}

func (m *mockNetWorthController) GetMonthlySummary(ctx context.Context, year int) ([]schemas.MonthlyNetWorth, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.MonthlyNetWorth), args.Error(1)
}

func (m *mockNetWorthController) DeleteSnapshot(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
