package schemas

import (
	"fmt"
	"time"

	"fintrack/src/models"
	"fintrack/src/utils"
)

// Request schemas decode JSON bodies and enforce the field constraints the
// core does not re-validate. Dates arrive as yyyy-mm-dd strings.

var (
	investmentTypes    = []string{models.InvestmentTypeStock, models.InvestmentTypeBond, models.InvestmentTypeETF, models.InvestmentTypeMutualFund}
	accountTypes       = []string{models.AccountTypeChecking, models.AccountTypeSavings, models.AccountTypeMoneyMarket}
	physicalCategories = []string{"vehicle", "jewelry", "collectibles", "electronics"}
	conditions         = []string{"excellent", "good", "fair", "poor"}
	incomeCategories   = []string{"salary", "freelance", "business", "dividends", "other"}
	expenseCategories  = []string{"housing", "food", "transport", "entertainment", "utilities", "other"}
	frequencies        = []string{models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyAnnually}
)

func oneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if value == v {
			return true
		}
	}
	return false
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(*value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", *value)
	}
	return &t, nil
}

type InvestmentRequest struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Symbol        *string  `json:"symbol"`
	Shares        *float64 `json:"shares"`
	PricePerShare *float64 `json:"price_per_share"`
	TotalValue    *float64 `json:"total_value"`
	PurchaseDate  *string  `json:"purchase_date"`
}

func (r *InvestmentRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !oneOf(r.Type, investmentTypes) {
		return fmt.Errorf("type must be one of %v", investmentTypes)
	}
	if r.TotalValue == nil {
		return fmt.Errorf("total_value is required")
	}
	if r.Shares != nil && *r.Shares <= 0 {
		return fmt.Errorf("shares must be positive")
	}
	if r.PricePerShare != nil && *r.PricePerShare <= 0 {
		return fmt.Errorf("price_per_share must be positive")
	}
	return nil
}

func (r *InvestmentRequest) ToModel() (*models.Investment, error) {
	purchaseDate, err := parseOptionalDate(r.PurchaseDate)
	if err != nil {
		return nil, err
	}
	return &models.Investment{
		Name:          r.Name,
		Type:          r.Type,
		Symbol:        r.Symbol,
		Shares:        r.Shares,
		PricePerShare: r.PricePerShare,
		TotalValue:    *r.TotalValue,
		PurchaseDate:  purchaseDate,
	}, nil
}

type CashAccountRequest struct {
	Name         string   `json:"name"`
	AccountType  string   `json:"account_type"`
	Balance      *float64 `json:"balance"`
	InterestRate *float64 `json:"interest_rate"`
}

func (r *CashAccountRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !oneOf(r.AccountType, accountTypes) {
		return fmt.Errorf("account_type must be one of %v", accountTypes)
	}
	if r.Balance == nil {
		return fmt.Errorf("balance is required")
	}
	if *r.Balance < 0 {
		return fmt.Errorf("balance must not be negative")
	}
	if r.InterestRate != nil && *r.InterestRate < 0 {
		return fmt.Errorf("interest_rate must not be negative")
	}
	return nil
}

func (r *CashAccountRequest) ToModel() (*models.CashAccount, error) {
	account := &models.CashAccount{
		Name:        r.Name,
		AccountType: r.AccountType,
		Balance:     *r.Balance,
	}
	if r.InterestRate != nil {
		account.InterestRate = *r.InterestRate
	}
	return account, nil
}

type PhysicalAssetRequest struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	CurrentValue  *float64 `json:"current_value"`
	PurchaseValue *float64 `json:"purchase_value"`
	PurchaseDate  *string  `json:"purchase_date"`
	Condition     *string  `json:"condition"`
	Notes         *string  `json:"notes"`
}

func (r *PhysicalAssetRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !oneOf(r.Category, physicalCategories) {
		return fmt.Errorf("category must be one of %v", physicalCategories)
	}
	if r.CurrentValue == nil || *r.CurrentValue <= 0 {
		return fmt.Errorf("current_value must be positive")
	}
	if r.PurchaseValue != nil && *r.PurchaseValue <= 0 {
		return fmt.Errorf("purchase_value must be positive")
	}
	if r.Condition != nil && !oneOf(*r.Condition, conditions) {
		return fmt.Errorf("condition must be one of %v", conditions)
	}
	return nil
}

func (r *PhysicalAssetRequest) ToModel() (*models.PhysicalAsset, error) {
	purchaseDate, err := parseOptionalDate(r.PurchaseDate)
	if err != nil {
		return nil, err
	}
	return &models.PhysicalAsset{
		Name:          r.Name,
		Category:      r.Category,
		CurrentValue:  *r.CurrentValue,
		PurchaseValue: r.PurchaseValue,
		PurchaseDate:  purchaseDate,
		Condition:     r.Condition,
		Notes:         r.Notes,
	}, nil
}

type OwnershipStakeRequest struct {
	Name           string   `json:"name"`
	BusinessName   string   `json:"business_name"`
	Percentage     *float64 `json:"percentage"`
	CurrentValue   *float64 `json:"current_value"`
	InvestmentDate *string  `json:"investment_date"`
	Notes          *string  `json:"notes"`
}

func (r *OwnershipStakeRequest) Validate() error {
	if r.Name == "" || r.BusinessName == "" {
		return fmt.Errorf("name and business_name are required")
	}
	if r.Percentage == nil || *r.Percentage < 0 || *r.Percentage > 100 {
		return fmt.Errorf("percentage must be between 0 and 100")
	}
	if r.CurrentValue == nil || *r.CurrentValue <= 0 {
		return fmt.Errorf("current_value must be positive")
	}
	return nil
}

func (r *OwnershipStakeRequest) ToModel() (*models.OwnershipStake, error) {
	investmentDate, err := parseOptionalDate(r.InvestmentDate)
	if err != nil {
		return nil, err
	}
	return &models.OwnershipStake{
		Name:           r.Name,
		BusinessName:   r.BusinessName,
		Percentage:     *r.Percentage,
		CurrentValue:   *r.CurrentValue,
		InvestmentDate: investmentDate,
		Notes:          r.Notes,
	}, nil
}

type LiabilityRequest struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	PrincipalAmount *float64 `json:"principal_amount"`
	CurrentBalance  *float64 `json:"current_balance"`
	InterestRate    *float64 `json:"interest_rate"`
	MonthlyPayment  *float64 `json:"monthly_payment"`
	DueDate         *string  `json:"due_date"`
	Notes           *string  `json:"notes"`
}

func (r *LiabilityRequest) Validate() error {
	if r.Name == "" || r.Category == "" {
		return fmt.Errorf("name and category are required")
	}
	if r.PrincipalAmount == nil || *r.PrincipalAmount <= 0 {
		return fmt.Errorf("principal_amount must be positive")
	}
	if r.CurrentBalance == nil {
		return fmt.Errorf("current_balance is required")
	}
	if r.InterestRate != nil && *r.InterestRate < 0 {
		return fmt.Errorf("interest_rate must not be negative")
	}
	if r.MonthlyPayment != nil && *r.MonthlyPayment < 0 {
		return fmt.Errorf("monthly_payment must not be negative")
	}
	return nil
}

func (r *LiabilityRequest) ToModel() (*models.Liability, error) {
	dueDate, err := parseOptionalDate(r.DueDate)
	if err != nil {
		return nil, err
	}
	liability := &models.Liability{
		Name:            r.Name,
		Category:        r.Category,
		PrincipalAmount: *r.PrincipalAmount,
		CurrentBalance:  *r.CurrentBalance,
		DueDate:         dueDate,
		Notes:           r.Notes,
	}
	if r.InterestRate != nil {
		liability.InterestRate = *r.InterestRate
	}
	if r.MonthlyPayment != nil {
		liability.MonthlyPayment = *r.MonthlyPayment
	}
	return liability, nil
}

type IncomeRequest struct {
	Source      string   `json:"source"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	IsRecurring bool     `json:"is_recurring"`
	Frequency   *string  `json:"frequency"`
	Notes       *string  `json:"notes"`
}

func (r *IncomeRequest) Validate() error {
	if r.Source == "" {
		return fmt.Errorf("source is required")
	}
	if r.Amount == nil || *r.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if r.Date == "" {
		return fmt.Errorf("date is required")
	}
	if !oneOf(r.Category, incomeCategories) {
		return fmt.Errorf("category must be one of %v", incomeCategories)
	}
	return validateRecurrence(r.IsRecurring, r.Frequency)
}

func (r *IncomeRequest) ToModel() (*models.Income, error) {
	date, err := utils.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", r.Date)
	}
	return &models.Income{
		Source:      r.Source,
		Amount:      *r.Amount,
		Date:        date,
		Category:    r.Category,
		IsRecurring: r.IsRecurring,
		Frequency:   r.Frequency,
		Notes:       r.Notes,
	}, nil
}

type ExpenseRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	IsRecurring bool     `json:"is_recurring"`
	Frequency   *string  `json:"frequency"`
	Notes       *string  `json:"notes"`
}

func (r *ExpenseRequest) Validate() error {
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	if r.Amount == nil || *r.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if r.Date == "" {
		return fmt.Errorf("date is required")
	}
	if !oneOf(r.Category, expenseCategories) {
		return fmt.Errorf("category must be one of %v", expenseCategories)
	}
	return validateRecurrence(r.IsRecurring, r.Frequency)
}

func (r *ExpenseRequest) ToModel() (*models.Expense, error) {
	date, err := utils.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", r.Date)
	}
	return &models.Expense{
		Description: r.Description,
		Amount:      *r.Amount,
		Date:        date,
		Category:    r.Category,
		IsRecurring: r.IsRecurring,
		Frequency:   r.Frequency,
		Notes:       r.Notes,
	}, nil
}

// frequency is required exactly when the record is recurring
func validateRecurrence(isRecurring bool, frequency *string) error {
	if isRecurring {
		if frequency == nil {
			return fmt.Errorf("frequency is required for recurring records")
		}
		if !oneOf(*frequency, frequencies) {
			return fmt.Errorf("frequency must be one of %v", frequencies)
		}
		return nil
	}
	if frequency != nil && !oneOf(*frequency, frequencies) {
		return fmt.Errorf("frequency must be one of %v", frequencies)
	}
	return nil
}

type SnapshotRequest struct {
	Date *string `json:"date"`
}
