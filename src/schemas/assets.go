package schemas

// TotalAssetValue aggregates the value of every asset class. All fields are 0
// when the corresponding tables are empty.
type TotalAssetValue struct {
	Investments float64 `json:"investments"`
	Cash        float64 `json:"cash"`
	Physical    float64 `json:"physical"`
	Ownership   float64 `json:"ownership"`
	Total       float64 `json:"total"`
}

// CategoryValue is one group-by bucket of an asset breakdown.
type CategoryValue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// AssetBreakdown carries per-classification sub-totals for allocation charts.
type AssetBreakdown struct {
	Investments    []CategoryValue `json:"investments"`
	CashAccounts   []CategoryValue `json:"cashAccounts"`
	PhysicalAssets []CategoryValue `json:"physicalAssets"`
}
