package schemas

import "time"

// PayoffProjection estimates months remaining and total interest until a
// liability is paid off. The projection fields are nil when the liability has
// no monthly payment or when amortization does not converge.
type PayoffProjection struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	MonthsToPayoff *int       `json:"monthsToPayoff"`
	TotalInterest  *float64   `json:"totalInterest"`
	PayoffDate     *time.Time `json:"payoffDate"`
}
