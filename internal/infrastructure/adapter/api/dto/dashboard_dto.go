package dto

// TotalsResponse represents the dashboard headline figures.
// totalSavings mirrors totalBalance by current policy.
type TotalsResponse struct {
	TotalBalance  string `json:"totalBalance"`
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	TotalSavings  string `json:"totalSavings"`
}

// MonthlySpendingResponse is one bucket of the fixed 12-month series
type MonthlySpendingResponse struct {
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// CategoryValueResponse is one slice of the category breakdown pie chart
type CategoryValueResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
