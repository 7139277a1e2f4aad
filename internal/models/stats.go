package models

// Derived statistics are recomputed from freshly fetched records on every
// request and never cached.

// PlatformStats summarizes the full property catalog for the admin dashboard.
type PlatformStats struct {
	TotalProperties   int     `json:"total_properties"`
	TotalInvested     float64 `json:"total_invested"`
	AverageReturnRate float64 `json:"average_return_rate"`
	ActiveInvestors   int     `json:"active_investors"`
}

// PortfolioSummary rolls up a single user's holdings.
type PortfolioSummary struct {
	TotalInvestments int     `json:"total_investments"`
	PortfolioValue   float64 `json:"portfolio_value"`
	MonthlyIncome    float64 `json:"monthly_income"`
	ROI              float64 `json:"roi"`
}

// DashboardSummary backs the investor dashboard summary cards computed from
// the catalog.
type DashboardSummary struct {
	TotalProperties int     `json:"total_properties"`
	PortfolioValue  float64 `json:"portfolio_value"`
	MonthlyIncome   float64 `json:"monthly_income"`
	ROI             float64 `json:"roi"`
}

// UserInvestmentSummary is the admin's per-user investment rollup.
type UserInvestmentSummary struct {
	TotalInvestments    int     `json:"total_investments"`
	TotalInvestedAmount float64 `json:"total_invested_amount"`
}
