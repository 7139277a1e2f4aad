// Package aggregate reduces property and investment records into the summary
// statistics behind the investor and admin dashboards. Aggregates are
// recomputed from source data on every call rather than incrementally
// maintained.
package aggregate

import "brickshare/internal/models"

// PropertyIndex builds a lookup from property id to record, for joining
// investments to the returns of the properties they hold.
func PropertyIndex(properties []models.Property) map[string]models.Property {
	index := make(map[string]models.Property, len(properties))
	for _, p := range properties {
		index[p.ID] = p
	}
	return index
}

// Portfolio rolls up a user's investment records. Monthly income applies each
// property's annual return to the amount invested; records whose property is
// missing from the index contribute value but no income. ROI is the
// invested-amount-weighted average annual return, reported as 0 when the
// invested base is zero so the UI never shows an undefined value.
func Portfolio(investments []models.Investment, properties map[string]models.Property) models.PortfolioSummary {
	summary := models.PortfolioSummary{TotalInvestments: len(investments)}

	var annualIncome float64
	for _, inv := range investments {
		amount := float64(inv.AmountInvested)
		summary.PortfolioValue += amount

		if p, ok := properties[inv.PropertyID]; ok {
			annualIncome += amount * float64(p.AnnualReturn) / 100
		}
	}

	summary.MonthlyIncome = annualIncome / 12
	if summary.PortfolioValue > 0 {
		summary.ROI = annualIncome / summary.PortfolioValue * 100
	}
	return summary
}

// Dashboard rolls up the property catalog into the investor dashboard summary
// cards. Value is the sum of invested amounts across the catalog; income and
// ROI follow the same policy as Portfolio.
func Dashboard(properties []models.Property) models.DashboardSummary {
	summary := models.DashboardSummary{TotalProperties: len(properties)}

	var annualIncome float64
	for _, p := range properties {
		amount := float64(p.CurrentAmount)
		summary.PortfolioValue += amount
		annualIncome += amount * float64(p.AnnualReturn) / 100
	}

	summary.MonthlyIncome = annualIncome / 12
	if summary.PortfolioValue > 0 {
		summary.ROI = annualIncome / summary.PortfolioValue * 100
	}
	return summary
}
