package aggregate

import "brickshare/internal/models"

// Platform rolls up the full property catalog into platform-wide metrics for
// the admin dashboard. Monetary and rate fields were normalized at ingestion,
// so a "8.5%"-style annual return or a grouped current amount sums cleanly
// and a malformed field contributes 0 instead of aborting the aggregation.
// An empty catalog yields all zeros with no division.
func Platform(properties []models.Property) models.PlatformStats {
	stats := models.PlatformStats{TotalProperties: len(properties)}

	var rateSum float64
	for _, p := range properties {
		stats.TotalInvested += float64(p.CurrentAmount)
		rateSum += float64(p.AnnualReturn)
		stats.ActiveInvestors += p.InvestorsCount
	}

	if stats.TotalProperties > 0 {
		stats.AverageReturnRate = rateSum / float64(stats.TotalProperties)
	}
	return stats
}

// UserInvestments reduces a single user's investment list for the admin's
// per-user detail view. A pure reduction with no cross-user coupling.
func UserInvestments(investments []models.Investment) models.UserInvestmentSummary {
	summary := models.UserInvestmentSummary{TotalInvestments: len(investments)}
	for _, inv := range investments {
		summary.TotalInvestedAmount += float64(inv.AmountInvested)
	}
	return summary
}
