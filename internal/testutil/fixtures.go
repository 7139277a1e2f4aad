package testutil

import (
	"fmt"
	"sync/atomic"

	"brickshare/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewProperty returns a property with sensible defaults: 100 slots valued at
// 1,000,000 with none sold. Tests mutate fields as needed.
func NewProperty() models.Property {
	n := nextID()
	return models.Property{
		ID:             fmt.Sprintf("prop-%d", n),
		Slug:           fmt.Sprintf("property-%d", n),
		Title:          fmt.Sprintf("Property %d", n),
		Location:       "Lisbon",
		TotalValue:     1_000_000,
		SlotsCount:     100,
		SlotsSold:      0,
		GoalAmount:     1_000_000,
		CurrentAmount:  250_000,
		AnnualReturn:   8.5,
		InvestorsCount: 12,
	}
}

// NewInvestment returns an investment of one slot in the given property.
func NewInvestment(propertyID string) models.Investment {
	n := nextID()
	return models.Investment{
		ID:             fmt.Sprintf("inv-%d", n),
		PropertyID:     propertyID,
		AmountInvested: 10_000,
		SlotsPurchased: 1,
	}
}
