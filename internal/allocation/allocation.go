// Package allocation derives purchasable slot availability and per-slot
// pricing from property records, and clamps requested slot counts to legal
// values. Everything here is pure and synchronous: availability is recomputed
// from the freshest fetched Property on every evaluation, which is the
// defense against staleness between page-load and purchase-click.
package allocation

import (
	"math"

	"brickshare/internal/models"
)

// Availability is the derived purchase state of a property at a point in time.
type Availability struct {
	AvailableSlots int     `json:"available_slots"`
	PricePerSlot   float64 `json:"price_per_slot"`
	// PriceKnown is false when no price per slot can be derived. Zero is not
	// used as the sentinel because a zero price would read as free slots.
	PriceKnown bool `json:"price_known"`
}

// SoldOut reports whether no slots can be purchased.
func (a Availability) SoldOut() bool { return a.AvailableSlots <= 0 }

// Calculate derives availability and price per slot from a property record.
// Inconsistent upstream data with slotsSold > slotsCount floors availability
// at zero rather than propagating a negative count. A property with zero
// slots has no derivable price: PriceKnown is false and AvailableSlots is 0,
// with no division performed.
func Calculate(p models.Property) Availability {
	var av Availability
	if p.SlotsCount <= 0 {
		return av
	}
	if free := p.SlotsCount - p.SlotsSold; free > 0 {
		av.AvailableSlots = free
	}
	av.PricePerSlot = float64(p.TotalValue) / float64(p.SlotsCount)
	av.PriceKnown = true
	return av
}

// CalculateWithPrice is Calculate with an explicit price-per-slot override,
// used when the listing carries an administrator-set price. Non-positive or
// non-finite overrides are ignored in favor of the derived price.
func CalculateWithPrice(p models.Property, pricePerSlot float64) Availability {
	av := Calculate(p)
	if pricePerSlot > 0 && !math.IsInf(pricePerSlot, 0) {
		av.PricePerSlot = pricePerSlot
		av.PriceKnown = true
	}
	return av
}

// FundingProgress returns the property's current amount as a percentage of
// its goal, clamped to [0, 100]. A zero goal reports 0.
func FundingProgress(p models.Property) float64 {
	if p.GoalAmount <= 0 {
		return 0
	}
	pct := float64(p.CurrentAmount) / float64(p.GoalAmount) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ClampSlots maps a requested slot count to the nearest legal value for the
// given availability. The function is total and idempotent: every input pair
// has exactly one legal output, and clamping a clamped value is a no-op.
// When nothing is available the only legal value is zero; the caller is
// expected to disable quantity controls rather than show a false minimum of
// one.
func ClampSlots(requested, available int) int {
	if available <= 0 {
		return 0
	}
	if requested < 1 {
		return 1
	}
	if requested > available {
		return available
	}
	return requested
}
