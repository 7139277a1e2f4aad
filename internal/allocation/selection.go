package allocation

import (
	"math"
	"strconv"
	"strings"
)

// Selection is the ephemeral slot quantity a user adjusts ahead of a
// purchase. It exists from opening a property's purchase panel until
// navigation away or a successful purchase, and every adjustment lands on a
// legal value via ClampSlots.
type Selection struct {
	slots     int
	available int
}

// NewSelection starts a selection against the given availability: one slot
// when anything is available, zero when sold out.
func NewSelection(available int) *Selection {
	return &Selection{slots: ClampSlots(1, available), available: available}
}

// Slots returns the current legal slot count.
func (s *Selection) Slots() int { return s.slots }

// Available returns the availability the selection is bounded by.
func (s *Selection) Available() int { return s.available }

// Enabled reports whether the selection can be adjusted at all. A sold-out
// property disables its quantity controls instead of clamping to one.
func (s *Selection) Enabled() bool { return s.available > 0 }

// Increment raises the selection by one slot, bounded by availability.
func (s *Selection) Increment() int {
	if !s.Enabled() {
		return s.slots
	}
	s.slots = ClampSlots(s.slots+1, s.available)
	return s.slots
}

// Decrement lowers the selection by one slot, bounded below by one.
func (s *Selection) Decrement() int {
	if !s.Enabled() {
		return s.slots
	}
	s.slots = ClampSlots(s.slots-1, s.available)
	return s.slots
}

// SetInput applies a direct-entry value. Non-numeric input keeps the previous
// legal value rather than corrupting the selection.
func (s *Selection) SetInput(raw string) int {
	if !s.Enabled() {
		return s.slots
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return s.slots
	}
	s.slots = ClampSlots(n, s.available)
	return s.slots
}

// SetValue applies a numeric value, truncating fractions. NaN and infinities
// keep the previous legal value.
func (s *Selection) SetValue(v float64) int {
	if !s.Enabled() || math.IsNaN(v) || math.IsInf(v, 0) {
		return s.slots
	}
	s.slots = ClampSlots(int(v), s.available)
	return s.slots
}

// Refresh rebounds the selection against newly fetched availability. A
// selection that was disabled by a sold-out snapshot becomes usable again if
// slots have freed up.
func (s *Selection) Refresh(available int) int {
	s.available = available
	s.slots = ClampSlots(s.slots, available)
	return s.slots
}
