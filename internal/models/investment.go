package models

import "time"

// Investment is a server-authoritative record of a user's holding in a
// property, read by the aggregators.
type Investment struct {
	ID             string     `json:"id"`
	PropertyID     string     `json:"property_id"`
	AmountInvested Money      `json:"amount_invested"`
	SlotsPurchased int        `json:"slots_purchased"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

// TransactionRecord is the marketplace's authoritative record of a confirmed
// purchase. It entirely supersedes the intent it was built from.
type TransactionRecord struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"property_id"`
	Slots        int       `json:"slots"`
	PricePerSlot Money     `json:"price_per_slot"`
	TotalPrice   Money     `json:"total_price"`
	Status       string    `json:"status,omitempty"`
	Reference    string    `json:"reference,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
