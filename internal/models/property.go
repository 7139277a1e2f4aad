package models

// Property represents one investment offering in the marketplace catalog.
// Records are owned and mutated exclusively by the marketplace API;
// slots_sold, current_amount, and investors_count move only as a side effect
// of confirmed purchases on the server. The engine reads snapshots and never
// writes derived fields back.
type Property struct {
	ID             string `json:"id"`
	Slug           string `json:"slug,omitempty"`
	Title          string `json:"title,omitempty"`
	Location       string `json:"location,omitempty"`
	TotalValue     Money  `json:"total_value"`
	SlotsCount     int    `json:"slots_count"`
	SlotsSold      int    `json:"slots_sold"`
	GoalAmount     Money  `json:"goal_amount"`
	CurrentAmount  Money  `json:"current_amount"`
	AnnualReturn   Rate   `json:"annual_return"`
	InvestorsCount int    `json:"investors_count"`
}
