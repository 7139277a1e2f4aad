package services

import (
	"context"

	"brickshare/internal/client"
	"brickshare/internal/models"
	"brickshare/internal/pagination"
)

// MarketplaceAPI is the subset of the marketplace client the services depend
// on. The concrete *client.Client satisfies it; tests substitute mocks.
type MarketplaceAPI interface {
	GetProperties(ctx context.Context, session client.Session) ([]models.Property, error)
	GetProperty(ctx context.Context, session client.Session, id string) (*models.Property, error)
	GetPropertyBySlug(ctx context.Context, session client.Session, slug string) (*models.Property, error)
	BuySlot(ctx context.Context, session client.Session, propertyID string, slots int, reference string) (*models.TransactionRecord, error)
	MyInvestments(ctx context.Context, session client.Session) ([]models.Investment, error)
	UserInvestments(ctx context.Context, session client.Session, userID string) ([]models.Investment, error)
	SetUserStatus(ctx context.Context, session client.Session, userID, status string) error
}

// PropertyView decorates a property record with availability and funding
// state derived for display. Derived fields are computed from the snapshot at
// response time and never written back upstream.
type PropertyView struct {
	models.Property
	AvailableSlots  int     `json:"available_slots"`
	PricePerSlot    float64 `json:"price_per_slot"`
	PriceKnown      bool    `json:"price_known"`
	SoldOut         bool    `json:"sold_out"`
	FundingProgress float64 `json:"funding_progress"`
}

// UserInvestmentsView pairs a user's raw investment records with their rollup
// for the admin detail screen.
type UserInvestmentsView struct {
	Investments []models.Investment          `json:"investments"`
	Summary     models.UserInvestmentSummary `json:"summary"`
}

// PropertyServicer defines catalog and purchase operations for the gateway.
type PropertyServicer interface {
	ListProperties(ctx context.Context, session client.Session, page pagination.PageRequest) (*pagination.PageResponse[PropertyView], error)
	GetProperty(ctx context.Context, session client.Session, id string) (*PropertyView, error)
	GetPropertyBySlug(ctx context.Context, session client.Session, slug string) (*PropertyView, error)
	Purchase(ctx context.Context, session client.Session, propertyID string, slots int) (*models.TransactionRecord, error)
}

// DashboardServicer defines the investor dashboard aggregation views.
type DashboardServicer interface {
	GetSummary(ctx context.Context, session client.Session) (*models.DashboardSummary, error)
	GetPortfolio(ctx context.Context, session client.Session) (*models.PortfolioSummary, error)
}

// AdminServicer defines the admin aggregation and user-management views.
type AdminServicer interface {
	GetPlatformStats(ctx context.Context, session client.Session) (*models.PlatformStats, error)
	GetUserInvestments(ctx context.Context, session client.Session, userID string) (*UserInvestmentsView, error)
	SetUserStatus(ctx context.Context, session client.Session, userID, status string) error
}
