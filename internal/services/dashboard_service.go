package services

import (
	"context"

	"brickshare/internal/aggregate"
	"brickshare/internal/client"
	"brickshare/internal/models"
)

// dashboardService computes the investor dashboard views from fresh fetches.
type dashboardService struct {
	api MarketplaceAPI
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(api MarketplaceAPI) DashboardServicer {
	return &dashboardService{api: api}
}

// GetSummary recomputes the dashboard summary cards from the current catalog.
func (s *dashboardService) GetSummary(ctx context.Context, session client.Session) (*models.DashboardSummary, error) {
	properties, err := s.api.GetProperties(ctx, session)
	if err != nil {
		return nil, mapUpstreamError(err)
	}

	summary := aggregate.Dashboard(properties)
	return &summary, nil
}

// GetPortfolio rolls up the session user's holdings. The catalog is fetched
// alongside the investments so each holding can be joined to its property's
// annual return.
func (s *dashboardService) GetPortfolio(ctx context.Context, session client.Session) (*models.PortfolioSummary, error) {
	investments, err := s.api.MyInvestments(ctx, session)
	if err != nil {
		return nil, mapUpstreamError(err)
	}

	properties, err := s.api.GetProperties(ctx, session)
	if err != nil {
		return nil, mapUpstreamError(err)
	}

	summary := aggregate.Portfolio(investments, aggregate.PropertyIndex(properties))
	return &summary, nil
}
