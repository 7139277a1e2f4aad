package services

import (
	"context"
	"errors"
	"net/http"

	"brickshare/internal/aggregate"
	"brickshare/internal/client"
	apperrors "brickshare/internal/errors"
	"brickshare/internal/models"
)

// adminService computes platform-level metrics and per-user rollups for
// administrative review.
type adminService struct {
	api MarketplaceAPI
}

// NewAdminService creates a new AdminServicer.
func NewAdminService(api MarketplaceAPI) AdminServicer {
	return &adminService{api: api}
}

// GetPlatformStats recomputes platform-wide metrics from the current catalog.
func (s *adminService) GetPlatformStats(ctx context.Context, session client.Session) (*models.PlatformStats, error) {
	properties, err := s.api.GetProperties(ctx, session)
	if err != nil {
		return nil, mapUpstreamError(err)
	}

	stats := aggregate.Platform(properties)
	return &stats, nil
}

// GetUserInvestments returns a user's investment records with their rollup.
func (s *adminService) GetUserInvestments(ctx context.Context, session client.Session, userID string) (*UserInvestmentsView, error) {
	investments, err := s.api.UserInvestments(ctx, session, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	return &UserInvestmentsView{
		Investments: investments,
		Summary:     aggregate.UserInvestments(investments),
	}, nil
}

// SetUserStatus toggles a user between active and blocked via the
// marketplace; the gateway holds no user records of its own.
func (s *adminService) SetUserStatus(ctx context.Context, session client.Session, userID, status string) error {
	if err := s.api.SetUserStatus(ctx, session, userID, status); err != nil {
		return mapUserError(err)
	}
	return nil
}

// mapUserError is mapUpstreamError with user-specific not-found.
func mapUserError(err error) error {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return apperrors.ErrUserNotFound
	}
	return mapUpstreamError(err)
}
