package services

import (
	"context"
	"errors"
	"net/http"

	"brickshare/internal/allocation"
	"brickshare/internal/client"
	apperrors "brickshare/internal/errors"
	"brickshare/internal/logger"
	"brickshare/internal/models"
	"brickshare/internal/pagination"
	"brickshare/internal/purchase"
)

// propertyService handles catalog and purchase logic against the marketplace.
type propertyService struct {
	api       MarketplaceAPI
	submitter *purchase.Submitter
}

// NewPropertyService creates a new PropertyServicer.
func NewPropertyService(api MarketplaceAPI) PropertyServicer {
	return &propertyService{
		api:       api,
		submitter: purchase.NewSubmitter(api, logger.With("purchase")),
	}
}

// newPropertyView decorates a property with its derived availability.
func newPropertyView(p models.Property) PropertyView {
	av := allocation.Calculate(p)
	return PropertyView{
		Property:        p,
		AvailableSlots:  av.AvailableSlots,
		PricePerSlot:    av.PricePerSlot,
		PriceKnown:      av.PriceKnown,
		SoldOut:         av.SoldOut(),
		FundingProgress: allocation.FundingProgress(p),
	}
}

// ListProperties returns a page of the catalog, each record decorated with
// availability derived from the fetched snapshot.
func (s *propertyService) ListProperties(ctx context.Context, session client.Session, page pagination.PageRequest) (*pagination.PageResponse[PropertyView], error) {
	properties, err := s.api.GetProperties(ctx, session)
	if err != nil {
		return nil, mapUpstreamError(err)
	}

	page.Defaults()

	views := make([]PropertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, newPropertyView(p))
	}

	result := pagination.NewPageResponse(pagination.Slice(views, page), page.Page, page.PageSize, int64(len(views)))
	return &result, nil
}

// GetProperty returns a single decorated property by id.
func (s *propertyService) GetProperty(ctx context.Context, session client.Session, id string) (*PropertyView, error) {
	property, err := s.api.GetProperty(ctx, session, id)
	if err != nil {
		return nil, mapPropertyError(err)
	}
	view := newPropertyView(*property)
	return &view, nil
}

// GetPropertyBySlug returns a single decorated property by its URL slug.
func (s *propertyService) GetPropertyBySlug(ctx context.Context, session client.Session, slug string) (*PropertyView, error) {
	property, err := s.api.GetPropertyBySlug(ctx, session, slug)
	if err != nil {
		return nil, mapPropertyError(err)
	}
	view := newPropertyView(*property)
	return &view, nil
}

// Purchase fetches fresh property state, builds a priced intent from it, and
// submits the intent upstream. The fetch happens per purchase so the
// preconditions are evaluated against the most recent availability; a request
// that exceeds it is an error here, not something to silently clamp, because
// a non-interactive caller asked for a specific quantity. The marketplace
// remains the authority on accept or reject.
func (s *propertyService) Purchase(ctx context.Context, session client.Session, propertyID string, slots int) (*models.TransactionRecord, error) {
	if propertyID == "" {
		return nil, apperrors.ErrPropertyUnavailable
	}

	property, err := s.api.GetProperty(ctx, session, propertyID)
	if err != nil {
		return nil, mapPropertyError(err)
	}

	intent, err := purchase.Build(property.ID, slots, allocation.Calculate(*property))
	if err != nil {
		return nil, err
	}

	return s.submitter.Submit(ctx, session, intent)
}

// mapPropertyError is mapUpstreamError with property-specific not-found.
func mapPropertyError(err error) error {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return apperrors.ErrPropertyNotFound
	}
	return mapUpstreamError(err)
}
