package services

import (
	"context"
	"errors"

	"brickshare/internal/client"
	"brickshare/internal/models"
)

// mockMarketplace implements MarketplaceAPI with overridable function fields.
// Unset methods fail loudly so a test never silently exercises the wrong path.
type mockMarketplace struct {
	getPropertiesFn     func(ctx context.Context, session client.Session) ([]models.Property, error)
	getPropertyFn       func(ctx context.Context, session client.Session, id string) (*models.Property, error)
	getPropertyBySlugFn func(ctx context.Context, session client.Session, slug string) (*models.Property, error)
	buySlotFn           func(ctx context.Context, session client.Session, propertyID string, slots int, reference string) (*models.TransactionRecord, error)
	myInvestmentsFn     func(ctx context.Context, session client.Session) ([]models.Investment, error)
	userInvestmentsFn   func(ctx context.Context, session client.Session, userID string) ([]models.Investment, error)
	setUserStatusFn     func(ctx context.Context, session client.Session, userID, status string) error
}

var errUnexpectedCall = errors.New("unexpected marketplace call")

func (m *mockMarketplace) GetProperties(ctx context.Context, session client.Session) ([]models.Property, error) {
	if m.getPropertiesFn == nil {
		return nil, errUnexpectedCall
	}
	return m.getPropertiesFn(ctx, session)
}

func (m *mockMarketplace) GetProperty(ctx context.Context, session client.Session, id string) (*models.Property, error) {
	if m.getPropertyFn == nil {
		return nil, errUnexpectedCall
	}
	return m.getPropertyFn(ctx, session, id)
}

func (m *mockMarketplace) GetPropertyBySlug(ctx context.Context, session client.Session, slug string) (*models.Property, error) {
	if m.getPropertyBySlugFn == nil {
		return nil, errUnexpectedCall
	}
	return m.getPropertyBySlugFn(ctx, session, slug)
}

func (m *mockMarketplace) BuySlot(ctx context.Context, session client.Session, propertyID string, slots int, reference string) (*models.TransactionRecord, error) {
	if m.buySlotFn == nil {
		return nil, errUnexpectedCall
	}
	return m.buySlotFn(ctx, session, propertyID, slots, reference)
}

func (m *mockMarketplace) MyInvestments(ctx context.Context, session client.Session) ([]models.Investment, error) {
	if m.myInvestmentsFn == nil {
		return nil, errUnexpectedCall
	}
	return m.myInvestmentsFn(ctx, session)
}

func (m *mockMarketplace) UserInvestments(ctx context.Context, session client.Session, userID string) ([]models.Investment, error) {
	if m.userInvestmentsFn == nil {
		return nil, errUnexpectedCall
	}
	return m.userInvestmentsFn(ctx, session, userID)
}

func (m *mockMarketplace) SetUserStatus(ctx context.Context, session client.Session, userID, status string) error {
	if m.setUserStatusFn == nil {
		return errUnexpectedCall
	}
	return m.setUserStatusFn(ctx, session, userID, status)
}
