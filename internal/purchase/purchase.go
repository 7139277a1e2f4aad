// Package purchase builds purchase intents from validated slot selections and
// submits them to the marketplace API.
package purchase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"brickshare/internal/allocation"
	"brickshare/internal/client"
	apperrors "brickshare/internal/errors"
	"brickshare/internal/models"
	"brickshare/internal/uuid"
)

// Intent is the fully derived, not-yet-submitted representation of a buy
// request. It is never persisted; a successful submission supersedes it with
// the marketplace's authoritative transaction record.
type Intent struct {
	PropertyID   string  `json:"property_id"`
	Slots        int     `json:"slots"`
	PricePerSlot float64 `json:"price_per_slot"`
	TotalPrice   float64 `json:"total_price"`
	// Reference identifies this intent across a manual retry, so the
	// marketplace can deduplicate a resubmission. The engine itself never
	// retries automatically.
	Reference string `json:"reference"`
}

// Build validates purchase preconditions against the given availability and
// derives the priced intent. The failure states are distinct so the caller
// can render specific guidance: a missing property id is not "sold out", and
// "sold out" is not "no price". An underivable price is checked before
// availability, so a zero-slot listing reads as unpriced rather than sold
// out. All checks happen before any network call.
func Build(propertyID string, slots int, av allocation.Availability) (*Intent, error) {
	if propertyID == "" {
		return nil, apperrors.ErrPropertyUnavailable
	}
	if !av.PriceKnown || av.PricePerSlot <= 0 {
		return nil, apperrors.ErrPriceUnavailable
	}
	if av.SoldOut() || slots < 1 {
		return nil, apperrors.ErrSoldOut
	}
	if slots > av.AvailableSlots {
		return nil, apperrors.WithMessage(apperrors.ErrSoldOut,
			fmt.Sprintf("Only %d slots are available for this property", av.AvailableSlots))
	}

	return &Intent{
		PropertyID:   propertyID,
		Slots:        slots,
		PricePerSlot: av.PricePerSlot,
		TotalPrice:   av.PricePerSlot * float64(slots),
		Reference:    uuid.New(),
	}, nil
}

// SlotBuyer is the marketplace operation needed to submit an intent.
type SlotBuyer interface {
	BuySlot(ctx context.Context, session client.Session, propertyID string, slots int, reference string) (*models.TransactionRecord, error)
}

// Submitter sends built intents to the marketplace. Submission is a single
// request-response exchange with no automatic retry. On success the caller
// must re-fetch authoritative property state; the engine never locally
// increments sold counts as if the purchase were guaranteed.
type Submitter struct {
	buyer SlotBuyer
	log   *zap.SugaredLogger
}

// NewSubmitter creates a Submitter over the given marketplace operation.
func NewSubmitter(buyer SlotBuyer, log *zap.SugaredLogger) *Submitter {
	return &Submitter{buyer: buyer, log: log}
}

// Submit exchanges the intent for the marketplace's transaction record.
// A rejection by the marketplace, such as a concurrent buyer exhausting the
// slots between fetch and submit, surfaces as PURCHASE_REJECTED and should
// prompt the caller to refresh property state before allowing a retry.
// Transport failures surface as UPSTREAM_UNREACHABLE so the caller can tell
// "refresh and re-evaluate" apart from "try again later".
func (s *Submitter) Submit(ctx context.Context, session client.Session, intent *Intent) (*models.TransactionRecord, error) {
	record, err := s.buyer.BuySlot(ctx, session, intent.PropertyID, intent.Slots, intent.Reference)
	if err != nil {
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) {
			switch statusErr.StatusCode {
			case http.StatusUnauthorized:
				return nil, apperrors.ErrUnauthorized
			case http.StatusNotFound:
				return nil, apperrors.ErrPropertyNotFound
			}
			s.log.Warnw("purchase rejected",
				"property_id", intent.PropertyID,
				"slots", intent.Slots,
				"reference", intent.Reference,
				"status", statusErr.StatusCode,
				"reason", statusErr.Message,
			)
			if statusErr.Message != "" {
				return nil, apperrors.WithMessage(apperrors.ErrPurchaseRejected, statusErr.Message)
			}
			return nil, apperrors.ErrPurchaseRejected
		}
		return nil, apperrors.Wrap(apperrors.ErrUpstreamUnreachable, err)
	}

	s.log.Infow("purchase confirmed",
		"property_id", intent.PropertyID,
		"slots", intent.Slots,
		"total_price", intent.TotalPrice,
		"reference", intent.Reference,
	)
	return record, nil
}
