package services

import (
	"errors"
	"net/http"

	"brickshare/internal/client"
	apperrors "brickshare/internal/errors"
)

// mapUpstreamError converts marketplace client failures into AppErrors the
// handlers can render. Authentication and not-found statuses keep their own
// codes; anything else from the wire is an upstream failure the caller may
// retry manually after re-fetching.
func mapUpstreamError(err error) error {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized:
			return apperrors.ErrUnauthorized
		case http.StatusForbidden:
			return apperrors.ErrForbidden
		case http.StatusNotFound:
			return apperrors.ErrNotFound
		case http.StatusBadRequest:
			if statusErr.Message != "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, statusErr.Message)
			}
			return apperrors.ErrInvalidInput
		}
	}
	return apperrors.Wrap(apperrors.ErrUpstreamUnreachable, err)
}
