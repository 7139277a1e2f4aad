// Package client provides an HTTP client for the marketplace API, the
// authoritative owner of property and investment records.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"brickshare/internal/models"
)

// Session carries the caller's credentials for marketplace requests. The
// token is opaque to the engine; the marketplace decides what it grants.
// Callers thread a Session into every operation instead of reading ambient
// state.
type Session struct {
	Token string
}

// StatusError is a non-2xx response from the marketplace with its decoded
// error envelope.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("marketplace returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("marketplace returned status %d", e.StatusCode)
}

// Client communicates with the marketplace API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new marketplace API client.
func New(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetProperties fetches the full property catalog.
func (c *Client) GetProperties(ctx context.Context, session Session) ([]models.Property, error) {
	var result struct {
		Properties []models.Property `json:"properties"`
	}
	if err := c.do(ctx, session, http.MethodGet, "/properties", nil, &result); err != nil {
		return nil, fmt.Errorf("fetching properties: %w", err)
	}
	return result.Properties, nil
}

// GetProperty fetches a single property by id.
func (c *Client) GetProperty(ctx context.Context, session Session, id string) (*models.Property, error) {
	var result struct {
		Property models.Property `json:"property"`
	}
	if err := c.do(ctx, session, http.MethodGet, "/properties/"+url.PathEscape(id), nil, &result); err != nil {
		return nil, fmt.Errorf("fetching property %s: %w", id, err)
	}
	return &result.Property, nil
}

// GetPropertyBySlug fetches a single property by its URL slug.
func (c *Client) GetPropertyBySlug(ctx context.Context, session Session, slug string) (*models.Property, error) {
	var result struct {
		Property models.Property `json:"property"`
	}
	if err := c.do(ctx, session, http.MethodGet, "/properties/slug/"+url.PathEscape(slug), nil, &result); err != nil {
		return nil, fmt.Errorf("fetching property by slug %s: %w", slug, err)
	}
	return &result.Property, nil
}

// BuySlot submits a slot purchase for the property and returns the
// marketplace's authoritative transaction record. The reference identifies
// the intent across a manual retry; the marketplace may use it to
// deduplicate.
func (c *Client) BuySlot(ctx context.Context, session Session, propertyID string, slots int, reference string) (*models.TransactionRecord, error) {
	body := struct {
		Slots     int    `json:"slots"`
		Reference string `json:"reference,omitempty"`
	}{Slots: slots, Reference: reference}

	var result struct {
		Transaction models.TransactionRecord `json:"transaction"`
	}
	path := "/investments/" + url.PathEscape(propertyID) + "/buy-slot"
	if err := c.do(ctx, session, http.MethodPost, path, body, &result); err != nil {
		return nil, fmt.Errorf("buying slots for property %s: %w", propertyID, err)
	}
	return &result.Transaction, nil
}

// MyInvestments fetches the session user's investment records.
func (c *Client) MyInvestments(ctx context.Context, session Session) ([]models.Investment, error) {
	var result struct {
		Investments []models.Investment `json:"investments"`
	}
	if err := c.do(ctx, session, http.MethodGet, "/investments/my", nil, &result); err != nil {
		return nil, fmt.Errorf("fetching investments: %w", err)
	}
	return result.Investments, nil
}

// UserInvestments fetches a given user's investment records for the admin
// detail view.
func (c *Client) UserInvestments(ctx context.Context, session Session, userID string) ([]models.Investment, error) {
	var result struct {
		Investments []models.Investment `json:"investments"`
	}
	path := "/admin/users/" + url.PathEscape(userID) + "/investments"
	if err := c.do(ctx, session, http.MethodGet, path, nil, &result); err != nil {
		return nil, fmt.Errorf("fetching investments for user %s: %w", userID, err)
	}
	return result.Investments, nil
}

// SetUserStatus toggles a user between active and blocked.
func (c *Client) SetUserStatus(ctx context.Context, session Session, userID, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}

	path := "/admin/users/" + url.PathEscape(userID) + "/status"
	if err := c.do(ctx, session, http.MethodPatch, path, body, nil); err != nil {
		return fmt.Errorf("updating status for user %s: %w", userID, err)
	}
	return nil
}

// do performs a single request-response exchange. Non-2xx responses decode
// the marketplace's error envelope into a StatusError; transport failures
// return the underlying error unwrapped into the caller's context.
func (c *Client) do(ctx context.Context, session Session, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeStatusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// decodeStatusError extracts the error code and message from a failure
// response. The marketplace wraps errors as {"error":{"code","message"}};
// a bare {"message"} and an undecodable body both still yield a usable
// StatusError.
func decodeStatusError(resp *http.Response) *StatusError {
	statusErr := &StatusError{StatusCode: resp.StatusCode}

	var envelope struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return statusErr
	}

	if envelope.Error != nil {
		statusErr.Code = envelope.Error.Code
		statusErr.Message = envelope.Error.Message
	} else {
		statusErr.Message = envelope.Message
	}
	return statusErr
}
