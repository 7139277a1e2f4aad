package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"brickshare/internal/models"
)

// StubMarketplace is an httptest-backed stand-in for the marketplace API. It
// owns property and investment state the way the real marketplace does:
// a successful buy-slot mutates slots_sold server-side, and overselling is
// rejected there regardless of what the caller last fetched.
type StubMarketplace struct {
	mu sync.Mutex

	Properties  []models.Property
	Investments map[string][]models.Investment // "my" for the session user, else user id

	// ForceBuyStatus, when non-zero, makes buy-slot fail with this status
	// and ForceBuyMessage in the error envelope.
	ForceBuyStatus  int
	ForceBuyMessage string

	// BuySlotCalls counts buy-slot requests that reached the stub,
	// including rejected ones.
	BuySlotCalls int

	// LastStatusUpdate records the most recent user status toggle.
	LastStatusUpdate struct {
		UserID string
		Status string
	}

	Server *httptest.Server
}

// NewStubMarketplace starts a stub marketplace and registers its shutdown
// with the test's cleanup.
func NewStubMarketplace(t *testing.T) *StubMarketplace {
	t.Helper()

	stub := &StubMarketplace{Investments: map[string][]models.Investment{}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /properties", stub.requireAuth(stub.handleListProperties))
	mux.HandleFunc("GET /properties/{id}", stub.requireAuth(stub.handleGetProperty))
	mux.HandleFunc("GET /properties/slug/{slug}", stub.requireAuth(stub.handleGetPropertyBySlug))
	mux.HandleFunc("POST /investments/{id}/buy-slot", stub.requireAuth(stub.handleBuySlot))
	mux.HandleFunc("GET /investments/my", stub.requireAuth(stub.handleMyInvestments))
	mux.HandleFunc("GET /admin/users/{id}/investments", stub.requireAuth(stub.handleUserInvestments))
	mux.HandleFunc("PATCH /admin/users/{id}/status", stub.requireAuth(stub.handleUserStatus))

	stub.Server = httptest.NewServer(mux)
	t.Cleanup(stub.Server.Close)
	return stub
}

// URL returns the stub's base URL.
func (s *StubMarketplace) URL() string { return s.Server.URL }

// AddProperty registers a property with the stub and returns it.
func (s *StubMarketplace) AddProperty(p models.Property) models.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Properties = append(s.Properties, p)
	return p
}

// Property returns the current state of a property by id.
func (s *StubMarketplace) Property(id string) (models.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Properties {
		if p.ID == id {
			return p, true
		}
	}
	return models.Property{}, false
}

func (s *StubMarketplace) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		next(w, r)
	}
}

func (s *StubMarketplace) handleListProperties(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"properties": s.Properties})
}

func (s *StubMarketplace) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Properties {
		if p.ID == r.PathValue("id") {
			writeJSON(w, http.StatusOK, map[string]any{"property": p})
			return
		}
	}
	writeError(w, http.StatusNotFound, "NOT_FOUND", "Property not found")
}

func (s *StubMarketplace) handleGetPropertyBySlug(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Properties {
		if p.Slug == r.PathValue("slug") {
			writeJSON(w, http.StatusOK, map[string]any{"property": p})
			return
		}
	}
	writeError(w, http.StatusNotFound, "NOT_FOUND", "Property not found")
}

func (s *StubMarketplace) handleBuySlot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.BuySlotCalls++

	if s.ForceBuyStatus != 0 {
		writeError(w, s.ForceBuyStatus, "REJECTED", s.ForceBuyMessage)
		return
	}

	var req struct {
		Slots     int    `json:"slots"`
		Reference string `json:"reference"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed body")
		return
	}

	id := r.PathValue("id")
	for i := range s.Properties {
		p := &s.Properties[i]
		if p.ID != id {
			continue
		}

		available := p.SlotsCount - p.SlotsSold
		if req.Slots < 1 || req.Slots > available {
			writeError(w, http.StatusConflict, "SLOTS_EXHAUSTED", "Not enough slots available")
			return
		}

		pricePerSlot := float64(p.TotalValue) / float64(p.SlotsCount)
		p.SlotsSold += req.Slots
		p.CurrentAmount += models.Money(pricePerSlot * float64(req.Slots))
		p.InvestorsCount++

		writeJSON(w, http.StatusCreated, map[string]any{
			"transaction": models.TransactionRecord{
				ID:           "tx-" + req.Reference,
				PropertyID:   p.ID,
				Slots:        req.Slots,
				PricePerSlot: models.Money(pricePerSlot),
				TotalPrice:   models.Money(pricePerSlot * float64(req.Slots)),
				Status:       "confirmed",
				Reference:    req.Reference,
			},
		})
		return
	}
	writeError(w, http.StatusNotFound, "NOT_FOUND", "Property not found")
}

func (s *StubMarketplace) handleMyInvestments(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"investments": investmentsOrEmpty(s.Investments["my"])})
}

func (s *StubMarketplace) handleUserInvestments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID := r.PathValue("id")
	if _, ok := s.Investments[userID]; !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"investments": investmentsOrEmpty(s.Investments[userID])})
}

func (s *StubMarketplace) handleUserStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastStatusUpdate.UserID = r.PathValue("id")
	s.LastStatusUpdate.Status = req.Status
	writeJSON(w, http.StatusOK, map[string]any{"message": "Status updated"})
}

func investmentsOrEmpty(investments []models.Investment) []models.Investment {
	if investments == nil {
		return []models.Investment{}
	}
	return investments
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
