package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"brickshare/internal/middleware"
	"brickshare/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// newRouter builds a minimal router with the session middleware, mirroring the
// /api/v1 group wiring.
func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.Session())
	return router
}

// decodeError parses the gateway's JSON error envelope from a response.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v (body: %s)", err, rec.Body.String())
	}
	return resp
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if rec.Code != status {
		t.Errorf("expected status %d, got %d (body: %s)", status, rec.Code, rec.Body.String())
	}
	if resp := decodeError(t, rec); resp.Error.Code != code {
		t.Errorf("expected error code %q, got %q", code, resp.Error.Code)
	}
}
