// Package integration exercises the gateway end to end against a stub
// marketplace that owns property and investment state.
package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"brickshare/internal/client"
	"brickshare/internal/handlers"
	"brickshare/internal/middleware"
	"brickshare/internal/services"
	"brickshare/internal/testutil"
	"brickshare/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// newGateway wires the full router against the given marketplace URL, the
// same composition the gateway binary performs at startup.
func newGateway(marketplaceURL string) *gin.Engine {
	httpClient := &http.Client{Timeout: 5 * time.Second}
	marketplace := client.New(marketplaceURL, httpClient)

	propertyHandler := handlers.NewPropertyHandler(services.NewPropertyService(marketplace))
	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(marketplace))
	adminHandler := handlers.NewAdminHandler(services.NewAdminService(marketplace))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Session())

	properties := v1.Group("/properties")
	properties.GET("", propertyHandler.ListProperties)
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.GET("/slug/:slug", propertyHandler.GetPropertyBySlug)
	properties.POST("/:id/purchase", propertyHandler.Purchase)

	dashboard := v1.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/portfolio", dashboardHandler.GetPortfolio)

	admin := v1.Group("/admin")
	admin.GET("/stats", adminHandler.GetStats)
	admin.GET("/users/:id/investments", adminHandler.GetUserInvestments)
	admin.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)

	return router
}

// newEnv starts a stub marketplace and a gateway wired to it.
func newEnv(t *testing.T) (*testutil.StubMarketplace, *gin.Engine) {
	t.Helper()
	stub := testutil.NewStubMarketplace(t)
	return stub, newGateway(stub.URL())
}

// do performs an authenticated request against the gateway.
func do(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer test-token")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// doUnauthenticated performs a request without an Authorization header.
func doUnauthenticated(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body, failing the test on malformed JSON.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response: %v (body: %s)", err, rec.Body.String())
	}
}

// errorCode extracts the error code from the gateway's error envelope.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	decode(t, rec, &resp)
	return resp.Error.Code
}
