package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"brickshare/internal/client"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func sessionRouter(capture *client.Session) *gin.Engine {
	router := gin.New()
	router.Use(Session())
	router.GET("/probe", func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "session missing"})
			return
		}
		*capture = session
		c.Status(http.StatusOK)
	})
	return router
}

func TestSession(t *testing.T) {
	t.Run("extracts bearer token", func(t *testing.T) {
		var got client.Session
		router := sessionRouter(&got)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
		}
		if got.Token != "tok-123" {
			t.Errorf("expected token tok-123, got %q", got.Token)
		}
	})

	t.Run("case-insensitive scheme", func(t *testing.T) {
		var got client.Session
		router := sessionRouter(&got)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "bearer tok-123")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.Token != "tok-123" {
			t.Errorf("expected token tok-123, got %q", got.Token)
		}
	})

	t.Run("rejects missing header", func(t *testing.T) {
		var got client.Session
		router := sessionRouter(&got)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		var resp struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Error.Code != "UNAUTHORIZED" {
			t.Errorf("expected UNAUTHORIZED, got %q", resp.Error.Code)
		}
	})

	t.Run("rejects malformed header", func(t *testing.T) {
		for _, header := range []string{"Bearer", "Bearer ", "Basic dXNlcjpwYXNz", "tok-123"} {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()

			var got client.Session
			sessionRouter(&got).ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("header %q: expected 401, got %d", header, rec.Code)
			}
		}
	})
}

func TestSessionFrom(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := SessionFrom(c); ok {
		t.Error("expected no session on a bare context")
	}
}
