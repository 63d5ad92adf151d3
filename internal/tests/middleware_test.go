package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Barrosrentacar/SiteBarrosRentACar/internal/middleware"
)

func TestTransactionAttributesWithoutAgent(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.TransactionAttributes())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// No New Relic transaction on the context: the middleware must pass the
	// request through untouched.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Booking-Session", "session-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "pong" {
		t.Errorf("body = %q, expected %q", w.Body.String(), "pong")
	}
}
