package identity_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Nastia-N/shareit/util/identity"
)

func call(header string) (*httptest.ResponseRecorder, int64) {
	e := echo.New()
	var seen int64
	e.GET("/items", func(c echo.Context) error {
		seen = identity.UserID(c)
		return c.NoContent(http.StatusOK)
	}, identity.Middleware())

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	if header != "" {
		req.Header.Set(identity.Header, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, seen
}

func TestMiddleware(t *testing.T) {
	rec, _ := call("")
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), identity.Header) {
		t.Fatalf("missing header: code=%d body=%s", rec.Code, rec.Body.String())
	}

	for _, bad := range []string{"abc", "0", "-5", "1.5"} {
		rec, _ = call(bad)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("header %q: code=%d; want 400", bad, rec.Code)
		}
	}

	rec, seen := call("42")
	if rec.Code != http.StatusOK || seen != 42 {
		t.Fatalf("valid header: code=%d seen=%d", rec.Code, seen)
	}
}
