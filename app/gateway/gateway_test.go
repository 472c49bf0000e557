package gateway_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nastia-N/shareit/app/gateway"
	"github.com/Nastia-N/shareit/util/identity"
	"github.com/Nastia-N/shareit/util/webx"
)

type backend struct {
	srv  *httptest.Server
	hits int
	last *http.Request
	body []byte
}

func newBackend(t *testing.T, status int, reply string) *backend {
	t.Helper()
	b := &backend{}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.hits++
		b.last = r
		b.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func newGateway(t *testing.T, serverURL string) *echo.Echo {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := gateway.NewClient(serverURL, http.DefaultClient, log)
	h := gateway.New(client, validator.New(), log)

	e := echo.New()
	e.Validator = webx.NewValidator()
	gateway.Register(e, h)
	return e
}

func do(e *echo.Echo, method, target, userID, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(identity.Header, userID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdentityHeaderRequired(t *testing.T) {
	b := newBackend(t, http.StatusOK, `[]`)
	e := newGateway(t, b.srv.URL)

	rec := do(e, http.MethodGet, "/bookings", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "X-Sharer-User-Id")
	assert.Zero(t, b.hits, "backend must not be called without an identity header")

	rec = do(e, http.MethodGet, "/bookings", "abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, b.hits)
}

func TestUsersNeedNoIdentityHeader(t *testing.T) {
	b := newBackend(t, http.StatusCreated, `{"id":1,"name":"alice","email":"alice@example.com"}`)
	e := newGateway(t, b.srv.URL)

	rec := do(e, http.MethodPost, "/users", "", `{"name":"alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, b.hits)
	assert.JSONEq(t, `{"name":"alice","email":"alice@example.com"}`, string(b.body))
}

func TestUserValidation(t *testing.T) {
	b := newBackend(t, http.StatusCreated, `{}`)
	e := newGateway(t, b.srv.URL)

	rec := do(e, http.MethodPost, "/users", "", `{"name":"alice","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, b.hits)

	rec = do(e, http.MethodPatch, "/users/1", "", `{"email":"still-wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, b.hits)
}

func TestUnknownStateRejected(t *testing.T) {
	b := newBackend(t, http.StatusOK, `[]`)
	e := newGateway(t, b.srv.URL)

	rec := do(e, http.MethodGet, "/bookings?state=SOMETIMES", "5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown state: SOMETIMES")
	assert.Zero(t, b.hits)

	rec = do(e, http.MethodGet, "/bookings/owner?state=PAST", "5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, b.hits)
}

func TestBookingValidation(t *testing.T) {
	b := newBackend(t, http.StatusCreated, `{}`)
	e := newGateway(t, b.srv.URL)

	rec := do(e, http.MethodPost, "/bookings", "5", `{"itemId":42,"start":"2026-09-03T10:00:00Z","end":"2026-09-01T10:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "end must be after start")
	assert.Zero(t, b.hits)

	rec = do(e, http.MethodPatch, "/bookings/1", "7", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "approved param is required")
	assert.Zero(t, b.hits)

	rec = do(e, http.MethodPatch, "/bookings/1?approved=true", "7", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, b.hits)
}

func TestCommentLengthRejected(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{}`)
	e := newGateway(t, b.srv.URL)

	long := strings.Repeat("x", 1001)
	rec := do(e, http.MethodPost, "/items/42/comment", "5", `{"text":"`+long+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, b.hits)
}

func TestPageParamsRejected(t *testing.T) {
	b := newBackend(t, http.StatusOK, `[]`)
	e := newGateway(t, b.srv.URL)

	rec := do(e, http.MethodGet, "/requests/all?from=-1", "5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(e, http.MethodGet, "/requests/all?size=0", "5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, b.hits)

	rec = do(e, http.MethodGet, "/requests/all?from=0&size=10", "5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, b.hits)
}

func TestBackendErrorsAreRelayed(t *testing.T) {
	b := newBackend(t, http.StatusNotFound, `{"error":"booking not found"}`)
	e := newGateway(t, b.srv.URL)

	rec := do(e, http.MethodGet, "/bookings/99", "5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"booking not found"}`, rec.Body.String())
}

func TestBackendDownReturns503(t *testing.T) {
	b := newBackend(t, http.StatusOK, `[]`)
	url := b.srv.URL
	b.srv.Close()
	e := newGateway(t, url)

	rec := do(e, http.MethodGet, "/items", "5", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "service unavailable")
}
