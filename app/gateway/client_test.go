package gateway_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nastia-N/shareit/app/gateway"
)

func newClient(t *testing.T, base string) *gateway.Client {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gateway.NewClient(base, http.DefaultClient, log)
}

func TestForward_RelaysStatusAndBody(t *testing.T) {
	b := newBackend(t, http.StatusConflict, `{"error":"email already in use"}`)
	cl := newClient(t, b.srv.URL+"/")

	resp, err := cl.Forward(context.Background(), http.MethodPost, "/users", nil, "", []byte(`{"name":"a","email":"a@b.c"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.Status)
	assert.JSONEq(t, `{"error":"email already in use"}`, string(resp.Body))
	assert.Equal(t, "/users", b.last.URL.Path)
	assert.Equal(t, "application/json", b.last.Header.Get("Content-Type"))
}

func TestForward_BackendErrorsDoNotTripBreaker(t *testing.T) {
	b := newBackend(t, http.StatusInternalServerError, `{"error":"something went wrong"}`)
	cl := newClient(t, b.srv.URL)

	for i := 0; i < 10; i++ {
		resp, err := cl.Forward(context.Background(), http.MethodGet, "/items", nil, "5", nil)
		require.NoError(t, err, "a 5xx reply is a relayed response, not a breaker failure")
		assert.Equal(t, http.StatusInternalServerError, resp.Status)
	}
	assert.Equal(t, 10, b.hits)
}

func TestForward_TransportFailuresTripBreaker(t *testing.T) {
	b := newBackend(t, http.StatusOK, `[]`)
	url := b.srv.URL
	b.srv.Close()
	cl := newClient(t, url)

	for i := 0; i < 4; i++ {
		_, err := cl.Forward(context.Background(), http.MethodGet, "/items", nil, "5", nil)
		require.Error(t, err)
	}
	_, err := cl.Forward(context.Background(), http.MethodGet, "/items", nil, "5", nil)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState, "breaker must be open after consecutive transport failures")
}
