package gateway

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Nastia-N/shareit/util/identity"
)

// Client forwards gateway calls to the backend server. Transport failures
// trip the breaker; backend error statuses are relayed, not counted.
type Client struct {
	base string
	http *http.Client
	cb   *gobreaker.CircuitBreaker
	log  *slog.Logger
}

type Response struct {
	Status int
	Body   []byte
}

func NewClient(base string, hc *http.Client, log *slog.Logger) *Client {
	cl := &Client{
		base: strings.TrimRight(base, "/"),
		http: hc,
		log:  log,
	}
	cl.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "shareit-server",
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				"name", name, "from", from.String(), "to", to.String())
		},
	})
	return cl
}

func (cl *Client) Forward(ctx context.Context, method, path string, query url.Values, userID string, body []byte) (*Response, error) {
	out, err := cl.cb.Execute(func() (interface{}, error) {
		u := cl.base + path
		if len(query) > 0 {
			u += "?" + query.Encode()
		}

		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, rd)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if userID != "" {
			req.Header.Set(identity.Header, userID)
		}

		resp, err := cl.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return &Response{Status: resp.StatusCode, Body: b}, nil
	})
	if err != nil {
		return nil, err
	}
	return out.(*Response), nil
}
