package gateway

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"

	"github.com/Nastia-N/shareit/util/identity"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Handler validates incoming requests and forwards them to the backend.
type Handler struct {
	Client *Client
	V      *validator.Validate
	Log    *slog.Logger
}

func New(client *Client, v *validator.Validate, log *slog.Logger) *Handler {
	return &Handler{Client: client, V: v, Log: log}
}

// forward relays the current request, with the given body, to the backend
// and writes the backend's status and body verbatim.
func (h *Handler) forward(c echo.Context, body []byte) error {
	resp, err := h.Client.Forward(
		c.Request().Context(),
		c.Request().Method,
		c.Request().URL.Path,
		c.QueryParams(),
		c.Request().Header.Get(identity.Header),
		body,
	)
	if err != nil {
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		h.Log.Error("forward failed", "err", err, "path", c.Request().URL.Path, "req_id", rid)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "service unavailable"})
	}
	return c.Blob(resp.Status, echo.MIMEApplicationJSON, resp.Body)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}
