package gateway

import (
	"github.com/labstack/echo/v4"
)

// POST /requests
func (h *Handler) CreateRequest(c echo.Context) error {
	var req CreateRequestReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, "request description must not be blank")
	}

	body, err := jsonAPI.Marshal(req)
	if err != nil {
		return badRequest(c, "invalid JSON")
	}
	return h.forward(c, body)
}

// GET /requests
func (h *Handler) ListOwnRequests(c echo.Context) error {
	return h.forward(c, nil)
}

// GET /requests/all?from=&size=
func (h *Handler) ListAllRequests(c echo.Context) error {
	if err := checkPageParams(c); err != nil {
		return badRequest(c, err.Error())
	}
	return h.forward(c, nil)
}

// GET /requests/:requestId
func (h *Handler) GetRequest(c echo.Context) error {
	if err := checkIDParam(c, "requestId"); err != nil {
		return badRequest(c, "invalid request id")
	}
	return h.forward(c, nil)
}
