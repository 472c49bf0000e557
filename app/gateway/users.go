package gateway

import (
	"github.com/labstack/echo/v4"
)

// POST /users
func (h *Handler) CreateUser(c echo.Context) error {
	var req CreateUserReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, "name and a valid email are required")
	}

	body, err := jsonAPI.Marshal(req)
	if err != nil {
		return badRequest(c, "invalid JSON")
	}
	return h.forward(c, body)
}

// PATCH /users/:userId
func (h *Handler) UpdateUser(c echo.Context) error {
	if err := checkIDParam(c, "userId"); err != nil {
		return badRequest(c, "invalid user id")
	}
	var req UpdateUserReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, "invalid email format")
	}

	body, err := jsonAPI.Marshal(req)
	if err != nil {
		return badRequest(c, "invalid JSON")
	}
	return h.forward(c, body)
}

// GET /users/:userId
func (h *Handler) GetUser(c echo.Context) error {
	if err := checkIDParam(c, "userId"); err != nil {
		return badRequest(c, "invalid user id")
	}
	return h.forward(c, nil)
}

// GET /users
func (h *Handler) ListUsers(c echo.Context) error {
	return h.forward(c, nil)
}

// DELETE /users/:userId
func (h *Handler) DeleteUser(c echo.Context) error {
	if err := checkIDParam(c, "userId"); err != nil {
		return badRequest(c, "invalid user id")
	}
	return h.forward(c, nil)
}
