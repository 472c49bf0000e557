package gateway

import (
	"github.com/labstack/echo/v4"
)

// POST /items
func (h *Handler) CreateItem(c echo.Context) error {
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, "validation error: "+err.Error())
	}

	body, err := jsonAPI.Marshal(req)
	if err != nil {
		return badRequest(c, "invalid JSON")
	}
	return h.forward(c, body)
}

// PATCH /items/:itemId
func (h *Handler) UpdateItem(c echo.Context) error {
	if err := checkIDParam(c, "itemId"); err != nil {
		return badRequest(c, "invalid item id")
	}
	var req UpdateItemReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}

	body, err := jsonAPI.Marshal(req)
	if err != nil {
		return badRequest(c, "invalid JSON")
	}
	return h.forward(c, body)
}

// GET /items/:itemId
func (h *Handler) GetItem(c echo.Context) error {
	if err := checkIDParam(c, "itemId"); err != nil {
		return badRequest(c, "invalid item id")
	}
	return h.forward(c, nil)
}

// GET /items
func (h *Handler) ListItems(c echo.Context) error {
	return h.forward(c, nil)
}

// GET /items/search?text=
func (h *Handler) SearchItems(c echo.Context) error {
	return h.forward(c, nil)
}

// POST /items/:itemId/comment
func (h *Handler) AddComment(c echo.Context) error {
	if err := checkIDParam(c, "itemId"); err != nil {
		return badRequest(c, "invalid item id")
	}
	var req CreateCommentReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, "comment text must contain 1 to 1000 characters")
	}

	body, err := jsonAPI.Marshal(req)
	if err != nil {
		return badRequest(c, "invalid JSON")
	}
	return h.forward(c, body)
}
