package item

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	itemsvc "github.com/Nastia-N/shareit/service/item"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/apperr"
	"github.com/Nastia-N/shareit/util/identity"
)

type Controller struct {
	Svc itemsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /items
func (h *Controller) Create(c echo.Context) error {
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation error: " + err.Error()})
	}
	uid := identity.UserID(c)

	it, err := h.Svc.Create(c.Request().Context(), uid, req.Name, req.Description, req.Available, req.RequestID)
	if err != nil {
		return h.fail(c, "item create", err)
	}
	return c.JSON(http.StatusCreated, it)
}

// PATCH /items/:itemId
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	var patch model.ItemPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	uid := identity.UserID(c)

	it, err := h.Svc.Update(c.Request().Context(), id, uid, patch)
	if err != nil {
		return h.fail(c, "item update", err)
	}
	return c.JSON(http.StatusOK, it)
}

// GET /items/:itemId
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	uid := identity.UserID(c)

	it, err := h.Svc.GetByID(c.Request().Context(), id, uid)
	if err != nil {
		return h.fail(c, "item get", err)
	}
	return c.JSON(http.StatusOK, it)
}

// GET /items
func (h *Controller) ListByOwner(c echo.Context) error {
	uid := identity.UserID(c)

	rows, err := h.Svc.ListByOwner(c.Request().Context(), uid)
	if err != nil {
		return h.fail(c, "item list", err)
	}
	if rows == nil {
		rows = []model.ItemForOwner{}
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /items/search?text=
func (h *Controller) Search(c echo.Context) error {
	rows, err := h.Svc.Search(c.Request().Context(), c.QueryParam("text"))
	if err != nil {
		return h.fail(c, "item search", err)
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /items/:itemId/comment
func (h *Controller) AddComment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	var req CreateCommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "comment text must contain 1 to 1000 characters"})
	}
	uid := identity.UserID(c)

	cm, err := h.Svc.AddComment(c.Request().Context(), id, uid, req.Text)
	if err != nil {
		return h.fail(c, "comment add", err)
	}
	return c.JSON(http.StatusOK, cm)
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.Log.Error(op, "err", err, "req_id", c.Response().Header().Get(echo.HeaderXRequestID))
	}
	return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": apperr.UserMessage(err)})
}
