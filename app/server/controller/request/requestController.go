package request

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	requestsvc "github.com/Nastia-N/shareit/service/request"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/apperr"
	"github.com/Nastia-N/shareit/util/identity"
)

type Controller struct {
	Svc requestsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /requests
func (h *Controller) Create(c echo.Context) error {
	var req CreateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "request description must not be blank"})
	}
	uid := identity.UserID(c)

	out, err := h.Svc.Create(c.Request().Context(), uid, req.Description)
	if err != nil {
		return h.fail(c, "request create", err)
	}
	return c.JSON(http.StatusCreated, out)
}

// GET /requests
func (h *Controller) ListOwn(c echo.Context) error {
	uid := identity.UserID(c)

	rows, err := h.Svc.ListOwn(c.Request().Context(), uid)
	if err != nil {
		return h.fail(c, "request list own", err)
	}
	return c.JSON(http.StatusOK, nonNil(rows))
}

// GET /requests/all?from=&size=
func (h *Controller) ListAll(c echo.Context) error {
	from, size, err := pageParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	uid := identity.UserID(c)

	rows, err := h.Svc.ListOthers(c.Request().Context(), uid, from, size)
	if err != nil {
		return h.fail(c, "request list all", err)
	}
	return c.JSON(http.StatusOK, nonNil(rows))
}

// GET /requests/:requestId
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request id"})
	}
	uid := identity.UserID(c)

	out, err := h.Svc.GetByID(c.Request().Context(), id, uid)
	if err != nil {
		return h.fail(c, "request get", err)
	}
	return c.JSON(http.StatusOK, out)
}

func pageParams(c echo.Context) (int, int, error) {
	from, size := 0, 10
	var err error
	if raw := c.QueryParam("from"); raw != "" {
		if from, err = strconv.Atoi(raw); err != nil {
			return 0, 0, apperr.Validation("'from' must be an integer")
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		if size, err = strconv.Atoi(raw); err != nil {
			return 0, 0, apperr.Validation("'size' must be an integer")
		}
	}
	return from, size, nil
}

func nonNil(rows []model.ItemRequest) []model.ItemRequest {
	if rows == nil {
		return []model.ItemRequest{}
	}
	return rows
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.Log.Error(op, "err", err, "req_id", c.Response().Header().Get(echo.HeaderXRequestID))
	}
	return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": apperr.UserMessage(err)})
}
