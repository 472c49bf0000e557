package booking

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	bookingsvc "github.com/Nastia-N/shareit/service/booking"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/apperr"
	"github.com/Nastia-N/shareit/util/identity"
)

type Controller struct {
	Svc bookingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /bookings
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation error: " + err.Error()})
	}
	uid := identity.UserID(c)

	b, err := h.Svc.Create(c.Request().Context(), uid, req.ItemID, *req.Start, *req.End)
	if err != nil {
		return h.fail(c, "booking create", err)
	}
	return c.JSON(http.StatusCreated, b)
}

// PATCH /bookings/:bookingId?approved=
func (h *Controller) Approve(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required parameter: approved"})
	}
	uid := identity.UserID(c)

	b, err := h.Svc.Approve(c.Request().Context(), id, uid, approved)
	if err != nil {
		return h.fail(c, "booking approve", err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /bookings/:bookingId
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	uid := identity.UserID(c)

	b, err := h.Svc.GetByID(c.Request().Context(), id, uid)
	if err != nil {
		return h.fail(c, "booking get", err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /bookings?state=
func (h *Controller) List(c echo.Context) error {
	uid := identity.UserID(c)

	rows, err := h.Svc.ListForBooker(c.Request().Context(), uid, stateParam(c), "start", "DESC")
	if err != nil {
		return h.fail(c, "booking list", err)
	}
	return c.JSON(http.StatusOK, nonNil(rows))
}

// GET /bookings/owner?state=
func (h *Controller) ListOwner(c echo.Context) error {
	uid := identity.UserID(c)

	rows, err := h.Svc.ListForOwner(c.Request().Context(), uid, stateParam(c), "start", "DESC")
	if err != nil {
		return h.fail(c, "booking list owner", err)
	}
	return c.JSON(http.StatusOK, nonNil(rows))
}

func stateParam(c echo.Context) string {
	if s := c.QueryParam("state"); s != "" {
		return s
	}
	return "ALL"
}

func nonNil(rows []model.Booking) []model.Booking {
	if rows == nil {
		return []model.Booking{}
	}
	return rows
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.Log.Error(op, "err", err, "req_id", c.Response().Header().Get(echo.HeaderXRequestID))
	}
	return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": apperr.UserMessage(err)})
}
