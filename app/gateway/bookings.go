package gateway

import (
	"strconv"

	"github.com/labstack/echo/v4"

	bookingsvc "github.com/Nastia-N/shareit/service/booking"
)

// POST /bookings
func (h *Handler) CreateBooking(c echo.Context) error {
	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return badRequest(c, "validation error: "+err.Error())
	}
	if !req.End.After(*req.Start) {
		return badRequest(c, "booking end must be after start")
	}

	body, err := jsonAPI.Marshal(req)
	if err != nil {
		return badRequest(c, "invalid JSON")
	}
	return h.forward(c, body)
}

// PATCH /bookings/:bookingId?approved=
func (h *Handler) ApproveBooking(c echo.Context) error {
	if err := checkIDParam(c, "bookingId"); err != nil {
		return badRequest(c, "invalid booking id")
	}
	if _, err := strconv.ParseBool(c.QueryParam("approved")); err != nil {
		return badRequest(c, "missing required parameter: approved")
	}
	return h.forward(c, nil)
}

// GET /bookings/:bookingId
func (h *Handler) GetBooking(c echo.Context) error {
	if err := checkIDParam(c, "bookingId"); err != nil {
		return badRequest(c, "invalid booking id")
	}
	return h.forward(c, nil)
}

// GET /bookings?state=&from=&size=
func (h *Handler) ListBookings(c echo.Context) error {
	return h.listBookings(c)
}

// GET /bookings/owner?state=&from=&size=
func (h *Handler) ListOwnerBookings(c echo.Context) error {
	return h.listBookings(c)
}

func (h *Handler) listBookings(c echo.Context) error {
	if state := c.QueryParam("state"); state != "" {
		if _, err := bookingsvc.ParseState(state); err != nil {
			return badRequest(c, err.Error())
		}
	}
	if err := checkPageParams(c); err != nil {
		return badRequest(c, err.Error())
	}
	return h.forward(c, nil)
}
