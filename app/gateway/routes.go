package gateway

import (
	"github.com/labstack/echo/v4"

	"github.com/Nastia-N/shareit/util/identity"
)

// Register mirrors the backend's route table. The identity header is
// checked here so a missing header never reaches the backend.
func Register(e *echo.Echo, h *Handler) {
	users := e.Group("/users")
	users.POST("", h.CreateUser)
	users.PATCH("/:userId", h.UpdateUser)
	users.GET("/:userId", h.GetUser)
	users.GET("", h.ListUsers)
	users.DELETE("/:userId", h.DeleteUser)

	id := identity.Middleware()

	items := e.Group("/items", id)
	items.POST("", h.CreateItem)
	items.PATCH("/:itemId", h.UpdateItem)
	items.GET("/search", h.SearchItems)
	items.GET("/:itemId", h.GetItem)
	items.GET("", h.ListItems)
	items.POST("/:itemId/comment", h.AddComment)

	bookings := e.Group("/bookings", id)
	bookings.POST("", h.CreateBooking)
	bookings.GET("/owner", h.ListOwnerBookings)
	bookings.PATCH("/:bookingId", h.ApproveBooking)
	bookings.GET("/:bookingId", h.GetBooking)
	bookings.GET("", h.ListBookings)

	requests := e.Group("/requests", id)
	requests.POST("", h.CreateRequest)
	requests.GET("/all", h.ListAllRequests)
	requests.GET("/:requestId", h.GetRequest)
	requests.GET("", h.ListOwnRequests)
}
