package server

import (
	"github.com/labstack/echo/v4"

	"github.com/Nastia-N/shareit/app/server/controller/booking"
	"github.com/Nastia-N/shareit/app/server/controller/item"
	"github.com/Nastia-N/shareit/app/server/controller/request"
	"github.com/Nastia-N/shareit/app/server/controller/user"
	"github.com/Nastia-N/shareit/util/identity"
)

type C struct {
	User    *user.Controller
	Item    *item.Controller
	Booking *booking.Controller
	Request *request.Controller
}

func Register(e *echo.Echo, c C) {
	// Users carry no identity header.
	users := e.Group("/users")
	users.POST("", c.User.Create)
	users.PATCH("/:userId", c.User.Update)
	users.GET("/:userId", c.User.Get)
	users.GET("", c.User.List)
	users.DELETE("/:userId", c.User.Delete)

	id := identity.Middleware()

	items := e.Group("/items", id)
	items.POST("", c.Item.Create)
	items.PATCH("/:itemId", c.Item.Update)
	items.GET("/search", c.Item.Search)
	items.GET("/:itemId", c.Item.Get)
	items.GET("", c.Item.ListByOwner)
	items.POST("/:itemId/comment", c.Item.AddComment)

	bookings := e.Group("/bookings", id)
	bookings.POST("", c.Booking.Create)
	bookings.GET("/owner", c.Booking.ListOwner)
	bookings.PATCH("/:bookingId", c.Booking.Approve)
	bookings.GET("/:bookingId", c.Booking.Get)
	bookings.GET("", c.Booking.List)

	requests := e.Group("/requests", id)
	requests.POST("", c.Request.Create)
	requests.GET("/all", c.Request.ListAll)
	requests.GET("/:requestId", c.Request.Get)
	requests.GET("", c.Request.ListOwn)
}
