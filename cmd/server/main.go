package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Nastia-N/shareit/app/server"
	bookingctrl "github.com/Nastia-N/shareit/app/server/controller/booking"
	itemctrl "github.com/Nastia-N/shareit/app/server/controller/item"
	requestctrl "github.com/Nastia-N/shareit/app/server/controller/request"
	userctrl "github.com/Nastia-N/shareit/app/server/controller/user"
	"github.com/Nastia-N/shareit/config"
	bookingrepo "github.com/Nastia-N/shareit/repository/booking"
	commentrepo "github.com/Nastia-N/shareit/repository/comment"
	itemrepo "github.com/Nastia-N/shareit/repository/item"
	requestrepo "github.com/Nastia-N/shareit/repository/request"
	userrepo "github.com/Nastia-N/shareit/repository/user"
	bookingsvc "github.com/Nastia-N/shareit/service/booking"
	itemsvc "github.com/Nastia-N/shareit/service/item"
	requestsvc "github.com/Nastia-N/shareit/service/request"
	usersvc "github.com/Nastia-N/shareit/service/user"
	"github.com/Nastia-N/shareit/util/database"
	"github.com/Nastia-N/shareit/util/webx"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db)
	ir := itemrepo.New(db)
	br := bookingrepo.New(db)
	rr := requestrepo.New(db)
	cr := commentrepo.New(db)

	// services
	us := usersvc.New(ur)
	is := itemsvc.New(ir, ur, rr, br, cr)
	bs := bookingsvc.New(br, ir, ur)
	rs := requestsvc.New(rr, ur, ir)

	// controllers
	v := validator.New()
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	itemC := &itemctrl.Controller{Svc: is, V: v, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}
	requestC := &requestctrl.Controller{Svc: rs, V: v, Log: log}

	e := echo.New()
	e.HideBanner = true
	webx.RegisterMiddlewares(e)
	e.Validator = webx.NewValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})

	server.Register(e, server.C{
		User:    userC,
		Item:    itemC,
		Booking: bookingC,
		Request: requestC,
	})

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
