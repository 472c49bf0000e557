package main

import (
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Nastia-N/shareit/app/gateway"
	"github.com/Nastia-N/shareit/config"
	"github.com/Nastia-N/shareit/util/httpx"
	"github.com/Nastia-N/shareit/util/webx"
)

func main() {
	cfg := config.LoadGateway()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	client := gateway.NewClient(cfg.ServerURL, httpx.Client(), log)
	h := gateway.New(client, validator.New(), log)

	e := echo.New()
	e.HideBanner = true
	webx.RegisterMiddlewares(e)
	e.Validator = webx.NewValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})

	gateway.Register(e, h)

	log.Info("starting gateway", "port", cfg.Port, "server_url", cfg.ServerURL)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
