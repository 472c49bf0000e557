package gateway

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

func checkIDParam(c echo.Context, name string) error {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return errors.New("invalid " + name)
	}
	return nil
}

func checkPageParams(c echo.Context) error {
	if raw := c.QueryParam("from"); raw != "" {
		from, err := strconv.Atoi(raw)
		if err != nil {
			return errors.New("'from' must be an integer")
		}
		if from < 0 {
			return errors.New("'from' must not be negative")
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return errors.New("'size' must be an integer")
		}
		if size <= 0 {
			return errors.New("'size' must be positive")
		}
	}
	return nil
}
