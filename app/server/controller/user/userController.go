package user

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	usersvc "github.com/Nastia-N/shareit/service/user"

	"github.com/Nastia-N/shareit/model"
	"github.com/Nastia-N/shareit/util/apperr"
)

type Controller struct {
	Svc usersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /users
func (h *Controller) Create(c echo.Context) error {
	var req CreateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and a valid email are required"})
	}

	u, err := h.Svc.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		return h.fail(c, "user create", err)
	}
	return c.JSON(http.StatusCreated, u)
}

// PATCH /users/:userId
func (h *Controller) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var patch model.UserPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if patch.Email != nil {
		if err := h.V.Var(*patch.Email, "email"); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email format"})
		}
	}

	u, err := h.Svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		return h.fail(c, "user update", err)
	}
	return c.JSON(http.StatusOK, u)
}

// GET /users/:userId
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	u, err := h.Svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, "user get", err)
	}
	return c.JSON(http.StatusOK, u)
}

// GET /users
func (h *Controller) List(c echo.Context) error {
	users, err := h.Svc.GetAll(c.Request().Context())
	if err != nil {
		return h.fail(c, "user list", err)
	}
	return c.JSON(http.StatusOK, users)
}

// DELETE /users/:userId
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return h.fail(c, "user delete", err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Controller) fail(c echo.Context, op string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.Log.Error(op, "err", err, "req_id", c.Response().Header().Get(echo.HeaderXRequestID))
	}
	return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": apperr.UserMessage(err)})
}
