package robots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/robomart/internal/db"
	"github.com/sudo-init-do/robomart/internal/user"
)

var validate = validator.New()

var svc *Service

// Init wires the handlers to the shared Postgres pool. Must run after
// db.Init.
func Init() {
	svc = NewService(NewPgStore(db.Conn))
}

func actorFromContext(c echo.Context) (user.Actor, bool) {
	uid, ok := c.Get("user_id").(string)
	if !ok || uid == "" {
		return user.Actor{}, false
	}
	id, err := uuid.Parse(uid)
	if err != nil {
		return user.Actor{}, false
	}
	role, _ := c.Get("role").(string)
	return user.Actor{ID: id, Role: role}, true
}

func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "robot not found"})
	case errors.Is(err, ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not authorized for this robot"})
	case IsValidation(err):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "robot operation failed"})
}

// GET /robots
func ListRobots(c echo.Context) error {
	if _, ok := actorFromContext(c); !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	f := ListFilter{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
	}
	if v := c.QueryParam("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid skip"})
		}
		f.Skip = n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
		f.Limit = n
	}

	items, total, err := svc.List(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	if items == nil {
		items = []Robot{}
	}
	return c.JSON(http.StatusOK, echo.Map{"robots": items, "total": total})
}

// GET /robots/:id
func GetRobot(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid robot id"})
	}
	r, err := svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// POST /robots
func CreateRobot(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	r, err := svc.Create(c.Request().Context(), actor, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

// PATCH /robots/:id
func UpdateRobot(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid robot id"})
	}

	var p Patch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	r, err := svc.Update(c.Request().Context(), actor, id, p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// DELETE /robots/:id
func DeleteRobot(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid robot id"})
	}

	if err := svc.Delete(c.Request().Context(), actor, id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /robots/:id/metrics
func GetRobotMetrics(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid robot id"})
	}
	m, err := svc.Metrics(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}
