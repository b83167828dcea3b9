package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/robomart/internal/db"
	"github.com/sudo-init-do/robomart/internal/user"
)

type AdminUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// GET /admin/users
func ListUsers(c echo.Context) error {
	rows, err := db.Conn.Query(context.Background(),
		`SELECT id, email, role, COALESCE(is_active, TRUE) as is_active, created_at
		 FROM users ORDER BY created_at DESC`)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch users"})
	}
	defer rows.Close()

	var users []AdminUser
	for rows.Next() {
		var u AdminUser
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read user record"})
		}
		users = append(users, u)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func setUserActive(c echo.Context, active bool, message string) error {
	userID := c.Param("id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user id required"})
	}
	ct, err := db.Conn.Exec(context.Background(),
		`UPDATE users SET is_active = $1 WHERE id = $2`, active, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update user"})
	}
	if ct.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message, "user_id": userID})
}

// POST /admin/users/:id/suspend
func SuspendUser(c echo.Context) error {
	return setUserActive(c, false, "user suspended")
}

// POST /admin/users/:id/activate
func ActivateUser(c echo.Context) error {
	return setUserActive(c, true, "user activated")
}

func setUserRole(c echo.Context, role, message string) error {
	userID := c.Param("id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user id required"})
	}
	ct, err := db.Conn.Exec(context.Background(),
		`UPDATE users SET role = $1 WHERE id = $2`, role, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update role"})
	}
	if ct.RowsAffected() == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message, "user_id": userID})
}

// POST /admin/users/:id/promote_owner
func PromoteOwner(c echo.Context) error {
	return setUserRole(c, user.RoleRobotOwner, "user promoted to robot_owner")
}

// POST /admin/users/:id/demote_owner
func DemoteOwner(c echo.Context) error {
	return setUserRole(c, user.RoleUser, "user demoted to user")
}
