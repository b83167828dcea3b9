package admin

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/robomart/internal/db"
)

// GET /admin/stats
func Stats(c echo.Context) error {
	ctx := context.Background()

	var users, robotsTotal, active, inactive, maintenance int
	var totalRevenue, totalExecutions float64

	_ = db.Conn.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&users)
	_ = db.Conn.QueryRow(ctx, `SELECT COUNT(*) FROM robots`).Scan(&robotsTotal)
	_ = db.Conn.QueryRow(ctx, `SELECT COUNT(*) FROM robots WHERE status = 'active'`).Scan(&active)
	_ = db.Conn.QueryRow(ctx, `SELECT COUNT(*) FROM robots WHERE status = 'inactive'`).Scan(&inactive)
	_ = db.Conn.QueryRow(ctx, `SELECT COUNT(*) FROM robots WHERE status = 'maintenance'`).Scan(&maintenance)
	_ = db.Conn.QueryRow(ctx, `SELECT COALESCE(SUM(total_revenue), 0) FROM robots`).Scan(&totalRevenue)
	_ = db.Conn.QueryRow(ctx, `SELECT COALESCE(SUM(execution_count), 0) FROM robots`).Scan(&totalExecutions)

	return c.JSON(http.StatusOK, echo.Map{
		"users":              users,
		"robots":             robotsTotal,
		"robots_active":      active,
		"robots_inactive":    inactive,
		"robots_maintenance": maintenance,
		"total_revenue":      totalRevenue,
		"total_executions":   int64(totalExecutions),
	})
}
