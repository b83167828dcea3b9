package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/robomart/internal/db"
)

type AdminRobot struct {
	ID             string  `json:"id"`
	OwnerID        string  `json:"owner_id"`
	OwnerEmail     string  `json:"owner_email"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status"`
	ExecutionCount int64   `json:"execution_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	CreatedAt      string  `json:"created_at"`
}

// GET /admin/robots — every listing regardless of status, with owner
// contact for moderation
func ListRobots(c echo.Context) error {
	rows, err := db.Conn.Query(context.Background(),
		`SELECT r.id, r.owner_id, u.email, r.name, r.price, r.currency, r.status,
		        r.execution_count, r.total_revenue, r.created_at
		 FROM robots r
		 JOIN users u ON u.id = r.owner_id
		 ORDER BY r.created_at DESC`,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch robots"})
	}
	defer rows.Close()

	var items []AdminRobot
	for rows.Next() {
		var r AdminRobot
		var createdAt time.Time
		if err := rows.Scan(&r.ID, &r.OwnerID, &r.OwnerEmail, &r.Name, &r.Price, &r.Currency,
			&r.Status, &r.ExecutionCount, &r.TotalRevenue, &createdAt); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read robot record"})
		}
		r.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		items = append(items, r)
	}
	return c.JSON(http.StatusOK, echo.Map{"robots": items})
}
