package robots

import (
	"time"

	"github.com/google/uuid"
)

// Robot statuses. Set to active on creation; changed only via PATCH.
const (
	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusMaintenance = "maintenance"
)

// ValidStatus reports whether s is one of the three listing statuses.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusMaintenance
}

// Robot is a service listing owned by a user. The execution counters and
// running statistics are written by the execution subsystem, not here.
type Robot struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	WalletAddress   string    `json:"wallet_address"`
	Services        []string  `json:"services"`
	Endpoint        string    `json:"endpoint"`
	Status          string    `json:"status"`
	ExecutionCount  int64     `json:"execution_count"`
	TotalRevenue    float64   `json:"total_revenue"`
	AvgResponseTime float64   `json:"avg_response_time"`
	SuccessRate     float64   `json:"success_rate"`
	Version         int64     `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

// Metrics is the usage projection served by GET /robots/:id/metrics.
type Metrics struct {
	RobotID         uuid.UUID `json:"robot_id"`
	Name            string    `json:"name"`
	TotalExecutions int64     `json:"total_executions"`
	TotalRevenue    float64   `json:"total_revenue"`
	AvgResponseTime float64   `json:"avg_response_time"`
	SuccessRate     float64   `json:"success_rate"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
}

// MetricsOf projects the externally-maintained counters of a listing.
func MetricsOf(r *Robot) *Metrics {
	return &Metrics{
		RobotID:         r.ID,
		Name:            r.Name,
		TotalExecutions: r.ExecutionCount,
		TotalRevenue:    r.TotalRevenue,
		AvgResponseTime: r.AvgResponseTime,
		SuccessRate:     r.SuccessRate,
		Price:           r.Price,
		Status:          r.Status,
	}
}
