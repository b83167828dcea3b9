package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles recognised by the marketplace. Only robot_owner and admin may
// list robots; only admin may delete them.
const (
	RoleUser       = "user"
	RoleRobotOwner = "robot_owner"
	RoleAdmin      = "admin"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Password      string    `json:"-"` // never return
	Role          string    `json:"role"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	TotalSpent    float64   `json:"total_spent"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Actor is the authenticated identity a request acts as. It is the only
// slice of the user record the robots authorization policy consumes.
type Actor struct {
	ID   uuid.UUID
	Role string
}
