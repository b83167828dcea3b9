package robots

import "github.com/sudo-init-do/robomart/internal/user"

// Action is something an actor tries to do to a listing.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Allowed decides whether actor may perform action on r. For ActionCreate
// no listing exists yet and r may be nil. Any authenticated actor may
// read; updates require ownership or admin; deletes are admin only.
func Allowed(actor user.Actor, action Action, r *Robot) bool {
	switch action {
	case ActionCreate:
		return actor.Role == user.RoleRobotOwner || actor.Role == user.RoleAdmin
	case ActionRead:
		return true
	case ActionUpdate:
		return r != nil && (actor.ID == r.OwnerID || actor.Role == user.RoleAdmin)
	case ActionDelete:
		return actor.Role == user.RoleAdmin
	}
	return false
}
