package robots

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sudo-init-do/robomart/internal/user"
)

func TestPolicyCreate(t *testing.T) {
	cases := []struct {
		role    string
		allowed bool
	}{
		{user.RoleUser, false},
		{user.RoleRobotOwner, true},
		{user.RoleAdmin, true},
		{"", false},
		{"something_else", false},
	}
	for _, tc := range cases {
		actor := user.Actor{ID: uuid.New(), Role: tc.role}
		assert.Equal(t, tc.allowed, Allowed(actor, ActionCreate, nil), "role %q", tc.role)
	}
}

func TestPolicyRead(t *testing.T) {
	r := &Robot{ID: uuid.New(), OwnerID: uuid.New()}
	for _, role := range []string{user.RoleUser, user.RoleRobotOwner, user.RoleAdmin} {
		actor := user.Actor{ID: uuid.New(), Role: role}
		assert.True(t, Allowed(actor, ActionRead, r), "role %q", role)
	}
}

func TestPolicyUpdate(t *testing.T) {
	owner := uuid.New()
	r := &Robot{ID: uuid.New(), OwnerID: owner}

	assert.True(t, Allowed(user.Actor{ID: owner, Role: user.RoleRobotOwner}, ActionUpdate, r))
	assert.True(t, Allowed(user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, ActionUpdate, r))

	// Any other authenticated user is denied, regardless of role
	assert.False(t, Allowed(user.Actor{ID: uuid.New(), Role: user.RoleUser}, ActionUpdate, r))
	assert.False(t, Allowed(user.Actor{ID: uuid.New(), Role: user.RoleRobotOwner}, ActionUpdate, r))

	// Missing listing never authorizes an update
	assert.False(t, Allowed(user.Actor{ID: owner, Role: user.RoleAdmin}, ActionUpdate, nil))
}

func TestPolicyDelete(t *testing.T) {
	owner := uuid.New()
	r := &Robot{ID: uuid.New(), OwnerID: owner}

	// Ownership alone is not enough for delete
	assert.False(t, Allowed(user.Actor{ID: owner, Role: user.RoleRobotOwner}, ActionDelete, r))
	assert.False(t, Allowed(user.Actor{ID: uuid.New(), Role: user.RoleUser}, ActionDelete, r))
	assert.True(t, Allowed(user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, ActionDelete, r))
}

func TestPolicyUnknownAction(t *testing.T) {
	actor := user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	assert.False(t, Allowed(actor, Action("reboot"), &Robot{}))
}
