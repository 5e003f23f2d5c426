package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qs-lzh/movie-catalog/internal/model"
)

// The full (action, role) matrix. Any pair not marked true here must be
// rejected, so the table below is the authoritative test of policy
// completeness.
func TestPolicyMatrix(t *testing.T) {
	allowed := map[Action]map[model.UserRole]bool{
		ActionMovieList: {
			model.RoleManager:    true,
			model.RoleTeamLeader: true,
			model.RoleFloorStaff: true,
		},
		ActionMovieCreate: {
			model.RoleManager:    true,
			model.RoleTeamLeader: true,
			model.RoleFloorStaff: false,
		},
		ActionMovieUpdate: {
			model.RoleManager:    true,
			model.RoleTeamLeader: true,
			model.RoleFloorStaff: false,
		},
		ActionMovieDelete: {
			model.RoleManager:    true,
			model.RoleTeamLeader: false,
			model.RoleFloorStaff: false,
		},
		ActionAuditList: {
			model.RoleManager:    true,
			model.RoleTeamLeader: false,
			model.RoleFloorStaff: false,
		},
	}

	for action, roles := range allowed {
		for role, want := range roles {
			got := Allowed(role, action)
			assert.Equal(t, want, got, "action %s role %s", action, role)
		}
	}
}

func TestPolicyUnknownRole(t *testing.T) {
	for _, action := range []Action{ActionMovieList, ActionMovieCreate, ActionMovieUpdate, ActionMovieDelete} {
		assert.False(t, Allowed(model.UserRole("INTERN"), action))
		assert.False(t, Allowed(model.UserRole(""), action))
	}
}

func TestPolicyUnknownAction(t *testing.T) {
	assert.False(t, Allowed(model.RoleManager, Action("movies:publish")))
}

// TEAMLEADER delete stays forbidden regardless of ownership, the server-side
// rule is authoritative.
func TestPolicyTeamLeaderCannotDelete(t *testing.T) {
	assert.False(t, Allowed(model.RoleTeamLeader, ActionMovieDelete))
}
