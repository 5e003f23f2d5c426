package auth

import (
	"github.com/qs-lzh/movie-catalog/internal/model"
)

// Action names an operation on a protected resource.
type Action string

const (
	ActionMovieList   Action = "movies:list"
	ActionMovieCreate Action = "movies:create"
	ActionMovieUpdate Action = "movies:update"
	ActionMovieDelete Action = "movies:delete"
	ActionAuditList   Action = "audit:list"
)

// policy is the whole authorization model: one static table from action to
// the set of roles permitted to perform it. Routes never carry their own
// role lists. Movie delete is MANAGER-only, ownership does not widen it.
var policy = map[Action]map[model.UserRole]bool{
	ActionMovieList: {
		model.RoleManager:    true,
		model.RoleTeamLeader: true,
		model.RoleFloorStaff: true,
	},
	ActionMovieCreate: {
		model.RoleManager:    true,
		model.RoleTeamLeader: true,
	},
	ActionMovieUpdate: {
		model.RoleManager:    true,
		model.RoleTeamLeader: true,
	},
	ActionMovieDelete: {
		model.RoleManager: true,
	},
	ActionAuditList: {
		model.RoleManager: true,
	},
}

// Allowed reports whether role may perform action.
func Allowed(role model.UserRole, action Action) bool {
	return policy[action][role]
}
