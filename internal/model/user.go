// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// User statuses.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// Team member roles.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// TeamRoles lists every valid team member role.
var TeamRoles = []string{RoleOwner, RoleAdmin, RoleMember}

// IsTeamRole reports whether s names a known team role.
func IsTeamRole(s string) bool {
	for _, r := range TeamRoles {
		if s == r {
			return true
		}
	}
	return false
}
