// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createTeam = `
INSERT INTO teams (name, owner_id, created_at, updated_at)
VALUES (?, ?, ?, ?)
RETURNING id, name, owner_id, created_at, updated_at
`

// CreateTeamParams holds parameters for CreateTeam.
type CreateTeamParams struct {
	Name      string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateTeam inserts a new team.
func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, createTeam, arg.Name, arg.OwnerID, arg.CreatedAt, arg.UpdatedAt)
	var t Team
	err := row.Scan(&t.ID, &t.Name, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

const getTeamByID = `
SELECT id, name, owner_id, created_at, updated_at FROM teams WHERE id = ?
`

// GetTeamByID fetches a team by id.
func (q *Queries) GetTeamByID(ctx context.Context, id int64) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeamByID, id)
	var t Team
	err := row.Scan(&t.ID, &t.Name, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

const listTeamsByUser = `
SELECT t.id, t.name, t.owner_id, t.created_at, t.updated_at
FROM teams t
JOIN team_members m ON m.team_id = t.id
WHERE m.user_id = ?
ORDER BY t.name
`

// ListTeamsByUser returns every team the user is a member of.
func (q *Queries) ListTeamsByUser(ctx context.Context, userID int64) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, listTeamsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const updateTeamName = `
UPDATE teams SET name = ?, updated_at = ? WHERE id = ?
`

// UpdateTeamNameParams holds parameters for UpdateTeamName.
type UpdateTeamNameParams struct {
	Name      string
	UpdatedAt time.Time
	ID        int64
}

// UpdateTeamName renames a team.
func (q *Queries) UpdateTeamName(ctx context.Context, arg UpdateTeamNameParams) error {
	_, err := q.db.ExecContext(ctx, updateTeamName, arg.Name, arg.UpdatedAt, arg.ID)
	return err
}

const deleteTeam = `
DELETE FROM teams WHERE id = ?
`

// DeleteTeam removes a team. Members and invitations cascade.
func (q *Queries) DeleteTeam(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteTeam, id)
	return err
}

const createTeamMember = `
INSERT INTO team_members (team_id, user_id, role, created_at)
VALUES (?, ?, ?, ?)
RETURNING id, team_id, user_id, role, created_at
`

// CreateTeamMemberParams holds parameters for CreateTeamMember.
type CreateTeamMemberParams struct {
	TeamID    int64
	UserID    int64
	Role      string
	CreatedAt time.Time
}

// CreateTeamMember adds a user to a team.
func (q *Queries) CreateTeamMember(ctx context.Context, arg CreateTeamMemberParams) (TeamMember, error) {
	row := q.db.QueryRowContext(ctx, createTeamMember, arg.TeamID, arg.UserID, arg.Role, arg.CreatedAt)
	var m TeamMember
	err := row.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.CreatedAt)
	return m, err
}

const getTeamMember = `
SELECT id, team_id, user_id, role, created_at
FROM team_members WHERE team_id = ? AND user_id = ?
`

// GetTeamMemberParams holds parameters for GetTeamMember.
type GetTeamMemberParams struct {
	TeamID int64
	UserID int64
}

// GetTeamMember fetches a membership row.
func (q *Queries) GetTeamMember(ctx context.Context, arg GetTeamMemberParams) (TeamMember, error) {
	row := q.db.QueryRowContext(ctx, getTeamMember, arg.TeamID, arg.UserID)
	var m TeamMember
	err := row.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.CreatedAt)
	return m, err
}

const listTeamMembers = `
SELECT id, team_id, user_id, role, created_at
FROM team_members WHERE team_id = ? ORDER BY created_at
`

// ListTeamMembers returns a team's members.
func (q *Queries) ListTeamMembers(ctx context.Context, teamID int64) ([]TeamMember, error) {
	rows, err := q.db.QueryContext(ctx, listTeamMembers, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TeamMember
	for rows.Next() {
		var m TeamMember
		if err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

const deleteTeamMember = `
DELETE FROM team_members WHERE team_id = ? AND user_id = ?
`

// DeleteTeamMemberParams holds parameters for DeleteTeamMember.
type DeleteTeamMemberParams struct {
	TeamID int64
	UserID int64
}

// DeleteTeamMember removes a user from a team.
func (q *Queries) DeleteTeamMember(ctx context.Context, arg DeleteTeamMemberParams) error {
	_, err := q.db.ExecContext(ctx, deleteTeamMember, arg.TeamID, arg.UserID)
	return err
}

const createTeamInvitation = `
INSERT INTO team_invitations (team_id, email, role, token, expires_at, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, team_id, email, role, token, expires_at, accepted_at, created_at
`

// CreateTeamInvitationParams holds parameters for CreateTeamInvitation.
type CreateTeamInvitationParams struct {
	TeamID    int64
	Email     string
	Role      string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// CreateTeamInvitation stores a new invitation.
func (q *Queries) CreateTeamInvitation(ctx context.Context, arg CreateTeamInvitationParams) (TeamInvitation, error) {
	row := q.db.QueryRowContext(ctx, createTeamInvitation,
		arg.TeamID, arg.Email, arg.Role, arg.Token, arg.ExpiresAt, arg.CreatedAt)
	var i TeamInvitation
	err := row.Scan(&i.ID, &i.TeamID, &i.Email, &i.Role, &i.Token, &i.ExpiresAt, &i.AcceptedAt, &i.CreatedAt)
	return i, err
}

const getTeamInvitationByToken = `
SELECT id, team_id, email, role, token, expires_at, accepted_at, created_at
FROM team_invitations WHERE token = ?
`

// GetTeamInvitationByToken fetches an invitation by its token.
func (q *Queries) GetTeamInvitationByToken(ctx context.Context, token string) (TeamInvitation, error) {
	row := q.db.QueryRowContext(ctx, getTeamInvitationByToken, token)
	var i TeamInvitation
	err := row.Scan(&i.ID, &i.TeamID, &i.Email, &i.Role, &i.Token, &i.ExpiresAt, &i.AcceptedAt, &i.CreatedAt)
	return i, err
}

const listTeamInvitations = `
SELECT id, team_id, email, role, token, expires_at, accepted_at, created_at
FROM team_invitations WHERE team_id = ? ORDER BY created_at DESC
`

// ListTeamInvitations returns a team's invitations, newest first.
func (q *Queries) ListTeamInvitations(ctx context.Context, teamID int64) ([]TeamInvitation, error) {
	rows, err := q.db.QueryContext(ctx, listTeamInvitations, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TeamInvitation
	for rows.Next() {
		var i TeamInvitation
		if err := rows.Scan(&i.ID, &i.TeamID, &i.Email, &i.Role, &i.Token, &i.ExpiresAt, &i.AcceptedAt, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const markTeamInvitationAccepted = `
UPDATE team_invitations SET accepted_at = ? WHERE id = ? AND accepted_at IS NULL
`

// MarkTeamInvitationAcceptedParams holds parameters for MarkTeamInvitationAccepted.
type MarkTeamInvitationAcceptedParams struct {
	AcceptedAt time.Time
	ID         int64
}

// MarkTeamInvitationAccepted records acceptance of an invitation.
func (q *Queries) MarkTeamInvitationAccepted(ctx context.Context, arg MarkTeamInvitationAcceptedParams) error {
	_, err := q.db.ExecContext(ctx, markTeamInvitationAccepted, arg.AcceptedAt, arg.ID)
	return err
}

const deleteTeamInvitation = `
DELETE FROM team_invitations WHERE id = ?
`

// DeleteTeamInvitation removes an invitation (decline).
func (q *Queries) DeleteTeamInvitation(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteTeamInvitation, id)
	return err
}

const purgeExpiredTeamInvitations = `
DELETE FROM team_invitations WHERE expires_at < ? AND accepted_at IS NULL
`

// PurgeExpiredTeamInvitations deletes invitations that expired without being
// accepted. Returns the number of rows removed.
func (q *Queries) PurgeExpiredTeamInvitations(ctx context.Context, now time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, purgeExpiredTeamInvitations, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
