// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// TeamService manages teams, their members and email invitations.
type TeamService struct {
	db            *sql.DB
	queries       *store.Queries
	invitationTTL time.Duration
}

// NewTeamService creates a TeamService. Invitations expire after ttl.
func NewTeamService(db *sql.DB, ttl time.Duration) *TeamService {
	return &TeamService{db: db, queries: store.New(db), invitationTTL: ttl}
}

// CreateTeam creates a team and enrolls the owner as its first member.
func (s *TeamService) CreateTeam(ctx context.Context, name string, ownerID int64) (store.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return store.Team{}, apperr.Invalidf("team name must not be empty")
	}
	if err := userExists(ctx, s.queries, ownerID); err != nil {
		return store.Team{}, err
	}

	var team store.Team
	err := withTx(ctx, s.db, func(q *store.Queries) error {
		now := time.Now()
		var err error
		team, err = q.CreateTeam(ctx, store.CreateTeamParams{
			Name:      name,
			OwnerID:   ownerID,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating team")
		}
		_, err = q.CreateTeamMember(ctx, store.CreateTeamMemberParams{
			TeamID:    team.ID,
			UserID:    ownerID,
			Role:      model.RoleOwner,
			CreatedAt: now,
		})
		if err != nil {
			return apperr.Internalf(err, "adding owner membership")
		}
		return nil
	})
	return team, err
}

// GetTeam fetches a team by id.
func (s *TeamService) GetTeam(ctx context.Context, id int64) (store.Team, error) {
	team, err := s.queries.GetTeamByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Team{}, apperr.NotFoundf("team %d not found", id)
	}
	if err != nil {
		return store.Team{}, apperr.Internalf(err, "loading team")
	}
	return team, nil
}

// ListTeams returns the teams a user belongs to.
func (s *TeamService) ListTeams(ctx context.Context, userID int64) ([]store.Team, error) {
	teams, err := s.queries.ListTeamsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing teams")
	}
	return teams, nil
}

// RenameTeam changes a team's name.
func (s *TeamService) RenameTeam(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.Invalidf("team name must not be empty")
	}
	if _, err := s.GetTeam(ctx, id); err != nil {
		return err
	}
	if err := s.queries.UpdateTeamName(ctx, store.UpdateTeamNameParams{
		Name:      name,
		UpdatedAt: time.Now(),
		ID:        id,
	}); err != nil {
		return apperr.Internalf(err, "renaming team")
	}
	return nil
}

// DeleteTeam removes a team. Memberships and invitations go with it.
func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	if _, err := s.GetTeam(ctx, id); err != nil {
		return err
	}
	if err := s.queries.DeleteTeam(ctx, id); err != nil {
		return apperr.Internalf(err, "deleting team")
	}
	return nil
}

// AddMember enrolls a user in a team with the given role. Adding an
// existing member is a conflict.
func (s *TeamService) AddMember(ctx context.Context, teamID, userID int64, role string) (store.TeamMember, error) {
	if !model.IsTeamRole(role) {
		return store.TeamMember{}, apperr.Invalidf("unknown team role %q", role)
	}
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return store.TeamMember{}, err
	}
	if err := userExists(ctx, s.queries, userID); err != nil {
		return store.TeamMember{}, err
	}
	_, err := s.queries.GetTeamMember(ctx, store.GetTeamMemberParams{TeamID: teamID, UserID: userID})
	if err == nil {
		return store.TeamMember{}, apperr.Conflictf("user %d is already a member of team %d", userID, teamID)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.TeamMember{}, apperr.Internalf(err, "checking membership")
	}

	member, err := s.queries.CreateTeamMember(ctx, store.CreateTeamMemberParams{
		TeamID:    teamID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return store.TeamMember{}, apperr.Internalf(err, "adding member")
	}
	return member, nil
}

// ListMembers returns a team's membership rows.
func (s *TeamService) ListMembers(ctx context.Context, teamID int64) ([]store.TeamMember, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	members, err := s.queries.ListTeamMembers(ctx, teamID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing members")
	}
	return members, nil
}

// RemoveMember removes a user from a team. The owner cannot be removed.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID int64) error {
	team, err := s.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.OwnerID == userID {
		return apperr.Conflictf("the team owner cannot be removed")
	}
	if _, err := s.queries.GetTeamMember(ctx, store.GetTeamMemberParams{TeamID: teamID, UserID: userID}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFoundf("user %d is not a member of team %d", userID, teamID)
		}
		return apperr.Internalf(err, "checking membership")
	}
	if err := s.queries.DeleteTeamMember(ctx, store.DeleteTeamMemberParams{TeamID: teamID, UserID: userID}); err != nil {
		return apperr.Internalf(err, "removing member")
	}
	return nil
}

// Invite creates an invitation token for an email address.
func (s *TeamService) Invite(ctx context.Context, teamID int64, email, role string) (store.TeamInvitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return store.TeamInvitation{}, apperr.Invalidf("a valid email address is required")
	}
	if !model.IsTeamRole(role) {
		return store.TeamInvitation{}, apperr.Invalidf("unknown team role %q", role)
	}
	if role == model.RoleOwner {
		return store.TeamInvitation{}, apperr.Invalidf("cannot invite as owner")
	}
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return store.TeamInvitation{}, err
	}

	now := time.Now()
	invitation, err := s.queries.CreateTeamInvitation(ctx, store.CreateTeamInvitationParams{
		TeamID:    teamID,
		Email:     email,
		Role:      role,
		Token:     uuid.NewString(),
		ExpiresAt: now.Add(s.invitationTTL),
		CreatedAt: now,
	})
	if err != nil {
		return store.TeamInvitation{}, apperr.Internalf(err, "creating invitation")
	}
	slog.Info("team invitation created",
		"category", model.AuditCategoryTeam, "team_id", teamID, "email", email)
	return invitation, nil
}

// ListInvitations returns a team's invitations, newest first.
func (s *TeamService) ListInvitations(ctx context.Context, teamID int64) ([]store.TeamInvitation, error) {
	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	invitations, err := s.queries.ListTeamInvitations(ctx, teamID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing invitations")
	}
	return invitations, nil
}

// Accept redeems an invitation token for a user, creating the membership.
// Expired or already accepted invitations are rejected; expiry is checked
// lazily at redemption time.
func (s *TeamService) Accept(ctx context.Context, token string, userID int64) (store.TeamMember, error) {
	invitation, err := s.getOpenInvitation(ctx, token)
	if err != nil {
		return store.TeamMember{}, err
	}
	user, err := s.queries.GetUserByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return store.TeamMember{}, apperr.NotFoundf("user %d not found", userID)
	}
	if err != nil {
		return store.TeamMember{}, apperr.Internalf(err, "loading user")
	}
	// The token alone is not enough, it must be redeemed by the invitee.
	if !strings.EqualFold(user.Email, invitation.Email) {
		return store.TeamMember{}, apperr.Conflictf("invitation was issued to a different email address")
	}
	if _, err := s.queries.GetTeamMember(ctx, store.GetTeamMemberParams{
		TeamID: invitation.TeamID,
		UserID: userID,
	}); err == nil {
		return store.TeamMember{}, apperr.Conflictf("user %d is already a member of team %d", userID, invitation.TeamID)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return store.TeamMember{}, apperr.Internalf(err, "checking membership")
	}

	var member store.TeamMember
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		now := time.Now()
		var err error
		member, err = q.CreateTeamMember(ctx, store.CreateTeamMemberParams{
			TeamID:    invitation.TeamID,
			UserID:    userID,
			Role:      invitation.Role,
			CreatedAt: now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating membership")
		}
		if err := q.MarkTeamInvitationAccepted(ctx, store.MarkTeamInvitationAcceptedParams{
			AcceptedAt: now,
			ID:         invitation.ID,
		}); err != nil {
			return apperr.Internalf(err, "marking invitation accepted")
		}
		return nil
	})
	return member, err
}

// Decline removes an open invitation by token.
func (s *TeamService) Decline(ctx context.Context, token string) error {
	invitation, err := s.getOpenInvitation(ctx, token)
	if err != nil {
		return err
	}
	if err := s.queries.DeleteTeamInvitation(ctx, invitation.ID); err != nil {
		return apperr.Internalf(err, "deleting invitation")
	}
	return nil
}

func (s *TeamService) getOpenInvitation(ctx context.Context, token string) (store.TeamInvitation, error) {
	invitation, err := s.queries.GetTeamInvitationByToken(ctx, token)
	if errors.Is(err, sql.ErrNoRows) {
		return store.TeamInvitation{}, apperr.NotFoundf("invitation not found")
	}
	if err != nil {
		return store.TeamInvitation{}, apperr.Internalf(err, "loading invitation")
	}
	if invitation.AcceptedAt.Valid {
		return store.TeamInvitation{}, apperr.Conflictf("invitation has already been accepted")
	}
	if time.Now().After(invitation.ExpiresAt) {
		return store.TeamInvitation{}, apperr.Conflictf("invitation has expired")
	}
	return invitation, nil
}
