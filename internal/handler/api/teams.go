// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/groeiboek/internal/middleware"
	"github.com/olegiv/groeiboek/internal/store"
)

// TeamResponse represents a team.
type TeamResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func teamToResponse(t store.Team) TeamResponse {
	return TeamResponse{ID: t.ID, Name: t.Name, OwnerID: t.OwnerID, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

// TeamMemberResponse represents a team membership.
type TeamMemberResponse struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func teamMemberToResponse(m store.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{ID: m.ID, TeamID: m.TeamID, UserID: m.UserID, Role: m.Role, CreatedAt: m.CreatedAt}
}

// InvitationResponse represents a pending or accepted invitation. The token
// is included so the caller can hand it to the invitee.
type InvitationResponse struct {
	ID        int64      `json:"id"`
	TeamID    int64      `json:"team_id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	Accepted  *time.Time `json:"accepted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func invitationToResponse(inv store.TeamInvitation) InvitationResponse {
	out := InvitationResponse{
		ID: inv.ID, TeamID: inv.TeamID, Email: inv.Email, Role: inv.Role,
		Token: inv.Token, ExpiresAt: inv.ExpiresAt, CreatedAt: inv.CreatedAt,
	}
	if inv.AcceptedAt.Valid {
		out.Accepted = &inv.AcceptedAt.Time
	}
	return out
}

func (h *Handler) teamRoutes(r chi.Router) {
	r.Route("/teams", func(r chi.Router) {
		r.Post("/", h.createTeam)
		r.Get("/", h.listTeams)
		r.Get("/{id}", h.getTeam)
		r.Put("/{id}", h.renameTeam)
		r.Delete("/{id}", h.deleteTeam)

		r.Post("/{id}/members", h.addTeamMember)
		r.Get("/{id}/members", h.listTeamMembers)
		r.Delete("/{id}/members/{userId}", h.removeTeamMember)

		r.Post("/{id}/invitations", h.inviteToTeam)
		r.Get("/{id}/invitations", h.listTeamInvitations)
	})
	r.Post("/invitations/{token}/accept", h.acceptInvitation)
	r.Post("/invitations/{token}/decline", h.declineInvitation)
}

func (h *Handler) createTeam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	team, err := h.teams.CreateTeam(r.Context(), req.Name, user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, teamToResponse(team))
}

func (h *Handler) listTeams(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	teams, err := h.teams.ListTeams(r.Context(), user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, teamToResponse(t))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getTeam(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	team, err := h.teams.GetTeam(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, teamToResponse(team))
}

func (h *Handler) renameTeam(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	if err := h.teams.RenameTeam(r.Context(), id, req.Name); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) deleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.teams.DeleteTeam(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) addTeamMember(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req struct {
		UserID int64  `json:"user_id"`
		Role   string `json:"role"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	member, err := h.teams.AddMember(r.Context(), teamID, req.UserID, req.Role)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, teamMemberToResponse(member))
}

func (h *Handler) listTeamMembers(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	members, err := h.teams.ListMembers(r.Context(), teamID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, teamMemberToResponse(m))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) removeTeamMember(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	userID, err := idParam(r, "userId")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.teams.RemoveMember(r.Context(), teamID, userID); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) inviteToTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	invitation, err := h.teams.Invite(r.Context(), teamID, req.Email, req.Role)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, invitationToResponse(invitation))
}

func (h *Handler) listTeamInvitations(w http.ResponseWriter, r *http.Request) {
	teamID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	invitations, err := h.teams.ListInvitations(r.Context(), teamID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		out = append(out, invitationToResponse(inv))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) acceptInvitation(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	user := middleware.GetUser(r)
	member, err := h.teams.Accept(r.Context(), token, user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, teamMemberToResponse(member))
}

func (h *Handler) declineInvitation(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if err := h.teams.Decline(r.Context(), token); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}
