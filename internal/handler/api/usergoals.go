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

// UserItemResponse represents a user-authored goal tree entity. These are
// free-form and single-language, unlike the curated templates.
type UserItemResponse struct {
	ID           int64      `json:"id"`
	ParentID     int64      `json:"parent_id,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	TargetValue  float64    `json:"target_value,omitempty"`
	Unit         string     `json:"unit,omitempty"`
	CurrentValue float64    `json:"current_value,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func userGoalToResponse(g store.UserGoal) UserItemResponse {
	out := UserItemResponse{
		ID: g.ID, Title: g.Title, Description: g.Description,
		CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt,
	}
	if g.CompletedAt.Valid {
		out.CompletedAt = &g.CompletedAt.Time
	}
	return out
}

func userObjectiveToResponse(o store.UserObjective) UserItemResponse {
	out := UserItemResponse{
		ID: o.ID, ParentID: o.UserGoalID, Title: o.Title, Description: o.Description,
		CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt,
	}
	if o.CompletedAt.Valid {
		out.CompletedAt = &o.CompletedAt.Time
	}
	return out
}

func userKeyResultToResponse(kr store.UserKeyResult) UserItemResponse {
	out := UserItemResponse{
		ID: kr.ID, ParentID: kr.UserObjectiveID, Title: kr.Title,
		TargetValue: kr.TargetValue, Unit: kr.Unit, CurrentValue: kr.CurrentValue,
		CreatedAt: kr.CreatedAt, UpdatedAt: kr.UpdatedAt,
	}
	if kr.CompletedAt.Valid {
		out.CompletedAt = &kr.CompletedAt.Time
	}
	return out
}

func userInitiativeToResponse(in store.UserInitiative) UserItemResponse {
	out := UserItemResponse{
		ID: in.ID, ParentID: in.UserKeyResultID, Title: in.Title, Description: in.Description,
		CreatedAt: in.CreatedAt, UpdatedAt: in.UpdatedAt,
	}
	if in.CompletedAt.Valid {
		out.CompletedAt = &in.CompletedAt.Time
	}
	return out
}

func (h *Handler) userGoalRoutes(r chi.Router) {
	r.Route("/my/goals", func(r chi.Router) {
		r.Post("/", h.createUserGoal)
		r.Get("/", h.listUserGoals)
		r.Get("/{id}", h.getUserGoal)
		r.Put("/{id}", h.updateUserGoal)
		r.Post("/{id}/complete", h.completeUserGoal)
		r.Delete("/{id}", h.deleteUserGoal)
		r.Post("/{id}/objectives", h.createUserObjective)
		r.Get("/{id}/objectives", h.listUserObjectives)
	})
	r.Route("/my/objectives", func(r chi.Router) {
		r.Get("/{id}", h.getUserObjective)
		r.Post("/{id}/complete", h.completeUserObjective)
		r.Delete("/{id}", h.deleteUserObjective)
		r.Post("/{id}/key-results", h.createUserKeyResult)
		r.Get("/{id}/key-results", h.listUserKeyResults)
	})
	r.Route("/my/key-results", func(r chi.Router) {
		r.Get("/{id}", h.getUserKeyResult)
		r.Put("/{id}/progress", h.recordUserKeyResultProgress)
		r.Post("/{id}/complete", h.completeUserKeyResult)
		r.Delete("/{id}", h.deleteUserKeyResult)
		r.Post("/{id}/initiatives", h.createUserInitiative)
		r.Get("/{id}/initiatives", h.listUserInitiatives)
	})
	r.Route("/my/initiatives", func(r chi.Router) {
		r.Get("/{id}", h.getUserInitiative)
		r.Post("/{id}/complete", h.completeUserInitiative)
		r.Delete("/{id}", h.deleteUserInitiative)
	})
}

type userItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TargetValue float64 `json:"target_value"`
	Unit        string  `json:"unit"`
}

func (h *Handler) createUserGoal(w http.ResponseWriter, r *http.Request) {
	var req userItemRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	goal, err := h.userGoals.CreateGoal(r.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, userGoalToResponse(goal))
}

func (h *Handler) listUserGoals(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	goals, err := h.userGoals.ListGoals(r.Context(), user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]UserItemResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, userGoalToResponse(g))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getUserGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	goal, err := h.userGoals.GetGoal(r.Context(), user.ID, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, userGoalToResponse(goal))
}

func (h *Handler) updateUserGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req userItemRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.userGoals.UpdateGoal(r.Context(), user.ID, id, req.Title, req.Description); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) completeUserGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.userGoals.CompleteGoal(r.Context(), user.ID, id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) deleteUserGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.userGoals.DeleteGoal(r.Context(), user.ID, id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) createUserObjective(w http.ResponseWriter, r *http.Request) {
	goalID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req userItemRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	objective, err := h.userGoals.CreateObjective(r.Context(), user.ID, goalID, req.Title, req.Description)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, userObjectiveToResponse(objective))
}

func (h *Handler) listUserObjectives(w http.ResponseWriter, r *http.Request) {
	goalID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	objectives, err := h.userGoals.ListObjectives(r.Context(), user.ID, goalID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]UserItemResponse, 0, len(objectives))
	for _, o := range objectives {
		out = append(out, userObjectiveToResponse(o))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getUserObjective(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	objective, err := h.userGoals.GetObjective(r.Context(), user.ID, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, userObjectiveToResponse(objective))
}

func (h *Handler) completeUserObjective(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.userGoals.CompleteObjective(r.Context(), user.ID, id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) deleteUserObjective(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.userGoals.DeleteObjective(r.Context(), user.ID, id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) createUserKeyResult(w http.ResponseWriter, r *http.Request) {
	objectiveID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req userItemRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	kr, err := h.userGoals.CreateKeyResult(r.Context(), user.ID, objectiveID, req.Title, req.TargetValue, req.Unit)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, userKeyResultToResponse(kr))
}

func (h *Handler) listUserKeyResults(w http.ResponseWriter, r *http.Request) {
	objectiveID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	krs, err := h.userGoals.ListKeyResults(r.Context(), user.ID, objectiveID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]UserItemResponse, 0, len(krs))
	for _, kr := range krs {
		out = append(out, userKeyResultToResponse(kr))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getUserKeyResult(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	kr, err := h.userGoals.GetKeyResult(r.Context(), user.ID, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, userKeyResultToResponse(kr))
}

func (h *Handler) recordUserKeyResultProgress(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req struct {
		CurrentValue float64 `json:"current_value"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.userGoals.RecordProgress(r.Context(), user.ID, id, req.CurrentValue); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) completeUserKeyResult(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.userGoals.CompleteKeyResult(r.Context(), user.ID, id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) deleteUserKeyResult(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.userGoals.DeleteKeyResult(r.Context(), user.ID, id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) createUserInitiative(w http.ResponseWriter, r *http.Request) {
	keyResultID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req userItemRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	initiative, err := h.userGoals.CreateInitiative(r.Context(), user.ID, keyResultID, req.Title, req.Description)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, userInitiativeToResponse(initiative))
}

func (h *Handler) listUserInitiatives(w http.ResponseWriter, r *http.Request) {
	keyResultID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	initiatives, err := h.userGoals.ListInitiatives(r.Context(), user.ID, keyResultID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]UserItemResponse, 0, len(initiatives))
	for _, in := range initiatives {
		out = append(out, userInitiativeToResponse(in))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getUserInitiative(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	initiative, err := h.userGoals.GetInitiative(r.Context(), user.ID, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, userInitiativeToResponse(initiative))
}

func (h *Handler) completeUserInitiative(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.userGoals.CompleteInitiative(r.Context(), user.ID, id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) deleteUserInitiative(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.userGoals.DeleteInitiative(r.Context(), user.ID, id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}
