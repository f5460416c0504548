// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/groeiboek/internal/middleware"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// TemplateResponse represents an OKR template entity. Number is empty for
// life domains, which are not numbered.
type TemplateResponse struct {
	ID          int64           `json:"id"`
	ParentID    int64           `json:"parent_id,omitempty"`
	Number      string          `json:"number,omitempty"`
	Title       string          `json:"title"`
	TitleRaw    model.Bilingual `json:"title_raw"`
	Description string          `json:"description,omitempty"`
	TargetValue float64         `json:"target_value,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Custom      bool            `json:"custom"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func lifeDomainToResponse(d store.LifeDomain, lang string) TemplateResponse {
	title := model.Bilingual{NL: d.TitleNl, EN: d.TitleEn}
	desc := model.Bilingual{NL: d.DescriptionNl, EN: d.DescriptionEn}
	return TemplateResponse{
		ID: d.ID, Title: title.In(lang), TitleRaw: title, Description: desc.In(lang),
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

func goalToResponse(g store.Goal, lang string) TemplateResponse {
	title := model.Bilingual{NL: g.TitleNl, EN: g.TitleEn}
	desc := model.Bilingual{NL: g.DescriptionNl, EN: g.DescriptionEn}
	return TemplateResponse{
		ID: g.ID, ParentID: g.LifeDomainID, Number: g.GoalNumber,
		Title: title.In(lang), TitleRaw: title, Description: desc.In(lang),
		Custom:    g.CreatedByUserID.Valid,
		CreatedAt: g.CreatedAt, UpdatedAt: g.UpdatedAt,
	}
}

func objectiveToResponse(o store.Objective, lang string) TemplateResponse {
	title := model.Bilingual{NL: o.TitleNl, EN: o.TitleEn}
	desc := model.Bilingual{NL: o.DescriptionNl, EN: o.DescriptionEn}
	return TemplateResponse{
		ID: o.ID, ParentID: o.GoalID, Number: o.ObjectiveNumber,
		Title: title.In(lang), TitleRaw: title, Description: desc.In(lang),
		Custom:    o.CreatedByUserID.Valid,
		CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt,
	}
}

func keyResultToResponse(kr store.KeyResult, lang string) TemplateResponse {
	title := model.Bilingual{NL: kr.TitleNl, EN: kr.TitleEn}
	return TemplateResponse{
		ID: kr.ID, ParentID: kr.ObjectiveID, Number: kr.KeyResultNumber,
		Title: title.In(lang), TitleRaw: title,
		TargetValue: kr.TargetValue, Unit: kr.Unit,
		Custom:    kr.CreatedByUserID.Valid,
		CreatedAt: kr.CreatedAt, UpdatedAt: kr.UpdatedAt,
	}
}

func initiativeToResponse(in store.Initiative, lang string) TemplateResponse {
	title := model.Bilingual{NL: in.TitleNl, EN: in.TitleEn}
	desc := model.Bilingual{NL: in.DescriptionNl, EN: in.DescriptionEn}
	return TemplateResponse{
		ID: in.ID, ParentID: in.KeyResultID, Number: in.InitiativeNumber,
		Title: title.In(lang), TitleRaw: title, Description: desc.In(lang),
		Custom:    in.CreatedByUserID.Valid,
		CreatedAt: in.CreatedAt, UpdatedAt: in.UpdatedAt,
	}
}

// InstanceResponse represents a started template instance.
type InstanceResponse struct {
	ID          int64      `json:"id"`
	TemplateID  int64      `json:"template_id"`
	UserID      int64      `json:"user_id,omitempty"`
	ParentID    int64      `json:"parent_instance_id,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func goalInstanceToResponse(gi store.UserGoalInstance) InstanceResponse {
	out := InstanceResponse{ID: gi.ID, TemplateID: gi.GoalID, UserID: gi.UserID, StartedAt: gi.StartedAt}
	if gi.CompletedAt.Valid {
		out.CompletedAt = &gi.CompletedAt.Time
	}
	return out
}

func objectiveInstanceToResponse(oi store.UserObjectiveInstance) InstanceResponse {
	out := InstanceResponse{ID: oi.ID, TemplateID: oi.ObjectiveID, UserID: oi.UserID, StartedAt: oi.StartedAt}
	if oi.CompletedAt.Valid {
		out.CompletedAt = &oi.CompletedAt.Time
	}
	return out
}

func keyResultInstanceToResponse(ki store.UserKeyResultInstance) InstanceResponse {
	out := InstanceResponse{ID: ki.ID, TemplateID: ki.KeyResultID, ParentID: ki.UserObjectiveInstanceID, StartedAt: ki.StartedAt}
	if ki.CompletedAt.Valid {
		out.CompletedAt = &ki.CompletedAt.Time
	}
	return out
}

func initiativeInstanceToResponse(ii store.UserInitiativeInstance) InstanceResponse {
	out := InstanceResponse{ID: ii.ID, TemplateID: ii.InitiativeID, ParentID: ii.UserKeyResultInstanceID, StartedAt: ii.StartedAt}
	if ii.CompletedAt.Valid {
		out.CompletedAt = &ii.CompletedAt.Time
	}
	return out
}

// KanbanItemResponse represents a board item.
type KanbanItemResponse struct {
	ID        int64     `json:"id"`
	ItemType  string    `json:"item_type"`
	ItemID    int64     `json:"item_id"`
	Column    string    `json:"column"`
	Position  int64     `json:"position"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func kanbanItemToResponse(it store.KanbanItem) KanbanItemResponse {
	return KanbanItemResponse{
		ID: it.ID, ItemType: it.ItemType, ItemID: it.ItemID,
		Column: it.ColumnName, Position: it.Position, Notes: it.Notes,
		CreatedAt: it.CreatedAt, UpdatedAt: it.UpdatedAt,
	}
}

// okrRoutes registers the template catalogue, personal instances and the
// kanban board.
func (h *Handler) okrRoutes(r chi.Router) {
	r.Route("/okr", func(r chi.Router) {
		r.Post("/domains", h.createLifeDomain)
		r.Get("/domains", h.listLifeDomains)
		r.Get("/domains/{id}", h.getLifeDomain)
		r.Post("/domains/{id}/goals", h.createGoal)
		r.Get("/domains/{id}/goals", h.listGoals)

		r.Get("/goals/{id}", h.getGoal)
		r.Delete("/goals/{id}", h.deleteGoal)
		r.Post("/goals/{id}/objectives", h.createObjective)
		r.Get("/goals/{id}/objectives", h.listObjectives)
		r.Post("/goals/{id}/start", h.startGoal)

		r.Get("/objectives/{id}", h.getObjective)
		r.Delete("/objectives/{id}", h.deleteObjective)
		r.Post("/objectives/{id}/key-results", h.createKeyResult)
		r.Get("/objectives/{id}/key-results", h.listKeyResults)
		r.Post("/objectives/{id}/start", h.startObjective)

		r.Get("/key-results/{id}", h.getKeyResult)
		r.Delete("/key-results/{id}", h.deleteKeyResult)
		r.Post("/key-results/{id}/initiatives", h.createInitiative)
		r.Get("/key-results/{id}/initiatives", h.listInitiatives)
		r.Post("/key-results/{id}/suggestions", h.createInitiativeSuggestion)
		r.Get("/key-results/{id}/suggestions", h.listInitiativeSuggestions)

		r.Get("/initiatives/{id}", h.getInitiative)
		r.Delete("/initiatives/{id}", h.deleteInitiative)

		r.Route("/instances", func(r chi.Router) {
			r.Get("/goals", h.listGoalInstances)
			r.Get("/goals/{id}", h.getGoalInstance)
			r.Post("/goals/{id}/complete", h.completeGoalInstance)
			r.Delete("/goals/{id}", h.deleteGoalInstance)

			r.Get("/objectives", h.listObjectiveInstances)
			r.Get("/objectives/{id}", h.getObjectiveInstance)
			r.Post("/objectives/{id}/complete", h.completeObjectiveInstance)
			r.Delete("/objectives/{id}", h.deleteObjectiveInstance)
			r.Get("/objectives/{id}/key-results", h.listKeyResultInstances)
			r.Post("/objectives/{id}/key-results/{keyResultId}/start", h.startKeyResult)
			r.Put("/objectives/{id}/key-results/{keyResultId}/progress", h.setKeyResultProgress)
			r.Get("/objectives/{id}/key-results/{keyResultId}/progress", h.getKeyResultProgress)

			r.Get("/key-results/{id}", h.getKeyResultInstance)
			r.Post("/key-results/{id}/complete", h.completeKeyResultInstance)
			r.Delete("/key-results/{id}", h.deleteKeyResultInstance)
			r.Get("/key-results/{id}/initiatives", h.listInitiativeInstances)
			r.Post("/key-results/{id}/initiatives/{initiativeId}/start", h.startInitiative)

			r.Get("/initiatives/{id}", h.getInitiativeInstance)
			r.Post("/initiatives/{id}/complete", h.completeInitiativeInstance)
			r.Delete("/initiatives/{id}", h.deleteInitiativeInstance)
		})
	})

	r.Route("/kanban", func(r chi.Router) {
		r.Post("/items", h.addKanbanItem)
		r.Get("/items", h.listKanbanItems)
		r.Get("/items/{id}", h.getKanbanItem)
		r.Put("/items/{id}", h.moveKanbanItem)
		r.Delete("/items/{id}", h.removeKanbanItem)
	})
}

type templateRequest struct {
	Title       BilingualRequest `json:"title"`
	Description BilingualRequest `json:"description"`
	TargetValue float64          `json:"target_value"`
	Unit        string           `json:"unit"`
}

func (h *Handler) createLifeDomain(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	domain, err := h.okr.CreateLifeDomain(r.Context(), req.Title.toModel(), req.Description.toModel())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, lifeDomainToResponse(domain, middleware.GetLang(r)))
}

func (h *Handler) listLifeDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := h.okr.ListLifeDomains(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]TemplateResponse, 0, len(domains))
	for _, d := range domains {
		out = append(out, lifeDomainToResponse(d, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getLifeDomain(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	domain, err := h.okr.GetLifeDomain(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, lifeDomainToResponse(domain, middleware.GetLang(r)))
}

func (h *Handler) createGoal(w http.ResponseWriter, r *http.Request) {
	domainID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req templateRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	goal, err := h.okr.CreateGoal(r.Context(), domainID, req.Title.toModel(), req.Description.toModel(), user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, goalToResponse(goal, middleware.GetLang(r)))
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	domainID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	goals, err := h.okr.ListGoals(r.Context(), domainID)
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]TemplateResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, goalToResponse(g, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	goal, err := h.okr.GetGoal(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, goalToResponse(goal, middleware.GetLang(r)))
}

func (h *Handler) deleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.okr.DeleteGoal(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) createObjective(w http.ResponseWriter, r *http.Request) {
	goalID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req templateRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	objective, err := h.okr.CreateObjective(r.Context(), goalID, req.Title.toModel(), req.Description.toModel(), user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, objectiveToResponse(objective, middleware.GetLang(r)))
}

func (h *Handler) listObjectives(w http.ResponseWriter, r *http.Request) {
	goalID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	objectives, err := h.okr.ListObjectives(r.Context(), goalID)
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]TemplateResponse, 0, len(objectives))
	for _, o := range objectives {
		out = append(out, objectiveToResponse(o, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getObjective(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	objective, err := h.okr.GetObjective(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, objectiveToResponse(objective, middleware.GetLang(r)))
}

func (h *Handler) deleteObjective(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.okr.DeleteObjective(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) createKeyResult(w http.ResponseWriter, r *http.Request) {
	objectiveID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req templateRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	kr, err := h.okr.CreateKeyResult(r.Context(), objectiveID, req.Title.toModel(), req.TargetValue, req.Unit, user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, keyResultToResponse(kr, middleware.GetLang(r)))
}

func (h *Handler) listKeyResults(w http.ResponseWriter, r *http.Request) {
	objectiveID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	krs, err := h.okr.ListKeyResults(r.Context(), objectiveID)
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]TemplateResponse, 0, len(krs))
	for _, kr := range krs {
		out = append(out, keyResultToResponse(kr, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getKeyResult(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	kr, err := h.okr.GetKeyResult(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, keyResultToResponse(kr, middleware.GetLang(r)))
}

func (h *Handler) deleteKeyResult(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.okr.DeleteKeyResult(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) createInitiative(w http.ResponseWriter, r *http.Request) {
	keyResultID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req templateRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	initiative, err := h.okr.CreateInitiative(r.Context(), keyResultID, req.Title.toModel(), req.Description.toModel(), user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, initiativeToResponse(initiative, middleware.GetLang(r)))
}

func (h *Handler) listInitiatives(w http.ResponseWriter, r *http.Request) {
	keyResultID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	initiatives, err := h.okr.ListInitiatives(r.Context(), keyResultID)
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]TemplateResponse, 0, len(initiatives))
	for _, in := range initiatives {
		out = append(out, initiativeToResponse(in, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getInitiative(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	initiative, err := h.okr.GetInitiative(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, initiativeToResponse(initiative, middleware.GetLang(r)))
}

func (h *Handler) deleteInitiative(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.okr.DeleteInitiative(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

// SuggestionResponse represents an initiative suggestion.
type SuggestionResponse struct {
	ID          int64           `json:"id"`
	KeyResultID int64           `json:"key_result_id"`
	Title       string          `json:"title"`
	TitleRaw    model.Bilingual `json:"title_raw"`
	CreatedAt   time.Time       `json:"created_at"`
}

func suggestionToResponse(s store.InitiativeSuggestion, lang string) SuggestionResponse {
	title := model.Bilingual{NL: s.TitleNl, EN: s.TitleEn}
	return SuggestionResponse{
		ID: s.ID, KeyResultID: s.KeyResultID,
		Title: title.In(lang), TitleRaw: title, CreatedAt: s.CreatedAt,
	}
}

func (h *Handler) createInitiativeSuggestion(w http.ResponseWriter, r *http.Request) {
	keyResultID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req templateRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	suggestion, err := h.okr.CreateInitiativeSuggestion(r.Context(), keyResultID, req.Title.toModel())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, suggestionToResponse(suggestion, middleware.GetLang(r)))
}

func (h *Handler) listInitiativeSuggestions(w http.ResponseWriter, r *http.Request) {
	keyResultID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	suggestions, err := h.okr.ListInitiativeSuggestions(r.Context(), keyResultID)
	if err != nil {
		writeErr(w, err)
		return
	}
	lang := middleware.GetLang(r)
	out := make([]SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, suggestionToResponse(s, lang))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) startGoal(w http.ResponseWriter, r *http.Request) {
	goalID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	instance, err := h.instances.StartGoal(r.Context(), user.ID, goalID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, goalInstanceToResponse(instance))
}

func (h *Handler) startObjective(w http.ResponseWriter, r *http.Request) {
	objectiveID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	instance, err := h.instances.StartObjective(r.Context(), user.ID, objectiveID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, objectiveInstanceToResponse(instance))
}

func (h *Handler) startKeyResult(w http.ResponseWriter, r *http.Request) {
	objectiveInstanceID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	keyResultID, err := idParam(r, "keyResultId")
	if err != nil {
		writeErr(w, err)
		return
	}
	instance, err := h.instances.StartKeyResult(r.Context(), objectiveInstanceID, keyResultID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, keyResultInstanceToResponse(instance))
}

func (h *Handler) startInitiative(w http.ResponseWriter, r *http.Request) {
	keyResultInstanceID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	initiativeID, err := idParam(r, "initiativeId")
	if err != nil {
		writeErr(w, err)
		return
	}
	instance, err := h.instances.StartInitiative(r.Context(), keyResultInstanceID, initiativeID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, initiativeInstanceToResponse(instance))
}

func (h *Handler) listGoalInstances(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	instances, err := h.instances.ListGoalInstances(r.Context(), user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]InstanceResponse, 0, len(instances))
	for _, gi := range instances {
		out = append(out, goalInstanceToResponse(gi))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getGoalInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	instance, err := h.instances.GetGoalInstance(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, goalInstanceToResponse(instance))
}

func (h *Handler) completeGoalInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.instances.CompleteGoal(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) deleteGoalInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.instances.DeleteGoalInstance(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) listObjectiveInstances(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	instances, err := h.instances.ListObjectiveInstances(r.Context(), user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]InstanceResponse, 0, len(instances))
	for _, oi := range instances {
		out = append(out, objectiveInstanceToResponse(oi))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getObjectiveInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	instance, err := h.instances.GetObjectiveInstance(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, objectiveInstanceToResponse(instance))
}

func (h *Handler) completeObjectiveInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.instances.CompleteObjective(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) deleteObjectiveInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.instances.DeleteObjectiveInstance(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) listKeyResultInstances(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	instances, err := h.instances.ListKeyResultInstances(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]InstanceResponse, 0, len(instances))
	for _, ki := range instances {
		out = append(out, keyResultInstanceToResponse(ki))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getKeyResultInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	instance, err := h.instances.GetKeyResultInstance(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, keyResultInstanceToResponse(instance))
}

func (h *Handler) completeKeyResultInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.instances.CompleteKeyResult(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) deleteKeyResultInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.instances.DeleteKeyResultInstance(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) listInitiativeInstances(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	instances, err := h.instances.ListInitiativeInstances(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]InstanceResponse, 0, len(instances))
	for _, ii := range instances {
		out = append(out, initiativeInstanceToResponse(ii))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getInitiativeInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	instance, err := h.instances.GetInitiativeInstance(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, initiativeInstanceToResponse(instance))
}

func (h *Handler) completeInitiativeInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.instances.CompleteInitiative(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) deleteInitiativeInstance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.instances.DeleteInitiativeInstance(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

// ProgressResponse represents measured progress against a key result.
type ProgressResponse struct {
	KeyResultID             int64     `json:"key_result_id"`
	UserObjectiveInstanceID int64     `json:"user_objective_instance_id"`
	CurrentValue            float64   `json:"current_value"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func progressToResponse(p store.KeyResultProgress) ProgressResponse {
	return ProgressResponse{
		KeyResultID:             p.KeyResultID,
		UserObjectiveInstanceID: p.UserObjectiveInstanceID,
		CurrentValue:            p.CurrentValue,
		UpdatedAt:               p.UpdatedAt,
	}
}

func (h *Handler) setKeyResultProgress(w http.ResponseWriter, r *http.Request) {
	objectiveInstanceID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	keyResultID, err := idParam(r, "keyResultId")
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
	progress, err := h.instances.SetKeyResultProgress(r.Context(), keyResultID, objectiveInstanceID, req.CurrentValue)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, progressToResponse(progress))
}

func (h *Handler) getKeyResultProgress(w http.ResponseWriter, r *http.Request) {
	objectiveInstanceID, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	keyResultID, err := idParam(r, "keyResultId")
	if err != nil {
		writeErr(w, err)
		return
	}
	progress, err := h.instances.GetKeyResultProgress(r.Context(), keyResultID, objectiveInstanceID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, progressToResponse(progress))
}

func (h *Handler) addKanbanItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemType string `json:"item_type"`
		ItemID   int64  `json:"item_id"`
		Notes    string `json:"notes"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	item, err := h.kanban.Add(r.Context(), user.ID, req.ItemType, req.ItemID, req.Notes)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, kanbanItemToResponse(item))
}

func (h *Handler) listKanbanItems(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	items, err := h.kanban.List(r.Context(), user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]KanbanItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, kanbanItemToResponse(it))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) getKanbanItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	item, err := h.kanban.Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, kanbanItemToResponse(item))
}

func (h *Handler) moveKanbanItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req struct {
		Column   string `json:"column"`
		Position int64  `json:"position"`
		Notes    string `json:"notes"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	item, err := h.kanban.Move(r.Context(), id, req.Column, req.Position, req.Notes)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, kanbanItemToResponse(item))
}

func (h *Handler) removeKanbanItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.kanban.Remove(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}
