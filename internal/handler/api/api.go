// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the REST API handlers under /api/v2.
package api

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/auth"
	"github.com/olegiv/groeiboek/internal/learning"
	"github.com/olegiv/groeiboek/internal/middleware"
	"github.com/olegiv/groeiboek/internal/service"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db        *sql.DB
	issuer    *auth.TokenIssuer
	content   *service.ContentService
	review    *service.ReviewService
	okr       *service.OKRService
	instances *service.InstanceService
	kanban    *service.KanbanService
	teams     *service.TeamService
	auth      *service.AuthService
	userGoals *service.UserGoalService
}

// NewHandler creates an API handler wired to all services.
func NewHandler(db *sql.DB, issuer *auth.TokenIssuer, lockout *auth.Lockout, invitationTTL time.Duration, lm learning.Module) *Handler {
	return &Handler{
		db:        db,
		issuer:    issuer,
		content:   service.NewContentService(db, lm),
		review:    service.NewReviewService(db),
		okr:       service.NewOKRService(db),
		instances: service.NewInstanceService(db),
		kanban:    service.NewKanbanService(db),
		teams:     service.NewTeamService(db, invitationTTL),
		auth:      service.NewAuthService(db, issuer, lockout),
		userGoals: service.NewUserGoalService(db),
	}
}

// Routes returns the /api/v2 router. Auth endpoints are public; everything
// else requires a bearer token. loginLimiter is applied to the login
// endpoint only and may be nil.
func (h *Handler) Routes(loginLimiter func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Language)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		if loginLimiter != nil {
			r.With(loginLimiter).Post("/login", h.login)
		} else {
			r.Post("/login", h.login)
		}
		r.Post("/refresh", h.refresh)
		r.Post("/password-reset/request", h.requestPasswordReset)
		r.Post("/password-reset/confirm", h.confirmPasswordReset)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(h.issuer, h.db))

		r.Post("/auth/logout", h.logout)
		r.Post("/auth/logout-all", h.logoutAll)

		h.contentRoutes(r)
		h.okrRoutes(r)
		h.teamRoutes(r)
		h.userGoalRoutes(r)
	})

	return r
}

// response is the success envelope. Errors use the same shape with
// success=false and an error message, see middleware.WriteJSONError.
type response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func writeData(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response{Success: true, Data: data})
}

// writeErr maps a service error to its HTTP status. Internal causes are
// logged and hidden from the client.
func writeErr(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		slog.Error("request failed", "error", err)
	}
	middleware.WriteJSONError(w, apperr.HTTPStatus(err), apperr.Message(err))
}

// decode reads a JSON request body into dst.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Invalidf("invalid request body")
	}
	return nil
}

// idParam parses a chi URL parameter as an id.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Invalidf("invalid %s", name)
	}
	return id, nil
}
