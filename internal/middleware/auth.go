// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// rate limiting, and request context handling.
package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/olegiv/groeiboek/internal/auth"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for request-scoped data.
const (
	ContextKeyUser ContextKey = "user"
	ContextKeyLang ContextKey = "lang"
)

// errorBody is the JSON error envelope shared by every API response.
type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteJSONError writes a JSON error response.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorBody{Success: false, Error: message})
}

// BearerAuth creates middleware that requires a valid access token. The
// authenticated user is loaded from the database and stored in the request
// context.
func BearerAuth(ti *auth.TokenIssuer, db *sql.DB) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := authenticate(w, r, ti, queries)
			if !ok {
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate validates the Authorization header and loads the user.
// On failure it writes the error response and returns ok=false.
func authenticate(w http.ResponseWriter, r *http.Request, ti *auth.TokenIssuer, queries *store.Queries) (store.User, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		WriteJSONError(w, http.StatusUnauthorized, "missing Authorization header")
		return store.User{}, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		WriteJSONError(w, http.StatusUnauthorized, "invalid Authorization header format, use: Bearer <token>")
		return store.User{}, false
	}

	userID, _, err := ti.VerifyAccessToken(parts[1])
	if err != nil {
		WriteJSONError(w, http.StatusUnauthorized, "invalid or expired token")
		return store.User{}, false
	}

	user, err := queries.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteJSONError(w, http.StatusUnauthorized, "unknown user")
		} else {
			slog.Error("failed to load user for token", "error", err, "user_id", userID)
			WriteJSONError(w, http.StatusInternalServerError, "failed to load user")
		}
		return store.User{}, false
	}

	if user.Status != model.UserActive {
		WriteJSONError(w, http.StatusForbidden, "account is inactive")
		return store.User{}, false
	}

	return user, true
}

// GetUser retrieves the authenticated user from the request context.
// Returns nil outside of BearerAuth.
func GetUser(r *http.Request) *store.User {
	user, ok := r.Context().Value(ContextKeyUser).(store.User)
	if !ok {
		return nil
	}
	return &user
}

// Language resolves the response language from the Accept-Language header
// and stores it in the request context.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := model.LangFromAcceptLanguage(r.Header.Get("Accept-Language"))
		ctx := context.WithValue(r.Context(), ContextKeyLang, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetLang retrieves the negotiated language from the request context,
// defaulting to Dutch.
func GetLang(r *http.Request) string {
	lang, ok := r.Context().Value(ContextKeyLang).(string)
	if !ok {
		return model.LangNL
	}
	return lang
}
