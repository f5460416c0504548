// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/olegiv/groeiboek/internal/middleware"
	"github.com/olegiv/groeiboek/internal/service"
	"github.com/olegiv/groeiboek/internal/store"
)

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func userToResponse(u store.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

func tokensToResponse(p service.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:      p.AccessToken,
		AccessExpiresAt:  p.AccessExpiresAt,
		RefreshToken:     p.RefreshToken,
		RefreshExpiresAt: p.RefreshExpiresAt,
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user, err := h.auth.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, userToResponse(user))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user, pair, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, struct {
		User   UserResponse  `json:"user"`
		Tokens TokenResponse `json:"tokens"`
	}{userToResponse(user), tokensToResponse(pair)})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	pair, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, tokensToResponse(pair))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	if err := h.auth.Logout(r.Context(), req.RefreshToken); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if err := h.auth.LogoutAll(r.Context(), user.ID); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	token, err := h.auth.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		writeErr(w, err)
		return
	}
	// The token would normally leave through email only. It is returned here
	// because no mail transport is attached yet.
	// TODO: drop the token from the response once the mailer lands.
	writeData(w, http.StatusOK, struct {
		ResetToken string `json:"reset_token,omitempty"`
	}{token})
}

func (h *Handler) confirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	if err := h.auth.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}
