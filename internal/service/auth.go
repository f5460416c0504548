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

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/auth"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// passwordResetTTL bounds how long a reset token stays redeemable.
const passwordResetTTL = time.Hour

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AuthService handles registration, login with lockout protection, refresh
// token rotation and password resets.
type AuthService struct {
	db      *sql.DB
	queries *store.Queries
	issuer  *auth.TokenIssuer
	lockout *auth.Lockout
}

// NewAuthService creates an AuthService.
func NewAuthService(db *sql.DB, issuer *auth.TokenIssuer, lockout *auth.Lockout) *AuthService {
	return &AuthService{db: db, queries: store.New(db), issuer: issuer, lockout: lockout}
}

// Register creates a new active user with the given credentials.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (store.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return store.User{}, apperr.Invalidf("a valid email address is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return store.User{}, apperr.Invalidf("name must not be empty")
	}
	if len(password) < MinPasswordLength {
		return store.User{}, apperr.Invalidf("password must be at least %d characters", MinPasswordLength)
	}

	if _, err := s.queries.GetUserByEmail(ctx, email); err == nil {
		return store.User{}, apperr.Conflictf("an account with this email already exists")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return store.User{}, apperr.Internalf(err, "checking email")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return store.User{}, apperr.Internalf(err, "hashing password")
	}

	var user store.User
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		now := time.Now()
		var err error
		user, err = q.CreateUser(ctx, store.CreateUserParams{
			Email:     email,
			Name:      name,
			Status:    model.UserActive,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating user")
		}
		if err := q.UpsertCredential(ctx, store.UpsertCredentialParams{
			UserID:       user.ID,
			PasswordHash: hash,
			UpdatedAt:    now,
		}); err != nil {
			return apperr.Internalf(err, "storing credential")
		}
		return nil
	})
	if err != nil {
		return store.User{}, err
	}

	slog.Info("user registered",
		"category", model.AuditCategoryAuth, "user_id", user.ID, "email", email)
	return user, nil
}

// Login verifies credentials and issues a token pair. Repeated failures lock
// the account with increasing backoff.
func (s *AuthService) Login(ctx context.Context, email, password string) (store.User, TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if locked, remaining := s.lockout.IsLocked(email); locked {
		return store.User{}, TokenPair{}, apperr.Conflictf(
			"account temporarily locked, retry in %s", remaining.Round(time.Second))
	}

	user, err := s.queries.GetUserByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		s.lockout.RecordFailure(email)
		return store.User{}, TokenPair{}, apperr.Invalidf("invalid email or password")
	}
	if err != nil {
		return store.User{}, TokenPair{}, apperr.Internalf(err, "loading user")
	}
	if user.Status != model.UserActive {
		return store.User{}, TokenPair{}, apperr.Conflictf("account is not active")
	}

	cred, err := s.queries.GetCredentialByUserID(ctx, user.ID)
	if errors.Is(err, sql.ErrNoRows) {
		s.lockout.RecordFailure(email)
		return store.User{}, TokenPair{}, apperr.Invalidf("invalid email or password")
	}
	if err != nil {
		return store.User{}, TokenPair{}, apperr.Internalf(err, "loading credential")
	}

	ok, err := auth.CheckPassword(password, cred.PasswordHash)
	if err != nil {
		return store.User{}, TokenPair{}, apperr.Internalf(err, "verifying password")
	}
	if !ok {
		locked, _ := s.lockout.RecordFailure(email)
		if locked {
			slog.Warn("account locked after repeated failures",
				"category", model.AuditCategoryAuth, "user_id", user.ID, "email", email)
		}
		return store.User{}, TokenPair{}, apperr.Invalidf("invalid email or password")
	}
	s.lockout.RecordSuccess(email)

	if auth.NeedsRehash(cred.PasswordHash) {
		if hash, err := auth.HashPassword(password); err == nil {
			_ = s.queries.UpsertCredential(ctx, store.UpsertCredentialParams{
				UserID:       user.ID,
				PasswordHash: hash,
				UpdatedAt:    time.Now(),
			})
		}
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return store.User{}, TokenPair{}, err
	}
	slog.Info("user logged in",
		"category", model.AuditCategoryAuth, "user_id", user.ID)
	return user, pair, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user store.User) (TokenPair, error) {
	access, accessExp, err := s.issuer.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return TokenPair{}, apperr.Internalf(err, "issuing access token")
	}
	raw, hash, refreshExp := s.issuer.IssueRefreshToken()
	if _, err := s.queries.CreateRefreshToken(ctx, store.CreateRefreshTokenParams{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: refreshExp,
		CreatedAt: time.Now(),
	}); err != nil {
		return TokenPair{}, apperr.Internalf(err, "storing refresh token")
	}
	return TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     raw,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Revoked or expired tokens are rejected.
func (s *AuthService) Refresh(ctx context.Context, rawToken string) (TokenPair, error) {
	token, err := s.queries.GetRefreshTokenByHash(ctx, auth.HashRefreshToken(rawToken))
	if errors.Is(err, sql.ErrNoRows) {
		return TokenPair{}, apperr.Invalidf("invalid refresh token")
	}
	if err != nil {
		return TokenPair{}, apperr.Internalf(err, "loading refresh token")
	}
	if token.RevokedAt.Valid {
		return TokenPair{}, apperr.Conflictf("refresh token has been revoked")
	}
	if time.Now().After(token.ExpiresAt) {
		return TokenPair{}, apperr.Conflictf("refresh token has expired")
	}

	user, err := s.queries.GetUserByID(ctx, token.UserID)
	if err != nil {
		return TokenPair{}, apperr.Internalf(err, "loading user")
	}
	if user.Status != model.UserActive {
		return TokenPair{}, apperr.Conflictf("account is not active")
	}

	var pair TokenPair
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		if err := q.RevokeRefreshToken(ctx, store.RevokeRefreshTokenParams{
			RevokedAt: time.Now(),
			ID:        token.ID,
		}); err != nil {
			return apperr.Internalf(err, "revoking refresh token")
		}
		access, accessExp, err := s.issuer.IssueAccessToken(user.ID, user.Email)
		if err != nil {
			return apperr.Internalf(err, "issuing access token")
		}
		raw, hash, refreshExp := s.issuer.IssueRefreshToken()
		if _, err := q.CreateRefreshToken(ctx, store.CreateRefreshTokenParams{
			UserID:    user.ID,
			TokenHash: hash,
			ExpiresAt: refreshExp,
			CreatedAt: time.Now(),
		}); err != nil {
			return apperr.Internalf(err, "storing refresh token")
		}
		pair = TokenPair{
			AccessToken:      access,
			AccessExpiresAt:  accessExp,
			RefreshToken:     raw,
			RefreshExpiresAt: refreshExp,
		}
		return nil
	})
	return pair, err
}

// Logout revokes a single refresh token.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	token, err := s.queries.GetRefreshTokenByHash(ctx, auth.HashRefreshToken(rawToken))
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFoundf("refresh token not found")
	}
	if err != nil {
		return apperr.Internalf(err, "loading refresh token")
	}
	if err := s.queries.RevokeRefreshToken(ctx, store.RevokeRefreshTokenParams{
		RevokedAt: time.Now(),
		ID:        token.ID,
	}); err != nil {
		return apperr.Internalf(err, "revoking refresh token")
	}
	return nil
}

// LogoutAll revokes every live refresh token of a user.
func (s *AuthService) LogoutAll(ctx context.Context, userID int64) error {
	if err := userExists(ctx, s.queries, userID); err != nil {
		return err
	}
	if err := s.queries.RevokeRefreshTokensByUser(ctx, store.RevokeRefreshTokensByUserParams{
		RevokedAt: time.Now(),
		UserID:    userID,
	}); err != nil {
		return apperr.Internalf(err, "revoking refresh tokens")
	}
	return nil
}

// RequestPasswordReset creates a reset token for the account. An unknown
// email yields an empty token and no error, so callers cannot probe for
// registered addresses.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.queries.GetUserByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", apperr.Internalf(err, "loading user")
	}

	raw, hash, _ := s.issuer.IssueRefreshToken()
	now := time.Now()
	if _, err := s.queries.CreatePasswordReset(ctx, store.CreatePasswordResetParams{
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: now.Add(passwordResetTTL),
		CreatedAt: now,
	}); err != nil {
		return "", apperr.Internalf(err, "storing reset token")
	}
	slog.Info("password reset requested",
		"category", model.AuditCategoryAuth, "user_id", user.ID)
	return raw, nil
}

// ResetPassword redeems a reset token, replaces the credential and revokes
// every outstanding refresh token.
func (s *AuthService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return apperr.Invalidf("password must be at least %d characters", MinPasswordLength)
	}
	reset, err := s.queries.GetPasswordResetByHash(ctx, auth.HashRefreshToken(rawToken))
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.Invalidf("invalid reset token")
	}
	if err != nil {
		return apperr.Internalf(err, "loading reset token")
	}
	if reset.UsedAt.Valid {
		return apperr.Conflictf("reset token has already been used")
	}
	if time.Now().After(reset.ExpiresAt) {
		return apperr.Conflictf("reset token has expired")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperr.Internalf(err, "hashing password")
	}
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		now := time.Now()
		if err := q.UpsertCredential(ctx, store.UpsertCredentialParams{
			UserID:       reset.UserID,
			PasswordHash: hash,
			UpdatedAt:    now,
		}); err != nil {
			return apperr.Internalf(err, "storing credential")
		}
		if err := q.MarkPasswordResetUsed(ctx, store.MarkPasswordResetUsedParams{
			UsedAt: now,
			ID:     reset.ID,
		}); err != nil {
			return apperr.Internalf(err, "consuming reset token")
		}
		if err := q.RevokeRefreshTokensByUser(ctx, store.RevokeRefreshTokensByUserParams{
			RevokedAt: now,
			UserID:    reset.UserID,
		}); err != nil {
			return apperr.Internalf(err, "revoking refresh tokens")
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.Warn("password reset completed",
		"category", model.AuditCategoryAuth, "user_id", reset.UserID)
	return nil
}

// SetUserStatus activates or deactivates an account. Deactivation also
// revokes the user's refresh tokens.
func (s *AuthService) SetUserStatus(ctx context.Context, userID int64, status string) error {
	if status != model.UserActive && status != model.UserInactive {
		return apperr.Invalidf("unknown user status %q", status)
	}
	if err := userExists(ctx, s.queries, userID); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		now := time.Now()
		if err := q.UpdateUserStatus(ctx, store.UpdateUserStatusParams{
			Status:    status,
			UpdatedAt: now,
			ID:        userID,
		}); err != nil {
			return apperr.Internalf(err, "updating user status")
		}
		if status == model.UserInactive {
			if err := q.RevokeRefreshTokensByUser(ctx, store.RevokeRefreshTokensByUserParams{
				RevokedAt: now,
				UserID:    userID,
			}); err != nil {
				return apperr.Internalf(err, "revoking refresh tokens")
			}
		}
		return nil
	})
}
