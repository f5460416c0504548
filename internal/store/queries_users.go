// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createUser = `
INSERT INTO users (email, name, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, email, name, status, created_at, updated_at
`

// CreateUserParams holds parameters for CreateUser.
type CreateUserParams struct {
	Email     string
	Name      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUser inserts a new user.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, createUser,
		arg.Email, arg.Name, arg.Status, arg.CreatedAt, arg.UpdatedAt)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const getUserByID = `
SELECT id, email, name, status, created_at, updated_at FROM users WHERE id = ?
`

// GetUserByID fetches a user by id.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByID, id)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const getUserByEmail = `
SELECT id, email, name, status, created_at, updated_at FROM users WHERE email = ?
`

// GetUserByEmail fetches a user by email.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByEmail, email)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

const userExists = `
SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)
`

// UserExists reports whether a user row exists. This backs the cross-module
// existence check used by the OKR handlers.
func (q *Queries) UserExists(ctx context.Context, id int64) (bool, error) {
	row := q.db.QueryRowContext(ctx, userExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const updateUserStatus = `
UPDATE users SET status = ?, updated_at = ? WHERE id = ?
`

// UpdateUserStatusParams holds parameters for UpdateUserStatus.
type UpdateUserStatusParams struct {
	Status    string
	UpdatedAt time.Time
	ID        int64
}

// UpdateUserStatus updates a user's status.
func (q *Queries) UpdateUserStatus(ctx context.Context, arg UpdateUserStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateUserStatus, arg.Status, arg.UpdatedAt, arg.ID)
	return err
}

const upsertCredential = `
INSERT INTO credentials (user_id, password_hash, updated_at)
VALUES (?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET password_hash = excluded.password_hash, updated_at = excluded.updated_at
`

// UpsertCredentialParams holds parameters for UpsertCredential.
type UpsertCredentialParams struct {
	UserID       int64
	PasswordHash string
	UpdatedAt    time.Time
}

// UpsertCredential creates or replaces a user's credential row.
func (q *Queries) UpsertCredential(ctx context.Context, arg UpsertCredentialParams) error {
	_, err := q.db.ExecContext(ctx, upsertCredential, arg.UserID, arg.PasswordHash, arg.UpdatedAt)
	return err
}

const getCredentialByUserID = `
SELECT user_id, password_hash, updated_at FROM credentials WHERE user_id = ?
`

// GetCredentialByUserID fetches a user's credential row.
func (q *Queries) GetCredentialByUserID(ctx context.Context, userID int64) (Credential, error) {
	row := q.db.QueryRowContext(ctx, getCredentialByUserID, userID)
	var c Credential
	err := row.Scan(&c.UserID, &c.PasswordHash, &c.UpdatedAt)
	return c, err
}

const createRefreshToken = `
INSERT INTO refresh_tokens (user_id, token_hash, expires_at, created_at)
VALUES (?, ?, ?, ?)
RETURNING id, user_id, token_hash, expires_at, revoked_at, created_at
`

// CreateRefreshTokenParams holds parameters for CreateRefreshToken.
type CreateRefreshTokenParams struct {
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// CreateRefreshToken stores a new refresh token.
func (q *Queries) CreateRefreshToken(ctx context.Context, arg CreateRefreshTokenParams) (RefreshToken, error) {
	row := q.db.QueryRowContext(ctx, createRefreshToken,
		arg.UserID, arg.TokenHash, arg.ExpiresAt, arg.CreatedAt)
	var t RefreshToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.RevokedAt, &t.CreatedAt)
	return t, err
}

const getRefreshTokenByHash = `
SELECT id, user_id, token_hash, expires_at, revoked_at, created_at
FROM refresh_tokens WHERE token_hash = ?
`

// GetRefreshTokenByHash fetches a refresh token by its hash.
func (q *Queries) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (RefreshToken, error) {
	row := q.db.QueryRowContext(ctx, getRefreshTokenByHash, tokenHash)
	var t RefreshToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.RevokedAt, &t.CreatedAt)
	return t, err
}

const revokeRefreshToken = `
UPDATE refresh_tokens SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL
`

// RevokeRefreshTokenParams holds parameters for RevokeRefreshToken.
type RevokeRefreshTokenParams struct {
	RevokedAt time.Time
	ID        int64
}

// RevokeRefreshToken marks a refresh token revoked.
func (q *Queries) RevokeRefreshToken(ctx context.Context, arg RevokeRefreshTokenParams) error {
	_, err := q.db.ExecContext(ctx, revokeRefreshToken, arg.RevokedAt, arg.ID)
	return err
}

const revokeRefreshTokensByUser = `
UPDATE refresh_tokens SET revoked_at = ? WHERE user_id = ? AND revoked_at IS NULL
`

// RevokeRefreshTokensByUserParams holds parameters for RevokeRefreshTokensByUser.
type RevokeRefreshTokensByUserParams struct {
	RevokedAt time.Time
	UserID    int64
}

// RevokeRefreshTokensByUser revokes every live refresh token of a user.
func (q *Queries) RevokeRefreshTokensByUser(ctx context.Context, arg RevokeRefreshTokensByUserParams) error {
	_, err := q.db.ExecContext(ctx, revokeRefreshTokensByUser, arg.RevokedAt, arg.UserID)
	return err
}

const createPasswordReset = `
INSERT INTO password_resets (user_id, token_hash, expires_at, created_at)
VALUES (?, ?, ?, ?)
RETURNING id, user_id, token_hash, expires_at, used_at, created_at
`

// CreatePasswordResetParams holds parameters for CreatePasswordReset.
type CreatePasswordResetParams struct {
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// CreatePasswordReset stores a new password reset token.
func (q *Queries) CreatePasswordReset(ctx context.Context, arg CreatePasswordResetParams) (PasswordReset, error) {
	row := q.db.QueryRowContext(ctx, createPasswordReset,
		arg.UserID, arg.TokenHash, arg.ExpiresAt, arg.CreatedAt)
	var p PasswordReset
	err := row.Scan(&p.ID, &p.UserID, &p.TokenHash, &p.ExpiresAt, &p.UsedAt, &p.CreatedAt)
	return p, err
}

const getPasswordResetByHash = `
SELECT id, user_id, token_hash, expires_at, used_at, created_at
FROM password_resets WHERE token_hash = ?
`

// GetPasswordResetByHash fetches a password reset token by its hash.
func (q *Queries) GetPasswordResetByHash(ctx context.Context, tokenHash string) (PasswordReset, error) {
	row := q.db.QueryRowContext(ctx, getPasswordResetByHash, tokenHash)
	var p PasswordReset
	err := row.Scan(&p.ID, &p.UserID, &p.TokenHash, &p.ExpiresAt, &p.UsedAt, &p.CreatedAt)
	return p, err
}

const markPasswordResetUsed = `
UPDATE password_resets SET used_at = ? WHERE id = ? AND used_at IS NULL
`

// MarkPasswordResetUsedParams holds parameters for MarkPasswordResetUsed.
type MarkPasswordResetUsedParams struct {
	UsedAt time.Time
	ID     int64
}

// MarkPasswordResetUsed consumes a password reset token.
func (q *Queries) MarkPasswordResetUsed(ctx context.Context, arg MarkPasswordResetUsedParams) error {
	_, err := q.db.ExecContext(ctx, markPasswordResetUsed, arg.UsedAt, arg.ID)
	return err
}

const createAuditEvent = `
INSERT INTO audit_log (level, category, message, user_id, metadata, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, level, category, message, user_id, metadata, created_at
`

// CreateAuditEventParams holds parameters for CreateAuditEvent.
type CreateAuditEventParams struct {
	Level     string
	Category  string
	Message   string
	UserID    int64 // 0 means no user context
	Metadata  string
	CreatedAt time.Time
}

// CreateAuditEvent appends a row to the audit log.
func (q *Queries) CreateAuditEvent(ctx context.Context, arg CreateAuditEventParams) (AuditEvent, error) {
	var userID any
	if arg.UserID != 0 {
		userID = arg.UserID
	}
	row := q.db.QueryRowContext(ctx, createAuditEvent,
		arg.Level, arg.Category, arg.Message, userID, arg.Metadata, arg.CreatedAt)
	var e AuditEvent
	err := row.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.UserID, &e.Metadata, &e.CreatedAt)
	return e, err
}

const listAuditEvents = `
SELECT id, level, category, message, user_id, metadata, created_at
FROM audit_log ORDER BY id DESC LIMIT ? OFFSET ?
`

// ListAuditEventsParams holds parameters for ListAuditEvents.
type ListAuditEventsParams struct {
	Limit  int64
	Offset int64
}

// ListAuditEvents returns audit log rows, newest first.
func (q *Queries) ListAuditEvents(ctx context.Context, arg ListAuditEventsParams) ([]AuditEvent, error) {
	rows, err := q.db.QueryContext(ctx, listAuditEvents, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AuditEvent
	for rows.Next() {
		var e AuditEvent
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.UserID, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const purgeExpiredRefreshTokens = `
DELETE FROM refresh_tokens WHERE expires_at < ? OR revoked_at IS NOT NULL
`

// PurgeExpiredRefreshTokens deletes refresh tokens that are expired or
// revoked. Returns the number of rows removed.
func (q *Queries) PurgeExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, purgeExpiredRefreshTokens, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const purgeExpiredPasswordResets = `
DELETE FROM password_resets WHERE expires_at < ? OR used_at IS NOT NULL
`

// PurgeExpiredPasswordResets deletes password reset tokens that are expired
// or already used. Returns the number of rows removed.
func (q *Queries) PurgeExpiredPasswordResets(ctx context.Context, now time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, purgeExpiredPasswordResets, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
