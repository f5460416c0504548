// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "groeiboek"

// Claims are the JWT claims carried by an access token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies short-lived access tokens and mints opaque
// refresh tokens. Refresh tokens are stored hashed; the raw value is handed
// to the client once and never written down.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenIssuer creates a TokenIssuer signing with HMAC-SHA256.
func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken signs an access token for the user.
func (ti *TokenIssuer) IssueAccessToken(userID int64, email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ti.accessTTL)

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing access token: %w", err)
	}
	return signed, expiresAt, nil
}

// VerifyAccessToken parses and validates an access token, returning the
// user id and email it was issued for.
func (ti *TokenIssuer) VerifyAccessToken(tokenString string) (int64, string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ti.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, "", fmt.Errorf("parsing access token: %w", err)
	}
	if !token.Valid {
		return 0, "", fmt.Errorf("invalid access token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parsing token subject: %w", err)
	}
	return userID, claims.Email, nil
}

// IssueRefreshToken mints an opaque refresh token. The first return value is
// the raw token for the client; the second is the hash to store.
func (ti *TokenIssuer) IssueRefreshToken() (raw, hash string, expiresAt time.Time) {
	raw = uuid.NewString() + uuid.NewString()
	return raw, HashRefreshToken(raw), time.Now().Add(ti.refreshTTL)
}

// HashRefreshToken returns the stored form of a refresh token.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
