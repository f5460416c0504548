// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/groeiboek/internal/auth"
	"github.com/olegiv/groeiboek/internal/model"
)

// Default admin credentials
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrator"
)

// systemCategory describes a category that must exist and may not be deleted.
type systemCategory struct {
	number  int64
	titleNL string
	titleEN string
}

var systemCategories = []systemCategory{
	{1, "Persoonlijke groei", "Personal growth"},
	{2, "Gezondheid", "Health"},
	{3, "Werk en loopbaan", "Work and career"},
}

// Seed creates initial data in the database: the default admin account and
// the protected system categories.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	if err := seedAdmin(ctx, queries); err != nil {
		return err
	}
	return seedSystemCategories(ctx, queries)
}

func seedAdmin(ctx context.Context, queries *Queries) error {
	_, err := queries.GetUserByEmail(ctx, DefaultAdminEmail)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:     DefaultAdminEmail,
		Name:      DefaultAdminName,
		Status:    model.UserActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}
	if err := queries.UpsertCredential(ctx, UpsertCredentialParams{
		UserID:       user.ID,
		PasswordHash: passwordHash,
		UpdatedAt:    now,
	}); err != nil {
		return fmt.Errorf("creating admin credential: %w", err)
	}

	slog.Info("created default admin user",
		"id", user.ID,
		"email", user.Email,
		"password", DefaultAdminPassword,
	)
	return nil
}

func seedSystemCategories(ctx context.Context, queries *Queries) error {
	for _, sc := range systemCategories {
		_, err := queries.GetCategoryByNumber(ctx, sc.number)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking category %d: %w", sc.number, err)
		}

		now := time.Now()
		if _, err := queries.CreateCategory(ctx, CreateCategoryParams{
			CategoryNumber: sc.number,
			TitleNl:        sc.titleNL,
			TitleEn:        sc.titleEN,
			CreatedAt:      now,
			UpdatedAt:      now,
		}); err != nil {
			return fmt.Errorf("creating category %d: %w", sc.number, err)
		}
		slog.Info("created system category", "number", sc.number, "title", sc.titleEN)
	}

	// Keep the shared counter past the reserved numbers so later categories
	// never collide with the system ones.
	if err := queries.EnsureEntityNumberFloor(ctx, EnsureEntityNumberFloorParams{
		EntityType: model.EntityCategory,
		Floor:      int64(len(systemCategories)),
	}); err != nil {
		return fmt.Errorf("advancing category counter: %w", err)
	}
	return nil
}
