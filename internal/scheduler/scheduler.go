// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic database maintenance: purging expired
// refresh tokens, password resets, and unaccepted team invitations.
package scheduler

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/groeiboek/internal/store"
)

// Scheduler handles recurring maintenance jobs.
type Scheduler struct {
	queries *store.Queries
	cron    *cron.Cron
	logger  *slog.Logger
}

// New creates a scheduler instance.
func New(db *sql.DB, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		queries: store.New(db),
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start registers the maintenance jobs and begins the cron loop.
// Purges run hourly.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@hourly", func() {
		if err := s.Purge(context.Background()); err != nil {
			s.logger.Error("maintenance purge failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// Purge removes expired refresh tokens, password resets, and team
// invitations in one pass.
func (s *Scheduler) Purge(ctx context.Context) error {
	now := time.Now()

	tokens, err := s.queries.PurgeExpiredRefreshTokens(ctx, now)
	if err != nil {
		return err
	}
	resets, err := s.queries.PurgeExpiredPasswordResets(ctx, now)
	if err != nil {
		return err
	}
	invitations, err := s.queries.PurgeExpiredTeamInvitations(ctx, now)
	if err != nil {
		return err
	}

	if tokens+resets+invitations > 0 {
		s.logger.Info("purged expired records",
			"refresh_tokens", tokens,
			"password_resets", resets,
			"team_invitations", invitations)
	}
	return nil
}
