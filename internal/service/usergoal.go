// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/store"
)

// UserGoalService manages goals users author for themselves, a free-form
// variant of the shared template tree. Titles here are plain text, not
// bilingual, and rows belong to exactly one user.
type UserGoalService struct {
	db      *sql.DB
	queries *store.Queries
}

// NewUserGoalService creates a UserGoalService.
func NewUserGoalService(db *sql.DB) *UserGoalService {
	return &UserGoalService{db: db, queries: store.New(db)}
}

// CreateGoal creates a personal goal for a user.
func (s *UserGoalService) CreateGoal(ctx context.Context, userID int64, title, description string) (store.UserGoal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return store.UserGoal{}, apperr.Invalidf("title must not be empty")
	}
	if err := userExists(ctx, s.queries, userID); err != nil {
		return store.UserGoal{}, err
	}
	now := time.Now()
	goal, err := s.queries.CreateUserGoal(ctx, store.CreateUserGoalParams{
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return store.UserGoal{}, apperr.Internalf(err, "creating personal goal")
	}
	return goal, nil
}

// GetGoal fetches a personal goal by id, checking ownership.
func (s *UserGoalService) GetGoal(ctx context.Context, userID, id int64) (store.UserGoal, error) {
	goal, err := s.queries.GetUserGoalByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserGoal{}, apperr.NotFoundf("personal goal %d not found", id)
	}
	if err != nil {
		return store.UserGoal{}, apperr.Internalf(err, "loading personal goal")
	}
	if goal.UserID != userID {
		return store.UserGoal{}, apperr.NotFoundf("personal goal %d not found", id)
	}
	return goal, nil
}

// ListGoals returns a user's personal goals.
func (s *UserGoalService) ListGoals(ctx context.Context, userID int64) ([]store.UserGoal, error) {
	goals, err := s.queries.ListUserGoalsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing personal goals")
	}
	return goals, nil
}

// UpdateGoal edits a personal goal's title and description.
func (s *UserGoalService) UpdateGoal(ctx context.Context, userID, id int64, title, description string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperr.Invalidf("title must not be empty")
	}
	if _, err := s.GetGoal(ctx, userID, id); err != nil {
		return err
	}
	if err := s.queries.UpdateUserGoal(ctx, store.UpdateUserGoalParams{
		Title:       title,
		Description: description,
		UpdatedAt:   time.Now(),
		ID:          id,
	}); err != nil {
		return apperr.Internalf(err, "updating personal goal")
	}
	return nil
}

// CompleteGoal marks a personal goal completed. Completion is one-way.
func (s *UserGoalService) CompleteGoal(ctx context.Context, userID, id int64) error {
	goal, err := s.GetGoal(ctx, userID, id)
	if err != nil {
		return err
	}
	if goal.CompletedAt.Valid {
		return apperr.Conflictf("personal goal %d is already completed", id)
	}
	now := time.Now()
	if err := s.queries.CompleteUserGoal(ctx, store.CompleteUserAuthoredParams{
		CompletedAt: now,
		UpdatedAt:   now,
		ID:          id,
	}); err != nil {
		return apperr.Internalf(err, "completing personal goal")
	}
	return nil
}

// DeleteGoal removes a personal goal with all objectives, key results and
// initiatives under it.
func (s *UserGoalService) DeleteGoal(ctx context.Context, userID, id int64) error {
	if _, err := s.GetGoal(ctx, userID, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		objectives, err := q.ListUserObjectivesByUserGoal(ctx, id)
		if err != nil {
			return apperr.Internalf(err, "listing personal objectives")
		}
		for _, o := range objectives {
			if err := deleteUserObjectiveTree(ctx, q, o.ID); err != nil {
				return err
			}
		}
		if err := q.DeleteUserGoal(ctx, id); err != nil {
			return apperr.Internalf(err, "deleting personal goal")
		}
		return nil
	})
}

// CreateObjective creates a personal objective under a goal.
func (s *UserGoalService) CreateObjective(ctx context.Context, userID, userGoalID int64, title, description string) (store.UserObjective, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return store.UserObjective{}, apperr.Invalidf("title must not be empty")
	}
	if _, err := s.GetGoal(ctx, userID, userGoalID); err != nil {
		return store.UserObjective{}, err
	}
	now := time.Now()
	objective, err := s.queries.CreateUserObjective(ctx, store.CreateUserObjectiveParams{
		UserGoalID:  userGoalID,
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return store.UserObjective{}, apperr.Internalf(err, "creating personal objective")
	}
	return objective, nil
}

// GetObjective fetches a personal objective by id, checking ownership.
func (s *UserGoalService) GetObjective(ctx context.Context, userID, id int64) (store.UserObjective, error) {
	objective, err := s.queries.GetUserObjectiveByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserObjective{}, apperr.NotFoundf("personal objective %d not found", id)
	}
	if err != nil {
		return store.UserObjective{}, apperr.Internalf(err, "loading personal objective")
	}
	if objective.UserID != userID {
		return store.UserObjective{}, apperr.NotFoundf("personal objective %d not found", id)
	}
	return objective, nil
}

// ListObjectives returns the objectives under a personal goal.
func (s *UserGoalService) ListObjectives(ctx context.Context, userID, userGoalID int64) ([]store.UserObjective, error) {
	if _, err := s.GetGoal(ctx, userID, userGoalID); err != nil {
		return nil, err
	}
	objectives, err := s.queries.ListUserObjectivesByUserGoal(ctx, userGoalID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing personal objectives")
	}
	return objectives, nil
}

// CompleteObjective marks a personal objective completed.
func (s *UserGoalService) CompleteObjective(ctx context.Context, userID, id int64) error {
	objective, err := s.GetObjective(ctx, userID, id)
	if err != nil {
		return err
	}
	if objective.CompletedAt.Valid {
		return apperr.Conflictf("personal objective %d is already completed", id)
	}
	now := time.Now()
	if err := s.queries.CompleteUserObjective(ctx, store.CompleteUserAuthoredParams{
		CompletedAt: now,
		UpdatedAt:   now,
		ID:          id,
	}); err != nil {
		return apperr.Internalf(err, "completing personal objective")
	}
	return nil
}

// DeleteObjective removes a personal objective and everything under it.
func (s *UserGoalService) DeleteObjective(ctx context.Context, userID, id int64) error {
	if _, err := s.GetObjective(ctx, userID, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		return deleteUserObjectiveTree(ctx, q, id)
	})
}

// CreateKeyResult creates a personal key result under an objective. The
// target value must be positive.
func (s *UserGoalService) CreateKeyResult(ctx context.Context, userID, userObjectiveID int64, title string, targetValue float64, unit string) (store.UserKeyResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return store.UserKeyResult{}, apperr.Invalidf("title must not be empty")
	}
	if targetValue <= 0 {
		return store.UserKeyResult{}, apperr.Invalidf("target value must be positive")
	}
	if _, err := s.GetObjective(ctx, userID, userObjectiveID); err != nil {
		return store.UserKeyResult{}, err
	}
	now := time.Now()
	kr, err := s.queries.CreateUserKeyResult(ctx, store.CreateUserKeyResultParams{
		UserObjectiveID: userObjectiveID,
		UserID:          userID,
		Title:           title,
		TargetValue:     targetValue,
		Unit:            unit,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return store.UserKeyResult{}, apperr.Internalf(err, "creating personal key result")
	}
	return kr, nil
}

// GetKeyResult fetches a personal key result by id, checking ownership.
func (s *UserGoalService) GetKeyResult(ctx context.Context, userID, id int64) (store.UserKeyResult, error) {
	kr, err := s.queries.GetUserKeyResultByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserKeyResult{}, apperr.NotFoundf("personal key result %d not found", id)
	}
	if err != nil {
		return store.UserKeyResult{}, apperr.Internalf(err, "loading personal key result")
	}
	if kr.UserID != userID {
		return store.UserKeyResult{}, apperr.NotFoundf("personal key result %d not found", id)
	}
	return kr, nil
}

// ListKeyResults returns the key results under a personal objective.
func (s *UserGoalService) ListKeyResults(ctx context.Context, userID, userObjectiveID int64) ([]store.UserKeyResult, error) {
	if _, err := s.GetObjective(ctx, userID, userObjectiveID); err != nil {
		return nil, err
	}
	krs, err := s.queries.ListUserKeyResultsByUserObjective(ctx, userObjectiveID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing personal key results")
	}
	return krs, nil
}

// RecordProgress sets the current value of a personal key result.
func (s *UserGoalService) RecordProgress(ctx context.Context, userID, id int64, currentValue float64) error {
	if currentValue < 0 {
		return apperr.Invalidf("current value must not be negative")
	}
	if _, err := s.GetKeyResult(ctx, userID, id); err != nil {
		return err
	}
	if err := s.queries.UpdateUserKeyResultValue(ctx, store.UpdateUserKeyResultValueParams{
		CurrentValue: currentValue,
		UpdatedAt:    time.Now(),
		ID:           id,
	}); err != nil {
		return apperr.Internalf(err, "recording progress")
	}
	return nil
}

// CompleteKeyResult marks a personal key result completed.
func (s *UserGoalService) CompleteKeyResult(ctx context.Context, userID, id int64) error {
	kr, err := s.GetKeyResult(ctx, userID, id)
	if err != nil {
		return err
	}
	if kr.CompletedAt.Valid {
		return apperr.Conflictf("personal key result %d is already completed", id)
	}
	now := time.Now()
	if err := s.queries.CompleteUserKeyResult(ctx, store.CompleteUserAuthoredParams{
		CompletedAt: now,
		UpdatedAt:   now,
		ID:          id,
	}); err != nil {
		return apperr.Internalf(err, "completing personal key result")
	}
	return nil
}

// DeleteKeyResult removes a personal key result and its initiatives.
func (s *UserGoalService) DeleteKeyResult(ctx context.Context, userID, id int64) error {
	if _, err := s.GetKeyResult(ctx, userID, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		return deleteUserKeyResultTree(ctx, q, id)
	})
}

// CreateInitiative creates a personal initiative under a key result.
func (s *UserGoalService) CreateInitiative(ctx context.Context, userID, userKeyResultID int64, title, description string) (store.UserInitiative, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return store.UserInitiative{}, apperr.Invalidf("title must not be empty")
	}
	if _, err := s.GetKeyResult(ctx, userID, userKeyResultID); err != nil {
		return store.UserInitiative{}, err
	}
	now := time.Now()
	ini, err := s.queries.CreateUserInitiative(ctx, store.CreateUserInitiativeParams{
		UserKeyResultID: userKeyResultID,
		UserID:          userID,
		Title:           title,
		Description:     description,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return store.UserInitiative{}, apperr.Internalf(err, "creating personal initiative")
	}
	return ini, nil
}

// GetInitiative fetches a personal initiative by id, checking ownership.
func (s *UserGoalService) GetInitiative(ctx context.Context, userID, id int64) (store.UserInitiative, error) {
	ini, err := s.queries.GetUserInitiativeByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserInitiative{}, apperr.NotFoundf("personal initiative %d not found", id)
	}
	if err != nil {
		return store.UserInitiative{}, apperr.Internalf(err, "loading personal initiative")
	}
	if ini.UserID != userID {
		return store.UserInitiative{}, apperr.NotFoundf("personal initiative %d not found", id)
	}
	return ini, nil
}

// ListInitiatives returns the initiatives under a personal key result.
func (s *UserGoalService) ListInitiatives(ctx context.Context, userID, userKeyResultID int64) ([]store.UserInitiative, error) {
	if _, err := s.GetKeyResult(ctx, userID, userKeyResultID); err != nil {
		return nil, err
	}
	inis, err := s.queries.ListUserInitiativesByUserKeyResult(ctx, userKeyResultID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing personal initiatives")
	}
	return inis, nil
}

// CompleteInitiative marks a personal initiative completed.
func (s *UserGoalService) CompleteInitiative(ctx context.Context, userID, id int64) error {
	ini, err := s.GetInitiative(ctx, userID, id)
	if err != nil {
		return err
	}
	if ini.CompletedAt.Valid {
		return apperr.Conflictf("personal initiative %d is already completed", id)
	}
	now := time.Now()
	if err := s.queries.CompleteUserInitiative(ctx, store.CompleteUserAuthoredParams{
		CompletedAt: now,
		UpdatedAt:   now,
		ID:          id,
	}); err != nil {
		return apperr.Internalf(err, "completing personal initiative")
	}
	return nil
}

// DeleteInitiative removes a personal initiative.
func (s *UserGoalService) DeleteInitiative(ctx context.Context, userID, id int64) error {
	if _, err := s.GetInitiative(ctx, userID, id); err != nil {
		return err
	}
	if err := s.queries.DeleteUserInitiative(ctx, id); err != nil {
		return apperr.Internalf(err, "deleting personal initiative")
	}
	return nil
}

func deleteUserObjectiveTree(ctx context.Context, q *store.Queries, userObjectiveID int64) error {
	krs, err := q.ListUserKeyResultsByUserObjective(ctx, userObjectiveID)
	if err != nil {
		return apperr.Internalf(err, "listing personal key results")
	}
	for _, kr := range krs {
		if err := deleteUserKeyResultTree(ctx, q, kr.ID); err != nil {
			return err
		}
	}
	if err := q.DeleteUserObjective(ctx, userObjectiveID); err != nil {
		return apperr.Internalf(err, "deleting personal objective")
	}
	return nil
}

func deleteUserKeyResultTree(ctx context.Context, q *store.Queries, userKeyResultID int64) error {
	inis, err := q.ListUserInitiativesByUserKeyResult(ctx, userKeyResultID)
	if err != nil {
		return apperr.Internalf(err, "listing personal initiatives")
	}
	for _, ini := range inis {
		if err := q.DeleteUserInitiative(ctx, ini.ID); err != nil {
			return apperr.Internalf(err, "deleting personal initiative")
		}
	}
	if err := q.DeleteUserKeyResult(ctx, userKeyResultID); err != nil {
		return apperr.Internalf(err, "deleting personal key result")
	}
	return nil
}
