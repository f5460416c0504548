// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// InstanceService manages per-user enrollments of the OKR template tree.
// Starts are idempotent find-or-creates keyed by the natural unique pair,
// completion is one-way, and deletes cascade down the instance tree
// including board entries and progress rows.
type InstanceService struct {
	db      *sql.DB
	queries *store.Queries
}

// NewInstanceService creates an InstanceService.
func NewInstanceService(db *sql.DB) *InstanceService {
	return &InstanceService{db: db, queries: store.New(db)}
}

func userExists(ctx context.Context, q *store.Queries, userID int64) error {
	_, err := q.GetUserByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFoundf("user %d not found", userID)
	}
	if err != nil {
		return apperr.Internalf(err, "loading user")
	}
	return nil
}

// StartGoal enrolls a user in a goal template. Starting the same goal twice
// returns the existing instance unchanged.
func (s *InstanceService) StartGoal(ctx context.Context, userID, goalID int64) (store.UserGoalInstance, error) {
	existing, err := s.queries.GetUserGoalInstanceByKey(ctx, store.GetUserGoalInstanceByKeyParams{
		UserID: userID,
		GoalID: goalID,
	})
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.UserGoalInstance{}, apperr.Internalf(err, "looking up goal instance")
	}

	if err := userExists(ctx, s.queries, userID); err != nil {
		return store.UserGoalInstance{}, err
	}
	if _, err := s.queries.GetGoalByID(ctx, goalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.UserGoalInstance{}, apperr.NotFoundf("goal %d not found", goalID)
		}
		return store.UserGoalInstance{}, apperr.Internalf(err, "loading goal")
	}

	var instance store.UserGoalInstance
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		instance, err = q.CreateUserGoalInstance(ctx, store.CreateUserGoalInstanceParams{
			UserID:    userID,
			GoalID:    goalID,
			StartedAt: time.Now(),
		})
		if err != nil {
			return apperr.Internalf(err, "creating goal instance")
		}
		return addKanbanTolerant(ctx, q, userID, model.ItemGoal, instance.ID)
	})
	return instance, err
}

// StartObjective enrolls a user in an objective template.
func (s *InstanceService) StartObjective(ctx context.Context, userID, objectiveID int64) (store.UserObjectiveInstance, error) {
	existing, err := s.queries.GetUserObjectiveInstanceByKey(ctx, store.GetUserObjectiveInstanceByKeyParams{
		UserID:      userID,
		ObjectiveID: objectiveID,
	})
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.UserObjectiveInstance{}, apperr.Internalf(err, "looking up objective instance")
	}

	if err := userExists(ctx, s.queries, userID); err != nil {
		return store.UserObjectiveInstance{}, err
	}
	if _, err := s.queries.GetObjectiveByID(ctx, objectiveID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.UserObjectiveInstance{}, apperr.NotFoundf("objective %d not found", objectiveID)
		}
		return store.UserObjectiveInstance{}, apperr.Internalf(err, "loading objective")
	}

	var instance store.UserObjectiveInstance
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		instance, err = q.CreateUserObjectiveInstance(ctx, store.CreateUserObjectiveInstanceParams{
			UserID:      userID,
			ObjectiveID: objectiveID,
			StartedAt:   time.Now(),
		})
		if err != nil {
			return apperr.Internalf(err, "creating objective instance")
		}
		return addKanbanTolerant(ctx, q, userID, model.ItemObjective, instance.ID)
	})
	return instance, err
}

// StartKeyResult enrolls the owner of an objective instance in one of its
// key results. The parent instance must exist first.
func (s *InstanceService) StartKeyResult(ctx context.Context, userObjectiveInstanceID, keyResultID int64) (store.UserKeyResultInstance, error) {
	existing, err := s.queries.GetUserKeyResultInstanceByKey(ctx, store.GetUserKeyResultInstanceByKeyParams{
		UserObjectiveInstanceID: userObjectiveInstanceID,
		KeyResultID:             keyResultID,
	})
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.UserKeyResultInstance{}, apperr.Internalf(err, "looking up key result instance")
	}

	parent, err := s.queries.GetUserObjectiveInstanceByID(ctx, userObjectiveInstanceID)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserKeyResultInstance{}, apperr.NotFoundf("objective instance %d not found", userObjectiveInstanceID)
	}
	if err != nil {
		return store.UserKeyResultInstance{}, apperr.Internalf(err, "loading objective instance")
	}
	if _, err := s.queries.GetKeyResultByID(ctx, keyResultID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.UserKeyResultInstance{}, apperr.NotFoundf("key result %d not found", keyResultID)
		}
		return store.UserKeyResultInstance{}, apperr.Internalf(err, "loading key result")
	}

	var instance store.UserKeyResultInstance
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		instance, err = q.CreateUserKeyResultInstance(ctx, store.CreateUserKeyResultInstanceParams{
			UserObjectiveInstanceID: userObjectiveInstanceID,
			KeyResultID:             keyResultID,
			StartedAt:               time.Now(),
		})
		if err != nil {
			return apperr.Internalf(err, "creating key result instance")
		}
		return addKanbanTolerant(ctx, q, parent.UserID, model.ItemKeyResult, instance.ID)
	})
	return instance, err
}

// StartInitiative enrolls the owner of a key result instance in one of its
// initiatives.
func (s *InstanceService) StartInitiative(ctx context.Context, userKeyResultInstanceID, initiativeID int64) (store.UserInitiativeInstance, error) {
	existing, err := s.queries.GetUserInitiativeInstanceByKey(ctx, store.GetUserInitiativeInstanceByKeyParams{
		UserKeyResultInstanceID: userKeyResultInstanceID,
		InitiativeID:            initiativeID,
	})
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.UserInitiativeInstance{}, apperr.Internalf(err, "looking up initiative instance")
	}

	parent, err := s.queries.GetUserKeyResultInstanceByID(ctx, userKeyResultInstanceID)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserInitiativeInstance{}, apperr.NotFoundf("key result instance %d not found", userKeyResultInstanceID)
	}
	if err != nil {
		return store.UserInitiativeInstance{}, apperr.Internalf(err, "loading key result instance")
	}
	ownerID, err := instanceOwner(ctx, s.queries, parent.UserObjectiveInstanceID)
	if err != nil {
		return store.UserInitiativeInstance{}, err
	}
	if _, err := s.queries.GetInitiativeByID(ctx, initiativeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.UserInitiativeInstance{}, apperr.NotFoundf("initiative %d not found", initiativeID)
		}
		return store.UserInitiativeInstance{}, apperr.Internalf(err, "loading initiative")
	}

	var instance store.UserInitiativeInstance
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		instance, err = q.CreateUserInitiativeInstance(ctx, store.CreateUserInitiativeInstanceParams{
			UserKeyResultInstanceID: userKeyResultInstanceID,
			InitiativeID:            initiativeID,
			StartedAt:               time.Now(),
		})
		if err != nil {
			return apperr.Internalf(err, "creating initiative instance")
		}
		return addKanbanTolerant(ctx, q, ownerID, model.ItemInitiative, instance.ID)
	})
	return instance, err
}

// CompleteGoal marks a goal instance completed. Completion is one-way.
func (s *InstanceService) CompleteGoal(ctx context.Context, id int64) error {
	instance, err := s.GetGoalInstance(ctx, id)
	if err != nil {
		return err
	}
	if instance.CompletedAt.Valid {
		return apperr.Conflictf("goal instance %d is already completed", id)
	}
	if err := s.queries.CompleteUserGoalInstance(ctx, store.CompleteInstanceParams{
		CompletedAt: time.Now(),
		ID:          id,
	}); err != nil {
		return apperr.Internalf(err, "completing goal instance")
	}
	return nil
}

// CompleteObjective marks an objective instance completed.
func (s *InstanceService) CompleteObjective(ctx context.Context, id int64) error {
	instance, err := s.GetObjectiveInstance(ctx, id)
	if err != nil {
		return err
	}
	if instance.CompletedAt.Valid {
		return apperr.Conflictf("objective instance %d is already completed", id)
	}
	if err := s.queries.CompleteUserObjectiveInstance(ctx, store.CompleteInstanceParams{
		CompletedAt: time.Now(),
		ID:          id,
	}); err != nil {
		return apperr.Internalf(err, "completing objective instance")
	}
	return nil
}

// CompleteKeyResult marks a key result instance completed.
func (s *InstanceService) CompleteKeyResult(ctx context.Context, id int64) error {
	instance, err := s.GetKeyResultInstance(ctx, id)
	if err != nil {
		return err
	}
	if instance.CompletedAt.Valid {
		return apperr.Conflictf("key result instance %d is already completed", id)
	}
	if err := s.queries.CompleteUserKeyResultInstance(ctx, store.CompleteInstanceParams{
		CompletedAt: time.Now(),
		ID:          id,
	}); err != nil {
		return apperr.Internalf(err, "completing key result instance")
	}
	return nil
}

// CompleteInitiative marks an initiative instance completed.
func (s *InstanceService) CompleteInitiative(ctx context.Context, id int64) error {
	instance, err := s.GetInitiativeInstance(ctx, id)
	if err != nil {
		return err
	}
	if instance.CompletedAt.Valid {
		return apperr.Conflictf("initiative instance %d is already completed", id)
	}
	if err := s.queries.CompleteUserInitiativeInstance(ctx, store.CompleteInstanceParams{
		CompletedAt: time.Now(),
		ID:          id,
	}); err != nil {
		return apperr.Internalf(err, "completing initiative instance")
	}
	return nil
}

// GetGoalInstance fetches a goal instance by id.
func (s *InstanceService) GetGoalInstance(ctx context.Context, id int64) (store.UserGoalInstance, error) {
	instance, err := s.queries.GetUserGoalInstanceByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserGoalInstance{}, apperr.NotFoundf("goal instance %d not found", id)
	}
	if err != nil {
		return store.UserGoalInstance{}, apperr.Internalf(err, "loading goal instance")
	}
	return instance, nil
}

// GetObjectiveInstance fetches an objective instance by id.
func (s *InstanceService) GetObjectiveInstance(ctx context.Context, id int64) (store.UserObjectiveInstance, error) {
	instance, err := s.queries.GetUserObjectiveInstanceByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserObjectiveInstance{}, apperr.NotFoundf("objective instance %d not found", id)
	}
	if err != nil {
		return store.UserObjectiveInstance{}, apperr.Internalf(err, "loading objective instance")
	}
	return instance, nil
}

// GetKeyResultInstance fetches a key result instance by id.
func (s *InstanceService) GetKeyResultInstance(ctx context.Context, id int64) (store.UserKeyResultInstance, error) {
	instance, err := s.queries.GetUserKeyResultInstanceByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserKeyResultInstance{}, apperr.NotFoundf("key result instance %d not found", id)
	}
	if err != nil {
		return store.UserKeyResultInstance{}, apperr.Internalf(err, "loading key result instance")
	}
	return instance, nil
}

// GetInitiativeInstance fetches an initiative instance by id.
func (s *InstanceService) GetInitiativeInstance(ctx context.Context, id int64) (store.UserInitiativeInstance, error) {
	instance, err := s.queries.GetUserInitiativeInstanceByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.UserInitiativeInstance{}, apperr.NotFoundf("initiative instance %d not found", id)
	}
	if err != nil {
		return store.UserInitiativeInstance{}, apperr.Internalf(err, "loading initiative instance")
	}
	return instance, nil
}

// ListGoalInstances returns a user's goal enrollments.
func (s *InstanceService) ListGoalInstances(ctx context.Context, userID int64) ([]store.UserGoalInstance, error) {
	instances, err := s.queries.ListUserGoalInstancesByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing goal instances")
	}
	return instances, nil
}

// ListObjectiveInstances returns a user's objective enrollments.
func (s *InstanceService) ListObjectiveInstances(ctx context.Context, userID int64) ([]store.UserObjectiveInstance, error) {
	instances, err := s.queries.ListUserObjectiveInstancesByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing objective instances")
	}
	return instances, nil
}

// ListKeyResultInstances returns the key result enrollments under an
// objective instance.
func (s *InstanceService) ListKeyResultInstances(ctx context.Context, userObjectiveInstanceID int64) ([]store.UserKeyResultInstance, error) {
	instances, err := s.queries.ListUserKeyResultInstancesByObjectiveInstance(ctx, userObjectiveInstanceID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing key result instances")
	}
	return instances, nil
}

// ListInitiativeInstances returns the initiative enrollments under a key
// result instance.
func (s *InstanceService) ListInitiativeInstances(ctx context.Context, userKeyResultInstanceID int64) ([]store.UserInitiativeInstance, error) {
	instances, err := s.queries.ListUserInitiativeInstancesByKeyResultInstance(ctx, userKeyResultInstanceID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing initiative instances")
	}
	return instances, nil
}

// SetKeyResultProgress records the current value for a key result within an
// objective instance. One row per pair, updated in place.
func (s *InstanceService) SetKeyResultProgress(ctx context.Context, keyResultID, userObjectiveInstanceID int64, currentValue float64) (store.KeyResultProgress, error) {
	if currentValue < 0 {
		return store.KeyResultProgress{}, apperr.Invalidf("current value must not be negative")
	}
	if _, err := s.GetObjectiveInstance(ctx, userObjectiveInstanceID); err != nil {
		return store.KeyResultProgress{}, err
	}
	if _, err := s.queries.GetKeyResultByID(ctx, keyResultID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.KeyResultProgress{}, apperr.NotFoundf("key result %d not found", keyResultID)
		}
		return store.KeyResultProgress{}, apperr.Internalf(err, "loading key result")
	}
	progress, err := s.queries.UpsertKeyResultProgress(ctx, store.UpsertKeyResultProgressParams{
		KeyResultID:             keyResultID,
		UserObjectiveInstanceID: userObjectiveInstanceID,
		CurrentValue:            currentValue,
		UpdatedAt:               time.Now(),
	})
	if err != nil {
		return store.KeyResultProgress{}, apperr.Internalf(err, "saving progress")
	}
	return progress, nil
}

// GetKeyResultProgress returns the recorded value for a pair, if any.
func (s *InstanceService) GetKeyResultProgress(ctx context.Context, keyResultID, userObjectiveInstanceID int64) (store.KeyResultProgress, error) {
	progress, err := s.queries.GetKeyResultProgress(ctx, store.GetKeyResultProgressParams{
		KeyResultID:             keyResultID,
		UserObjectiveInstanceID: userObjectiveInstanceID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return store.KeyResultProgress{}, apperr.NotFoundf("no progress recorded")
	}
	if err != nil {
		return store.KeyResultProgress{}, apperr.Internalf(err, "loading progress")
	}
	return progress, nil
}

// DeleteGoalInstance removes a goal enrollment and the user's whole
// enrollment subtree under that goal's objectives, board entries included.
func (s *InstanceService) DeleteGoalInstance(ctx context.Context, id int64) error {
	instance, err := s.GetGoalInstance(ctx, id)
	if err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		objectives, err := q.ListObjectivesByGoal(ctx, instance.GoalID)
		if err != nil {
			return apperr.Internalf(err, "listing objectives")
		}
		for _, o := range objectives {
			oi, err := q.GetUserObjectiveInstanceByKey(ctx, store.GetUserObjectiveInstanceByKeyParams{
				UserID:      instance.UserID,
				ObjectiveID: o.ID,
			})
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			if err != nil {
				return apperr.Internalf(err, "loading objective instance")
			}
			if err := deleteObjectiveInstanceTree(ctx, q, oi); err != nil {
				return err
			}
		}
		if err := detachKanban(ctx, q, instance.UserID, model.ItemGoal, instance.ID); err != nil {
			return err
		}
		if err := q.DeleteUserGoalInstance(ctx, id); err != nil {
			return apperr.Internalf(err, "deleting goal instance")
		}
		return nil
	})
}

// DeleteObjectiveInstance removes an objective enrollment and its key result
// and initiative enrollments, progress rows and board entries.
func (s *InstanceService) DeleteObjectiveInstance(ctx context.Context, id int64) error {
	instance, err := s.GetObjectiveInstance(ctx, id)
	if err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		return deleteObjectiveInstanceTree(ctx, q, instance)
	})
}

// DeleteKeyResultInstance removes a key result enrollment with its
// initiative enrollments. A custom key result template orphaned by the
// removal is cleaned up too.
func (s *InstanceService) DeleteKeyResultInstance(ctx context.Context, id int64) error {
	instance, err := s.GetKeyResultInstance(ctx, id)
	if err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		ownerID, err := instanceOwner(ctx, q, instance.UserObjectiveInstanceID)
		if err != nil {
			return err
		}
		return deleteKeyResultInstanceTree(ctx, q, instance, ownerID)
	})
}

// DeleteInitiativeInstance removes an initiative enrollment and its board
// entry, cleaning up an orphaned custom initiative template.
func (s *InstanceService) DeleteInitiativeInstance(ctx context.Context, id int64) error {
	instance, err := s.GetInitiativeInstance(ctx, id)
	if err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		parent, err := q.GetUserKeyResultInstanceByID(ctx, instance.UserKeyResultInstanceID)
		if err != nil {
			return apperr.Internalf(err, "loading key result instance")
		}
		ownerID, err := instanceOwner(ctx, q, parent.UserObjectiveInstanceID)
		if err != nil {
			return err
		}
		return deleteInitiativeInstanceLeaf(ctx, q, instance, ownerID)
	})
}

func deleteObjectiveInstanceTree(ctx context.Context, q *store.Queries, instance store.UserObjectiveInstance) error {
	krInstances, err := q.ListUserKeyResultInstancesByObjectiveInstance(ctx, instance.ID)
	if err != nil {
		return apperr.Internalf(err, "listing key result instances")
	}
	for _, ki := range krInstances {
		if err := deleteKeyResultInstanceTree(ctx, q, ki, instance.UserID); err != nil {
			return err
		}
	}

	// Progress rows not covered by pair deletions above.
	if err := q.DeleteKeyResultProgressByObjectiveInstance(ctx, instance.ID); err != nil {
		return apperr.Internalf(err, "deleting progress rows")
	}
	if err := detachKanban(ctx, q, instance.UserID, model.ItemObjective, instance.ID); err != nil {
		return err
	}
	if err := q.DeleteUserObjectiveInstance(ctx, instance.ID); err != nil {
		return apperr.Internalf(err, "deleting objective instance")
	}
	return nil
}

func deleteKeyResultInstanceTree(ctx context.Context, q *store.Queries, instance store.UserKeyResultInstance, ownerID int64) error {
	iniInstances, err := q.ListUserInitiativeInstancesByKeyResultInstance(ctx, instance.ID)
	if err != nil {
		return apperr.Internalf(err, "listing initiative instances")
	}
	for _, ii := range iniInstances {
		if err := deleteInitiativeInstanceLeaf(ctx, q, ii, ownerID); err != nil {
			return err
		}
	}

	if err := q.DeleteKeyResultProgressByPair(ctx, store.DeleteKeyResultProgressByPairParams{
		KeyResultID:             instance.KeyResultID,
		UserObjectiveInstanceID: instance.UserObjectiveInstanceID,
	}); err != nil {
		return apperr.Internalf(err, "deleting progress row")
	}
	if err := detachKanban(ctx, q, ownerID, model.ItemKeyResult, instance.ID); err != nil {
		return err
	}
	if err := q.DeleteUserKeyResultInstance(ctx, instance.ID); err != nil {
		return apperr.Internalf(err, "deleting key result instance")
	}
	return cleanupOrphanKeyResult(ctx, q, instance.KeyResultID)
}

func deleteInitiativeInstanceLeaf(ctx context.Context, q *store.Queries, instance store.UserInitiativeInstance, ownerID int64) error {
	if err := detachKanban(ctx, q, ownerID, model.ItemInitiative, instance.ID); err != nil {
		return err
	}
	if err := q.DeleteUserInitiativeInstance(ctx, instance.ID); err != nil {
		return apperr.Internalf(err, "deleting initiative instance")
	}
	return cleanupOrphanInitiative(ctx, q, instance.InitiativeID)
}

// cleanupOrphanKeyResult removes a user-created key result template once no
// instance references it. Reference counting is re-derived by count, not
// stored.
func cleanupOrphanKeyResult(ctx context.Context, q *store.Queries, keyResultID int64) error {
	kr, err := q.GetKeyResultByID(ctx, keyResultID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return apperr.Internalf(err, "loading key result")
	}
	if !kr.CreatedByUserID.Valid {
		return nil
	}
	n, err := q.CountUserKeyResultInstancesByKeyResult(ctx, keyResultID)
	if err != nil {
		return apperr.Internalf(err, "counting key result instances")
	}
	if n > 0 {
		return nil
	}
	return deleteKeyResultTree(ctx, q, keyResultID)
}

func cleanupOrphanInitiative(ctx context.Context, q *store.Queries, initiativeID int64) error {
	ini, err := q.GetInitiativeByID(ctx, initiativeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return apperr.Internalf(err, "loading initiative")
	}
	if !ini.CreatedByUserID.Valid {
		return nil
	}
	n, err := q.CountUserInitiativeInstancesByInitiative(ctx, initiativeID)
	if err != nil {
		return apperr.Internalf(err, "counting initiative instances")
	}
	if n > 0 {
		return nil
	}
	return deleteInitiativeTree(ctx, q, initiativeID)
}
