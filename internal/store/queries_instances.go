// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createUserGoalInstance = `
INSERT INTO user_goal_instances (user_id, goal_id, started_at)
VALUES (?, ?, ?)
RETURNING id, user_id, goal_id, started_at, completed_at
`

// CreateUserGoalInstanceParams holds parameters for CreateUserGoalInstance.
type CreateUserGoalInstanceParams struct {
	UserID    int64
	GoalID    int64
	StartedAt time.Time
}

// CreateUserGoalInstance inserts a goal enrollment.
func (q *Queries) CreateUserGoalInstance(ctx context.Context, arg CreateUserGoalInstanceParams) (UserGoalInstance, error) {
	row := q.db.QueryRowContext(ctx, createUserGoalInstance, arg.UserID, arg.GoalID, arg.StartedAt)
	var i UserGoalInstance
	err := row.Scan(&i.ID, &i.UserID, &i.GoalID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const getUserGoalInstanceByID = `
SELECT id, user_id, goal_id, started_at, completed_at FROM user_goal_instances WHERE id = ?
`

// GetUserGoalInstanceByID fetches a goal instance by id.
func (q *Queries) GetUserGoalInstanceByID(ctx context.Context, id int64) (UserGoalInstance, error) {
	row := q.db.QueryRowContext(ctx, getUserGoalInstanceByID, id)
	var i UserGoalInstance
	err := row.Scan(&i.ID, &i.UserID, &i.GoalID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const getUserGoalInstanceByKey = `
SELECT id, user_id, goal_id, started_at, completed_at
FROM user_goal_instances WHERE user_id = ? AND goal_id = ?
`

// GetUserGoalInstanceByKeyParams holds parameters for GetUserGoalInstanceByKey.
type GetUserGoalInstanceByKeyParams struct {
	UserID int64
	GoalID int64
}

// GetUserGoalInstanceByKey fetches a goal instance by its natural key.
func (q *Queries) GetUserGoalInstanceByKey(ctx context.Context, arg GetUserGoalInstanceByKeyParams) (UserGoalInstance, error) {
	row := q.db.QueryRowContext(ctx, getUserGoalInstanceByKey, arg.UserID, arg.GoalID)
	var i UserGoalInstance
	err := row.Scan(&i.ID, &i.UserID, &i.GoalID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const listUserGoalInstancesByUser = `
SELECT id, user_id, goal_id, started_at, completed_at
FROM user_goal_instances WHERE user_id = ? ORDER BY started_at
`

// ListUserGoalInstancesByUser returns a user's goal enrollments.
func (q *Queries) ListUserGoalInstancesByUser(ctx context.Context, userID int64) ([]UserGoalInstance, error) {
	rows, err := q.db.QueryContext(ctx, listUserGoalInstancesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserGoalInstance
	for rows.Next() {
		var i UserGoalInstance
		if err := rows.Scan(&i.ID, &i.UserID, &i.GoalID, &i.StartedAt, &i.CompletedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listUserGoalInstancesByGoal = `
SELECT id, user_id, goal_id, started_at, completed_at
FROM user_goal_instances WHERE goal_id = ?
`

// ListUserGoalInstancesByGoal returns every enrollment of a goal across users.
func (q *Queries) ListUserGoalInstancesByGoal(ctx context.Context, goalID int64) ([]UserGoalInstance, error) {
	rows, err := q.db.QueryContext(ctx, listUserGoalInstancesByGoal, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserGoalInstance
	for rows.Next() {
		var i UserGoalInstance
		if err := rows.Scan(&i.ID, &i.UserID, &i.GoalID, &i.StartedAt, &i.CompletedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const completeUserGoalInstance = `
UPDATE user_goal_instances SET completed_at = ? WHERE id = ?
`

// CompleteInstanceParams holds parameters for the CompleteXxxInstance queries.
type CompleteInstanceParams struct {
	CompletedAt time.Time
	ID          int64
}

// CompleteUserGoalInstance marks a goal instance completed.
func (q *Queries) CompleteUserGoalInstance(ctx context.Context, arg CompleteInstanceParams) error {
	_, err := q.db.ExecContext(ctx, completeUserGoalInstance, arg.CompletedAt, arg.ID)
	return err
}

const deleteUserGoalInstance = `
DELETE FROM user_goal_instances WHERE id = ?
`

// DeleteUserGoalInstance removes a goal instance row.
func (q *Queries) DeleteUserGoalInstance(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUserGoalInstance, id)
	return err
}

const createUserObjectiveInstance = `
INSERT INTO user_objective_instances (user_id, objective_id, started_at)
VALUES (?, ?, ?)
RETURNING id, user_id, objective_id, started_at, completed_at
`

// CreateUserObjectiveInstanceParams holds parameters for CreateUserObjectiveInstance.
type CreateUserObjectiveInstanceParams struct {
	UserID      int64
	ObjectiveID int64
	StartedAt   time.Time
}

// CreateUserObjectiveInstance inserts an objective enrollment.
func (q *Queries) CreateUserObjectiveInstance(ctx context.Context, arg CreateUserObjectiveInstanceParams) (UserObjectiveInstance, error) {
	row := q.db.QueryRowContext(ctx, createUserObjectiveInstance, arg.UserID, arg.ObjectiveID, arg.StartedAt)
	var i UserObjectiveInstance
	err := row.Scan(&i.ID, &i.UserID, &i.ObjectiveID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const getUserObjectiveInstanceByID = `
SELECT id, user_id, objective_id, started_at, completed_at FROM user_objective_instances WHERE id = ?
`

// GetUserObjectiveInstanceByID fetches an objective instance by id.
func (q *Queries) GetUserObjectiveInstanceByID(ctx context.Context, id int64) (UserObjectiveInstance, error) {
	row := q.db.QueryRowContext(ctx, getUserObjectiveInstanceByID, id)
	var i UserObjectiveInstance
	err := row.Scan(&i.ID, &i.UserID, &i.ObjectiveID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const getUserObjectiveInstanceByKey = `
SELECT id, user_id, objective_id, started_at, completed_at
FROM user_objective_instances WHERE user_id = ? AND objective_id = ?
`

// GetUserObjectiveInstanceByKeyParams holds parameters for GetUserObjectiveInstanceByKey.
type GetUserObjectiveInstanceByKeyParams struct {
	UserID      int64
	ObjectiveID int64
}

// GetUserObjectiveInstanceByKey fetches an objective instance by its natural key.
func (q *Queries) GetUserObjectiveInstanceByKey(ctx context.Context, arg GetUserObjectiveInstanceByKeyParams) (UserObjectiveInstance, error) {
	row := q.db.QueryRowContext(ctx, getUserObjectiveInstanceByKey, arg.UserID, arg.ObjectiveID)
	var i UserObjectiveInstance
	err := row.Scan(&i.ID, &i.UserID, &i.ObjectiveID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const countUserGoalInstancesByGoal = `
SELECT COUNT(*) FROM user_goal_instances WHERE goal_id = ?
`

// CountUserGoalInstancesByGoal counts enrollments still pointing at a goal
// template.
func (q *Queries) CountUserGoalInstancesByGoal(ctx context.Context, goalID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUserGoalInstancesByGoal, goalID)
	var n int64
	err := row.Scan(&n)
	return n, err
}

const listUserObjectiveInstancesByObjective = `
SELECT id, user_id, objective_id, started_at, completed_at
FROM user_objective_instances WHERE objective_id = ?
`

// ListUserObjectiveInstancesByObjective returns every enrollment of an objective.
func (q *Queries) ListUserObjectiveInstancesByObjective(ctx context.Context, objectiveID int64) ([]UserObjectiveInstance, error) {
	return q.scanObjectiveInstances(ctx, listUserObjectiveInstancesByObjective, objectiveID)
}

const countUserObjectiveInstancesByObjective = `
SELECT COUNT(*) FROM user_objective_instances WHERE objective_id = ?
`

// CountUserObjectiveInstancesByObjective counts enrollments still pointing at
// an objective template.
func (q *Queries) CountUserObjectiveInstancesByObjective(ctx context.Context, objectiveID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUserObjectiveInstancesByObjective, objectiveID)
	var n int64
	err := row.Scan(&n)
	return n, err
}

const listUserObjectiveInstancesByUser = `
SELECT id, user_id, objective_id, started_at, completed_at
FROM user_objective_instances WHERE user_id = ? ORDER BY started_at
`

// ListUserObjectiveInstancesByUser returns a user's objective enrollments.
func (q *Queries) ListUserObjectiveInstancesByUser(ctx context.Context, userID int64) ([]UserObjectiveInstance, error) {
	return q.scanObjectiveInstances(ctx, listUserObjectiveInstancesByUser, userID)
}

func (q *Queries) scanObjectiveInstances(ctx context.Context, query string, arg int64) ([]UserObjectiveInstance, error) {
	rows, err := q.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserObjectiveInstance
	for rows.Next() {
		var i UserObjectiveInstance
		if err := rows.Scan(&i.ID, &i.UserID, &i.ObjectiveID, &i.StartedAt, &i.CompletedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const completeUserObjectiveInstance = `
UPDATE user_objective_instances SET completed_at = ? WHERE id = ?
`

// CompleteUserObjectiveInstance marks an objective instance completed.
func (q *Queries) CompleteUserObjectiveInstance(ctx context.Context, arg CompleteInstanceParams) error {
	_, err := q.db.ExecContext(ctx, completeUserObjectiveInstance, arg.CompletedAt, arg.ID)
	return err
}

const deleteUserObjectiveInstance = `
DELETE FROM user_objective_instances WHERE id = ?
`

// DeleteUserObjectiveInstance removes an objective instance row.
func (q *Queries) DeleteUserObjectiveInstance(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUserObjectiveInstance, id)
	return err
}

const createUserKeyResultInstance = `
INSERT INTO user_key_result_instances (user_objective_instance_id, key_result_id, started_at)
VALUES (?, ?, ?)
RETURNING id, user_objective_instance_id, key_result_id, started_at, completed_at
`

// CreateUserKeyResultInstanceParams holds parameters for CreateUserKeyResultInstance.
type CreateUserKeyResultInstanceParams struct {
	UserObjectiveInstanceID int64
	KeyResultID             int64
	StartedAt               time.Time
}

// CreateUserKeyResultInstance inserts a key result enrollment.
func (q *Queries) CreateUserKeyResultInstance(ctx context.Context, arg CreateUserKeyResultInstanceParams) (UserKeyResultInstance, error) {
	row := q.db.QueryRowContext(ctx, createUserKeyResultInstance,
		arg.UserObjectiveInstanceID, arg.KeyResultID, arg.StartedAt)
	var i UserKeyResultInstance
	err := row.Scan(&i.ID, &i.UserObjectiveInstanceID, &i.KeyResultID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const getUserKeyResultInstanceByID = `
SELECT id, user_objective_instance_id, key_result_id, started_at, completed_at
FROM user_key_result_instances WHERE id = ?
`

// GetUserKeyResultInstanceByID fetches a key result instance by id.
func (q *Queries) GetUserKeyResultInstanceByID(ctx context.Context, id int64) (UserKeyResultInstance, error) {
	row := q.db.QueryRowContext(ctx, getUserKeyResultInstanceByID, id)
	var i UserKeyResultInstance
	err := row.Scan(&i.ID, &i.UserObjectiveInstanceID, &i.KeyResultID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const getUserKeyResultInstanceByKey = `
SELECT id, user_objective_instance_id, key_result_id, started_at, completed_at
FROM user_key_result_instances WHERE user_objective_instance_id = ? AND key_result_id = ?
`

// GetUserKeyResultInstanceByKeyParams holds parameters for GetUserKeyResultInstanceByKey.
type GetUserKeyResultInstanceByKeyParams struct {
	UserObjectiveInstanceID int64
	KeyResultID             int64
}

// GetUserKeyResultInstanceByKey fetches a key result instance by its natural key.
func (q *Queries) GetUserKeyResultInstanceByKey(ctx context.Context, arg GetUserKeyResultInstanceByKeyParams) (UserKeyResultInstance, error) {
	row := q.db.QueryRowContext(ctx, getUserKeyResultInstanceByKey,
		arg.UserObjectiveInstanceID, arg.KeyResultID)
	var i UserKeyResultInstance
	err := row.Scan(&i.ID, &i.UserObjectiveInstanceID, &i.KeyResultID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const listUserKeyResultInstancesByObjectiveInstance = `
SELECT id, user_objective_instance_id, key_result_id, started_at, completed_at
FROM user_key_result_instances WHERE user_objective_instance_id = ?
`

// ListUserKeyResultInstancesByObjectiveInstance returns the key result
// instances under an objective instance.
func (q *Queries) ListUserKeyResultInstancesByObjectiveInstance(ctx context.Context, userObjectiveInstanceID int64) ([]UserKeyResultInstance, error) {
	return q.scanKeyResultInstances(ctx, listUserKeyResultInstancesByObjectiveInstance, userObjectiveInstanceID)
}

const listUserKeyResultInstancesByKeyResult = `
SELECT id, user_objective_instance_id, key_result_id, started_at, completed_at
FROM user_key_result_instances WHERE key_result_id = ?
`

// ListUserKeyResultInstancesByKeyResult returns every enrollment of a key
// result template across users.
func (q *Queries) ListUserKeyResultInstancesByKeyResult(ctx context.Context, keyResultID int64) ([]UserKeyResultInstance, error) {
	return q.scanKeyResultInstances(ctx, listUserKeyResultInstancesByKeyResult, keyResultID)
}

func (q *Queries) scanKeyResultInstances(ctx context.Context, query string, arg int64) ([]UserKeyResultInstance, error) {
	rows, err := q.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserKeyResultInstance
	for rows.Next() {
		var i UserKeyResultInstance
		if err := rows.Scan(&i.ID, &i.UserObjectiveInstanceID, &i.KeyResultID, &i.StartedAt, &i.CompletedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countUserKeyResultInstancesByKeyResult = `
SELECT COUNT(*) FROM user_key_result_instances WHERE key_result_id = ?
`

// CountUserKeyResultInstancesByKeyResult counts enrollments still pointing at
// a key result template.
func (q *Queries) CountUserKeyResultInstancesByKeyResult(ctx context.Context, keyResultID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUserKeyResultInstancesByKeyResult, keyResultID)
	var n int64
	err := row.Scan(&n)
	return n, err
}

const completeUserKeyResultInstance = `
UPDATE user_key_result_instances SET completed_at = ? WHERE id = ?
`

// CompleteUserKeyResultInstance marks a key result instance completed.
func (q *Queries) CompleteUserKeyResultInstance(ctx context.Context, arg CompleteInstanceParams) error {
	_, err := q.db.ExecContext(ctx, completeUserKeyResultInstance, arg.CompletedAt, arg.ID)
	return err
}

const deleteUserKeyResultInstance = `
DELETE FROM user_key_result_instances WHERE id = ?
`

// DeleteUserKeyResultInstance removes a key result instance row.
func (q *Queries) DeleteUserKeyResultInstance(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUserKeyResultInstance, id)
	return err
}

const createUserInitiativeInstance = `
INSERT INTO user_initiative_instances (user_key_result_instance_id, initiative_id, started_at)
VALUES (?, ?, ?)
RETURNING id, user_key_result_instance_id, initiative_id, started_at, completed_at
`

// CreateUserInitiativeInstanceParams holds parameters for CreateUserInitiativeInstance.
type CreateUserInitiativeInstanceParams struct {
	UserKeyResultInstanceID int64
	InitiativeID            int64
	StartedAt               time.Time
}

// CreateUserInitiativeInstance inserts an initiative enrollment.
func (q *Queries) CreateUserInitiativeInstance(ctx context.Context, arg CreateUserInitiativeInstanceParams) (UserInitiativeInstance, error) {
	row := q.db.QueryRowContext(ctx, createUserInitiativeInstance,
		arg.UserKeyResultInstanceID, arg.InitiativeID, arg.StartedAt)
	var i UserInitiativeInstance
	err := row.Scan(&i.ID, &i.UserKeyResultInstanceID, &i.InitiativeID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const getUserInitiativeInstanceByID = `
SELECT id, user_key_result_instance_id, initiative_id, started_at, completed_at
FROM user_initiative_instances WHERE id = ?
`

// GetUserInitiativeInstanceByID fetches an initiative instance by id.
func (q *Queries) GetUserInitiativeInstanceByID(ctx context.Context, id int64) (UserInitiativeInstance, error) {
	row := q.db.QueryRowContext(ctx, getUserInitiativeInstanceByID, id)
	var i UserInitiativeInstance
	err := row.Scan(&i.ID, &i.UserKeyResultInstanceID, &i.InitiativeID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const getUserInitiativeInstanceByKey = `
SELECT id, user_key_result_instance_id, initiative_id, started_at, completed_at
FROM user_initiative_instances WHERE user_key_result_instance_id = ? AND initiative_id = ?
`

// GetUserInitiativeInstanceByKeyParams holds parameters for GetUserInitiativeInstanceByKey.
type GetUserInitiativeInstanceByKeyParams struct {
	UserKeyResultInstanceID int64
	InitiativeID            int64
}

// GetUserInitiativeInstanceByKey fetches an initiative instance by its natural key.
func (q *Queries) GetUserInitiativeInstanceByKey(ctx context.Context, arg GetUserInitiativeInstanceByKeyParams) (UserInitiativeInstance, error) {
	row := q.db.QueryRowContext(ctx, getUserInitiativeInstanceByKey,
		arg.UserKeyResultInstanceID, arg.InitiativeID)
	var i UserInitiativeInstance
	err := row.Scan(&i.ID, &i.UserKeyResultInstanceID, &i.InitiativeID, &i.StartedAt, &i.CompletedAt)
	return i, err
}

const listUserInitiativeInstancesByKeyResultInstance = `
SELECT id, user_key_result_instance_id, initiative_id, started_at, completed_at
FROM user_initiative_instances WHERE user_key_result_instance_id = ?
`

// ListUserInitiativeInstancesByKeyResultInstance returns the initiative
// instances under a key result instance.
func (q *Queries) ListUserInitiativeInstancesByKeyResultInstance(ctx context.Context, userKeyResultInstanceID int64) ([]UserInitiativeInstance, error) {
	return q.scanInitiativeInstances(ctx, listUserInitiativeInstancesByKeyResultInstance, userKeyResultInstanceID)
}

const listUserInitiativeInstancesByInitiative = `
SELECT id, user_key_result_instance_id, initiative_id, started_at, completed_at
FROM user_initiative_instances WHERE initiative_id = ?
`

// ListUserInitiativeInstancesByInitiative returns every enrollment of an
// initiative template across users.
func (q *Queries) ListUserInitiativeInstancesByInitiative(ctx context.Context, initiativeID int64) ([]UserInitiativeInstance, error) {
	return q.scanInitiativeInstances(ctx, listUserInitiativeInstancesByInitiative, initiativeID)
}

func (q *Queries) scanInitiativeInstances(ctx context.Context, query string, arg int64) ([]UserInitiativeInstance, error) {
	rows, err := q.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserInitiativeInstance
	for rows.Next() {
		var i UserInitiativeInstance
		if err := rows.Scan(&i.ID, &i.UserKeyResultInstanceID, &i.InitiativeID, &i.StartedAt, &i.CompletedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countUserInitiativeInstancesByInitiative = `
SELECT COUNT(*) FROM user_initiative_instances WHERE initiative_id = ?
`

// CountUserInitiativeInstancesByInitiative counts enrollments still pointing
// at an initiative template.
func (q *Queries) CountUserInitiativeInstancesByInitiative(ctx context.Context, initiativeID int64) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUserInitiativeInstancesByInitiative, initiativeID)
	var n int64
	err := row.Scan(&n)
	return n, err
}

const completeUserInitiativeInstance = `
UPDATE user_initiative_instances SET completed_at = ? WHERE id = ?
`

// CompleteUserInitiativeInstance marks an initiative instance completed.
func (q *Queries) CompleteUserInitiativeInstance(ctx context.Context, arg CompleteInstanceParams) error {
	_, err := q.db.ExecContext(ctx, completeUserInitiativeInstance, arg.CompletedAt, arg.ID)
	return err
}

const deleteUserInitiativeInstance = `
DELETE FROM user_initiative_instances WHERE id = ?
`

// DeleteUserInitiativeInstance removes an initiative instance row.
func (q *Queries) DeleteUserInitiativeInstance(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUserInitiativeInstance, id)
	return err
}

const upsertKeyResultProgress = `
INSERT INTO key_result_progress (key_result_id, user_objective_instance_id, current_value, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (key_result_id, user_objective_instance_id) DO UPDATE
SET current_value = excluded.current_value, updated_at = excluded.updated_at
RETURNING id, key_result_id, user_objective_instance_id, current_value, updated_at
`

// UpsertKeyResultProgressParams holds parameters for UpsertKeyResultProgress.
type UpsertKeyResultProgressParams struct {
	KeyResultID             int64
	UserObjectiveInstanceID int64
	CurrentValue            float64
	UpdatedAt               time.Time
}

// UpsertKeyResultProgress creates or updates the single progress row per
// (key result, objective instance) pair.
func (q *Queries) UpsertKeyResultProgress(ctx context.Context, arg UpsertKeyResultProgressParams) (KeyResultProgress, error) {
	row := q.db.QueryRowContext(ctx, upsertKeyResultProgress,
		arg.KeyResultID, arg.UserObjectiveInstanceID, arg.CurrentValue, arg.UpdatedAt)
	var p KeyResultProgress
	err := row.Scan(&p.ID, &p.KeyResultID, &p.UserObjectiveInstanceID, &p.CurrentValue, &p.UpdatedAt)
	return p, err
}

const getKeyResultProgress = `
SELECT id, key_result_id, user_objective_instance_id, current_value, updated_at
FROM key_result_progress WHERE key_result_id = ? AND user_objective_instance_id = ?
`

// GetKeyResultProgressParams holds parameters for GetKeyResultProgress.
type GetKeyResultProgressParams struct {
	KeyResultID             int64
	UserObjectiveInstanceID int64
}

// GetKeyResultProgress fetches the progress row for a pair.
func (q *Queries) GetKeyResultProgress(ctx context.Context, arg GetKeyResultProgressParams) (KeyResultProgress, error) {
	row := q.db.QueryRowContext(ctx, getKeyResultProgress, arg.KeyResultID, arg.UserObjectiveInstanceID)
	var p KeyResultProgress
	err := row.Scan(&p.ID, &p.KeyResultID, &p.UserObjectiveInstanceID, &p.CurrentValue, &p.UpdatedAt)
	return p, err
}

const deleteKeyResultProgressByPair = `
DELETE FROM key_result_progress WHERE key_result_id = ? AND user_objective_instance_id = ?
`

// DeleteKeyResultProgressByPairParams holds parameters for DeleteKeyResultProgressByPair.
type DeleteKeyResultProgressByPairParams struct {
	KeyResultID             int64
	UserObjectiveInstanceID int64
}

// DeleteKeyResultProgressByPair removes the progress row for a pair.
func (q *Queries) DeleteKeyResultProgressByPair(ctx context.Context, arg DeleteKeyResultProgressByPairParams) error {
	_, err := q.db.ExecContext(ctx, deleteKeyResultProgressByPair, arg.KeyResultID, arg.UserObjectiveInstanceID)
	return err
}

const deleteKeyResultProgressByObjectiveInstance = `
DELETE FROM key_result_progress WHERE user_objective_instance_id = ?
`

// DeleteKeyResultProgressByObjectiveInstance removes all progress rows tied
// to an objective instance.
func (q *Queries) DeleteKeyResultProgressByObjectiveInstance(ctx context.Context, userObjectiveInstanceID int64) error {
	_, err := q.db.ExecContext(ctx, deleteKeyResultProgressByObjectiveInstance, userObjectiveInstanceID)
	return err
}
