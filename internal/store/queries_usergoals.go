// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createUserGoal = `
INSERT INTO user_goals (user_id, title, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, user_id, title, description, completed_at, created_at, updated_at
`

// CreateUserGoalParams holds parameters for CreateUserGoal.
type CreateUserGoalParams struct {
	UserID      int64
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateUserGoal inserts a user-authored goal.
func (q *Queries) CreateUserGoal(ctx context.Context, arg CreateUserGoalParams) (UserGoal, error) {
	row := q.db.QueryRowContext(ctx, createUserGoal,
		arg.UserID, arg.Title, arg.Description, arg.CreatedAt, arg.UpdatedAt)
	var g UserGoal
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.CompletedAt, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

const getUserGoalByID = `
SELECT id, user_id, title, description, completed_at, created_at, updated_at
FROM user_goals WHERE id = ?
`

// GetUserGoalByID fetches a user-authored goal by id.
func (q *Queries) GetUserGoalByID(ctx context.Context, id int64) (UserGoal, error) {
	row := q.db.QueryRowContext(ctx, getUserGoalByID, id)
	var g UserGoal
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.CompletedAt, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

const listUserGoalsByUser = `
SELECT id, user_id, title, description, completed_at, created_at, updated_at
FROM user_goals WHERE user_id = ? ORDER BY id
`

// ListUserGoalsByUser returns a user's authored goals.
func (q *Queries) ListUserGoalsByUser(ctx context.Context, userID int64) ([]UserGoal, error) {
	rows, err := q.db.QueryContext(ctx, listUserGoalsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserGoal
	for rows.Next() {
		var g UserGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.CompletedAt, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

const updateUserGoal = `
UPDATE user_goals SET title = ?, description = ?, updated_at = ? WHERE id = ?
`

// UpdateUserGoalParams holds parameters for UpdateUserGoal.
type UpdateUserGoalParams struct {
	Title       string
	Description string
	UpdatedAt   time.Time
	ID          int64
}

// UpdateUserGoal edits a user-authored goal.
func (q *Queries) UpdateUserGoal(ctx context.Context, arg UpdateUserGoalParams) error {
	_, err := q.db.ExecContext(ctx, updateUserGoal, arg.Title, arg.Description, arg.UpdatedAt, arg.ID)
	return err
}

const completeUserGoal = `
UPDATE user_goals SET completed_at = ?, updated_at = ? WHERE id = ?
`

// CompleteUserAuthoredParams holds parameters for the CompleteUserXxx queries
// on the user-authored variant.
type CompleteUserAuthoredParams struct {
	CompletedAt time.Time
	UpdatedAt   time.Time
	ID          int64
}

// CompleteUserGoal marks a user-authored goal completed.
func (q *Queries) CompleteUserGoal(ctx context.Context, arg CompleteUserAuthoredParams) error {
	_, err := q.db.ExecContext(ctx, completeUserGoal, arg.CompletedAt, arg.UpdatedAt, arg.ID)
	return err
}

const deleteUserGoal = `
DELETE FROM user_goals WHERE id = ?
`

// DeleteUserGoal removes a user-authored goal row.
func (q *Queries) DeleteUserGoal(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUserGoal, id)
	return err
}

const createUserObjective = `
INSERT INTO user_objectives (user_goal_id, user_id, title, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, user_goal_id, user_id, title, description, completed_at, created_at, updated_at
`

// CreateUserObjectiveParams holds parameters for CreateUserObjective.
type CreateUserObjectiveParams struct {
	UserGoalID  int64
	UserID      int64
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateUserObjective inserts a user-authored objective.
func (q *Queries) CreateUserObjective(ctx context.Context, arg CreateUserObjectiveParams) (UserObjective, error) {
	row := q.db.QueryRowContext(ctx, createUserObjective,
		arg.UserGoalID, arg.UserID, arg.Title, arg.Description, arg.CreatedAt, arg.UpdatedAt)
	var o UserObjective
	err := row.Scan(&o.ID, &o.UserGoalID, &o.UserID, &o.Title, &o.Description, &o.CompletedAt, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const getUserObjectiveByID = `
SELECT id, user_goal_id, user_id, title, description, completed_at, created_at, updated_at
FROM user_objectives WHERE id = ?
`

// GetUserObjectiveByID fetches a user-authored objective by id.
func (q *Queries) GetUserObjectiveByID(ctx context.Context, id int64) (UserObjective, error) {
	row := q.db.QueryRowContext(ctx, getUserObjectiveByID, id)
	var o UserObjective
	err := row.Scan(&o.ID, &o.UserGoalID, &o.UserID, &o.Title, &o.Description, &o.CompletedAt, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const listUserObjectivesByUserGoal = `
SELECT id, user_goal_id, user_id, title, description, completed_at, created_at, updated_at
FROM user_objectives WHERE user_goal_id = ? ORDER BY id
`

// ListUserObjectivesByUserGoal returns a user goal's objectives.
func (q *Queries) ListUserObjectivesByUserGoal(ctx context.Context, userGoalID int64) ([]UserObjective, error) {
	rows, err := q.db.QueryContext(ctx, listUserObjectivesByUserGoal, userGoalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserObjective
	for rows.Next() {
		var o UserObjective
		if err := rows.Scan(&o.ID, &o.UserGoalID, &o.UserID, &o.Title, &o.Description, &o.CompletedAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const completeUserObjective = `
UPDATE user_objectives SET completed_at = ?, updated_at = ? WHERE id = ?
`

// CompleteUserObjective marks a user-authored objective completed.
func (q *Queries) CompleteUserObjective(ctx context.Context, arg CompleteUserAuthoredParams) error {
	_, err := q.db.ExecContext(ctx, completeUserObjective, arg.CompletedAt, arg.UpdatedAt, arg.ID)
	return err
}

const deleteUserObjective = `
DELETE FROM user_objectives WHERE id = ?
`

// DeleteUserObjective removes a user-authored objective row.
func (q *Queries) DeleteUserObjective(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUserObjective, id)
	return err
}

const createUserKeyResult = `
INSERT INTO user_key_results (user_objective_id, user_id, title, target_value, unit, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, user_objective_id, user_id, title, target_value, unit, current_value, completed_at, created_at, updated_at
`

// CreateUserKeyResultParams holds parameters for CreateUserKeyResult.
type CreateUserKeyResultParams struct {
	UserObjectiveID int64
	UserID          int64
	Title           string
	TargetValue     float64
	Unit            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateUserKeyResult inserts a user-authored key result.
func (q *Queries) CreateUserKeyResult(ctx context.Context, arg CreateUserKeyResultParams) (UserKeyResult, error) {
	row := q.db.QueryRowContext(ctx, createUserKeyResult,
		arg.UserObjectiveID, arg.UserID, arg.Title, arg.TargetValue, arg.Unit, arg.CreatedAt, arg.UpdatedAt)
	var k UserKeyResult
	err := row.Scan(&k.ID, &k.UserObjectiveID, &k.UserID, &k.Title, &k.TargetValue, &k.Unit, &k.CurrentValue, &k.CompletedAt, &k.CreatedAt, &k.UpdatedAt)
	return k, err
}

const getUserKeyResultByID = `
SELECT id, user_objective_id, user_id, title, target_value, unit, current_value, completed_at, created_at, updated_at
FROM user_key_results WHERE id = ?
`

// GetUserKeyResultByID fetches a user-authored key result by id.
func (q *Queries) GetUserKeyResultByID(ctx context.Context, id int64) (UserKeyResult, error) {
	row := q.db.QueryRowContext(ctx, getUserKeyResultByID, id)
	var k UserKeyResult
	err := row.Scan(&k.ID, &k.UserObjectiveID, &k.UserID, &k.Title, &k.TargetValue, &k.Unit, &k.CurrentValue, &k.CompletedAt, &k.CreatedAt, &k.UpdatedAt)
	return k, err
}

const listUserKeyResultsByUserObjective = `
SELECT id, user_objective_id, user_id, title, target_value, unit, current_value, completed_at, created_at, updated_at
FROM user_key_results WHERE user_objective_id = ? ORDER BY id
`

// ListUserKeyResultsByUserObjective returns a user objective's key results.
func (q *Queries) ListUserKeyResultsByUserObjective(ctx context.Context, userObjectiveID int64) ([]UserKeyResult, error) {
	rows, err := q.db.QueryContext(ctx, listUserKeyResultsByUserObjective, userObjectiveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserKeyResult
	for rows.Next() {
		var k UserKeyResult
		if err := rows.Scan(&k.ID, &k.UserObjectiveID, &k.UserID, &k.Title, &k.TargetValue, &k.Unit, &k.CurrentValue, &k.CompletedAt, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, k)
	}
	return items, rows.Err()
}

const updateUserKeyResultValue = `
UPDATE user_key_results SET current_value = ?, updated_at = ? WHERE id = ?
`

// UpdateUserKeyResultValueParams holds parameters for UpdateUserKeyResultValue.
type UpdateUserKeyResultValueParams struct {
	CurrentValue float64
	UpdatedAt    time.Time
	ID           int64
}

// UpdateUserKeyResultValue records progress on a user-authored key result.
func (q *Queries) UpdateUserKeyResultValue(ctx context.Context, arg UpdateUserKeyResultValueParams) error {
	_, err := q.db.ExecContext(ctx, updateUserKeyResultValue, arg.CurrentValue, arg.UpdatedAt, arg.ID)
	return err
}

const completeUserKeyResult = `
UPDATE user_key_results SET completed_at = ?, updated_at = ? WHERE id = ?
`

// CompleteUserKeyResult marks a user-authored key result completed.
func (q *Queries) CompleteUserKeyResult(ctx context.Context, arg CompleteUserAuthoredParams) error {
	_, err := q.db.ExecContext(ctx, completeUserKeyResult, arg.CompletedAt, arg.UpdatedAt, arg.ID)
	return err
}

const deleteUserKeyResult = `
DELETE FROM user_key_results WHERE id = ?
`

// DeleteUserKeyResult removes a user-authored key result row.
func (q *Queries) DeleteUserKeyResult(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUserKeyResult, id)
	return err
}

const createUserInitiative = `
INSERT INTO user_initiatives (user_key_result_id, user_id, title, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, user_key_result_id, user_id, title, description, completed_at, created_at, updated_at
`

// CreateUserInitiativeParams holds parameters for CreateUserInitiative.
type CreateUserInitiativeParams struct {
	UserKeyResultID int64
	UserID          int64
	Title           string
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateUserInitiative inserts a user-authored initiative.
func (q *Queries) CreateUserInitiative(ctx context.Context, arg CreateUserInitiativeParams) (UserInitiative, error) {
	row := q.db.QueryRowContext(ctx, createUserInitiative,
		arg.UserKeyResultID, arg.UserID, arg.Title, arg.Description, arg.CreatedAt, arg.UpdatedAt)
	var i UserInitiative
	err := row.Scan(&i.ID, &i.UserKeyResultID, &i.UserID, &i.Title, &i.Description, &i.CompletedAt, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getUserInitiativeByID = `
SELECT id, user_key_result_id, user_id, title, description, completed_at, created_at, updated_at
FROM user_initiatives WHERE id = ?
`

// GetUserInitiativeByID fetches a user-authored initiative by id.
func (q *Queries) GetUserInitiativeByID(ctx context.Context, id int64) (UserInitiative, error) {
	row := q.db.QueryRowContext(ctx, getUserInitiativeByID, id)
	var i UserInitiative
	err := row.Scan(&i.ID, &i.UserKeyResultID, &i.UserID, &i.Title, &i.Description, &i.CompletedAt, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listUserInitiativesByUserKeyResult = `
SELECT id, user_key_result_id, user_id, title, description, completed_at, created_at, updated_at
FROM user_initiatives WHERE user_key_result_id = ? ORDER BY id
`

// ListUserInitiativesByUserKeyResult returns a user key result's initiatives.
func (q *Queries) ListUserInitiativesByUserKeyResult(ctx context.Context, userKeyResultID int64) ([]UserInitiative, error) {
	rows, err := q.db.QueryContext(ctx, listUserInitiativesByUserKeyResult, userKeyResultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserInitiative
	for rows.Next() {
		var i UserInitiative
		if err := rows.Scan(&i.ID, &i.UserKeyResultID, &i.UserID, &i.Title, &i.Description, &i.CompletedAt, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const completeUserInitiative = `
UPDATE user_initiatives SET completed_at = ?, updated_at = ? WHERE id = ?
`

// CompleteUserInitiative marks a user-authored initiative completed.
func (q *Queries) CompleteUserInitiative(ctx context.Context, arg CompleteUserAuthoredParams) error {
	_, err := q.db.ExecContext(ctx, completeUserInitiative, arg.CompletedAt, arg.UpdatedAt, arg.ID)
	return err
}

const deleteUserInitiative = `
DELETE FROM user_initiatives WHERE id = ?
`

// DeleteUserInitiative removes a user-authored initiative row.
func (q *Queries) DeleteUserInitiative(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteUserInitiative, id)
	return err
}
