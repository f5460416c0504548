// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const createLifeDomain = `
INSERT INTO life_domains (title_nl, title_en, description_nl, description_en, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, title_nl, title_en, description_nl, description_en, created_at, updated_at
`

// CreateLifeDomainParams holds parameters for CreateLifeDomain.
type CreateLifeDomainParams struct {
	TitleNl       string
	TitleEn       string
	DescriptionNl string
	DescriptionEn string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateLifeDomain inserts a new life domain.
func (q *Queries) CreateLifeDomain(ctx context.Context, arg CreateLifeDomainParams) (LifeDomain, error) {
	row := q.db.QueryRowContext(ctx, createLifeDomain,
		arg.TitleNl, arg.TitleEn, arg.DescriptionNl, arg.DescriptionEn, arg.CreatedAt, arg.UpdatedAt)
	var d LifeDomain
	err := row.Scan(&d.ID, &d.TitleNl, &d.TitleEn, &d.DescriptionNl, &d.DescriptionEn, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

const getLifeDomainByID = `
SELECT id, title_nl, title_en, description_nl, description_en, created_at, updated_at
FROM life_domains WHERE id = ?
`

// GetLifeDomainByID fetches a life domain by id.
func (q *Queries) GetLifeDomainByID(ctx context.Context, id int64) (LifeDomain, error) {
	row := q.db.QueryRowContext(ctx, getLifeDomainByID, id)
	var d LifeDomain
	err := row.Scan(&d.ID, &d.TitleNl, &d.TitleEn, &d.DescriptionNl, &d.DescriptionEn, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

const listLifeDomains = `
SELECT id, title_nl, title_en, description_nl, description_en, created_at, updated_at
FROM life_domains ORDER BY id
`

// ListLifeDomains returns all life domains.
func (q *Queries) ListLifeDomains(ctx context.Context) ([]LifeDomain, error) {
	rows, err := q.db.QueryContext(ctx, listLifeDomains)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LifeDomain
	for rows.Next() {
		var d LifeDomain
		if err := rows.Scan(&d.ID, &d.TitleNl, &d.TitleEn, &d.DescriptionNl, &d.DescriptionEn, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

const createGoal = `
INSERT INTO goals (life_domain_id, goal_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, life_domain_id, goal_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at
`

// CreateGoalParams holds parameters for CreateGoal.
type CreateGoalParams struct {
	LifeDomainID    int64
	GoalNumber      string
	TitleNl         string
	TitleEn         string
	DescriptionNl   string
	DescriptionEn   string
	CreatedByUserID sql.NullInt64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateGoal inserts a goal template.
func (q *Queries) CreateGoal(ctx context.Context, arg CreateGoalParams) (Goal, error) {
	row := q.db.QueryRowContext(ctx, createGoal,
		arg.LifeDomainID, arg.GoalNumber, arg.TitleNl, arg.TitleEn, arg.DescriptionNl, arg.DescriptionEn,
		arg.CreatedByUserID, arg.CreatedAt, arg.UpdatedAt)
	var g Goal
	err := row.Scan(&g.ID, &g.LifeDomainID, &g.GoalNumber, &g.TitleNl, &g.TitleEn, &g.DescriptionNl, &g.DescriptionEn, &g.CreatedByUserID, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

const getGoalByID = `
SELECT id, life_domain_id, goal_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at
FROM goals WHERE id = ?
`

// GetGoalByID fetches a goal by id.
func (q *Queries) GetGoalByID(ctx context.Context, id int64) (Goal, error) {
	row := q.db.QueryRowContext(ctx, getGoalByID, id)
	var g Goal
	err := row.Scan(&g.ID, &g.LifeDomainID, &g.GoalNumber, &g.TitleNl, &g.TitleEn, &g.DescriptionNl, &g.DescriptionEn, &g.CreatedByUserID, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

const listGoalsByLifeDomain = `
SELECT id, life_domain_id, goal_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at
FROM goals WHERE life_domain_id = ? ORDER BY id
`

// ListGoalsByLifeDomain returns a life domain's goals.
func (q *Queries) ListGoalsByLifeDomain(ctx context.Context, lifeDomainID int64) ([]Goal, error) {
	rows, err := q.db.QueryContext(ctx, listGoalsByLifeDomain, lifeDomainID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.LifeDomainID, &g.GoalNumber, &g.TitleNl, &g.TitleEn, &g.DescriptionNl, &g.DescriptionEn, &g.CreatedByUserID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

const deleteGoal = `
DELETE FROM goals WHERE id = ?
`

// DeleteGoal removes a goal template row.
func (q *Queries) DeleteGoal(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteGoal, id)
	return err
}

const createObjective = `
INSERT INTO objectives (goal_id, objective_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, goal_id, objective_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at
`

// CreateObjectiveParams holds parameters for CreateObjective.
type CreateObjectiveParams struct {
	GoalID          int64
	ObjectiveNumber string
	TitleNl         string
	TitleEn         string
	DescriptionNl   string
	DescriptionEn   string
	CreatedByUserID sql.NullInt64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateObjective inserts an objective template.
func (q *Queries) CreateObjective(ctx context.Context, arg CreateObjectiveParams) (Objective, error) {
	row := q.db.QueryRowContext(ctx, createObjective,
		arg.GoalID, arg.ObjectiveNumber, arg.TitleNl, arg.TitleEn, arg.DescriptionNl, arg.DescriptionEn,
		arg.CreatedByUserID, arg.CreatedAt, arg.UpdatedAt)
	var o Objective
	err := row.Scan(&o.ID, &o.GoalID, &o.ObjectiveNumber, &o.TitleNl, &o.TitleEn, &o.DescriptionNl, &o.DescriptionEn, &o.CreatedByUserID, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const getObjectiveByID = `
SELECT id, goal_id, objective_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at
FROM objectives WHERE id = ?
`

// GetObjectiveByID fetches an objective by id.
func (q *Queries) GetObjectiveByID(ctx context.Context, id int64) (Objective, error) {
	row := q.db.QueryRowContext(ctx, getObjectiveByID, id)
	var o Objective
	err := row.Scan(&o.ID, &o.GoalID, &o.ObjectiveNumber, &o.TitleNl, &o.TitleEn, &o.DescriptionNl, &o.DescriptionEn, &o.CreatedByUserID, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const listObjectivesByGoal = `
SELECT id, goal_id, objective_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at
FROM objectives WHERE goal_id = ? ORDER BY id
`

// ListObjectivesByGoal returns a goal's objectives.
func (q *Queries) ListObjectivesByGoal(ctx context.Context, goalID int64) ([]Objective, error) {
	rows, err := q.db.QueryContext(ctx, listObjectivesByGoal, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Objective
	for rows.Next() {
		var o Objective
		if err := rows.Scan(&o.ID, &o.GoalID, &o.ObjectiveNumber, &o.TitleNl, &o.TitleEn, &o.DescriptionNl, &o.DescriptionEn, &o.CreatedByUserID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const deleteObjective = `
DELETE FROM objectives WHERE id = ?
`

// DeleteObjective removes an objective template row.
func (q *Queries) DeleteObjective(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteObjective, id)
	return err
}

const createKeyResult = `
INSERT INTO key_results (objective_id, key_result_number, title_nl, title_en, target_value, unit, created_by_user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, objective_id, key_result_number, title_nl, title_en, target_value, unit, created_by_user_id, created_at, updated_at
`

// CreateKeyResultParams holds parameters for CreateKeyResult.
type CreateKeyResultParams struct {
	ObjectiveID     int64
	KeyResultNumber string
	TitleNl         string
	TitleEn         string
	TargetValue     float64
	Unit            string
	CreatedByUserID sql.NullInt64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateKeyResult inserts a key result template.
func (q *Queries) CreateKeyResult(ctx context.Context, arg CreateKeyResultParams) (KeyResult, error) {
	row := q.db.QueryRowContext(ctx, createKeyResult,
		arg.ObjectiveID, arg.KeyResultNumber, arg.TitleNl, arg.TitleEn, arg.TargetValue, arg.Unit,
		arg.CreatedByUserID, arg.CreatedAt, arg.UpdatedAt)
	var k KeyResult
	err := row.Scan(&k.ID, &k.ObjectiveID, &k.KeyResultNumber, &k.TitleNl, &k.TitleEn, &k.TargetValue, &k.Unit, &k.CreatedByUserID, &k.CreatedAt, &k.UpdatedAt)
	return k, err
}

const getKeyResultByID = `
SELECT id, objective_id, key_result_number, title_nl, title_en, target_value, unit, created_by_user_id, created_at, updated_at
FROM key_results WHERE id = ?
`

// GetKeyResultByID fetches a key result by id.
func (q *Queries) GetKeyResultByID(ctx context.Context, id int64) (KeyResult, error) {
	row := q.db.QueryRowContext(ctx, getKeyResultByID, id)
	var k KeyResult
	err := row.Scan(&k.ID, &k.ObjectiveID, &k.KeyResultNumber, &k.TitleNl, &k.TitleEn, &k.TargetValue, &k.Unit, &k.CreatedByUserID, &k.CreatedAt, &k.UpdatedAt)
	return k, err
}

const listKeyResultsByObjective = `
SELECT id, objective_id, key_result_number, title_nl, title_en, target_value, unit, created_by_user_id, created_at, updated_at
FROM key_results WHERE objective_id = ? ORDER BY id
`

// ListKeyResultsByObjective returns an objective's key results.
func (q *Queries) ListKeyResultsByObjective(ctx context.Context, objectiveID int64) ([]KeyResult, error) {
	rows, err := q.db.QueryContext(ctx, listKeyResultsByObjective, objectiveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []KeyResult
	for rows.Next() {
		var k KeyResult
		if err := rows.Scan(&k.ID, &k.ObjectiveID, &k.KeyResultNumber, &k.TitleNl, &k.TitleEn, &k.TargetValue, &k.Unit, &k.CreatedByUserID, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, k)
	}
	return items, rows.Err()
}

const deleteKeyResult = `
DELETE FROM key_results WHERE id = ?
`

// DeleteKeyResult removes a key result template row.
func (q *Queries) DeleteKeyResult(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteKeyResult, id)
	return err
}

const createInitiative = `
INSERT INTO initiatives (key_result_id, initiative_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, key_result_id, initiative_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at
`

// CreateInitiativeParams holds parameters for CreateInitiative.
type CreateInitiativeParams struct {
	KeyResultID      int64
	InitiativeNumber string
	TitleNl          string
	TitleEn          string
	DescriptionNl    string
	DescriptionEn    string
	CreatedByUserID  sql.NullInt64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateInitiative inserts an initiative template.
func (q *Queries) CreateInitiative(ctx context.Context, arg CreateInitiativeParams) (Initiative, error) {
	row := q.db.QueryRowContext(ctx, createInitiative,
		arg.KeyResultID, arg.InitiativeNumber, arg.TitleNl, arg.TitleEn, arg.DescriptionNl, arg.DescriptionEn,
		arg.CreatedByUserID, arg.CreatedAt, arg.UpdatedAt)
	var i Initiative
	err := row.Scan(&i.ID, &i.KeyResultID, &i.InitiativeNumber, &i.TitleNl, &i.TitleEn, &i.DescriptionNl, &i.DescriptionEn, &i.CreatedByUserID, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getInitiativeByID = `
SELECT id, key_result_id, initiative_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at
FROM initiatives WHERE id = ?
`

// GetInitiativeByID fetches an initiative by id.
func (q *Queries) GetInitiativeByID(ctx context.Context, id int64) (Initiative, error) {
	row := q.db.QueryRowContext(ctx, getInitiativeByID, id)
	var i Initiative
	err := row.Scan(&i.ID, &i.KeyResultID, &i.InitiativeNumber, &i.TitleNl, &i.TitleEn, &i.DescriptionNl, &i.DescriptionEn, &i.CreatedByUserID, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listInitiativesByKeyResult = `
SELECT id, key_result_id, initiative_number, title_nl, title_en, description_nl, description_en, created_by_user_id, created_at, updated_at
FROM initiatives WHERE key_result_id = ? ORDER BY id
`

// ListInitiativesByKeyResult returns a key result's initiatives.
func (q *Queries) ListInitiativesByKeyResult(ctx context.Context, keyResultID int64) ([]Initiative, error) {
	rows, err := q.db.QueryContext(ctx, listInitiativesByKeyResult, keyResultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Initiative
	for rows.Next() {
		var i Initiative
		if err := rows.Scan(&i.ID, &i.KeyResultID, &i.InitiativeNumber, &i.TitleNl, &i.TitleEn, &i.DescriptionNl, &i.DescriptionEn, &i.CreatedByUserID, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const deleteInitiative = `
DELETE FROM initiatives WHERE id = ?
`

// DeleteInitiative removes an initiative template row.
func (q *Queries) DeleteInitiative(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteInitiative, id)
	return err
}

const createInitiativeSuggestion = `
INSERT INTO initiative_suggestions (key_result_id, title_nl, title_en, created_at)
VALUES (?, ?, ?, ?)
RETURNING id, key_result_id, title_nl, title_en, created_at
`

// CreateInitiativeSuggestionParams holds parameters for CreateInitiativeSuggestion.
type CreateInitiativeSuggestionParams struct {
	KeyResultID int64
	TitleNl     string
	TitleEn     string
	CreatedAt   time.Time
}

// CreateInitiativeSuggestion inserts a read-only suggestion row.
func (q *Queries) CreateInitiativeSuggestion(ctx context.Context, arg CreateInitiativeSuggestionParams) (InitiativeSuggestion, error) {
	row := q.db.QueryRowContext(ctx, createInitiativeSuggestion,
		arg.KeyResultID, arg.TitleNl, arg.TitleEn, arg.CreatedAt)
	var s InitiativeSuggestion
	err := row.Scan(&s.ID, &s.KeyResultID, &s.TitleNl, &s.TitleEn, &s.CreatedAt)
	return s, err
}

const listInitiativeSuggestions = `
SELECT id, key_result_id, title_nl, title_en, created_at
FROM initiative_suggestions WHERE key_result_id = ? ORDER BY id
`

// ListInitiativeSuggestions returns a key result's suggestions.
func (q *Queries) ListInitiativeSuggestions(ctx context.Context, keyResultID int64) ([]InitiativeSuggestion, error) {
	rows, err := q.db.QueryContext(ctx, listInitiativeSuggestions, keyResultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InitiativeSuggestion
	for rows.Next() {
		var s InitiativeSuggestion
		if err := rows.Scan(&s.ID, &s.KeyResultID, &s.TitleNl, &s.TitleEn, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
