// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
)

// The number counters are a single atomic upsert-and-return statement, so
// concurrent creations can never observe the same value. SQLite serializes
// the writes; there is no read-then-increment window.

const nextEntityNumber = `
INSERT INTO entity_numbers (entity_type, next_value)
VALUES (?, 1)
ON CONFLICT (entity_type) DO UPDATE SET next_value = next_value + 1
RETURNING next_value
`

// NextEntityNumber atomically increments and returns the counter for an
// entity type. The first call for a type returns 1.
func (q *Queries) NextEntityNumber(ctx context.Context, entityType string) (int64, error) {
	row := q.db.QueryRowContext(ctx, nextEntityNumber, entityType)
	var n int64
	err := row.Scan(&n)
	return n, err
}

const ensureEntityNumberFloor = `
INSERT INTO entity_numbers (entity_type, next_value)
VALUES (?, ?)
ON CONFLICT (entity_type) DO UPDATE SET next_value = MAX(next_value, excluded.next_value)
`

// EnsureEntityNumberFloorParams holds parameters for EnsureEntityNumberFloor.
type EnsureEntityNumberFloorParams struct {
	EntityType string
	Floor      int64
}

// EnsureEntityNumberFloor raises a counter to at least the given value so
// reserved numbers are never handed out again. It never lowers a counter.
func (q *Queries) EnsureEntityNumberFloor(ctx context.Context, arg EnsureEntityNumberFloorParams) error {
	_, err := q.db.ExecContext(ctx, ensureEntityNumberFloor, arg.EntityType, arg.Floor)
	return err
}

const nextVersionNumber = `
INSERT INTO version_numbers (entity_type, parent_id, next_value)
VALUES (?, ?, 1)
ON CONFLICT (entity_type, parent_id) DO UPDATE SET next_value = next_value + 1
RETURNING next_value
`

// NextVersionNumberParams holds parameters for NextVersionNumber.
type NextVersionNumberParams struct {
	EntityType string
	ParentID   int64
}

// NextVersionNumber atomically increments and returns the per-parent version
// counter. The first version of any parent is 1.
func (q *Queries) NextVersionNumber(ctx context.Context, arg NextVersionNumberParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, nextVersionNumber, arg.EntityType, arg.ParentID)
	var n int64
	err := row.Scan(&n)
	return n, err
}
