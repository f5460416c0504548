// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const createKanbanItem = `
INSERT INTO kanban_items (user_id, item_type, item_id, column_name, position, notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, user_id, item_type, item_id, column_name, position, notes, created_at, updated_at
`

// CreateKanbanItemParams holds parameters for CreateKanbanItem.
type CreateKanbanItemParams struct {
	UserID     int64
	ItemType   string
	ItemID     int64
	ColumnName string
	Position   int64
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateKanbanItem inserts a board entry. The unique index on
// (user_id, item_type, item_id) rejects duplicates.
func (q *Queries) CreateKanbanItem(ctx context.Context, arg CreateKanbanItemParams) (KanbanItem, error) {
	row := q.db.QueryRowContext(ctx, createKanbanItem,
		arg.UserID, arg.ItemType, arg.ItemID, arg.ColumnName, arg.Position, arg.Notes,
		arg.CreatedAt, arg.UpdatedAt)
	var k KanbanItem
	err := row.Scan(&k.ID, &k.UserID, &k.ItemType, &k.ItemID, &k.ColumnName, &k.Position, &k.Notes, &k.CreatedAt, &k.UpdatedAt)
	return k, err
}

const getKanbanItemByID = `
SELECT id, user_id, item_type, item_id, column_name, position, notes, created_at, updated_at
FROM kanban_items WHERE id = ?
`

// GetKanbanItemByID fetches a board entry by id.
func (q *Queries) GetKanbanItemByID(ctx context.Context, id int64) (KanbanItem, error) {
	row := q.db.QueryRowContext(ctx, getKanbanItemByID, id)
	var k KanbanItem
	err := row.Scan(&k.ID, &k.UserID, &k.ItemType, &k.ItemID, &k.ColumnName, &k.Position, &k.Notes, &k.CreatedAt, &k.UpdatedAt)
	return k, err
}

const getKanbanItemByRef = `
SELECT id, user_id, item_type, item_id, column_name, position, notes, created_at, updated_at
FROM kanban_items WHERE user_id = ? AND item_type = ? AND item_id = ?
`

// KanbanItemRefParams identify a board entry by its natural key.
type KanbanItemRefParams struct {
	UserID   int64
	ItemType string
	ItemID   int64
}

// GetKanbanItemByRef fetches a board entry by (user, item type, item id).
func (q *Queries) GetKanbanItemByRef(ctx context.Context, arg KanbanItemRefParams) (KanbanItem, error) {
	row := q.db.QueryRowContext(ctx, getKanbanItemByRef, arg.UserID, arg.ItemType, arg.ItemID)
	var k KanbanItem
	err := row.Scan(&k.ID, &k.UserID, &k.ItemType, &k.ItemID, &k.ColumnName, &k.Position, &k.Notes, &k.CreatedAt, &k.UpdatedAt)
	return k, err
}

const listKanbanItemsByUser = `
SELECT id, user_id, item_type, item_id, column_name, position, notes, created_at, updated_at
FROM kanban_items WHERE user_id = ? ORDER BY column_name, position, id
`

// ListKanbanItemsByUser returns a user's board, ordered per column.
func (q *Queries) ListKanbanItemsByUser(ctx context.Context, userID int64) ([]KanbanItem, error) {
	rows, err := q.db.QueryContext(ctx, listKanbanItemsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []KanbanItem
	for rows.Next() {
		var k KanbanItem
		if err := rows.Scan(&k.ID, &k.UserID, &k.ItemType, &k.ItemID, &k.ColumnName, &k.Position, &k.Notes, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, k)
	}
	return items, rows.Err()
}

const updateKanbanItem = `
UPDATE kanban_items SET column_name = ?, position = ?, notes = ?, updated_at = ?
WHERE id = ?
RETURNING id, user_id, item_type, item_id, column_name, position, notes, created_at, updated_at
`

// UpdateKanbanItemParams holds parameters for UpdateKanbanItem.
type UpdateKanbanItemParams struct {
	ColumnName string
	Position   int64
	Notes      string
	UpdatedAt  time.Time
	ID         int64
}

// UpdateKanbanItem moves or annotates a board entry.
func (q *Queries) UpdateKanbanItem(ctx context.Context, arg UpdateKanbanItemParams) (KanbanItem, error) {
	row := q.db.QueryRowContext(ctx, updateKanbanItem,
		arg.ColumnName, arg.Position, arg.Notes, arg.UpdatedAt, arg.ID)
	var k KanbanItem
	err := row.Scan(&k.ID, &k.UserID, &k.ItemType, &k.ItemID, &k.ColumnName, &k.Position, &k.Notes, &k.CreatedAt, &k.UpdatedAt)
	return k, err
}

const deleteKanbanItem = `
DELETE FROM kanban_items WHERE id = ?
`

// DeleteKanbanItem removes a board entry by id.
func (q *Queries) DeleteKanbanItem(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteKanbanItem, id)
	return err
}

const deleteKanbanItemByRef = `
DELETE FROM kanban_items WHERE user_id = ? AND item_type = ? AND item_id = ?
`

// DeleteKanbanItemByRef removes a board entry by its natural key. Used when
// cascading instance deletions detach board rows.
func (q *Queries) DeleteKanbanItemByRef(ctx context.Context, arg KanbanItemRefParams) error {
	_, err := q.db.ExecContext(ctx, deleteKanbanItemByRef, arg.UserID, arg.ItemType, arg.ItemID)
	return err
}
