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

// errKanbanDuplicate is the one conflict tolerant callers are allowed to
// swallow. Message text is part of that contract.
const errKanbanDuplicate = "kanban item already exists"

// KanbanService manages a user's personal board. Items reference OKR
// instances by (itemType, itemId), one entry per instance per user.
type KanbanService struct {
	db      *sql.DB
	queries *store.Queries
}

// NewKanbanService creates a KanbanService.
func NewKanbanService(db *sql.DB) *KanbanService {
	return &KanbanService{db: db, queries: store.New(db)}
}

// Add places an instance on the user's board in the TODO column. Adding the
// same instance twice is a conflict.
func (s *KanbanService) Add(ctx context.Context, userID int64, itemType string, itemID int64, notes string) (store.KanbanItem, error) {
	if !model.IsKanbanItemType(itemType) {
		return store.KanbanItem{}, apperr.Invalidf("unknown kanban item type %q", itemType)
	}
	return addKanban(ctx, s.queries, userID, itemType, itemID, notes)
}

func addKanban(ctx context.Context, q *store.Queries, userID int64, itemType string, itemID int64, notes string) (store.KanbanItem, error) {
	_, err := q.GetKanbanItemByRef(ctx, store.KanbanItemRefParams{
		UserID:   userID,
		ItemType: itemType,
		ItemID:   itemID,
	})
	if err == nil {
		return store.KanbanItem{}, apperr.Conflictf(errKanbanDuplicate)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.KanbanItem{}, apperr.Internalf(err, "checking kanban item")
	}

	now := time.Now()
	item, err := q.CreateKanbanItem(ctx, store.CreateKanbanItemParams{
		UserID:     userID,
		ItemType:   itemType,
		ItemID:     itemID,
		ColumnName: model.ColumnTodo,
		Position:   0,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return store.KanbanItem{}, apperr.Internalf(err, "creating kanban item")
	}
	return item, nil
}

// addKanbanTolerant adds a board entry, swallowing only the duplicate
// conflict. Start flows call it after find-or-create, where a second start
// via another path may have attached the instance already.
func addKanbanTolerant(ctx context.Context, q *store.Queries, userID int64, itemType string, itemID int64) error {
	_, err := addKanban(ctx, q, userID, itemType, itemID, "")
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Kind == apperr.KindConflict && ae.Msg == errKanbanDuplicate {
		return nil
	}
	return err
}

// Get fetches a board entry by id.
func (s *KanbanService) Get(ctx context.Context, id int64) (store.KanbanItem, error) {
	item, err := s.queries.GetKanbanItemByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.KanbanItem{}, apperr.NotFoundf("kanban item %d not found", id)
	}
	if err != nil {
		return store.KanbanItem{}, apperr.Internalf(err, "loading kanban item")
	}
	return item, nil
}

// List returns the user's board entries.
func (s *KanbanService) List(ctx context.Context, userID int64) ([]store.KanbanItem, error) {
	items, err := s.queries.ListKanbanItemsByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing kanban items")
	}
	return items, nil
}

// Move updates an entry's column, position and notes.
func (s *KanbanService) Move(ctx context.Context, id int64, columnName string, position int64, notes string) (store.KanbanItem, error) {
	if !model.IsKanbanColumn(columnName) {
		return store.KanbanItem{}, apperr.Invalidf("unknown kanban column %q", columnName)
	}
	if position < 0 {
		return store.KanbanItem{}, apperr.Invalidf("position must not be negative")
	}
	if _, err := s.Get(ctx, id); err != nil {
		return store.KanbanItem{}, err
	}
	item, err := s.queries.UpdateKanbanItem(ctx, store.UpdateKanbanItemParams{
		ColumnName: columnName,
		Position:   position,
		Notes:      notes,
		UpdatedAt:  time.Now(),
		ID:         id,
	})
	if err != nil {
		return store.KanbanItem{}, apperr.Internalf(err, "updating kanban item")
	}
	return item, nil
}

// Remove deletes a board entry.
func (s *KanbanService) Remove(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.queries.DeleteKanbanItem(ctx, id); err != nil {
		return apperr.Internalf(err, "deleting kanban item")
	}
	return nil
}
