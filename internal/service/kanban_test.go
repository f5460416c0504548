package service

import (
	"context"
	"errors"
	"testing"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

func TestKanbanAdd_DuplicateRejected(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "runner@example.com")

	svc := NewKanbanService(db)
	if _, err := svc.Add(ctx, user.ID, model.ItemGoal, 42, ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	_, err := svc.Add(ctx, user.ID, model.ItemGoal, 42, "")
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate add: got %v, want conflict", err)
	}
	var ae *apperr.Error
	if !errors.As(err, &ae) || ae.Msg != "kanban item already exists" {
		t.Errorf("got message %v, want %q", err, "kanban item already exists")
	}
}

func TestKanbanAddTolerant_SwallowsOnlyDuplicate(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "runner@example.com")
	q := store.New(db)

	if err := addKanbanTolerant(ctx, q, user.ID, model.ItemObjective, 7); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := addKanbanTolerant(ctx, q, user.ID, model.ItemObjective, 7); err != nil {
		t.Fatalf("duplicate should be swallowed, got %v", err)
	}

	items, err := NewKanbanService(db).List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("got %d items, want 1", len(items))
	}
}

func TestKanbanAdd_UnknownType(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	user := createTestUser(t, db, "runner@example.com")
	svc := NewKanbanService(db)
	_, err := svc.Add(context.Background(), user.ID, "EPIC", 1, "")
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestKanbanMove(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "runner@example.com")

	svc := NewKanbanService(db)
	item, err := svc.Add(ctx, user.ID, model.ItemKeyResult, 3, "notitie")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if item.ColumnName != model.ColumnTodo || item.Position != 0 {
		t.Errorf("new item = (%q, %d), want (TODO, 0)", item.ColumnName, item.Position)
	}

	moved, err := svc.Move(ctx, item.ID, model.ColumnDone, 2, "klaar")
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if moved.ColumnName != model.ColumnDone || moved.Position != 2 || moved.Notes != "klaar" {
		t.Errorf("moved item = (%q, %d, %q)", moved.ColumnName, moved.Position, moved.Notes)
	}

	if _, err := svc.Move(ctx, item.ID, "DOING", 0, ""); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("unknown column: got %v, want validation error", err)
	}
	if _, err := svc.Move(ctx, item.ID, model.ColumnTodo, -1, ""); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("negative position: got %v, want validation error", err)
	}
}

func TestKanbanRemove(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "runner@example.com")

	svc := NewKanbanService(db)
	item, err := svc.Add(ctx, user.ID, model.ItemInitiative, 5, "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := svc.Remove(ctx, item.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := svc.Get(ctx, item.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("got %v, want not found", err)
	}
}
