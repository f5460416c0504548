package service

import (
	"context"
	"errors"
	"testing"

	"github.com/olegiv/groeiboek/internal/apperr"
)

func TestStartGoal_Idempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	_, goal, _, _, _ := createTemplateTree(t, db)
	user := createTestUser(t, db, "runner@example.com")

	svc := NewInstanceService(db)
	first, err := svc.StartGoal(ctx, user.ID, goal.ID)
	if err != nil {
		t.Fatalf("StartGoal: %v", err)
	}
	second, err := svc.StartGoal(ctx, user.ID, goal.ID)
	if err != nil {
		t.Fatalf("StartGoal (repeat): %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("repeat start returned instance %d, want %d", second.ID, first.ID)
	}

	instances, err := svc.ListGoalInstances(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListGoalInstances: %v", err)
	}
	if len(instances) != 1 {
		t.Errorf("got %d instances, want 1", len(instances))
	}
}

func TestStartGoal_UnknownTemplate(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	user := createTestUser(t, db, "runner@example.com")
	svc := NewInstanceService(db)
	_, err := svc.StartGoal(context.Background(), user.ID, 9999)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestStartKeyResult_RequiresParentInstance(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	_, _, _, kr, _ := createTemplateTree(t, db)
	createTestUser(t, db, "runner@example.com")

	svc := NewInstanceService(db)
	_, err := svc.StartKeyResult(context.Background(), 9999, kr.ID)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
}

func TestStartGoal_AttachesToBoard(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	_, goal, _, _, _ := createTemplateTree(t, db)
	user := createTestUser(t, db, "runner@example.com")

	svc := NewInstanceService(db)
	instance, err := svc.StartGoal(ctx, user.ID, goal.ID)
	if err != nil {
		t.Fatalf("StartGoal: %v", err)
	}

	board := NewKanbanService(db)
	items, err := board.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d board items, want 1", len(items))
	}
	if items[0].ItemID != instance.ID {
		t.Errorf("board item references %d, want %d", items[0].ItemID, instance.ID)
	}
}

func TestComplete_OneWay(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	_, goal, _, _, _ := createTemplateTree(t, db)
	user := createTestUser(t, db, "runner@example.com")

	svc := NewInstanceService(db)
	instance, err := svc.StartGoal(ctx, user.ID, goal.ID)
	if err != nil {
		t.Fatalf("StartGoal: %v", err)
	}
	if err := svc.CompleteGoal(ctx, instance.ID); err != nil {
		t.Fatalf("CompleteGoal: %v", err)
	}
	if err := svc.CompleteGoal(ctx, instance.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("second completion: got %v, want conflict", err)
	}
}

func TestSetKeyResultProgress_Upserts(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	_, _, objective, kr, _ := createTemplateTree(t, db)
	user := createTestUser(t, db, "runner@example.com")

	svc := NewInstanceService(db)
	oi, err := svc.StartObjective(ctx, user.ID, objective.ID)
	if err != nil {
		t.Fatalf("StartObjective: %v", err)
	}

	p1, err := svc.SetKeyResultProgress(ctx, kr.ID, oi.ID, 1)
	if err != nil {
		t.Fatalf("SetKeyResultProgress: %v", err)
	}
	p2, err := svc.SetKeyResultProgress(ctx, kr.ID, oi.ID, 3)
	if err != nil {
		t.Fatalf("SetKeyResultProgress (update): %v", err)
	}
	if p1.ID != p2.ID {
		t.Errorf("upsert created a second row: ids %d and %d", p1.ID, p2.ID)
	}
	if p2.CurrentValue != 3 {
		t.Errorf("current value = %v, want 3", p2.CurrentValue)
	}

	if _, err := svc.SetKeyResultProgress(ctx, kr.ID, oi.ID, -1); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("negative value: got %v, want validation error", err)
	}
}

func TestDeleteGoalInstance_CascadesUserSubtree(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	_, goal, objective, kr, ini := createTemplateTree(t, db)
	user := createTestUser(t, db, "runner@example.com")
	other := createTestUser(t, db, "walker@example.com")

	svc := NewInstanceService(db)
	gi, err := svc.StartGoal(ctx, user.ID, goal.ID)
	if err != nil {
		t.Fatalf("StartGoal: %v", err)
	}
	oi, err := svc.StartObjective(ctx, user.ID, objective.ID)
	if err != nil {
		t.Fatalf("StartObjective: %v", err)
	}
	ki, err := svc.StartKeyResult(ctx, oi.ID, kr.ID)
	if err != nil {
		t.Fatalf("StartKeyResult: %v", err)
	}
	ii, err := svc.StartInitiative(ctx, ki.ID, ini.ID)
	if err != nil {
		t.Fatalf("StartInitiative: %v", err)
	}

	// Another user's enrollment must survive.
	otherOI, err := svc.StartObjective(ctx, other.ID, objective.ID)
	if err != nil {
		t.Fatalf("StartObjective (other): %v", err)
	}

	if err := svc.DeleteGoalInstance(ctx, gi.ID); err != nil {
		t.Fatalf("DeleteGoalInstance: %v", err)
	}

	for _, check := range []struct {
		name string
		err  error
	}{
		{"goal instance", func() error { _, err := svc.GetGoalInstance(ctx, gi.ID); return err }()},
		{"objective instance", func() error { _, err := svc.GetObjectiveInstance(ctx, oi.ID); return err }()},
		{"key result instance", func() error { _, err := svc.GetKeyResultInstance(ctx, ki.ID); return err }()},
		{"initiative instance", func() error { _, err := svc.GetInitiativeInstance(ctx, ii.ID); return err }()},
	} {
		if !errors.Is(check.err, apperr.ErrNotFound) {
			t.Errorf("%s should be gone, got %v", check.name, check.err)
		}
	}

	if _, err := svc.GetObjectiveInstance(ctx, otherOI.ID); err != nil {
		t.Errorf("other user's enrollment should survive: %v", err)
	}

	board := NewKanbanService(db)
	items, err := board.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("user's board should be empty, got %d items", len(items))
	}
}

func TestDeleteKeyResultInstance_CleansUpOrphanCustomTemplate(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	_, _, objective, _, _ := createTemplateTree(t, db)
	user := createTestUser(t, db, "runner@example.com")

	okr := NewOKRService(db)
	customKR, err := okr.CreateKeyResult(ctx, objective.ID, bi("Eigen doel", "Own target"), 10, "km", user.ID)
	if err != nil {
		t.Fatalf("CreateKeyResult: %v", err)
	}

	svc := NewInstanceService(db)
	oi, err := svc.StartObjective(ctx, user.ID, objective.ID)
	if err != nil {
		t.Fatalf("StartObjective: %v", err)
	}
	ki, err := svc.StartKeyResult(ctx, oi.ID, customKR.ID)
	if err != nil {
		t.Fatalf("StartKeyResult: %v", err)
	}

	if err := svc.DeleteKeyResultInstance(ctx, ki.ID); err != nil {
		t.Fatalf("DeleteKeyResultInstance: %v", err)
	}

	// Last instance gone, so the user-created template goes too.
	if _, err := okr.GetKeyResult(ctx, customKR.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("orphaned custom template should be gone, got %v", err)
	}
}

func TestDeleteKeyResultInstance_KeepsSystemTemplate(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	_, _, objective, kr, _ := createTemplateTree(t, db)
	user := createTestUser(t, db, "runner@example.com")

	svc := NewInstanceService(db)
	oi, err := svc.StartObjective(ctx, user.ID, objective.ID)
	if err != nil {
		t.Fatalf("StartObjective: %v", err)
	}
	ki, err := svc.StartKeyResult(ctx, oi.ID, kr.ID)
	if err != nil {
		t.Fatalf("StartKeyResult: %v", err)
	}
	if err := svc.DeleteKeyResultInstance(ctx, ki.ID); err != nil {
		t.Fatalf("DeleteKeyResultInstance: %v", err)
	}

	okr := NewOKRService(db)
	if _, err := okr.GetKeyResult(ctx, kr.ID); err != nil {
		t.Errorf("system template should survive: %v", err)
	}
}
