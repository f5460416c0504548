package service

import (
	"context"
	"errors"
	"testing"

	"github.com/olegiv/groeiboek/internal/apperr"
)

func TestUserGoal_CRUD(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "user@example.com")
	svc := NewUserGoalService(db)

	goal, err := svc.CreateGoal(ctx, user.ID, "Meer lezen", "Elke avond een half uur")
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if err := svc.UpdateGoal(ctx, user.ID, goal.ID, "Meer lezen", "Elke avond een uur"); err != nil {
		t.Fatalf("UpdateGoal: %v", err)
	}

	goals, err := svc.ListGoals(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 1 || goals[0].Description != "Elke avond een uur" {
		t.Errorf("unexpected goals: %+v", goals)
	}
}

func TestUserGoal_OwnershipEnforced(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	svc := NewUserGoalService(db)

	goal, err := svc.CreateGoal(ctx, owner.ID, "Meer lezen", "")
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if _, err := svc.GetGoal(ctx, other.ID, goal.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("foreign access: got %v, want not found", err)
	}
	if err := svc.DeleteGoal(ctx, other.ID, goal.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("foreign delete: got %v, want not found", err)
	}
}

func TestUserGoal_CompleteOneWay(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "user@example.com")
	svc := NewUserGoalService(db)

	goal, err := svc.CreateGoal(ctx, user.ID, "Meer lezen", "")
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if err := svc.CompleteGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("CompleteGoal: %v", err)
	}
	if err := svc.CompleteGoal(ctx, user.ID, goal.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("second completion: got %v, want conflict", err)
	}
}

func TestUserKeyResult_Progress(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "user@example.com")
	svc := NewUserGoalService(db)

	goal, err := svc.CreateGoal(ctx, user.ID, "Meer lezen", "")
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	objective, err := svc.CreateObjective(ctx, user.ID, goal.ID, "Twaalf boeken dit jaar", "")
	if err != nil {
		t.Fatalf("CreateObjective: %v", err)
	}
	kr, err := svc.CreateKeyResult(ctx, user.ID, objective.ID, "Boeken gelezen", 12, "boeken")
	if err != nil {
		t.Fatalf("CreateKeyResult: %v", err)
	}

	if err := svc.RecordProgress(ctx, user.ID, kr.ID, 4); err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	got, err := svc.GetKeyResult(ctx, user.ID, kr.ID)
	if err != nil {
		t.Fatalf("GetKeyResult: %v", err)
	}
	if got.CurrentValue != 4 {
		t.Errorf("current value = %v, want 4", got.CurrentValue)
	}

	if err := svc.RecordProgress(ctx, user.ID, kr.ID, -1); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("negative progress: got %v, want validation error", err)
	}
	if _, err := svc.CreateKeyResult(ctx, user.ID, objective.ID, "Niks", 0, ""); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("zero target: got %v, want validation error", err)
	}
}

func TestUserGoal_DeleteCascades(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "user@example.com")
	svc := NewUserGoalService(db)

	goal, err := svc.CreateGoal(ctx, user.ID, "Meer lezen", "")
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	objective, err := svc.CreateObjective(ctx, user.ID, goal.ID, "Twaalf boeken", "")
	if err != nil {
		t.Fatalf("CreateObjective: %v", err)
	}
	kr, err := svc.CreateKeyResult(ctx, user.ID, objective.ID, "Boeken gelezen", 12, "boeken")
	if err != nil {
		t.Fatalf("CreateKeyResult: %v", err)
	}
	ini, err := svc.CreateInitiative(ctx, user.ID, kr.ID, "Leesmoment inplannen", "")
	if err != nil {
		t.Fatalf("CreateInitiative: %v", err)
	}

	if err := svc.DeleteGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}

	if _, err := svc.GetObjective(ctx, user.ID, objective.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("objective should be gone, got %v", err)
	}
	if _, err := svc.GetKeyResult(ctx, user.ID, kr.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("key result should be gone, got %v", err)
	}
	if _, err := svc.GetInitiative(ctx, user.ID, ini.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("initiative should be gone, got %v", err)
	}
}
