package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/olegiv/groeiboek/internal/model"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "groeiboek-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func TestCreateUser(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:     "test@example.com",
		Name:      "Test User",
		Status:    model.UserActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if user.ID == 0 {
		t.Error("user.ID should not be 0")
	}
	if user.Email != "test@example.com" {
		t.Errorf("Email = %q, want %q", user.Email, "test@example.com")
	}
	if user.Status != model.UserActive {
		t.Errorf("Status = %q, want %q", user.Status, model.UserActive)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	q := New(db)
	_, err := q.GetUserByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}

func TestUpsertContentStatus(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	now := time.Now()
	first, err := q.UpsertContentStatus(ctx, UpsertContentStatusParams{
		EntityType: model.EntityBook,
		EntityID:   42,
		Status:     model.StatusDraft,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("UpsertContentStatus: %v", err)
	}
	if first.Status != model.StatusDraft {
		t.Errorf("Status = %q, want %q", first.Status, model.StatusDraft)
	}

	second, err := q.UpsertContentStatus(ctx, UpsertContentStatusParams{
		EntityType: model.EntityBook,
		EntityID:   42,
		Status:     model.StatusInReview,
		UserID:     7,
		UpdatedAt:  now.Add(time.Second),
	})
	if err != nil {
		t.Fatalf("UpsertContentStatus (update): %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a second row: id %d vs %d", second.ID, first.ID)
	}
	if second.Status != model.StatusInReview {
		t.Errorf("Status = %q, want %q", second.Status, model.StatusInReview)
	}

	got, err := q.GetContentStatus(ctx, GetContentStatusParams{
		EntityType: model.EntityBook,
		EntityID:   42,
	})
	if err != nil {
		t.Fatalf("GetContentStatus: %v", err)
	}
	if got.Status != model.StatusInReview {
		t.Errorf("Status = %q, want %q", got.Status, model.StatusInReview)
	}
}

func TestUserGoalInstance_DuplicateRejected(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	user, goal := seedUserAndGoal(t, ctx, q)

	_, err := q.CreateUserGoalInstance(ctx, CreateUserGoalInstanceParams{
		UserID:    user.ID,
		GoalID:    goal.ID,
		StartedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateUserGoalInstance: %v", err)
	}

	_, err = q.CreateUserGoalInstance(ctx, CreateUserGoalInstanceParams{
		UserID:    user.ID,
		GoalID:    goal.ID,
		StartedAt: time.Now(),
	})
	if err == nil {
		t.Fatal("duplicate enrollment should violate the unique index")
	}
}

func TestKanbanItem_DuplicateRejected(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	user, _ := seedUserAndGoal(t, ctx, q)

	now := time.Now()
	_, err := q.CreateKanbanItem(ctx, CreateKanbanItemParams{
		UserID:     user.ID,
		ItemType:   model.ItemGoal,
		ItemID:     1,
		ColumnName: model.ColumnTodo,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("CreateKanbanItem: %v", err)
	}

	_, err = q.CreateKanbanItem(ctx, CreateKanbanItemParams{
		UserID:     user.ID,
		ItemType:   model.ItemGoal,
		ItemID:     1,
		ColumnName: model.ColumnDone,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err == nil {
		t.Fatal("same item added twice should violate the unique index")
	}
}

func TestNextEntityNumber(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	for want := int64(1); want <= 3; want++ {
		got, err := q.NextEntityNumber(ctx, model.EntityBook)
		if err != nil {
			t.Fatalf("NextEntityNumber: %v", err)
		}
		if got != want {
			t.Errorf("NextEntityNumber = %d, want %d", got, want)
		}
	}

	// Independent counter per entity type.
	got, err := q.NextEntityNumber(ctx, model.EntityChapter)
	if err != nil {
		t.Fatalf("NextEntityNumber: %v", err)
	}
	if got != 1 {
		t.Errorf("chapter counter = %d, want 1", got)
	}
}

func TestNextEntityNumber_Concurrent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	const n = 20
	results := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := q.NextEntityNumber(ctx, model.NumberPrefixGoal)
			if err != nil {
				t.Errorf("NextEntityNumber: %v", err)
				return
			}
			results <- v
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for v := range results {
		if seen[v] {
			t.Errorf("number %d handed out twice", v)
		}
		seen[v] = true
		if v < 1 || v > n {
			t.Errorf("number %d outside [1,%d]", v, n)
		}
	}
}

func TestNextVersionNumber_PerParent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	v1, err := q.NextVersionNumber(ctx, NextVersionNumberParams{EntityType: model.EntityBook, ParentID: 1})
	if err != nil {
		t.Fatalf("NextVersionNumber: %v", err)
	}
	v2, err := q.NextVersionNumber(ctx, NextVersionNumberParams{EntityType: model.EntityBook, ParentID: 1})
	if err != nil {
		t.Fatalf("NextVersionNumber: %v", err)
	}
	other, err := q.NextVersionNumber(ctx, NextVersionNumberParams{EntityType: model.EntityBook, ParentID: 2})
	if err != nil {
		t.Fatalf("NextVersionNumber: %v", err)
	}

	if v1 != 1 || v2 != 2 {
		t.Errorf("versions = %d, %d, want 1, 2", v1, v2)
	}
	if other != 1 {
		t.Errorf("other parent version = %d, want 1", other)
	}
}

func TestEnsureEntityNumberFloor(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	q := New(db)

	if err := q.EnsureEntityNumberFloor(ctx, EnsureEntityNumberFloorParams{
		EntityType: model.EntityCategory,
		Floor:      3,
	}); err != nil {
		t.Fatalf("EnsureEntityNumberFloor: %v", err)
	}

	got, err := q.NextEntityNumber(ctx, model.EntityCategory)
	if err != nil {
		t.Fatalf("NextEntityNumber: %v", err)
	}
	if got != 4 {
		t.Errorf("NextEntityNumber after floor = %d, want 4", got)
	}

	// Lower floor must not wind the counter back.
	if err := q.EnsureEntityNumberFloor(ctx, EnsureEntityNumberFloorParams{
		EntityType: model.EntityCategory,
		Floor:      1,
	}); err != nil {
		t.Fatalf("EnsureEntityNumberFloor: %v", err)
	}
	got, err = q.NextEntityNumber(ctx, model.EntityCategory)
	if err != nil {
		t.Fatalf("NextEntityNumber: %v", err)
	}
	if got != 5 {
		t.Errorf("NextEntityNumber = %d, want 5", got)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx: %v", err)
	}
	q := New(db).WithTx(tx)

	now := time.Now()
	if _, err := q.CreateUser(ctx, CreateUserParams{
		Email:     "tx@example.com",
		Name:      "Tx User",
		Status:    model.UserActive,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		t.Fatalf("CreateUser in tx: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	_, err = New(db).GetUserByEmail(ctx, "tx@example.com")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("user visible after rollback: err = %v", err)
	}
}

// seedUserAndGoal inserts the rows needed by instance and kanban tests.
func seedUserAndGoal(t *testing.T, ctx context.Context, q *Queries) (User, Goal) {
	t.Helper()

	now := time.Now()
	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:     "member@example.com",
		Name:      "Member",
		Status:    model.UserActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	domain, err := q.CreateLifeDomain(ctx, CreateLifeDomainParams{
		TitleNl:   "Gezondheid",
		TitleEn:   "Health",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateLifeDomain: %v", err)
	}

	goal, err := q.CreateGoal(ctx, CreateGoalParams{
		LifeDomainID: domain.ID,
		GoalNumber:   "GOAL-1",
		TitleNl:      "Beter slapen",
		TitleEn:      "Sleep better",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	return user, goal
}
