package service

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/olegiv/groeiboek/internal/auth"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", 15*time.Minute, 24*time.Hour)
}

func testLockout() *auth.Lockout {
	return auth.NewLockout(auth.DefaultLockoutConfig())
}

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "groeiboek-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := store.Migrate(db); err != nil {
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

func bi(nl, en string) model.Bilingual {
	return model.Bilingual{NL: nl, EN: en}
}

func createTestUser(t *testing.T, db *sql.DB, email string) store.User {
	t.Helper()
	svc := NewAuthService(db, testIssuer(), testLockout())
	user, err := svc.Register(context.Background(), email, "Test User", "correct-horse-battery")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return user
}

// createTemplateTree builds domain → goal → objective → key result →
// initiative as system templates and returns all five.
func createTemplateTree(t *testing.T, db *sql.DB) (store.LifeDomain, store.Goal, store.Objective, store.KeyResult, store.Initiative) {
	t.Helper()
	ctx := context.Background()
	svc := NewOKRService(db)

	domain, err := svc.CreateLifeDomain(ctx, bi("Gezondheid", "Health"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateLifeDomain: %v", err)
	}
	goal, err := svc.CreateGoal(ctx, domain.ID, bi("Fitter worden", "Get fitter"), bi("", ""), 0)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	objective, err := svc.CreateObjective(ctx, goal.ID, bi("Conditie opbouwen", "Build stamina"), bi("", ""), 0)
	if err != nil {
		t.Fatalf("CreateObjective: %v", err)
	}
	kr, err := svc.CreateKeyResult(ctx, objective.ID, bi("5 km hardlopen", "Run 5 km"), 5, "km", 0)
	if err != nil {
		t.Fatalf("CreateKeyResult: %v", err)
	}
	ini, err := svc.CreateInitiative(ctx, kr.ID, bi("Drie keer per week trainen", "Train three times a week"), bi("", ""), 0)
	if err != nil {
		t.Fatalf("CreateInitiative: %v", err)
	}
	return domain, goal, objective, kr, ini
}
