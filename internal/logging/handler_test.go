package logging

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// testDB creates a temporary test database with migrations applied.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "groeiboek-logging-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}
	return db, cleanup
}

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func latestEvents(t *testing.T, db *sql.DB) []store.AuditEvent {
	t.Helper()
	events, err := store.New(db).ListAuditEvents(context.Background(), store.ListAuditEventsParams{Limit: 10})
	if err != nil {
		t.Fatalf("ListAuditEvents: %v", err)
	}
	return events
}

func TestAuditHandler_WarnIsRecorded(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	logger := slog.New(NewAuditHandler(discardHandler{}, db))
	logger.Warn("review rejected", "category", model.AuditCategoryReview, "user_id", int64(7), "item", "book")

	events := latestEvents(t, db)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Level != model.AuditLevelWarning {
		t.Errorf("Level = %q, want %q", ev.Level, model.AuditLevelWarning)
	}
	if ev.Category != model.AuditCategoryReview {
		t.Errorf("Category = %q, want %q", ev.Category, model.AuditCategoryReview)
	}
	if !ev.UserID.Valid || ev.UserID.Int64 != 7 {
		t.Errorf("UserID = %+v, want 7", ev.UserID)
	}
	if !strings.Contains(ev.Metadata, `"item":"book"`) {
		t.Errorf("Metadata = %q, missing item attr", ev.Metadata)
	}
	if strings.Contains(ev.Metadata, "category") {
		t.Errorf("Metadata = %q, category should be extracted", ev.Metadata)
	}
}

func TestAuditHandler_InfoIsNotRecorded(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	logger := slog.New(NewAuditHandler(discardHandler{}, db))
	logger.Info("goal started", "goal_id", 1)

	if events := latestEvents(t, db); len(events) != 0 {
		t.Fatalf("got %d events, want 0 for info level", len(events))
	}
}

func TestAuditHandler_ErrorLevel(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	logger := slog.New(NewAuditHandler(discardHandler{}, db))
	logger.Error("login failed")

	events := latestEvents(t, db)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Level != model.AuditLevelError {
		t.Errorf("Level = %q, want %q", events[0].Level, model.AuditLevelError)
	}
	if events[0].Category != model.AuditCategoryAuth {
		t.Errorf("Category = %q, want %q (inferred)", events[0].Category, model.AuditCategoryAuth)
	}
}

func TestAuditHandler_CustomLevel(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	logger := slog.New(NewAuditHandlerWithLevel(discardHandler{}, db, slog.LevelInfo))
	logger.Info("user created", "category", model.AuditCategoryUser)

	events := latestEvents(t, db)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Level != model.AuditLevelInfo {
		t.Errorf("Level = %q, want %q", events[0].Level, model.AuditLevelInfo)
	}
}
