package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/groeiboek/internal/auth"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "groeiboek-mw-test-*.db")
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
	return db, func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}
}

func createTestUser(t *testing.T, db *sql.DB, status string) store.User {
	t.Helper()
	now := time.Now()
	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Email:     "mw@example.com",
		Name:      "Middleware User",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func echoUserHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUser(r)
		if user == nil {
			t.Error("no user in context")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(user.Email))
	})
}

func TestBearerAuth_ValidToken(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	user := createTestUser(t, db, model.UserActive)
	ti := auth.NewTokenIssuer(testSecret, 15*time.Minute, time.Hour)
	token, _, err := ti.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	handler := BearerAuth(ti, db)(echoUserHandler(t))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != user.Email {
		t.Errorf("body = %q, want %q", rec.Body.String(), user.Email)
	}
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ti := auth.NewTokenIssuer(testSecret, 15*time.Minute, time.Hour)
	handler := BearerAuth(ti, db)(echoUserHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Errorf("body = %q, want error envelope", rec.Body.String())
	}
}

func TestBearerAuth_BadToken(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ti := auth.NewTokenIssuer(testSecret, 15*time.Minute, time.Hour)
	handler := BearerAuth(ti, db)(echoUserHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestBearerAuth_InactiveUser(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	user := createTestUser(t, db, model.UserInactive)
	ti := auth.NewTokenIssuer(testSecret, 15*time.Minute, time.Hour)
	token, _, err := ti.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	handler := BearerAuth(ti, db)(echoUserHandler(t))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestLanguage(t *testing.T) {
	var got string
	handler := Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetLang(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if got != model.LangEN {
		t.Errorf("lang = %q, want en", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if got != model.LangNL {
		t.Errorf("lang = %q, want nl for missing header", got)
	}
}
