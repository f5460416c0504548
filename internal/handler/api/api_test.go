package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/groeiboek/internal/auth"
	"github.com/olegiv/groeiboek/internal/learning"
	"github.com/olegiv/groeiboek/internal/testutil"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	issuer := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", 15*time.Minute, 24*time.Hour)
	lockout := auth.NewLockout(auth.DefaultLockoutConfig())
	h := NewHandler(db, issuer, lockout, 7*24*time.Hour, learning.Unconfigured{})
	return h.Routes(nil)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

// registerAndLogin creates a user over the API and returns an access token.
func registerAndLogin(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	rec, env := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]any{
		"email": email, "name": "Tester", "password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "register: %s", env.Error)

	rec, env = doJSON(t, router, http.MethodPost, "/auth/login", "", map[string]any{
		"email": email, "password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, rec.Code, "login: %s", env.Error)

	var data struct {
		Tokens struct {
			AccessToken string `json:"access_token"`
		} `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Tokens.AccessToken)
	return data.Tokens.AccessToken
}

func TestAuthRequired(t *testing.T) {
	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/content/categories", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestRegisterLoginRoundtrip(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "tester@example.com")

	rec, env := doJSON(t, router, http.MethodGet, "/content/categories", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestCreateCategory_LocalizedTitle(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "tester@example.com")

	rec, env := doJSON(t, router, http.MethodPost, "/content/categories", token, map[string]any{
		"title": map[string]string{"nl": "Lezen", "en": "Reading"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)

	var created struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	// No Accept-Language header, Dutch is the default.
	assert.Equal(t, "Lezen", created.Title)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/content/categories/%d", created.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)

	var env2 envelope
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &env2))
	var fetched struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env2.Data, &fetched))
	assert.Equal(t, "Reading", fetched.Title)
}

func TestCreateCategory_InvalidBody(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "tester@example.com")

	req := httptest.NewRequest(http.MethodPost, "/content/categories", bytes.NewBufferString("{not json"))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
}

func TestGetCategory_NotFound(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "tester@example.com")

	rec, env := doJSON(t, router, http.MethodGet, "/content/categories/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestContentTree_CreateAndList(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "tester@example.com")

	_, env := doJSON(t, router, http.MethodPost, "/content/categories", token, map[string]any{
		"title": map[string]string{"nl": "Taal"},
	})
	var cat struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cat))

	rec, env := doJSON(t, router, http.MethodPost, fmt.Sprintf("/content/categories/%d/books", cat.ID), token, map[string]any{
		"title": map[string]string{"nl": "Grammatica"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)
	var book struct {
		ID       int64 `json:"id"`
		ParentID int64 `json:"parent_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &book))
	assert.Equal(t, cat.ID, book.ParentID)

	rec, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/content/categories/%d/books", cat.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var books []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &books))
	assert.Len(t, books, 1)

	// Drafts are hidden from the published listing.
	rec, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/content/categories/%d/books?published=true", cat.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &books))
	assert.Empty(t, books)
}

func TestOKRTemplateAndInstanceFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "tester@example.com")

	_, env := doJSON(t, router, http.MethodPost, "/okr/domains", token, map[string]any{
		"title": map[string]string{"nl": "Gezondheid", "en": "Health"},
	})
	var domain struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &domain))

	rec, env := doJSON(t, router, http.MethodPost, fmt.Sprintf("/okr/domains/%d/goals", domain.ID), token, map[string]any{
		"title": map[string]string{"nl": "Fitter worden"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)
	var goal struct {
		ID     int64  `json:"id"`
		Number string `json:"number"`
		Custom bool   `json:"custom"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &goal))
	assert.Equal(t, "GOAL-1", goal.Number)
	assert.True(t, goal.Custom)

	// Starting twice yields the same instance.
	rec, env = doJSON(t, router, http.MethodPost, fmt.Sprintf("/okr/goals/%d/start", goal.ID), token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)
	var first struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &first))

	rec, env = doJSON(t, router, http.MethodPost, fmt.Sprintf("/okr/goals/%d/start", goal.ID), token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var second struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.Equal(t, first.ID, second.ID)

	// The started goal lands on the board.
	rec, env = doJSON(t, router, http.MethodGet, "/kanban/items", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []struct {
		ItemType string `json:"item_type"`
		ItemID   int64  `json:"item_id"`
		Column   string `json:"column"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "GOAL", items[0].ItemType)
	assert.Equal(t, first.ID, items[0].ItemID)
	assert.Equal(t, "TODO", items[0].Column)
}

func TestKanban_DuplicateConflict(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "tester@example.com")

	_, env := doJSON(t, router, http.MethodPost, "/okr/domains", token, map[string]any{
		"title": map[string]string{"nl": "Werk"},
	})
	var domain struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &domain))
	_, env = doJSON(t, router, http.MethodPost, fmt.Sprintf("/okr/domains/%d/goals", domain.ID), token, map[string]any{
		"title": map[string]string{"nl": "Promotie"},
	})
	var goal struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &goal))

	// Starting the goal already puts its instance on the board.
	rec, env := doJSON(t, router, http.MethodPost, fmt.Sprintf("/okr/goals/%d/start", goal.ID), token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)
	var instance struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &instance))

	rec, env = doJSON(t, router, http.MethodPost, "/kanban/items", token, map[string]any{
		"item_type": "GOAL", "item_id": instance.ID,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "kanban item already exists", env.Error)
}

func TestTeamInvitationFlow(t *testing.T) {
	router := newTestRouter(t)
	ownerToken := registerAndLogin(t, router, "owner@example.com")
	inviteeToken := registerAndLogin(t, router, "invitee@example.com")

	rec, env := doJSON(t, router, http.MethodPost, "/teams/", ownerToken, map[string]any{"name": "Leesclub"})
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)
	var team struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &team))

	rec, env = doJSON(t, router, http.MethodPost, fmt.Sprintf("/teams/%d/invitations", team.ID), ownerToken, map[string]any{
		"email": "invitee@example.com", "role": "member",
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)
	var inv struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &inv))
	require.NotEmpty(t, inv.Token)

	rec, env = doJSON(t, router, http.MethodPost, "/invitations/"+inv.Token+"/accept", inviteeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, env.Error)

	rec, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/teams/%d/members", team.ID), ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var members []struct {
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &members))
	assert.Len(t, members, 2)

	// Token is single-use.
	rec, env = doJSON(t, router, http.MethodPost, "/invitations/"+inv.Token+"/accept", inviteeToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Success)
}

func TestUserGoals_OwnershipByToken(t *testing.T) {
	router := newTestRouter(t)
	aliceToken := registerAndLogin(t, router, "alice@example.com")
	bobToken := registerAndLogin(t, router, "bob@example.com")

	rec, env := doJSON(t, router, http.MethodPost, "/my/goals/", aliceToken, map[string]any{
		"title": "Marathon lopen",
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)
	var goal struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &goal))

	rec, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/my/goals/%d", goal.ID), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)

	rec, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/my/goals/%d", goal.ID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReviewWorkflowOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "author@example.com")

	mustCreate := func(path string, body any) int64 {
		t.Helper()
		rec, env := doJSON(t, router, http.MethodPost, path, token, body)
		require.Equal(t, http.StatusCreated, rec.Code, "%s: %s", path, env.Error)
		var created struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &created))
		return created.ID
	}

	catID := mustCreate("/content/categories", map[string]any{
		"title": map[string]string{"nl": "Taal"},
	})
	bookID := mustCreate(fmt.Sprintf("/content/categories/%d/books", catID), map[string]any{
		"title": map[string]string{"nl": "Spelling"},
	})
	chapterID := mustCreate(fmt.Sprintf("/content/books/%d/chapters", bookID), map[string]any{
		"title": map[string]string{"nl": "Werkwoorden"}, "position": 1,
	})
	sectionID := mustCreate(fmt.Sprintf("/content/chapters/%d/sections", chapterID), map[string]any{
		"title": map[string]string{"nl": "D of dt"},
	})

	versionID := mustCreate(fmt.Sprintf("/content/sections/%d/versions", sectionID), nil)
	reviewID := mustCreate(fmt.Sprintf("/content/sections/%d/submit", sectionID), map[string]any{
		"version_id": versionID,
	})

	rec, env := doJSON(t, router, http.MethodGet, fmt.Sprintf("/content/sections/%d/status", sectionID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code, env.Error)
	var status struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "IN_REVIEW", status.Status)

	rec, env = doJSON(t, router, http.MethodPost, fmt.Sprintf("/content/reviews/%d/approve", reviewID), token, map[string]any{
		"comment": "prima",
	})
	require.Equal(t, http.StatusOK, rec.Code, env.Error)

	rec, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/content/sections/%d/status", sectionID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "PUBLISHED", status.Status)
}
