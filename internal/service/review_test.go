package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// submitTestSection builds a section with a version and submits it,
// returning the review and the section.
func submitTestSection(t *testing.T, db *sql.DB, authorID int64) (store.Review, store.Section) {
	t.Helper()
	ctx := context.Background()
	content := NewContentService(db, nil)
	review := NewReviewService(db)

	cat, err := content.CreateCategory(ctx, bi("Lezen", "Reading"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	book, err := content.CreateBook(ctx, cat.ID, bi("Boek", "Book"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	chapter, err := content.CreateChapter(ctx, book.ID, bi("H", "C"), 1)
	if err != nil {
		t.Fatalf("CreateChapter: %v", err)
	}
	section, err := content.CreateSection(ctx, chapter.ID, bi("S", "S"), 0)
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	version, err := content.CreateVersion(ctx, model.EntitySection, section.ID, authorID)
	if err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}
	r, err := review.SubmitForReview(ctx, model.EntitySection, section.ID, version.ID, authorID)
	if err != nil {
		t.Fatalf("SubmitForReview: %v", err)
	}
	return r, section
}

func TestSubmitForReview_SetsInReview(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")
	r, section := submitTestSection(t, db, author.ID)

	if r.Status != model.ReviewSubmitted {
		t.Errorf("review status = %q, want %q", r.Status, model.ReviewSubmitted)
	}

	content := NewContentService(db, nil)
	status, err := content.GetStatus(ctx, model.EntitySection, section.ID)
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if status.Status != model.StatusInReview {
		t.Errorf("content status = %q, want %q", status.Status, model.StatusInReview)
	}
}

func TestSubmitForReview_RejectsPublished(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")
	reviewer := createTestUser(t, db, "reviewer@example.com")
	r, section := submitTestSection(t, db, author.ID)

	review := NewReviewService(db)
	if _, err := review.Approve(ctx, r.ID, reviewer.ID, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	content := NewContentService(db, nil)
	versions, err := content.ListVersions(ctx, model.EntitySection, section.ID)
	if err != nil {
		t.Fatalf("ListVersions: %v", err)
	}
	_, err = review.SubmitForReview(ctx, model.EntitySection, section.ID, versions[0].ID, author.ID)
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("resubmitting published content: got %v, want conflict", err)
	}
}

func TestApprove_EndsPublished(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")
	reviewer := createTestUser(t, db, "reviewer@example.com")
	r, section := submitTestSection(t, db, author.ID)

	review := NewReviewService(db)
	approved, err := review.Approve(ctx, r.ID, reviewer.ID, "looks good")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != model.ReviewApproved {
		t.Errorf("review status = %q, want %q", approved.Status, model.ReviewApproved)
	}

	content := NewContentService(db, nil)
	status, err := content.GetStatus(ctx, model.EntitySection, section.ID)
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if status.Status != model.StatusPublished {
		t.Errorf("content status = %q, want %q", status.Status, model.StatusPublished)
	}
}

func TestApprove_RequiresSubmitted(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")
	reviewer := createTestUser(t, db, "reviewer@example.com")
	r, _ := submitTestSection(t, db, author.ID)

	review := NewReviewService(db)
	if _, err := review.Approve(ctx, r.ID, reviewer.ID, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := review.Approve(ctx, r.ID, reviewer.ID, ""); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("second approve: got %v, want conflict", err)
	}
}

func TestReject_RequiresComment(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")
	reviewer := createTestUser(t, db, "reviewer@example.com")
	r, section := submitTestSection(t, db, author.ID)

	review := NewReviewService(db)
	if _, err := review.Reject(ctx, r.ID, reviewer.ID, "   "); !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("blank comment: got %v, want validation error", err)
	}

	rejected, err := review.Reject(ctx, r.ID, reviewer.ID, "titel klopt niet")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if rejected.Status != model.ReviewRejected {
		t.Errorf("review status = %q, want %q", rejected.Status, model.ReviewRejected)
	}

	content := NewContentService(db, nil)
	status, err := content.GetStatus(ctx, model.EntitySection, section.ID)
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if status.Status != model.StatusNeedsRevision {
		t.Errorf("content status = %q, want %q", status.Status, model.StatusNeedsRevision)
	}
}

func TestPublishSection_DirectFromDraft(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "author@example.com")
	content := NewContentService(db, nil)
	review := NewReviewService(db)

	cat, err := content.CreateCategory(ctx, bi("Lezen", "Reading"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	book, err := content.CreateBook(ctx, cat.ID, bi("Boek", "Book"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	chapter, err := content.CreateChapter(ctx, book.ID, bi("H", "C"), 1)
	if err != nil {
		t.Fatalf("CreateChapter: %v", err)
	}
	section, err := content.CreateSection(ctx, chapter.ID, bi("S", "S"), 0)
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}

	status, err := review.PublishSection(ctx, section.ID, user.ID)
	if err != nil {
		t.Fatalf("PublishSection: %v", err)
	}
	if status.Status != model.StatusPublished {
		t.Errorf("status = %q, want %q", status.Status, model.StatusPublished)
	}

	// Only drafts can take the shortcut.
	if _, err := review.PublishSection(ctx, section.ID, user.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("publishing a published section: got %v, want conflict", err)
	}
}

func TestReviewComments_CreatorOnly(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	author := createTestUser(t, db, "author@example.com")
	reviewer := createTestUser(t, db, "reviewer@example.com")
	other := createTestUser(t, db, "other@example.com")
	r, section := submitTestSection(t, db, author.ID)

	content := NewContentService(db, nil)
	versions, err := content.ListVersions(ctx, model.EntitySection, section.ID)
	if err != nil {
		t.Fatalf("ListVersions: %v", err)
	}

	review := NewReviewService(db)
	comment, err := review.AddComment(ctx, r.ID, versions[0].ID, "titleNl", "typefout", reviewer.ID)
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	if _, err := review.UpdateComment(ctx, comment.ID, "aangepast", other.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("editing someone else's comment: got %v, want conflict", err)
	}
	if _, err := review.UpdateComment(ctx, comment.ID, "aangepast", reviewer.ID); err != nil {
		t.Errorf("creator edit should succeed: %v", err)
	}
	if err := review.DeleteComment(ctx, comment.ID, reviewer.ID); err != nil {
		t.Errorf("creator delete should succeed: %v", err)
	}
}
