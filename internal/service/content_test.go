package service

import (
	"context"
	"errors"
	"testing"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

func TestCreateCategory_BilingualFallback(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewContentService(db, nil)

	cat, err := svc.CreateCategory(ctx, bi("Lezen", ""), bi("", ""))
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if cat.TitleNl != "Lezen" || cat.TitleEn != "Lezen" {
		t.Errorf("got titles (%q, %q), want both %q", cat.TitleNl, cat.TitleEn, "Lezen")
	}

	cat, err = svc.CreateCategory(ctx, bi("", "Reading"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if cat.TitleNl != "Reading" || cat.TitleEn != "Reading" {
		t.Errorf("got titles (%q, %q), want both %q", cat.TitleNl, cat.TitleEn, "Reading")
	}
}

func TestCreateCategory_BothTitlesBlank(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	svc := NewContentService(db, nil)
	_, err := svc.CreateCategory(context.Background(), bi("  ", ""), bi("", ""))
	if !errors.Is(err, apperr.ErrInvalid) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestCreateCategory_StartsAsDraft(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewContentService(db, nil)

	cat, err := svc.CreateCategory(ctx, bi("Lezen", "Reading"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	status, err := svc.GetStatus(ctx, model.EntityCategory, cat.ID)
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if status.Status != model.StatusDraft {
		t.Errorf("status = %q, want %q", status.Status, model.StatusDraft)
	}
}

func TestDeleteCategory_SystemProtected(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	if err := store.Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	q := store.New(db)
	cat, err := q.GetCategoryByNumber(ctx, 1)
	if err != nil {
		t.Fatalf("GetCategoryByNumber: %v", err)
	}

	svc := NewContentService(db, nil)
	err = svc.DeleteCategory(ctx, cat.ID)
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("got %v, want conflict", err)
	}
	if _, err := svc.GetCategory(ctx, cat.ID); err != nil {
		t.Errorf("system category should survive the delete attempt: %v", err)
	}
}

func TestChapterPositionBounds(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewContentService(db, nil)

	cat, err := svc.CreateCategory(ctx, bi("Lezen", "Reading"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	book, err := svc.CreateBook(ctx, cat.ID, bi("Boek", "Book"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	if _, err := svc.CreateChapter(ctx, book.ID, bi("Hoofdstuk", "Chapter"), 11); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("position 11: got %v, want validation error", err)
	}
	if _, err := svc.CreateChapter(ctx, book.ID, bi("Hoofdstuk", "Chapter"), 0); err != nil {
		t.Errorf("position 0 should be allowed: %v", err)
	}
	if _, err := svc.CreateChapter(ctx, book.ID, bi("Hoofdstuk 2", "Chapter 2"), 10); err != nil {
		t.Errorf("position 10 should be allowed: %v", err)
	}
}

func TestDeleteCategory_CascadesTree(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewContentService(db, nil)

	cat, err := svc.CreateCategory(ctx, bi("Lezen", "Reading"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	book, err := svc.CreateBook(ctx, cat.ID, bi("Boek", "Book"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}
	chapter, err := svc.CreateChapter(ctx, book.ID, bi("Hoofdstuk", "Chapter"), 1)
	if err != nil {
		t.Fatalf("CreateChapter: %v", err)
	}
	section, err := svc.CreateSection(ctx, chapter.ID, bi("Sectie", "Section"), 0)
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}
	paragraph, err := svc.CreateParagraph(ctx, section.ID, bi("Alinea", "Paragraph"), 1)
	if err != nil {
		t.Fatalf("CreateParagraph: %v", err)
	}

	if err := svc.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	if _, err := svc.GetBook(ctx, book.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("book should be gone, got %v", err)
	}
	if _, err := svc.GetChapter(ctx, chapter.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("chapter should be gone, got %v", err)
	}
	if _, err := svc.GetSection(ctx, section.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("section should be gone, got %v", err)
	}
	if _, err := svc.GetParagraph(ctx, paragraph.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("paragraph should be gone, got %v", err)
	}
}

// fixedLearning is a learning module stub with a canned answer.
type fixedLearning struct {
	inUse bool
	err   error
}

func (f fixedLearning) IsParagraphInUse(ctx context.Context, paragraphID int64) (bool, error) {
	return f.inUse, f.err
}

func TestDeleteParagraph_LearningGuard(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()

	setup := func(svc *ContentService) store.Paragraph {
		cat, err := svc.CreateCategory(ctx, bi("Lezen", "Reading"), bi("", ""))
		if err != nil {
			t.Fatalf("CreateCategory: %v", err)
		}
		book, err := svc.CreateBook(ctx, cat.ID, bi("Boek", "Book"), bi("", ""))
		if err != nil {
			t.Fatalf("CreateBook: %v", err)
		}
		chapter, err := svc.CreateChapter(ctx, book.ID, bi("H", "C"), 1)
		if err != nil {
			t.Fatalf("CreateChapter: %v", err)
		}
		section, err := svc.CreateSection(ctx, chapter.ID, bi("S", "S"), 0)
		if err != nil {
			t.Fatalf("CreateSection: %v", err)
		}
		p, err := svc.CreateParagraph(ctx, section.ID, bi("A", "P"), 1)
		if err != nil {
			t.Fatalf("CreateParagraph: %v", err)
		}
		return p
	}

	inUse := NewContentService(db, fixedLearning{inUse: true})
	p := setup(inUse)
	if err := inUse.DeleteParagraph(ctx, p.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("in-use paragraph: got %v, want conflict", err)
	}

	// A failing learning lookup is treated as feature absent.
	broken := NewContentService(db, fixedLearning{err: errors.New("unreachable")})
	if err := broken.DeleteParagraph(ctx, p.ID); err != nil {
		t.Errorf("unreachable learning module should not block deletion: %v", err)
	}
}

func TestCreateVersion_SequentialNumbers(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	svc := NewContentService(db, nil)
	user := createTestUser(t, db, "author@example.com")

	cat, err := svc.CreateCategory(ctx, bi("Lezen", "Reading"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	book, err := svc.CreateBook(ctx, cat.ID, bi("Boek", "Book"), bi("", ""))
	if err != nil {
		t.Fatalf("CreateBook: %v", err)
	}

	v1, err := svc.CreateVersion(ctx, model.EntityBook, book.ID, user.ID)
	if err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}
	v2, err := svc.CreateVersion(ctx, model.EntityBook, book.ID, user.ID)
	if err != nil {
		t.Fatalf("CreateVersion: %v", err)
	}
	if v1.VersionNumber != 1 || v2.VersionNumber != 2 {
		t.Errorf("version numbers = (%d, %d), want (1, 2)", v1.VersionNumber, v2.VersionNumber)
	}

	versions, err := svc.ListVersions(ctx, model.EntityBook, book.ID)
	if err != nil {
		t.Fatalf("ListVersions: %v", err)
	}
	if len(versions) != 2 {
		t.Errorf("got %d versions, want 2", len(versions))
	}
}
