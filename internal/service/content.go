// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic for the content, review, OKR,
// kanban, team and auth modules.
package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/learning"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// ContentService manages the Category→Book→Chapter→Section→Paragraph
// hierarchy, its versions, and the per-entity status rows.
type ContentService struct {
	db       *sql.DB
	queries  *store.Queries
	learning learning.Module
}

// NewContentService creates a ContentService. Pass learning.Unconfigured{}
// when no learning system is attached.
func NewContentService(db *sql.DB, lm learning.Module) *ContentService {
	if lm == nil {
		lm = learning.Unconfigured{}
	}
	return &ContentService{
		db:       db,
		queries:  store.New(db),
		learning: lm,
	}
}

// normalizeTitle validates and normalizes a bilingual pair.
func normalizeTitle(b model.Bilingual) (model.Bilingual, error) {
	if b.IsBlank() {
		return model.Bilingual{}, apperr.Invalidf("title must be set in at least one language")
	}
	return b.Normalize(), nil
}

// normalizeDescription normalizes an optional bilingual pair. A fully blank
// description stays blank.
func normalizeDescription(b model.Bilingual) model.Bilingual {
	if b.IsBlank() {
		return model.Bilingual{}
	}
	return b.Normalize()
}

// vivifyStatus returns the status row for an entity, creating a DRAFT row if
// none exists yet.
func vivifyStatus(ctx context.Context, q *store.Queries, entityType string, entityID int64) (store.ContentStatus, error) {
	status, err := q.GetContentStatus(ctx, store.GetContentStatusParams{
		EntityType: entityType,
		EntityID:   entityID,
	})
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return store.ContentStatus{}, apperr.Internalf(err, "loading %s status", entityType)
	}
	status, err = q.UpsertContentStatus(ctx, store.UpsertContentStatusParams{
		EntityType: entityType,
		EntityID:   entityID,
		Status:     model.StatusDraft,
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		return store.ContentStatus{}, apperr.Internalf(err, "creating %s status", entityType)
	}
	return status, nil
}

// withTx runs fn inside a transaction against q's database.
func withTx(ctx context.Context, db *sql.DB, fn func(q *store.Queries) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Internalf(err, "beginning transaction")
	}
	if err := fn(store.New(db).WithTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return apperr.Internalf(err, "committing transaction")
	}
	return nil
}

// CreateCategory creates a non-system category with a freshly generated
// category number.
func (s *ContentService) CreateCategory(ctx context.Context, title, description model.Bilingual) (store.Category, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Category{}, err
	}
	description = normalizeDescription(description)

	var cat store.Category
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		number, err := q.NextEntityNumber(ctx, model.EntityCategory)
		if err != nil {
			return apperr.Internalf(err, "generating category number")
		}
		now := time.Now()
		cat, err = q.CreateCategory(ctx, store.CreateCategoryParams{
			CategoryNumber: number,
			TitleNl:        title.NL,
			TitleEn:        title.EN,
			DescriptionNl:  description.NL,
			DescriptionEn:  description.EN,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating category")
		}
		_, err = q.UpsertContentStatus(ctx, store.UpsertContentStatusParams{
			EntityType: model.EntityCategory,
			EntityID:   cat.ID,
			Status:     model.StatusDraft,
			UpdatedAt:  now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating category status")
		}
		return nil
	})
	return cat, err
}

// GetCategory fetches a category by id.
func (s *ContentService) GetCategory(ctx context.Context, id int64) (store.Category, error) {
	cat, err := s.queries.GetCategoryByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Category{}, apperr.NotFoundf("category %d not found", id)
	}
	if err != nil {
		return store.Category{}, apperr.Internalf(err, "loading category")
	}
	return cat, nil
}

// ListCategories lists categories. With publishedOnly, only categories whose
// status is PUBLISHED are returned.
func (s *ContentService) ListCategories(ctx context.Context, publishedOnly bool) ([]store.Category, error) {
	var (
		cats []store.Category
		err  error
	)
	if publishedOnly {
		cats, err = s.queries.ListPublishedCategories(ctx)
	} else {
		cats, err = s.queries.ListCategories(ctx)
	}
	if err != nil {
		return nil, apperr.Internalf(err, "listing categories")
	}
	return cats, nil
}

// UpdateCategory re-applies bilingual normalization and saves new titles.
func (s *ContentService) UpdateCategory(ctx context.Context, id int64, title, description model.Bilingual) (store.Category, error) {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return store.Category{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Category{}, err
	}
	description = normalizeDescription(description)

	if err := s.queries.UpdateCategory(ctx, store.UpdateCategoryParams{
		TitleNl:       title.NL,
		TitleEn:       title.EN,
		DescriptionNl: description.NL,
		DescriptionEn: description.EN,
		UpdatedAt:     time.Now(),
		ID:            id,
	}); err != nil {
		return store.Category{}, apperr.Internalf(err, "updating category")
	}
	return s.GetCategory(ctx, id)
}

// DeleteCategory removes a category with all its books, chapters, sections
// and paragraphs. System categories are protected.
func (s *ContentService) DeleteCategory(ctx context.Context, id int64) error {
	cat, err := s.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	if model.IsSystemCategory(cat.CategoryNumber) {
		return apperr.Conflictf("category %d is a system category and cannot be deleted", cat.CategoryNumber)
	}

	return withTx(ctx, s.db, func(q *store.Queries) error {
		books, err := q.ListBooksByCategory(ctx, id)
		if err != nil {
			return apperr.Internalf(err, "listing books")
		}
		for _, b := range books {
			if err := s.deleteBookTree(ctx, q, b.ID); err != nil {
				return err
			}
		}
		if err := q.DeleteCategory(ctx, id); err != nil {
			return apperr.Internalf(err, "deleting category")
		}
		return s.dropStatus(ctx, q, model.EntityCategory, id)
	})
}

// CreateBook creates a book under a category, starting in DRAFT.
func (s *ContentService) CreateBook(ctx context.Context, categoryID int64, title, description model.Bilingual) (store.Book, error) {
	if _, err := s.GetCategory(ctx, categoryID); err != nil {
		return store.Book{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Book{}, err
	}
	description = normalizeDescription(description)

	var book store.Book
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		now := time.Now()
		book, err = q.CreateBook(ctx, store.CreateBookParams{
			CategoryID:    categoryID,
			TitleNl:       title.NL,
			TitleEn:       title.EN,
			DescriptionNl: description.NL,
			DescriptionEn: description.EN,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating book")
		}
		_, err = q.UpsertContentStatus(ctx, store.UpsertContentStatusParams{
			EntityType: model.EntityBook,
			EntityID:   book.ID,
			Status:     model.StatusDraft,
			UpdatedAt:  now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating book status")
		}
		return nil
	})
	return book, err
}

// GetBook fetches a book by id.
func (s *ContentService) GetBook(ctx context.Context, id int64) (store.Book, error) {
	book, err := s.queries.GetBookByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Book{}, apperr.NotFoundf("book %d not found", id)
	}
	if err != nil {
		return store.Book{}, apperr.Internalf(err, "loading book")
	}
	return book, nil
}

// ListBooks lists a category's books, optionally only published ones.
func (s *ContentService) ListBooks(ctx context.Context, categoryID int64, publishedOnly bool) ([]store.Book, error) {
	var (
		books []store.Book
		err   error
	)
	if publishedOnly {
		books, err = s.queries.ListPublishedBooksByCategory(ctx, categoryID)
	} else {
		books, err = s.queries.ListBooksByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, apperr.Internalf(err, "listing books")
	}
	return books, nil
}

// UpdateBook saves new titles for a book.
func (s *ContentService) UpdateBook(ctx context.Context, id int64, title, description model.Bilingual) (store.Book, error) {
	if _, err := s.GetBook(ctx, id); err != nil {
		return store.Book{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Book{}, err
	}
	description = normalizeDescription(description)

	if err := s.queries.UpdateBook(ctx, store.UpdateBookParams{
		TitleNl:       title.NL,
		TitleEn:       title.EN,
		DescriptionNl: description.NL,
		DescriptionEn: description.EN,
		UpdatedAt:     time.Now(),
		ID:            id,
	}); err != nil {
		return store.Book{}, apperr.Internalf(err, "updating book")
	}
	return s.GetBook(ctx, id)
}

// DeleteBook removes a book and everything under it.
func (s *ContentService) DeleteBook(ctx context.Context, id int64) error {
	if _, err := s.GetBook(ctx, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		return s.deleteBookTree(ctx, q, id)
	})
}

// CreateChapter creates a chapter under a book. Position 0 means unplaced;
// placed chapters use 1..10.
func (s *ContentService) CreateChapter(ctx context.Context, bookID int64, title model.Bilingual, position int64) (store.Chapter, error) {
	if _, err := s.GetBook(ctx, bookID); err != nil {
		return store.Chapter{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Chapter{}, err
	}
	if !model.IsValidChapterPosition(position) {
		return store.Chapter{}, apperr.Invalidf("chapter position must be 0 or between %d and %d", model.ChapterPositionMin, model.ChapterPositionMax)
	}

	var chapter store.Chapter
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		now := time.Now()
		chapter, err = q.CreateChapter(ctx, store.CreateChapterParams{
			BookID:    bookID,
			TitleNl:   title.NL,
			TitleEn:   title.EN,
			Position:  position,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating chapter")
		}
		_, err = q.UpsertContentStatus(ctx, store.UpsertContentStatusParams{
			EntityType: model.EntityChapter,
			EntityID:   chapter.ID,
			Status:     model.StatusDraft,
			UpdatedAt:  now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating chapter status")
		}
		return nil
	})
	return chapter, err
}

// GetChapter fetches a chapter by id.
func (s *ContentService) GetChapter(ctx context.Context, id int64) (store.Chapter, error) {
	chapter, err := s.queries.GetChapterByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Chapter{}, apperr.NotFoundf("chapter %d not found", id)
	}
	if err != nil {
		return store.Chapter{}, apperr.Internalf(err, "loading chapter")
	}
	return chapter, nil
}

// ListChapters lists a book's chapters, optionally only published ones.
func (s *ContentService) ListChapters(ctx context.Context, bookID int64, publishedOnly bool) ([]store.Chapter, error) {
	var (
		chapters []store.Chapter
		err      error
	)
	if publishedOnly {
		chapters, err = s.queries.ListPublishedChaptersByBook(ctx, bookID)
	} else {
		chapters, err = s.queries.ListChaptersByBook(ctx, bookID)
	}
	if err != nil {
		return nil, apperr.Internalf(err, "listing chapters")
	}
	return chapters, nil
}

// UpdateChapter saves new titles and position for a chapter.
func (s *ContentService) UpdateChapter(ctx context.Context, id int64, title model.Bilingual, position int64) (store.Chapter, error) {
	if _, err := s.GetChapter(ctx, id); err != nil {
		return store.Chapter{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Chapter{}, err
	}
	if !model.IsValidChapterPosition(position) {
		return store.Chapter{}, apperr.Invalidf("chapter position must be 0 or between %d and %d", model.ChapterPositionMin, model.ChapterPositionMax)
	}

	if err := s.queries.UpdateChapter(ctx, store.UpdateChapterParams{
		TitleNl:   title.NL,
		TitleEn:   title.EN,
		Position:  position,
		UpdatedAt: time.Now(),
		ID:        id,
	}); err != nil {
		return store.Chapter{}, apperr.Internalf(err, "updating chapter")
	}
	return s.GetChapter(ctx, id)
}

// DeleteChapter removes a chapter and everything under it.
func (s *ContentService) DeleteChapter(ctx context.Context, id int64) error {
	if _, err := s.GetChapter(ctx, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		return s.deleteChapterTree(ctx, q, id)
	})
}

// CreateSection creates a section under a chapter.
func (s *ContentService) CreateSection(ctx context.Context, chapterID int64, title model.Bilingual, orderIndex int64) (store.Section, error) {
	if _, err := s.GetChapter(ctx, chapterID); err != nil {
		return store.Section{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Section{}, err
	}
	if orderIndex < 0 {
		return store.Section{}, apperr.Invalidf("section order index must not be negative")
	}

	var section store.Section
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		now := time.Now()
		section, err = q.CreateSection(ctx, store.CreateSectionParams{
			ChapterID:  chapterID,
			TitleNl:    title.NL,
			TitleEn:    title.EN,
			OrderIndex: orderIndex,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating section")
		}
		_, err = q.UpsertContentStatus(ctx, store.UpsertContentStatusParams{
			EntityType: model.EntitySection,
			EntityID:   section.ID,
			Status:     model.StatusDraft,
			UpdatedAt:  now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating section status")
		}
		return nil
	})
	return section, err
}

// GetSection fetches a section by id.
func (s *ContentService) GetSection(ctx context.Context, id int64) (store.Section, error) {
	section, err := s.queries.GetSectionByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Section{}, apperr.NotFoundf("section %d not found", id)
	}
	if err != nil {
		return store.Section{}, apperr.Internalf(err, "loading section")
	}
	return section, nil
}

// ListSections lists a chapter's sections, optionally only published ones.
func (s *ContentService) ListSections(ctx context.Context, chapterID int64, publishedOnly bool) ([]store.Section, error) {
	var (
		sections []store.Section
		err      error
	)
	if publishedOnly {
		sections, err = s.queries.ListPublishedSectionsByChapter(ctx, chapterID)
	} else {
		sections, err = s.queries.ListSectionsByChapter(ctx, chapterID)
	}
	if err != nil {
		return nil, apperr.Internalf(err, "listing sections")
	}
	return sections, nil
}

// UpdateSection saves new titles and order index for a section.
func (s *ContentService) UpdateSection(ctx context.Context, id int64, title model.Bilingual, orderIndex int64) (store.Section, error) {
	if _, err := s.GetSection(ctx, id); err != nil {
		return store.Section{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Section{}, err
	}
	if orderIndex < 0 {
		return store.Section{}, apperr.Invalidf("section order index must not be negative")
	}

	if err := s.queries.UpdateSection(ctx, store.UpdateSectionParams{
		TitleNl:    title.NL,
		TitleEn:    title.EN,
		OrderIndex: orderIndex,
		UpdatedAt:  time.Now(),
		ID:         id,
	}); err != nil {
		return store.Section{}, apperr.Internalf(err, "updating section")
	}
	return s.GetSection(ctx, id)
}

// DeleteSection removes a section and its paragraphs.
func (s *ContentService) DeleteSection(ctx context.Context, id int64) error {
	if _, err := s.GetSection(ctx, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		return s.deleteSectionTree(ctx, q, id)
	})
}

// CreateParagraph creates a paragraph under a section.
func (s *ContentService) CreateParagraph(ctx context.Context, sectionID int64, title model.Bilingual, paragraphNumber int64) (store.Paragraph, error) {
	if _, err := s.GetSection(ctx, sectionID); err != nil {
		return store.Paragraph{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Paragraph{}, err
	}
	if paragraphNumber < 1 {
		return store.Paragraph{}, apperr.Invalidf("paragraph number must be at least 1")
	}

	var paragraph store.Paragraph
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		now := time.Now()
		paragraph, err = q.CreateParagraph(ctx, store.CreateParagraphParams{
			SectionID:       sectionID,
			TitleNl:         title.NL,
			TitleEn:         title.EN,
			ParagraphNumber: paragraphNumber,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating paragraph")
		}
		_, err = q.UpsertContentStatus(ctx, store.UpsertContentStatusParams{
			EntityType: model.EntityParagraph,
			EntityID:   paragraph.ID,
			Status:     model.StatusDraft,
			UpdatedAt:  now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating paragraph status")
		}
		return nil
	})
	return paragraph, err
}

// GetParagraph fetches a paragraph by id.
func (s *ContentService) GetParagraph(ctx context.Context, id int64) (store.Paragraph, error) {
	paragraph, err := s.queries.GetParagraphByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Paragraph{}, apperr.NotFoundf("paragraph %d not found", id)
	}
	if err != nil {
		return store.Paragraph{}, apperr.Internalf(err, "loading paragraph")
	}
	return paragraph, nil
}

// ListParagraphs lists a section's paragraphs, optionally only published ones.
func (s *ContentService) ListParagraphs(ctx context.Context, sectionID int64, publishedOnly bool) ([]store.Paragraph, error) {
	var (
		paragraphs []store.Paragraph
		err        error
	)
	if publishedOnly {
		paragraphs, err = s.queries.ListPublishedParagraphsBySection(ctx, sectionID)
	} else {
		paragraphs, err = s.queries.ListParagraphsBySection(ctx, sectionID)
	}
	if err != nil {
		return nil, apperr.Internalf(err, "listing paragraphs")
	}
	return paragraphs, nil
}

// UpdateParagraph saves new titles and number for a paragraph.
func (s *ContentService) UpdateParagraph(ctx context.Context, id int64, title model.Bilingual, paragraphNumber int64) (store.Paragraph, error) {
	if _, err := s.GetParagraph(ctx, id); err != nil {
		return store.Paragraph{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Paragraph{}, err
	}
	if paragraphNumber < 1 {
		return store.Paragraph{}, apperr.Invalidf("paragraph number must be at least 1")
	}

	if err := s.queries.UpdateParagraph(ctx, store.UpdateParagraphParams{
		TitleNl:         title.NL,
		TitleEn:         title.EN,
		ParagraphNumber: paragraphNumber,
		UpdatedAt:       time.Now(),
		ID:              id,
	}); err != nil {
		return store.Paragraph{}, apperr.Internalf(err, "updating paragraph")
	}
	return s.GetParagraph(ctx, id)
}

// DeleteParagraph removes a paragraph unless the learning module reports it
// in use. A failing learning lookup is treated as "feature absent".
func (s *ContentService) DeleteParagraph(ctx context.Context, id int64) error {
	if _, err := s.GetParagraph(ctx, id); err != nil {
		return err
	}
	if err := s.guardParagraphUnused(ctx, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		return s.deleteParagraphLeaf(ctx, q, id)
	})
}

func (s *ContentService) guardParagraphUnused(ctx context.Context, id int64) error {
	inUse, err := s.learning.IsParagraphInUse(ctx, id)
	if err != nil {
		slog.Debug("learning module lookup failed, skipping paragraph guard", "paragraph_id", id, "error", err)
		return nil
	}
	if inUse {
		return apperr.Conflictf("paragraph %d is referenced by learning material", id)
	}
	return nil
}

// deleteBookTree deletes a book post-order: paragraphs, sections, chapters,
// then the book itself, dropping each entity's status row.
func (s *ContentService) deleteBookTree(ctx context.Context, q *store.Queries, bookID int64) error {
	chapters, err := q.ListChaptersByBook(ctx, bookID)
	if err != nil {
		return apperr.Internalf(err, "listing chapters")
	}
	for _, c := range chapters {
		if err := s.deleteChapterTree(ctx, q, c.ID); err != nil {
			return err
		}
	}
	if err := q.DeleteBook(ctx, bookID); err != nil {
		return apperr.Internalf(err, "deleting book")
	}
	return s.dropStatus(ctx, q, model.EntityBook, bookID)
}

func (s *ContentService) deleteChapterTree(ctx context.Context, q *store.Queries, chapterID int64) error {
	sections, err := q.ListSectionsByChapter(ctx, chapterID)
	if err != nil {
		return apperr.Internalf(err, "listing sections")
	}
	for _, sec := range sections {
		if err := s.deleteSectionTree(ctx, q, sec.ID); err != nil {
			return err
		}
	}
	if err := q.DeleteChapter(ctx, chapterID); err != nil {
		return apperr.Internalf(err, "deleting chapter")
	}
	return s.dropStatus(ctx, q, model.EntityChapter, chapterID)
}

func (s *ContentService) deleteSectionTree(ctx context.Context, q *store.Queries, sectionID int64) error {
	paragraphs, err := q.ListParagraphsBySection(ctx, sectionID)
	if err != nil {
		return apperr.Internalf(err, "listing paragraphs")
	}
	for _, p := range paragraphs {
		if err := s.deleteParagraphLeaf(ctx, q, p.ID); err != nil {
			return err
		}
	}
	if err := q.DeleteSection(ctx, sectionID); err != nil {
		return apperr.Internalf(err, "deleting section")
	}
	return s.dropStatus(ctx, q, model.EntitySection, sectionID)
}

func (s *ContentService) deleteParagraphLeaf(ctx context.Context, q *store.Queries, paragraphID int64) error {
	if err := q.DeleteParagraph(ctx, paragraphID); err != nil {
		return apperr.Internalf(err, "deleting paragraph")
	}
	return s.dropStatus(ctx, q, model.EntityParagraph, paragraphID)
}

func (s *ContentService) dropStatus(ctx context.Context, q *store.Queries, entityType string, entityID int64) error {
	if err := q.DeleteContentStatus(ctx, store.DeleteContentStatusParams{
		EntityType: entityType,
		EntityID:   entityID,
	}); err != nil {
		return apperr.Internalf(err, "deleting %s status", entityType)
	}
	return nil
}

// CreateVersion snapshots an entity's current titles into a new immutable
// version and points the working version at it. entityType must be one of
// book, chapter, section, paragraph.
func (s *ContentService) CreateVersion(ctx context.Context, entityType string, entityID, userID int64) (store.ContentVersion, error) {
	var title model.Bilingual
	switch entityType {
	case model.EntityBook:
		b, err := s.GetBook(ctx, entityID)
		if err != nil {
			return store.ContentVersion{}, err
		}
		title = model.Bilingual{NL: b.TitleNl, EN: b.TitleEn}
	case model.EntityChapter:
		c, err := s.GetChapter(ctx, entityID)
		if err != nil {
			return store.ContentVersion{}, err
		}
		title = model.Bilingual{NL: c.TitleNl, EN: c.TitleEn}
	case model.EntitySection:
		sec, err := s.GetSection(ctx, entityID)
		if err != nil {
			return store.ContentVersion{}, err
		}
		title = model.Bilingual{NL: sec.TitleNl, EN: sec.TitleEn}
	case model.EntityParagraph:
		p, err := s.GetParagraph(ctx, entityID)
		if err != nil {
			return store.ContentVersion{}, err
		}
		title = model.Bilingual{NL: p.TitleNl, EN: p.TitleEn}
	default:
		return store.ContentVersion{}, apperr.Invalidf("entity type %q has no versions", entityType)
	}

	var version store.ContentVersion
	err := withTx(ctx, s.db, func(q *store.Queries) error {
		number, err := q.NextVersionNumber(ctx, store.NextVersionNumberParams{
			EntityType: entityType,
			ParentID:   entityID,
		})
		if err != nil {
			return apperr.Internalf(err, "generating version number")
		}

		now := time.Now()
		params := store.CreateVersionParams{
			ParentID:      entityID,
			VersionNumber: number,
			TitleNl:       title.NL,
			TitleEn:       title.EN,
			CreatedBy:     userID,
			CreatedAt:     now,
		}
		switch entityType {
		case model.EntityBook:
			version, err = q.CreateBookVersion(ctx, params)
		case model.EntityChapter:
			version, err = q.CreateChapterVersion(ctx, params)
		case model.EntitySection:
			version, err = q.CreateSectionVersion(ctx, params)
		case model.EntityParagraph:
			version, err = q.CreateParagraphVersion(ctx, params)
		}
		if err != nil {
			return apperr.Internalf(err, "creating %s version", entityType)
		}

		working := store.SetWorkingVersionParams{
			WorkingVersionID: sql.NullInt64{Int64: version.ID, Valid: true},
			UpdatedAt:        now,
			ID:               entityID,
		}
		switch entityType {
		case model.EntityBook:
			err = q.SetBookWorkingVersion(ctx, working)
		case model.EntityChapter:
			err = q.SetChapterWorkingVersion(ctx, working)
		case model.EntitySection:
			err = q.SetSectionWorkingVersion(ctx, working)
		case model.EntityParagraph:
			err = q.SetParagraphWorkingVersion(ctx, working)
		}
		if err != nil {
			return apperr.Internalf(err, "setting working version")
		}
		return nil
	})
	return version, err
}

// ListVersions returns an entity's versions, oldest first.
func (s *ContentService) ListVersions(ctx context.Context, entityType string, entityID int64) ([]store.ContentVersion, error) {
	var (
		versions []store.ContentVersion
		err      error
	)
	switch entityType {
	case model.EntityBook:
		versions, err = s.queries.ListBookVersions(ctx, entityID)
	case model.EntityChapter:
		versions, err = s.queries.ListChapterVersions(ctx, entityID)
	case model.EntitySection:
		versions, err = s.queries.ListSectionVersions(ctx, entityID)
	case model.EntityParagraph:
		versions, err = s.queries.ListParagraphVersions(ctx, entityID)
	default:
		return nil, apperr.Invalidf("entity type %q has no versions", entityType)
	}
	if err != nil {
		return nil, apperr.Internalf(err, "listing %s versions", entityType)
	}
	return versions, nil
}

// GetStatus returns the status row for an entity, lazily creating the DRAFT
// row when none exists yet.
func (s *ContentService) GetStatus(ctx context.Context, entityType string, entityID int64) (store.ContentStatus, error) {
	if !model.IsContentEntityType(entityType) {
		return store.ContentStatus{}, apperr.Invalidf("unknown entity type %q", entityType)
	}
	if err := s.entityExists(ctx, entityType, entityID); err != nil {
		return store.ContentStatus{}, err
	}
	return vivifyStatus(ctx, s.queries, entityType, entityID)
}

// entityExists checks the referenced entity is present.
func (s *ContentService) entityExists(ctx context.Context, entityType string, entityID int64) error {
	var err error
	switch entityType {
	case model.EntityCategory:
		_, err = s.GetCategory(ctx, entityID)
	case model.EntityBook:
		_, err = s.GetBook(ctx, entityID)
	case model.EntityChapter:
		_, err = s.GetChapter(ctx, entityID)
	case model.EntitySection:
		_, err = s.GetSection(ctx, entityID)
	case model.EntityParagraph:
		_, err = s.GetParagraph(ctx, entityID)
	default:
		err = apperr.Invalidf("unknown entity type %q", entityType)
	}
	return err
}
