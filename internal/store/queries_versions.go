// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

// CreateVersionParams holds parameters for the CreateXxxVersion queries.
// ParentID is the book, chapter, section or paragraph id.
type CreateVersionParams struct {
	ParentID      int64
	VersionNumber int64
	TitleNl       string
	TitleEn       string
	CreatedBy     int64
	CreatedAt     time.Time
}

const createBookVersion = `
INSERT INTO book_versions (book_id, version_number, title_nl, title_en, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, book_id, version_number, title_nl, title_en, created_by, created_at
`

// CreateBookVersion inserts an immutable book version.
func (q *Queries) CreateBookVersion(ctx context.Context, arg CreateVersionParams) (ContentVersion, error) {
	return q.insertVersion(ctx, createBookVersion, arg)
}

const createChapterVersion = `
INSERT INTO chapter_versions (chapter_id, version_number, title_nl, title_en, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, chapter_id, version_number, title_nl, title_en, created_by, created_at
`

// CreateChapterVersion inserts an immutable chapter version.
func (q *Queries) CreateChapterVersion(ctx context.Context, arg CreateVersionParams) (ContentVersion, error) {
	return q.insertVersion(ctx, createChapterVersion, arg)
}

const createSectionVersion = `
INSERT INTO section_versions (section_id, version_number, title_nl, title_en, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, section_id, version_number, title_nl, title_en, created_by, created_at
`

// CreateSectionVersion inserts an immutable section version.
func (q *Queries) CreateSectionVersion(ctx context.Context, arg CreateVersionParams) (ContentVersion, error) {
	return q.insertVersion(ctx, createSectionVersion, arg)
}

const createParagraphVersion = `
INSERT INTO paragraph_versions (paragraph_id, version_number, title_nl, title_en, created_by, created_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, paragraph_id, version_number, title_nl, title_en, created_by, created_at
`

// CreateParagraphVersion inserts an immutable paragraph version.
func (q *Queries) CreateParagraphVersion(ctx context.Context, arg CreateVersionParams) (ContentVersion, error) {
	return q.insertVersion(ctx, createParagraphVersion, arg)
}

func (q *Queries) insertVersion(ctx context.Context, query string, arg CreateVersionParams) (ContentVersion, error) {
	row := q.db.QueryRowContext(ctx, query,
		arg.ParentID, arg.VersionNumber, arg.TitleNl, arg.TitleEn, arg.CreatedBy, arg.CreatedAt)
	var v ContentVersion
	err := row.Scan(&v.ID, &v.ParentID, &v.VersionNumber, &v.TitleNl, &v.TitleEn, &v.CreatedBy, &v.CreatedAt)
	return v, err
}

const listBookVersions = `
SELECT id, book_id, version_number, title_nl, title_en, created_by, created_at
FROM book_versions WHERE book_id = ? ORDER BY version_number
`

// ListBookVersions returns a book's versions, oldest first.
func (q *Queries) ListBookVersions(ctx context.Context, bookID int64) ([]ContentVersion, error) {
	return q.scanVersions(ctx, listBookVersions, bookID)
}

const listChapterVersions = `
SELECT id, chapter_id, version_number, title_nl, title_en, created_by, created_at
FROM chapter_versions WHERE chapter_id = ? ORDER BY version_number
`

// ListChapterVersions returns a chapter's versions, oldest first.
func (q *Queries) ListChapterVersions(ctx context.Context, chapterID int64) ([]ContentVersion, error) {
	return q.scanVersions(ctx, listChapterVersions, chapterID)
}

const listSectionVersions = `
SELECT id, section_id, version_number, title_nl, title_en, created_by, created_at
FROM section_versions WHERE section_id = ? ORDER BY version_number
`

// ListSectionVersions returns a section's versions, oldest first.
func (q *Queries) ListSectionVersions(ctx context.Context, sectionID int64) ([]ContentVersion, error) {
	return q.scanVersions(ctx, listSectionVersions, sectionID)
}

const listParagraphVersions = `
SELECT id, paragraph_id, version_number, title_nl, title_en, created_by, created_at
FROM paragraph_versions WHERE paragraph_id = ? ORDER BY version_number
`

// ListParagraphVersions returns a paragraph's versions, oldest first.
func (q *Queries) ListParagraphVersions(ctx context.Context, paragraphID int64) ([]ContentVersion, error) {
	return q.scanVersions(ctx, listParagraphVersions, paragraphID)
}

func (q *Queries) scanVersions(ctx context.Context, query string, parentID int64) ([]ContentVersion, error) {
	rows, err := q.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ContentVersion
	for rows.Next() {
		var v ContentVersion
		if err := rows.Scan(&v.ID, &v.ParentID, &v.VersionNumber, &v.TitleNl, &v.TitleEn, &v.CreatedBy, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}
