// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const createCategory = `
INSERT INTO categories (category_number, title_nl, title_en, description_nl, description_en, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, category_number, title_nl, title_en, description_nl, description_en, created_at, updated_at
`

// CreateCategoryParams holds parameters for CreateCategory.
type CreateCategoryParams struct {
	CategoryNumber int64
	TitleNl        string
	TitleEn        string
	DescriptionNl  string
	DescriptionEn  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateCategory inserts a new category.
func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) (Category, error) {
	row := q.db.QueryRowContext(ctx, createCategory,
		arg.CategoryNumber, arg.TitleNl, arg.TitleEn, arg.DescriptionNl, arg.DescriptionEn,
		arg.CreatedAt, arg.UpdatedAt)
	var c Category
	err := row.Scan(&c.ID, &c.CategoryNumber, &c.TitleNl, &c.TitleEn, &c.DescriptionNl, &c.DescriptionEn, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const getCategoryByID = `
SELECT id, category_number, title_nl, title_en, description_nl, description_en, created_at, updated_at
FROM categories WHERE id = ?
`

// GetCategoryByID fetches a category by id.
func (q *Queries) GetCategoryByID(ctx context.Context, id int64) (Category, error) {
	row := q.db.QueryRowContext(ctx, getCategoryByID, id)
	var c Category
	err := row.Scan(&c.ID, &c.CategoryNumber, &c.TitleNl, &c.TitleEn, &c.DescriptionNl, &c.DescriptionEn, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const getCategoryByNumber = `
SELECT id, category_number, title_nl, title_en, description_nl, description_en, created_at, updated_at
FROM categories WHERE category_number = ?
`

// GetCategoryByNumber fetches a category by its stable category number.
func (q *Queries) GetCategoryByNumber(ctx context.Context, categoryNumber int64) (Category, error) {
	row := q.db.QueryRowContext(ctx, getCategoryByNumber, categoryNumber)
	var c Category
	err := row.Scan(&c.ID, &c.CategoryNumber, &c.TitleNl, &c.TitleEn, &c.DescriptionNl, &c.DescriptionEn, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const listCategories = `
SELECT id, category_number, title_nl, title_en, description_nl, description_en, created_at, updated_at
FROM categories ORDER BY category_number
`

// ListCategories returns all categories ordered by category number.
func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.QueryContext(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.CategoryNumber, &c.TitleNl, &c.TitleEn, &c.DescriptionNl, &c.DescriptionEn, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const listPublishedCategories = `
SELECT c.id, c.category_number, c.title_nl, c.title_en, c.description_nl, c.description_en, c.created_at, c.updated_at
FROM categories c
JOIN content_status cs ON cs.entity_type = 'category' AND cs.entity_id = c.id AND cs.status = 'PUBLISHED'
ORDER BY c.category_number
`

// ListPublishedCategories returns categories whose content status is PUBLISHED.
func (q *Queries) ListPublishedCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.QueryContext(ctx, listPublishedCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.CategoryNumber, &c.TitleNl, &c.TitleEn, &c.DescriptionNl, &c.DescriptionEn, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const updateCategory = `
UPDATE categories SET title_nl = ?, title_en = ?, description_nl = ?, description_en = ?, updated_at = ?
WHERE id = ?
`

// UpdateCategoryParams holds parameters for UpdateCategory.
type UpdateCategoryParams struct {
	TitleNl       string
	TitleEn       string
	DescriptionNl string
	DescriptionEn string
	UpdatedAt     time.Time
	ID            int64
}

// UpdateCategory updates a category's titles and descriptions.
func (q *Queries) UpdateCategory(ctx context.Context, arg UpdateCategoryParams) error {
	_, err := q.db.ExecContext(ctx, updateCategory,
		arg.TitleNl, arg.TitleEn, arg.DescriptionNl, arg.DescriptionEn, arg.UpdatedAt, arg.ID)
	return err
}

const deleteCategory = `
DELETE FROM categories WHERE id = ?
`

// DeleteCategory removes a category row.
func (q *Queries) DeleteCategory(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteCategory, id)
	return err
}

const createBook = `
INSERT INTO books (category_id, title_nl, title_en, description_nl, description_en, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, category_id, title_nl, title_en, description_nl, description_en, working_version_id, created_at, updated_at
`

// CreateBookParams holds parameters for CreateBook.
type CreateBookParams struct {
	CategoryID    int64
	TitleNl       string
	TitleEn       string
	DescriptionNl string
	DescriptionEn string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateBook inserts a new book.
func (q *Queries) CreateBook(ctx context.Context, arg CreateBookParams) (Book, error) {
	row := q.db.QueryRowContext(ctx, createBook,
		arg.CategoryID, arg.TitleNl, arg.TitleEn, arg.DescriptionNl, arg.DescriptionEn,
		arg.CreatedAt, arg.UpdatedAt)
	var b Book
	err := row.Scan(&b.ID, &b.CategoryID, &b.TitleNl, &b.TitleEn, &b.DescriptionNl, &b.DescriptionEn, &b.WorkingVersionID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const getBookByID = `
SELECT id, category_id, title_nl, title_en, description_nl, description_en, working_version_id, created_at, updated_at
FROM books WHERE id = ?
`

// GetBookByID fetches a book by id.
func (q *Queries) GetBookByID(ctx context.Context, id int64) (Book, error) {
	row := q.db.QueryRowContext(ctx, getBookByID, id)
	var b Book
	err := row.Scan(&b.ID, &b.CategoryID, &b.TitleNl, &b.TitleEn, &b.DescriptionNl, &b.DescriptionEn, &b.WorkingVersionID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

const listBooksByCategory = `
SELECT id, category_id, title_nl, title_en, description_nl, description_en, working_version_id, created_at, updated_at
FROM books WHERE category_id = ? ORDER BY id
`

// ListBooksByCategory returns a category's books.
func (q *Queries) ListBooksByCategory(ctx context.Context, categoryID int64) ([]Book, error) {
	return q.scanBooks(ctx, listBooksByCategory, categoryID)
}

const listPublishedBooksByCategory = `
SELECT b.id, b.category_id, b.title_nl, b.title_en, b.description_nl, b.description_en, b.working_version_id, b.created_at, b.updated_at
FROM books b
JOIN content_status cs ON cs.entity_type = 'book' AND cs.entity_id = b.id AND cs.status = 'PUBLISHED'
WHERE b.category_id = ? ORDER BY b.id
`

// ListPublishedBooksByCategory returns a category's published books.
func (q *Queries) ListPublishedBooksByCategory(ctx context.Context, categoryID int64) ([]Book, error) {
	return q.scanBooks(ctx, listPublishedBooksByCategory, categoryID)
}

func (q *Queries) scanBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.CategoryID, &b.TitleNl, &b.TitleEn, &b.DescriptionNl, &b.DescriptionEn, &b.WorkingVersionID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

const updateBook = `
UPDATE books SET title_nl = ?, title_en = ?, description_nl = ?, description_en = ?, updated_at = ?
WHERE id = ?
`

// UpdateBookParams holds parameters for UpdateBook.
type UpdateBookParams struct {
	TitleNl       string
	TitleEn       string
	DescriptionNl string
	DescriptionEn string
	UpdatedAt     time.Time
	ID            int64
}

// UpdateBook updates a book's titles and descriptions.
func (q *Queries) UpdateBook(ctx context.Context, arg UpdateBookParams) error {
	_, err := q.db.ExecContext(ctx, updateBook,
		arg.TitleNl, arg.TitleEn, arg.DescriptionNl, arg.DescriptionEn, arg.UpdatedAt, arg.ID)
	return err
}

const setBookWorkingVersion = `
UPDATE books SET working_version_id = ?, updated_at = ? WHERE id = ?
`

// SetWorkingVersionParams holds parameters for the SetXxxWorkingVersion queries.
type SetWorkingVersionParams struct {
	WorkingVersionID sql.NullInt64
	UpdatedAt        time.Time
	ID               int64
}

// SetBookWorkingVersion points a book at its current draft version.
func (q *Queries) SetBookWorkingVersion(ctx context.Context, arg SetWorkingVersionParams) error {
	_, err := q.db.ExecContext(ctx, setBookWorkingVersion, arg.WorkingVersionID, arg.UpdatedAt, arg.ID)
	return err
}

const deleteBook = `
DELETE FROM books WHERE id = ?
`

// DeleteBook removes a book row.
func (q *Queries) DeleteBook(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteBook, id)
	return err
}

const createChapter = `
INSERT INTO chapters (book_id, title_nl, title_en, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, book_id, title_nl, title_en, position, working_version_id, created_at, updated_at
`

// CreateChapterParams holds parameters for CreateChapter.
type CreateChapterParams struct {
	BookID    int64
	TitleNl   string
	TitleEn   string
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateChapter inserts a new chapter.
func (q *Queries) CreateChapter(ctx context.Context, arg CreateChapterParams) (Chapter, error) {
	row := q.db.QueryRowContext(ctx, createChapter,
		arg.BookID, arg.TitleNl, arg.TitleEn, arg.Position, arg.CreatedAt, arg.UpdatedAt)
	var c Chapter
	err := row.Scan(&c.ID, &c.BookID, &c.TitleNl, &c.TitleEn, &c.Position, &c.WorkingVersionID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const getChapterByID = `
SELECT id, book_id, title_nl, title_en, position, working_version_id, created_at, updated_at
FROM chapters WHERE id = ?
`

// GetChapterByID fetches a chapter by id.
func (q *Queries) GetChapterByID(ctx context.Context, id int64) (Chapter, error) {
	row := q.db.QueryRowContext(ctx, getChapterByID, id)
	var c Chapter
	err := row.Scan(&c.ID, &c.BookID, &c.TitleNl, &c.TitleEn, &c.Position, &c.WorkingVersionID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const listChaptersByBook = `
SELECT id, book_id, title_nl, title_en, position, working_version_id, created_at, updated_at
FROM chapters WHERE book_id = ? ORDER BY position, id
`

// ListChaptersByBook returns a book's chapters ordered by position.
func (q *Queries) ListChaptersByBook(ctx context.Context, bookID int64) ([]Chapter, error) {
	return q.scanChapters(ctx, listChaptersByBook, bookID)
}

const listPublishedChaptersByBook = `
SELECT c.id, c.book_id, c.title_nl, c.title_en, c.position, c.working_version_id, c.created_at, c.updated_at
FROM chapters c
JOIN content_status cs ON cs.entity_type = 'chapter' AND cs.entity_id = c.id AND cs.status = 'PUBLISHED'
WHERE c.book_id = ? ORDER BY c.position, c.id
`

// ListPublishedChaptersByBook returns a book's published chapters.
func (q *Queries) ListPublishedChaptersByBook(ctx context.Context, bookID int64) ([]Chapter, error) {
	return q.scanChapters(ctx, listPublishedChaptersByBook, bookID)
}

func (q *Queries) scanChapters(ctx context.Context, query string, args ...any) ([]Chapter, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Chapter
	for rows.Next() {
		var c Chapter
		if err := rows.Scan(&c.ID, &c.BookID, &c.TitleNl, &c.TitleEn, &c.Position, &c.WorkingVersionID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const updateChapter = `
UPDATE chapters SET title_nl = ?, title_en = ?, position = ?, updated_at = ? WHERE id = ?
`

// UpdateChapterParams holds parameters for UpdateChapter.
type UpdateChapterParams struct {
	TitleNl   string
	TitleEn   string
	Position  int64
	UpdatedAt time.Time
	ID        int64
}

// UpdateChapter updates a chapter's titles and position.
func (q *Queries) UpdateChapter(ctx context.Context, arg UpdateChapterParams) error {
	_, err := q.db.ExecContext(ctx, updateChapter,
		arg.TitleNl, arg.TitleEn, arg.Position, arg.UpdatedAt, arg.ID)
	return err
}

const setChapterWorkingVersion = `
UPDATE chapters SET working_version_id = ?, updated_at = ? WHERE id = ?
`

// SetChapterWorkingVersion points a chapter at its current draft version.
func (q *Queries) SetChapterWorkingVersion(ctx context.Context, arg SetWorkingVersionParams) error {
	_, err := q.db.ExecContext(ctx, setChapterWorkingVersion, arg.WorkingVersionID, arg.UpdatedAt, arg.ID)
	return err
}

const deleteChapter = `
DELETE FROM chapters WHERE id = ?
`

// DeleteChapter removes a chapter row.
func (q *Queries) DeleteChapter(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteChapter, id)
	return err
}

const createSection = `
INSERT INTO sections (chapter_id, title_nl, title_en, order_index, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, chapter_id, title_nl, title_en, order_index, working_version_id, created_at, updated_at
`

// CreateSectionParams holds parameters for CreateSection.
type CreateSectionParams struct {
	ChapterID  int64
	TitleNl    string
	TitleEn    string
	OrderIndex int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateSection inserts a new section.
func (q *Queries) CreateSection(ctx context.Context, arg CreateSectionParams) (Section, error) {
	row := q.db.QueryRowContext(ctx, createSection,
		arg.ChapterID, arg.TitleNl, arg.TitleEn, arg.OrderIndex, arg.CreatedAt, arg.UpdatedAt)
	var s Section
	err := row.Scan(&s.ID, &s.ChapterID, &s.TitleNl, &s.TitleEn, &s.OrderIndex, &s.WorkingVersionID, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const getSectionByID = `
SELECT id, chapter_id, title_nl, title_en, order_index, working_version_id, created_at, updated_at
FROM sections WHERE id = ?
`

// GetSectionByID fetches a section by id.
func (q *Queries) GetSectionByID(ctx context.Context, id int64) (Section, error) {
	row := q.db.QueryRowContext(ctx, getSectionByID, id)
	var s Section
	err := row.Scan(&s.ID, &s.ChapterID, &s.TitleNl, &s.TitleEn, &s.OrderIndex, &s.WorkingVersionID, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

const listSectionsByChapter = `
SELECT id, chapter_id, title_nl, title_en, order_index, working_version_id, created_at, updated_at
FROM sections WHERE chapter_id = ? ORDER BY order_index, id
`

// ListSectionsByChapter returns a chapter's sections ordered by order index.
func (q *Queries) ListSectionsByChapter(ctx context.Context, chapterID int64) ([]Section, error) {
	return q.scanSections(ctx, listSectionsByChapter, chapterID)
}

const listPublishedSectionsByChapter = `
SELECT s.id, s.chapter_id, s.title_nl, s.title_en, s.order_index, s.working_version_id, s.created_at, s.updated_at
FROM sections s
JOIN content_status cs ON cs.entity_type = 'section' AND cs.entity_id = s.id AND cs.status = 'PUBLISHED'
WHERE s.chapter_id = ? ORDER BY s.order_index, s.id
`

// ListPublishedSectionsByChapter returns a chapter's published sections.
func (q *Queries) ListPublishedSectionsByChapter(ctx context.Context, chapterID int64) ([]Section, error) {
	return q.scanSections(ctx, listPublishedSectionsByChapter, chapterID)
}

func (q *Queries) scanSections(ctx context.Context, query string, args ...any) ([]Section, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Section
	for rows.Next() {
		var s Section
		if err := rows.Scan(&s.ID, &s.ChapterID, &s.TitleNl, &s.TitleEn, &s.OrderIndex, &s.WorkingVersionID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

const updateSection = `
UPDATE sections SET title_nl = ?, title_en = ?, order_index = ?, updated_at = ? WHERE id = ?
`

// UpdateSectionParams holds parameters for UpdateSection.
type UpdateSectionParams struct {
	TitleNl    string
	TitleEn    string
	OrderIndex int64
	UpdatedAt  time.Time
	ID         int64
}

// UpdateSection updates a section's titles and order index.
func (q *Queries) UpdateSection(ctx context.Context, arg UpdateSectionParams) error {
	_, err := q.db.ExecContext(ctx, updateSection,
		arg.TitleNl, arg.TitleEn, arg.OrderIndex, arg.UpdatedAt, arg.ID)
	return err
}

const setSectionWorkingVersion = `
UPDATE sections SET working_version_id = ?, updated_at = ? WHERE id = ?
`

// SetSectionWorkingVersion points a section at its current draft version.
func (q *Queries) SetSectionWorkingVersion(ctx context.Context, arg SetWorkingVersionParams) error {
	_, err := q.db.ExecContext(ctx, setSectionWorkingVersion, arg.WorkingVersionID, arg.UpdatedAt, arg.ID)
	return err
}

const deleteSection = `
DELETE FROM sections WHERE id = ?
`

// DeleteSection removes a section row.
func (q *Queries) DeleteSection(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteSection, id)
	return err
}

const createParagraph = `
INSERT INTO paragraphs (section_id, title_nl, title_en, paragraph_number, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, section_id, title_nl, title_en, paragraph_number, working_version_id, created_at, updated_at
`

// CreateParagraphParams holds parameters for CreateParagraph.
type CreateParagraphParams struct {
	SectionID       int64
	TitleNl         string
	TitleEn         string
	ParagraphNumber int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CreateParagraph inserts a new paragraph.
func (q *Queries) CreateParagraph(ctx context.Context, arg CreateParagraphParams) (Paragraph, error) {
	row := q.db.QueryRowContext(ctx, createParagraph,
		arg.SectionID, arg.TitleNl, arg.TitleEn, arg.ParagraphNumber, arg.CreatedAt, arg.UpdatedAt)
	var p Paragraph
	err := row.Scan(&p.ID, &p.SectionID, &p.TitleNl, &p.TitleEn, &p.ParagraphNumber, &p.WorkingVersionID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const getParagraphByID = `
SELECT id, section_id, title_nl, title_en, paragraph_number, working_version_id, created_at, updated_at
FROM paragraphs WHERE id = ?
`

// GetParagraphByID fetches a paragraph by id.
func (q *Queries) GetParagraphByID(ctx context.Context, id int64) (Paragraph, error) {
	row := q.db.QueryRowContext(ctx, getParagraphByID, id)
	var p Paragraph
	err := row.Scan(&p.ID, &p.SectionID, &p.TitleNl, &p.TitleEn, &p.ParagraphNumber, &p.WorkingVersionID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const listParagraphsBySection = `
SELECT id, section_id, title_nl, title_en, paragraph_number, working_version_id, created_at, updated_at
FROM paragraphs WHERE section_id = ? ORDER BY paragraph_number, id
`

// ListParagraphsBySection returns a section's paragraphs ordered by number.
func (q *Queries) ListParagraphsBySection(ctx context.Context, sectionID int64) ([]Paragraph, error) {
	return q.scanParagraphs(ctx, listParagraphsBySection, sectionID)
}

const listPublishedParagraphsBySection = `
SELECT p.id, p.section_id, p.title_nl, p.title_en, p.paragraph_number, p.working_version_id, p.created_at, p.updated_at
FROM paragraphs p
JOIN content_status cs ON cs.entity_type = 'paragraph' AND cs.entity_id = p.id AND cs.status = 'PUBLISHED'
WHERE p.section_id = ? ORDER BY p.paragraph_number, p.id
`

// ListPublishedParagraphsBySection returns a section's published paragraphs.
func (q *Queries) ListPublishedParagraphsBySection(ctx context.Context, sectionID int64) ([]Paragraph, error) {
	return q.scanParagraphs(ctx, listPublishedParagraphsBySection, sectionID)
}

func (q *Queries) scanParagraphs(ctx context.Context, query string, args ...any) ([]Paragraph, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Paragraph
	for rows.Next() {
		var p Paragraph
		if err := rows.Scan(&p.ID, &p.SectionID, &p.TitleNl, &p.TitleEn, &p.ParagraphNumber, &p.WorkingVersionID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const updateParagraph = `
UPDATE paragraphs SET title_nl = ?, title_en = ?, paragraph_number = ?, updated_at = ? WHERE id = ?
`

// UpdateParagraphParams holds parameters for UpdateParagraph.
type UpdateParagraphParams struct {
	TitleNl         string
	TitleEn         string
	ParagraphNumber int64
	UpdatedAt       time.Time
	ID              int64
}

// UpdateParagraph updates a paragraph's titles and number.
func (q *Queries) UpdateParagraph(ctx context.Context, arg UpdateParagraphParams) error {
	_, err := q.db.ExecContext(ctx, updateParagraph,
		arg.TitleNl, arg.TitleEn, arg.ParagraphNumber, arg.UpdatedAt, arg.ID)
	return err
}

const setParagraphWorkingVersion = `
UPDATE paragraphs SET working_version_id = ?, updated_at = ? WHERE id = ?
`

// SetParagraphWorkingVersion points a paragraph at its current draft version.
func (q *Queries) SetParagraphWorkingVersion(ctx context.Context, arg SetWorkingVersionParams) error {
	_, err := q.db.ExecContext(ctx, setParagraphWorkingVersion, arg.WorkingVersionID, arg.UpdatedAt, arg.ID)
	return err
}

const deleteParagraph = `
DELETE FROM paragraphs WHERE id = ?
`

// DeleteParagraph removes a paragraph row.
func (q *Queries) DeleteParagraph(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteParagraph, id)
	return err
}
