// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"
)

const getContentStatus = `
SELECT id, entity_type, entity_id, status, user_id, updated_at
FROM content_status WHERE entity_type = ? AND entity_id = ?
`

// GetContentStatusParams holds parameters for GetContentStatus.
type GetContentStatusParams struct {
	EntityType string
	EntityID   int64
}

// GetContentStatus fetches the status row for an entity.
func (q *Queries) GetContentStatus(ctx context.Context, arg GetContentStatusParams) (ContentStatus, error) {
	row := q.db.QueryRowContext(ctx, getContentStatus, arg.EntityType, arg.EntityID)
	var s ContentStatus
	err := row.Scan(&s.ID, &s.EntityType, &s.EntityID, &s.Status, &s.UserID, &s.UpdatedAt)
	return s, err
}

const upsertContentStatus = `
INSERT INTO content_status (entity_type, entity_id, status, user_id, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (entity_type, entity_id) DO UPDATE
SET status = excluded.status, user_id = excluded.user_id, updated_at = excluded.updated_at
RETURNING id, entity_type, entity_id, status, user_id, updated_at
`

// UpsertContentStatusParams holds parameters for UpsertContentStatus.
type UpsertContentStatusParams struct {
	EntityType string
	EntityID   int64
	Status     string
	UserID     int64 // 0 means no user recorded
	UpdatedAt  time.Time
}

// UpsertContentStatus creates or updates the one status row per entity.
func (q *Queries) UpsertContentStatus(ctx context.Context, arg UpsertContentStatusParams) (ContentStatus, error) {
	var userID any
	if arg.UserID != 0 {
		userID = arg.UserID
	}
	row := q.db.QueryRowContext(ctx, upsertContentStatus,
		arg.EntityType, arg.EntityID, arg.Status, userID, arg.UpdatedAt)
	var s ContentStatus
	err := row.Scan(&s.ID, &s.EntityType, &s.EntityID, &s.Status, &s.UserID, &s.UpdatedAt)
	return s, err
}

const deleteContentStatus = `
DELETE FROM content_status WHERE entity_type = ? AND entity_id = ?
`

// DeleteContentStatusParams holds parameters for DeleteContentStatus.
type DeleteContentStatusParams struct {
	EntityType string
	EntityID   int64
}

// DeleteContentStatus removes the status row for a deleted entity.
func (q *Queries) DeleteContentStatus(ctx context.Context, arg DeleteContentStatusParams) error {
	_, err := q.db.ExecContext(ctx, deleteContentStatus, arg.EntityType, arg.EntityID)
	return err
}

const getReviewableItem = `
SELECT id, item_type, reference_id, created_at
FROM reviewable_items WHERE item_type = ? AND reference_id = ?
`

// GetReviewableItemParams holds parameters for GetReviewableItem.
type GetReviewableItemParams struct {
	ItemType    string
	ReferenceID int64
}

// GetReviewableItem fetches the polymorphic routing row for an entity.
func (q *Queries) GetReviewableItem(ctx context.Context, arg GetReviewableItemParams) (ReviewableItem, error) {
	row := q.db.QueryRowContext(ctx, getReviewableItem, arg.ItemType, arg.ReferenceID)
	var i ReviewableItem
	err := row.Scan(&i.ID, &i.ItemType, &i.ReferenceID, &i.CreatedAt)
	return i, err
}

const getReviewableItemByID = `
SELECT id, item_type, reference_id, created_at
FROM reviewable_items WHERE id = ?
`

// GetReviewableItemByID fetches a reviewable item by primary key.
func (q *Queries) GetReviewableItemByID(ctx context.Context, id int64) (ReviewableItem, error) {
	row := q.db.QueryRowContext(ctx, getReviewableItemByID, id)
	var i ReviewableItem
	err := row.Scan(&i.ID, &i.ItemType, &i.ReferenceID, &i.CreatedAt)
	return i, err
}

const createReviewableItem = `
INSERT INTO reviewable_items (item_type, reference_id, created_at)
VALUES (?, ?, ?)
RETURNING id, item_type, reference_id, created_at
`

// CreateReviewableItemParams holds parameters for CreateReviewableItem.
type CreateReviewableItemParams struct {
	ItemType    string
	ReferenceID int64
	CreatedAt   time.Time
}

// CreateReviewableItem inserts a routing row; created on first submission.
func (q *Queries) CreateReviewableItem(ctx context.Context, arg CreateReviewableItemParams) (ReviewableItem, error) {
	row := q.db.QueryRowContext(ctx, createReviewableItem, arg.ItemType, arg.ReferenceID, arg.CreatedAt)
	var i ReviewableItem
	err := row.Scan(&i.ID, &i.ItemType, &i.ReferenceID, &i.CreatedAt)
	return i, err
}

const createReview = `
INSERT INTO reviews (reviewable_item_id, reviewed_version_id, status, submitted_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, reviewable_item_id, reviewed_version_id, status, submitted_by, reviewed_by, comment, created_at, updated_at
`

// CreateReviewParams holds parameters for CreateReview.
type CreateReviewParams struct {
	ReviewableItemID  int64
	ReviewedVersionID int64
	Status            string
	SubmittedBy       int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CreateReview inserts a new review row.
func (q *Queries) CreateReview(ctx context.Context, arg CreateReviewParams) (Review, error) {
	row := q.db.QueryRowContext(ctx, createReview,
		arg.ReviewableItemID, arg.ReviewedVersionID, arg.Status, arg.SubmittedBy, arg.CreatedAt, arg.UpdatedAt)
	var r Review
	err := row.Scan(&r.ID, &r.ReviewableItemID, &r.ReviewedVersionID, &r.Status, &r.SubmittedBy, &r.ReviewedBy, &r.Comment, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const getReviewByID = `
SELECT id, reviewable_item_id, reviewed_version_id, status, submitted_by, reviewed_by, comment, created_at, updated_at
FROM reviews WHERE id = ?
`

// GetReviewByID fetches a review by id.
func (q *Queries) GetReviewByID(ctx context.Context, id int64) (Review, error) {
	row := q.db.QueryRowContext(ctx, getReviewByID, id)
	var r Review
	err := row.Scan(&r.ID, &r.ReviewableItemID, &r.ReviewedVersionID, &r.Status, &r.SubmittedBy, &r.ReviewedBy, &r.Comment, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const listReviewsByItem = `
SELECT id, reviewable_item_id, reviewed_version_id, status, submitted_by, reviewed_by, comment, created_at, updated_at
FROM reviews WHERE reviewable_item_id = ? ORDER BY id DESC
`

// ListReviewsByItem returns an item's review history, newest first.
func (q *Queries) ListReviewsByItem(ctx context.Context, reviewableItemID int64) ([]Review, error) {
	rows, err := q.db.QueryContext(ctx, listReviewsByItem, reviewableItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.ReviewableItemID, &r.ReviewedVersionID, &r.Status, &r.SubmittedBy, &r.ReviewedBy, &r.Comment, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const resolveReview = `
UPDATE reviews SET status = ?, reviewed_by = ?, comment = ?, updated_at = ?
WHERE id = ?
RETURNING id, reviewable_item_id, reviewed_version_id, status, submitted_by, reviewed_by, comment, created_at, updated_at
`

// ResolveReviewParams holds parameters for ResolveReview.
type ResolveReviewParams struct {
	Status     string
	ReviewedBy int64
	Comment    string
	UpdatedAt  time.Time
	ID         int64
}

// ResolveReview records the approve/reject outcome on a review.
func (q *Queries) ResolveReview(ctx context.Context, arg ResolveReviewParams) (Review, error) {
	row := q.db.QueryRowContext(ctx, resolveReview,
		arg.Status, arg.ReviewedBy, arg.Comment, arg.UpdatedAt, arg.ID)
	var r Review
	err := row.Scan(&r.ID, &r.ReviewableItemID, &r.ReviewedVersionID, &r.Status, &r.SubmittedBy, &r.ReviewedBy, &r.Comment, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

const createReviewComment = `
INSERT INTO review_comments (review_id, reviewed_version_id, field_name, comment_text, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, review_id, reviewed_version_id, field_name, comment_text, created_by, created_at, updated_at
`

// CreateReviewCommentParams holds parameters for CreateReviewComment.
type CreateReviewCommentParams struct {
	ReviewID          int64
	ReviewedVersionID int64
	FieldName         string
	CommentText       string
	CreatedBy         int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CreateReviewComment inserts a per-field review comment.
func (q *Queries) CreateReviewComment(ctx context.Context, arg CreateReviewCommentParams) (ReviewComment, error) {
	row := q.db.QueryRowContext(ctx, createReviewComment,
		arg.ReviewID, arg.ReviewedVersionID, arg.FieldName, arg.CommentText, arg.CreatedBy, arg.CreatedAt, arg.UpdatedAt)
	var c ReviewComment
	err := row.Scan(&c.ID, &c.ReviewID, &c.ReviewedVersionID, &c.FieldName, &c.CommentText, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const getReviewCommentByID = `
SELECT id, review_id, reviewed_version_id, field_name, comment_text, created_by, created_at, updated_at
FROM review_comments WHERE id = ?
`

// GetReviewCommentByID fetches a review comment by id.
func (q *Queries) GetReviewCommentByID(ctx context.Context, id int64) (ReviewComment, error) {
	row := q.db.QueryRowContext(ctx, getReviewCommentByID, id)
	var c ReviewComment
	err := row.Scan(&c.ID, &c.ReviewID, &c.ReviewedVersionID, &c.FieldName, &c.CommentText, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const listReviewCommentsByReview = `
SELECT id, review_id, reviewed_version_id, field_name, comment_text, created_by, created_at, updated_at
FROM review_comments WHERE review_id = ? ORDER BY id
`

// ListReviewCommentsByReview returns a review's comments.
func (q *Queries) ListReviewCommentsByReview(ctx context.Context, reviewID int64) ([]ReviewComment, error) {
	rows, err := q.db.QueryContext(ctx, listReviewCommentsByReview, reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ReviewComment
	for rows.Next() {
		var c ReviewComment
		if err := rows.Scan(&c.ID, &c.ReviewID, &c.ReviewedVersionID, &c.FieldName, &c.CommentText, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const updateReviewComment = `
UPDATE review_comments SET comment_text = ?, updated_at = ? WHERE id = ?
`

// UpdateReviewCommentParams holds parameters for UpdateReviewComment.
type UpdateReviewCommentParams struct {
	CommentText string
	UpdatedAt   time.Time
	ID          int64
}

// UpdateReviewComment edits a comment's text.
func (q *Queries) UpdateReviewComment(ctx context.Context, arg UpdateReviewCommentParams) error {
	_, err := q.db.ExecContext(ctx, updateReviewComment, arg.CommentText, arg.UpdatedAt, arg.ID)
	return err
}

const deleteReviewComment = `
DELETE FROM review_comments WHERE id = ?
`

// DeleteReviewComment removes a comment.
func (q *Queries) DeleteReviewComment(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteReviewComment, id)
	return err
}
