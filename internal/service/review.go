// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// ReviewService runs the submit/approve/reject workflow and the per-field
// review comments.
type ReviewService struct {
	db      *sql.DB
	queries *store.Queries
}

// NewReviewService creates a ReviewService.
func NewReviewService(db *sql.DB) *ReviewService {
	return &ReviewService{db: db, queries: store.New(db)}
}

// SubmitForReview moves an entity from DRAFT or NEEDS_REVISION to IN_REVIEW,
// creating the reviewable item on first submission and a new SUBMITTED
// review row.
func (s *ReviewService) SubmitForReview(ctx context.Context, entityType string, entityID, versionID, userID int64) (store.Review, error) {
	itemType := model.ReviewableTypeFor(entityType)
	if itemType == "" {
		return store.Review{}, apperr.Invalidf("entity type %q cannot be reviewed", entityType)
	}

	var review store.Review
	err := withTx(ctx, s.db, func(q *store.Queries) error {
		status, err := vivifyStatus(ctx, q, entityType, entityID)
		if err != nil {
			return err
		}
		if !model.CanSubmitForReview(status.Status) {
			return apperr.Conflictf("%s %d is %s and cannot be submitted for review", entityType, entityID, status.Status)
		}

		item, err := q.GetReviewableItem(ctx, store.GetReviewableItemParams{
			ItemType:    itemType,
			ReferenceID: entityID,
		})
		if errors.Is(err, sql.ErrNoRows) {
			item, err = q.CreateReviewableItem(ctx, store.CreateReviewableItemParams{
				ItemType:    itemType,
				ReferenceID: entityID,
				CreatedAt:   time.Now(),
			})
		}
		if err != nil {
			return apperr.Internalf(err, "resolving reviewable item")
		}

		now := time.Now()
		review, err = q.CreateReview(ctx, store.CreateReviewParams{
			ReviewableItemID:  item.ID,
			ReviewedVersionID: versionID,
			Status:            model.ReviewSubmitted,
			SubmittedBy:       userID,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating review")
		}

		_, err = q.UpsertContentStatus(ctx, store.UpsertContentStatusParams{
			EntityType: entityType,
			EntityID:   entityID,
			Status:     model.StatusInReview,
			UserID:     userID,
			UpdatedAt:  now,
		})
		if err != nil {
			return apperr.Internalf(err, "updating status")
		}
		return nil
	})
	return review, err
}

// Approve resolves a SUBMITTED review as APPROVED. The underlying entity's
// status is written to APPROVED and then immediately to PUBLISHED, two
// sequential writes preserving the intermediate state in the audit trail.
func (s *ReviewService) Approve(ctx context.Context, reviewID, reviewerID int64, comment string) (store.Review, error) {
	var review store.Review
	err := withTx(ctx, s.db, func(q *store.Queries) error {
		entityType, entityID, current, err := s.loadSubmitted(ctx, q, reviewID)
		if err != nil {
			return err
		}

		now := time.Now()
		review, err = q.ResolveReview(ctx, store.ResolveReviewParams{
			Status:     model.ReviewApproved,
			ReviewedBy: reviewerID,
			Comment:    comment,
			UpdatedAt:  now,
			ID:         current.ID,
		})
		if err != nil {
			return apperr.Internalf(err, "resolving review")
		}

		for _, status := range []string{model.StatusApproved, model.StatusPublished} {
			_, err = q.UpsertContentStatus(ctx, store.UpsertContentStatusParams{
				EntityType: entityType,
				EntityID:   entityID,
				Status:     status,
				UserID:     reviewerID,
				UpdatedAt:  time.Now(),
			})
			if err != nil {
				return apperr.Internalf(err, "updating status to %s", status)
			}
		}

		slog.Info("review approved and content published",
			"review_id", review.ID, "entity_type", entityType, "entity_id", entityID, "user_id", reviewerID)
		return nil
	})
	return review, err
}

// Reject resolves a SUBMITTED review as REJECTED, which requires a comment,
// and moves the entity to NEEDS_REVISION.
func (s *ReviewService) Reject(ctx context.Context, reviewID, reviewerID int64, comment string) (store.Review, error) {
	if strings.TrimSpace(comment) == "" {
		return store.Review{}, apperr.Invalidf("rejecting a review requires a comment")
	}

	var review store.Review
	err := withTx(ctx, s.db, func(q *store.Queries) error {
		entityType, entityID, current, err := s.loadSubmitted(ctx, q, reviewID)
		if err != nil {
			return err
		}

		now := time.Now()
		review, err = q.ResolveReview(ctx, store.ResolveReviewParams{
			Status:     model.ReviewRejected,
			ReviewedBy: reviewerID,
			Comment:    comment,
			UpdatedAt:  now,
			ID:         current.ID,
		})
		if err != nil {
			return apperr.Internalf(err, "resolving review")
		}

		_, err = q.UpsertContentStatus(ctx, store.UpsertContentStatusParams{
			EntityType: entityType,
			EntityID:   entityID,
			Status:     model.StatusNeedsRevision,
			UserID:     reviewerID,
			UpdatedAt:  now,
		})
		if err != nil {
			return apperr.Internalf(err, "updating status")
		}
		return nil
	})
	return review, err
}

// loadSubmitted fetches a review, checks it is still SUBMITTED, and resolves
// the content entity behind its reviewable item.
func (s *ReviewService) loadSubmitted(ctx context.Context, q *store.Queries, reviewID int64) (entityType string, entityID int64, review store.Review, err error) {
	review, err = q.GetReviewByID(ctx, reviewID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, store.Review{}, apperr.NotFoundf("review %d not found", reviewID)
	}
	if err != nil {
		return "", 0, store.Review{}, apperr.Internalf(err, "loading review")
	}
	if review.Status != model.ReviewSubmitted {
		return "", 0, store.Review{}, apperr.Conflictf("review %d is %s and cannot be resolved again", reviewID, review.Status)
	}

	item, err := q.GetReviewableItemByID(ctx, review.ReviewableItemID)
	if err != nil {
		return "", 0, store.Review{}, apperr.Internalf(err, "loading reviewable item")
	}
	entityType = model.EntityTypeForReviewable(item.ItemType)
	if entityType == "" {
		return "", 0, store.Review{}, apperr.Internalf(nil, "reviewable item %d has unknown type %q", item.ID, item.ItemType)
	}
	return entityType, item.ReferenceID, review, nil
}

// PublishSection moves a section straight from DRAFT to PUBLISHED, bypassing
// review. This is the direct publication path for sections.
func (s *ReviewService) PublishSection(ctx context.Context, sectionID, userID int64) (store.ContentStatus, error) {
	var status store.ContentStatus
	err := withTx(ctx, s.db, func(q *store.Queries) error {
		if _, err := q.GetSectionByID(ctx, sectionID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFoundf("section %d not found", sectionID)
			}
			return apperr.Internalf(err, "loading section")
		}

		current, err := vivifyStatus(ctx, q, model.EntitySection, sectionID)
		if err != nil {
			return err
		}
		if current.Status != model.StatusDraft {
			return apperr.Conflictf("section %d is %s and cannot be published directly", sectionID, current.Status)
		}

		status, err = q.UpsertContentStatus(ctx, store.UpsertContentStatusParams{
			EntityType: model.EntitySection,
			EntityID:   sectionID,
			Status:     model.StatusPublished,
			UserID:     userID,
			UpdatedAt:  time.Now(),
		})
		if err != nil {
			return apperr.Internalf(err, "publishing section")
		}
		return nil
	})
	return status, err
}

// ListReviews returns the review history for an entity.
func (s *ReviewService) ListReviews(ctx context.Context, entityType string, entityID int64) ([]store.Review, error) {
	itemType := model.ReviewableTypeFor(entityType)
	if itemType == "" {
		return nil, apperr.Invalidf("entity type %q cannot be reviewed", entityType)
	}
	item, err := s.queries.GetReviewableItem(ctx, store.GetReviewableItemParams{
		ItemType:    itemType,
		ReferenceID: entityID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internalf(err, "loading reviewable item")
	}
	reviews, err := s.queries.ListReviewsByItem(ctx, item.ID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing reviews")
	}
	return reviews, nil
}

// AddComment attaches a per-field comment to a review.
func (s *ReviewService) AddComment(ctx context.Context, reviewID, versionID int64, fieldName, text string, userID int64) (store.ReviewComment, error) {
	if strings.TrimSpace(text) == "" {
		return store.ReviewComment{}, apperr.Invalidf("comment text must not be empty")
	}
	if strings.TrimSpace(fieldName) == "" {
		return store.ReviewComment{}, apperr.Invalidf("field name must not be empty")
	}
	if _, err := s.queries.GetReviewByID(ctx, reviewID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ReviewComment{}, apperr.NotFoundf("review %d not found", reviewID)
		}
		return store.ReviewComment{}, apperr.Internalf(err, "loading review")
	}

	now := time.Now()
	comment, err := s.queries.CreateReviewComment(ctx, store.CreateReviewCommentParams{
		ReviewID:          reviewID,
		ReviewedVersionID: versionID,
		FieldName:         fieldName,
		CommentText:       text,
		CreatedBy:         userID,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return store.ReviewComment{}, apperr.Internalf(err, "creating comment")
	}
	return comment, nil
}

// ListComments returns a review's comments.
func (s *ReviewService) ListComments(ctx context.Context, reviewID int64) ([]store.ReviewComment, error) {
	comments, err := s.queries.ListReviewCommentsByReview(ctx, reviewID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing comments")
	}
	return comments, nil
}

// UpdateComment edits a comment's text. Only the creator may edit.
func (s *ReviewService) UpdateComment(ctx context.Context, commentID int64, text string, userID int64) (store.ReviewComment, error) {
	if strings.TrimSpace(text) == "" {
		return store.ReviewComment{}, apperr.Invalidf("comment text must not be empty")
	}
	comment, err := s.getOwnComment(ctx, commentID, userID)
	if err != nil {
		return store.ReviewComment{}, err
	}
	if err := s.queries.UpdateReviewComment(ctx, store.UpdateReviewCommentParams{
		CommentText: text,
		UpdatedAt:   time.Now(),
		ID:          comment.ID,
	}); err != nil {
		return store.ReviewComment{}, apperr.Internalf(err, "updating comment")
	}
	comment.CommentText = text
	return comment, nil
}

// DeleteComment removes a comment. Only the creator may delete.
func (s *ReviewService) DeleteComment(ctx context.Context, commentID, userID int64) error {
	comment, err := s.getOwnComment(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if err := s.queries.DeleteReviewComment(ctx, comment.ID); err != nil {
		return apperr.Internalf(err, "deleting comment")
	}
	return nil
}

func (s *ReviewService) getOwnComment(ctx context.Context, commentID, userID int64) (store.ReviewComment, error) {
	comment, err := s.queries.GetReviewCommentByID(ctx, commentID)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ReviewComment{}, apperr.NotFoundf("comment %d not found", commentID)
	}
	if err != nil {
		return store.ReviewComment{}, apperr.Internalf(err, "loading comment")
	}
	if comment.CreatedBy != userID {
		return store.ReviewComment{}, apperr.Conflictf("only the comment's creator can change it")
	}
	return comment, nil
}
