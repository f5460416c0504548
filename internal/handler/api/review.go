// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/olegiv/groeiboek/internal/middleware"
	"github.com/olegiv/groeiboek/internal/store"
)

// ReviewResponse represents a review in API responses.
type ReviewResponse struct {
	ID                int64     `json:"id"`
	ReviewedVersionID int64     `json:"reviewed_version_id"`
	Status            string    `json:"status"`
	SubmittedBy       int64     `json:"submitted_by"`
	ReviewedBy        int64     `json:"reviewed_by,omitempty"`
	Comment           string    `json:"comment,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func reviewToResponse(rv store.Review) ReviewResponse {
	out := ReviewResponse{
		ID:                rv.ID,
		ReviewedVersionID: rv.ReviewedVersionID,
		Status:            rv.Status,
		SubmittedBy:       rv.SubmittedBy,
		Comment:           rv.Comment,
		CreatedAt:         rv.CreatedAt,
		UpdatedAt:         rv.UpdatedAt,
	}
	if rv.ReviewedBy.Valid {
		out.ReviewedBy = rv.ReviewedBy.Int64
	}
	return out
}

// ReviewCommentResponse represents a field-level review comment.
type ReviewCommentResponse struct {
	ID                int64     `json:"id"`
	ReviewID          int64     `json:"review_id"`
	ReviewedVersionID int64     `json:"reviewed_version_id"`
	FieldName         string    `json:"field_name"`
	CommentText       string    `json:"comment_text"`
	CreatedBy         int64     `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func reviewCommentToResponse(c store.ReviewComment) ReviewCommentResponse {
	return ReviewCommentResponse{
		ID:                c.ID,
		ReviewID:          c.ReviewID,
		ReviewedVersionID: c.ReviewedVersionID,
		FieldName:         c.FieldName,
		CommentText:       c.CommentText,
		CreatedBy:         c.CreatedBy,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func (h *Handler) submitForReview(w http.ResponseWriter, r *http.Request) {
	entityType, err := entityTypeParam(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req struct {
		VersionID int64 `json:"version_id"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	review, err := h.review.SubmitForReview(r.Context(), entityType, id, req.VersionID, user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, reviewToResponse(review))
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	entityType, err := entityTypeParam(r)
	if err != nil {
		writeErr(w, err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	reviews, err := h.review.ListReviews(r.Context(), entityType, id)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, reviewToResponse(rv))
	}
	writeData(w, http.StatusOK, out)
}

type reviewDecisionRequest struct {
	Comment string `json:"comment"`
}

func (h *Handler) approveReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req reviewDecisionRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	review, err := h.review.Approve(r.Context(), id, user.ID, req.Comment)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, reviewToResponse(review))
}

func (h *Handler) rejectReview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req reviewDecisionRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	review, err := h.review.Reject(r.Context(), id, user.ID, req.Comment)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, reviewToResponse(review))
}

func (h *Handler) publishSection(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	status, err := h.review.PublishSection(r.Context(), id, user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, struct {
		EntityType string    `json:"entity_type"`
		EntityID   int64     `json:"entity_id"`
		Status     string    `json:"status"`
		UpdatedAt  time.Time `json:"updated_at"`
	}{status.EntityType, status.EntityID, status.Status, status.UpdatedAt})
}

func (h *Handler) addReviewComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req struct {
		VersionID   int64  `json:"version_id"`
		FieldName   string `json:"field_name"`
		CommentText string `json:"comment_text"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	comment, err := h.review.AddComment(r.Context(), id, req.VersionID, req.FieldName, req.CommentText, user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, reviewCommentToResponse(comment))
}

func (h *Handler) listReviewComments(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	comments, err := h.review.ListComments(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]ReviewCommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, reviewCommentToResponse(c))
	}
	writeData(w, http.StatusOK, out)
}

func (h *Handler) updateReviewComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	var req struct {
		CommentText string `json:"comment_text"`
	}
	if err := decode(r, &req); err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	comment, err := h.review.UpdateComment(r.Context(), id, req.CommentText, user.ID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, reviewCommentToResponse(comment))
}

func (h *Handler) deleteReviewComment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeErr(w, err)
		return
	}
	user := middleware.GetUser(r)
	if err := h.review.DeleteComment(r.Context(), id, user.ID); err != nil {
		writeErr(w, err)
		return
	}
	writeData(w, http.StatusOK, nil)
}
