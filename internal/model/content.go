// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Content entity types, used as the discriminant for ContentStatus rows and
// reviewable items.
const (
	EntityCategory  = "category"
	EntityBook      = "book"
	EntityChapter   = "chapter"
	EntitySection   = "section"
	EntityParagraph = "paragraph"
)

// ContentEntityTypes lists every entity type that can carry a content status.
var ContentEntityTypes = []string{
	EntityCategory, EntityBook, EntityChapter, EntitySection, EntityParagraph,
}

// IsContentEntityType reports whether s names a known content entity type.
func IsContentEntityType(s string) bool {
	for _, t := range ContentEntityTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Content statuses.
const (
	StatusDraft         = "DRAFT"
	StatusInReview      = "IN_REVIEW"
	StatusNeedsRevision = "NEEDS_REVISION"
	StatusApproved      = "APPROVED"
	StatusPublished     = "PUBLISHED"
)

// CanSubmitForReview reports whether a content status allows submission for
// review. Only drafts and rejected (needs-revision) content can be submitted.
func CanSubmitForReview(status string) bool {
	return status == StatusDraft || status == StatusNeedsRevision
}

// Review statuses. A review is terminal once approved or rejected.
const (
	ReviewSubmitted = "SUBMITTED"
	ReviewApproved  = "APPROVED"
	ReviewRejected  = "REJECTED"
)

// Reviewable item types. Categories are structural containers only and are
// never submitted for review.
const (
	ReviewableBook      = "BOOK"
	ReviewableChapter   = "CHAPTER"
	ReviewableSection   = "SECTION"
	ReviewableParagraph = "PARAGRAPH"
)

// ReviewableTypeFor maps an entity type to its reviewable item type.
// Returns "" for entity types that cannot be reviewed.
func ReviewableTypeFor(entityType string) string {
	switch entityType {
	case EntityBook:
		return ReviewableBook
	case EntityChapter:
		return ReviewableChapter
	case EntitySection:
		return ReviewableSection
	case EntityParagraph:
		return ReviewableParagraph
	default:
		return ""
	}
}

// EntityTypeForReviewable is the inverse of ReviewableTypeFor.
// Returns "" for unknown reviewable types.
func EntityTypeForReviewable(itemType string) string {
	switch itemType {
	case ReviewableBook:
		return EntityBook
	case ReviewableChapter:
		return EntityChapter
	case ReviewableSection:
		return EntitySection
	case ReviewableParagraph:
		return EntityParagraph
	default:
		return ""
	}
}

// SystemCategoryNumbers are protected categories that can never be deleted.
var SystemCategoryNumbers = []int64{1, 2, 3}

// IsSystemCategory reports whether a category number is protected.
func IsSystemCategory(categoryNumber int64) bool {
	for _, n := range SystemCategoryNumbers {
		if categoryNumber == n {
			return true
		}
	}
	return false
}

// Chapter position bounds. Position 0 means "unpositioned"; a positioned
// chapter sits at 1..10.
const (
	ChapterPositionMin = 1
	ChapterPositionMax = 10
)

// IsValidChapterPosition reports whether p is 0 or within 1..10.
func IsValidChapterPosition(p int64) bool {
	return p == 0 || (p >= ChapterPositionMin && p <= ChapterPositionMax)
}
