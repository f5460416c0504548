package model

import (
	"testing"
)

func TestCanSubmitForReview(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusDraft, true},
		{StatusNeedsRevision, true},
		{StatusInReview, false},
		{StatusApproved, false},
		{StatusPublished, false},
		{"", false},
	}

	for _, tt := range tests {
		if got := CanSubmitForReview(tt.status); got != tt.want {
			t.Errorf("CanSubmitForReview(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestReviewableTypeFor(t *testing.T) {
	tests := []struct {
		entityType string
		want       string
	}{
		{EntityBook, ReviewableBook},
		{EntityChapter, ReviewableChapter},
		{EntitySection, ReviewableSection},
		{EntityParagraph, ReviewableParagraph},
		{EntityCategory, ""},
		{"unknown", ""},
	}

	for _, tt := range tests {
		if got := ReviewableTypeFor(tt.entityType); got != tt.want {
			t.Errorf("ReviewableTypeFor(%q) = %q, want %q", tt.entityType, got, tt.want)
		}
	}
}

func TestIsSystemCategory(t *testing.T) {
	for _, n := range SystemCategoryNumbers {
		if !IsSystemCategory(n) {
			t.Errorf("IsSystemCategory(%d) = false, want true", n)
		}
	}
	if IsSystemCategory(99) {
		t.Error("IsSystemCategory(99) = true, want false")
	}
}

func TestIsValidChapterPosition(t *testing.T) {
	tests := []struct {
		pos  int64
		want bool
	}{
		{0, true},
		{1, true},
		{10, true},
		{11, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := IsValidChapterPosition(tt.pos); got != tt.want {
			t.Errorf("IsValidChapterPosition(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestIsKanbanColumn(t *testing.T) {
	for _, c := range KanbanColumns {
		if !IsKanbanColumn(c) {
			t.Errorf("IsKanbanColumn(%q) = false, want true", c)
		}
	}
	if IsKanbanColumn("DOING") {
		t.Error(`IsKanbanColumn("DOING") = true, want false`)
	}
}
