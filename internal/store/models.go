// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"
)

// User is a row in users.
type User struct {
	ID        int64
	Email     string
	Name      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Credential is a row in credentials (1:1 with users).
type Credential struct {
	UserID       int64
	PasswordHash string
	UpdatedAt    time.Time
}

// RefreshToken is a row in refresh_tokens.
type RefreshToken struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt sql.NullTime
	CreatedAt time.Time
}

// PasswordReset is a row in password_resets.
type PasswordReset struct {
	ID        int64
	UserID    int64
	TokenHash string
	ExpiresAt time.Time
	UsedAt    sql.NullTime
	CreatedAt time.Time
}

// AuditEvent is a row in audit_log.
type AuditEvent struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	UserID    sql.NullInt64
	Metadata  string
	CreatedAt time.Time
}

// Team is a row in teams.
type Team struct {
	ID        int64
	Name      string
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeamMember is a row in team_members.
type TeamMember struct {
	ID        int64
	TeamID    int64
	UserID    int64
	Role      string
	CreatedAt time.Time
}

// TeamInvitation is a row in team_invitations.
type TeamInvitation struct {
	ID         int64
	TeamID     int64
	Email      string
	Role       string
	Token      string
	ExpiresAt  time.Time
	AcceptedAt sql.NullTime
	CreatedAt  time.Time
}

// Category is a row in categories.
type Category struct {
	ID             int64
	CategoryNumber int64
	TitleNl        string
	TitleEn        string
	DescriptionNl  string
	DescriptionEn  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Book is a row in books.
type Book struct {
	ID               int64
	CategoryID       int64
	TitleNl          string
	TitleEn          string
	DescriptionNl    string
	DescriptionEn    string
	WorkingVersionID sql.NullInt64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Chapter is a row in chapters.
type Chapter struct {
	ID               int64
	BookID           int64
	TitleNl          string
	TitleEn          string
	Position         int64
	WorkingVersionID sql.NullInt64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Section is a row in sections.
type Section struct {
	ID               int64
	ChapterID        int64
	TitleNl          string
	TitleEn          string
	OrderIndex       int64
	WorkingVersionID sql.NullInt64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Paragraph is a row in paragraphs.
type Paragraph struct {
	ID               int64
	SectionID        int64
	TitleNl          string
	TitleEn          string
	ParagraphNumber  int64
	WorkingVersionID sql.NullInt64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ContentVersion is a row in one of the four *_versions tables. The tables
// share a shape, so one Go type serves all of them; ParentID is the book,
// chapter, section or paragraph id.
type ContentVersion struct {
	ID            int64
	ParentID      int64
	VersionNumber int64
	TitleNl       string
	TitleEn       string
	CreatedBy     int64
	CreatedAt     time.Time
}

// ContentStatus is a row in content_status.
type ContentStatus struct {
	ID         int64
	EntityType string
	EntityID   int64
	Status     string
	UserID     sql.NullInt64
	UpdatedAt  time.Time
}

// ReviewableItem is a row in reviewable_items.
type ReviewableItem struct {
	ID          int64
	ItemType    string
	ReferenceID int64
	CreatedAt   time.Time
}

// Review is a row in reviews.
type Review struct {
	ID                int64
	ReviewableItemID  int64
	ReviewedVersionID int64
	Status            string
	SubmittedBy       int64
	ReviewedBy        sql.NullInt64
	Comment           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReviewComment is a row in review_comments.
type ReviewComment struct {
	ID                int64
	ReviewID          int64
	ReviewedVersionID int64
	FieldName         string
	CommentText       string
	CreatedBy         int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LifeDomain is a row in life_domains.
type LifeDomain struct {
	ID            int64
	TitleNl       string
	TitleEn       string
	DescriptionNl string
	DescriptionEn string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Goal is a row in goals.
type Goal struct {
	ID              int64
	LifeDomainID    int64
	GoalNumber      string
	TitleNl         string
	TitleEn         string
	DescriptionNl   string
	DescriptionEn   string
	CreatedByUserID sql.NullInt64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Objective is a row in objectives.
type Objective struct {
	ID              int64
	GoalID          int64
	ObjectiveNumber string
	TitleNl         string
	TitleEn         string
	DescriptionNl   string
	DescriptionEn   string
	CreatedByUserID sql.NullInt64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// KeyResult is a row in key_results.
type KeyResult struct {
	ID              int64
	ObjectiveID     int64
	KeyResultNumber string
	TitleNl         string
	TitleEn         string
	TargetValue     float64
	Unit            string
	CreatedByUserID sql.NullInt64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Initiative is a row in initiatives.
type Initiative struct {
	ID               int64
	KeyResultID      int64
	InitiativeNumber string
	TitleNl          string
	TitleEn          string
	DescriptionNl    string
	DescriptionEn    string
	CreatedByUserID  sql.NullInt64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InitiativeSuggestion is a row in initiative_suggestions.
type InitiativeSuggestion struct {
	ID          int64
	KeyResultID int64
	TitleNl     string
	TitleEn     string
	CreatedAt   time.Time
}

// UserGoalInstance is a row in user_goal_instances.
type UserGoalInstance struct {
	ID          int64
	UserID      int64
	GoalID      int64
	StartedAt   time.Time
	CompletedAt sql.NullTime
}

// UserObjectiveInstance is a row in user_objective_instances.
type UserObjectiveInstance struct {
	ID          int64
	UserID      int64
	ObjectiveID int64
	StartedAt   time.Time
	CompletedAt sql.NullTime
}

// UserKeyResultInstance is a row in user_key_result_instances.
type UserKeyResultInstance struct {
	ID                      int64
	UserObjectiveInstanceID int64
	KeyResultID             int64
	StartedAt               time.Time
	CompletedAt             sql.NullTime
}

// UserInitiativeInstance is a row in user_initiative_instances.
type UserInitiativeInstance struct {
	ID                      int64
	UserKeyResultInstanceID int64
	InitiativeID            int64
	StartedAt               time.Time
	CompletedAt             sql.NullTime
}

// KeyResultProgress is a row in key_result_progress.
type KeyResultProgress struct {
	ID                      int64
	KeyResultID             int64
	UserObjectiveInstanceID int64
	CurrentValue            float64
	UpdatedAt               time.Time
}

// UserGoal is a row in user_goals (user-authored variant).
type UserGoal struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	CompletedAt sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserObjective is a row in user_objectives.
type UserObjective struct {
	ID          int64
	UserGoalID  int64
	UserID      int64
	Title       string
	Description string
	CompletedAt sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserKeyResult is a row in user_key_results.
type UserKeyResult struct {
	ID              int64
	UserObjectiveID int64
	UserID          int64
	Title           string
	TargetValue     float64
	Unit            string
	CurrentValue    float64
	CompletedAt     sql.NullTime
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserInitiative is a row in user_initiatives.
type UserInitiative struct {
	ID              int64
	UserKeyResultID int64
	UserID          int64
	Title           string
	Description     string
	CompletedAt     sql.NullTime
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// KanbanItem is a row in kanban_items.
type KanbanItem struct {
	ID         int64
	UserID     int64
	ItemType   string
	ItemID     int64
	ColumnName string
	Position   int64
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
