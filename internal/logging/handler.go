// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that tees WARN-and-above records
// into the database-backed audit log.
package logging

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// AuditHandler is a slog.Handler that wraps another handler and also writes
// WARN and ERROR level records to the audit log table.
type AuditHandler struct {
	inner   slog.Handler
	queries *store.Queries
	level   slog.Level // minimum level forwarded to the audit log
}

// NewAuditHandler creates an AuditHandler that wraps the given handler.
// Records at WARN level and above go to both the wrapped handler and the
// audit log.
func NewAuditHandler(inner slog.Handler, db *sql.DB) *AuditHandler {
	return &AuditHandler{
		inner:   inner,
		queries: store.New(db),
		level:   slog.LevelWarn,
	}
}

// NewAuditHandlerWithLevel creates an AuditHandler with a custom minimum level.
func NewAuditHandlerWithLevel(inner slog.Handler, db *sql.DB, level slog.Level) *AuditHandler {
	return &AuditHandler{
		inner:   inner,
		queries: store.New(db),
		level:   level,
	}
}

// Enabled implements slog.Handler.
func (h *AuditHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *AuditHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}
	if r.Level >= h.level {
		h.writeAuditEvent(r)
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *AuditHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AuditHandler{
		inner:   h.inner.WithAttrs(attrs),
		queries: h.queries,
		level:   h.level,
	}
}

// WithGroup implements slog.Handler.
func (h *AuditHandler) WithGroup(name string) slog.Handler {
	return &AuditHandler{
		inner:   h.inner.WithGroup(name),
		queries: h.queries,
		level:   h.level,
	}
}

// writeAuditEvent appends the record to the audit log. A background context
// is used so the event lands even when the request context is cancelled.
func (h *AuditHandler) writeAuditEvent(r slog.Record) {
	_, _ = h.queries.CreateAuditEvent(context.Background(), store.CreateAuditEventParams{
		Level:     auditLevel(r.Level),
		Category:  extractCategory(r),
		Message:   r.Message,
		UserID:    extractUserID(r),
		Metadata:  extractMetadata(r),
		CreatedAt: r.Time,
	})
}

func auditLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.AuditLevelError
	case level >= slog.LevelWarn:
		return model.AuditLevelWarning
	default:
		return model.AuditLevelInfo
	}
}

// extractCategory looks for a "category" attribute, falling back to a guess
// from the message text.
func extractCategory(r slog.Record) string {
	var category string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return false
		}
		return true
	})
	if category != "" {
		return category
	}

	msg := strings.ToLower(r.Message)
	switch {
	case strings.Contains(msg, "login") || strings.Contains(msg, "token") || strings.Contains(msg, "password"):
		return model.AuditCategoryAuth
	case strings.Contains(msg, "review") || strings.Contains(msg, "publish"):
		return model.AuditCategoryReview
	case strings.Contains(msg, "goal") || strings.Contains(msg, "objective") || strings.Contains(msg, "kanban"):
		return model.AuditCategoryOKR
	case strings.Contains(msg, "team") || strings.Contains(msg, "invitation"):
		return model.AuditCategoryTeam
	case strings.Contains(msg, "user"):
		return model.AuditCategoryUser
	case strings.Contains(msg, "book") || strings.Contains(msg, "chapter") || strings.Contains(msg, "paragraph"):
		return model.AuditCategoryContent
	default:
		return model.AuditCategorySystem
	}
}

// extractUserID picks up a "user_id" int attribute when present.
func extractUserID(r slog.Record) int64 {
	var userID int64
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "user_id" {
			userID = a.Value.Int64()
			return false
		}
		return true
	})
	return userID
}

// extractMetadata collects the remaining attributes into a JSON string.
func extractMetadata(r slog.Record) string {
	if r.NumAttrs() == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{")
	first := true
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" || a.Key == "user_id" {
			return true
		}
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString(`"`)
		sb.WriteString(escapeJSON(a.Key))
		sb.WriteString(`":"`)
		sb.WriteString(escapeJSON(a.Value.String()))
		sb.WriteString(`"`)
		return true
	})
	sb.WriteString("}")
	return sb.String()
}

func escapeJSON(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
