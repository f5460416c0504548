// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Audit log levels.
const (
	AuditLevelInfo    = "info"
	AuditLevelWarning = "warning"
	AuditLevelError   = "error"
)

// Audit log categories.
const (
	AuditCategoryAuth    = "auth"
	AuditCategoryContent = "content"
	AuditCategoryReview  = "review"
	AuditCategoryOKR     = "okr"
	AuditCategoryTeam    = "team"
	AuditCategoryUser    = "user"
	AuditCategorySystem  = "system"
)
