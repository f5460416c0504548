// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Kanban item types. The item id always refers to the user's *instance* row,
// not the shared template.
const (
	ItemGoal       = "GOAL"
	ItemObjective  = "OBJECTIVE"
	ItemKeyResult  = "KEY_RESULT"
	ItemInitiative = "INITIATIVE"
)

// KanbanItemTypes lists every valid kanban item type.
var KanbanItemTypes = []string{ItemGoal, ItemObjective, ItemKeyResult, ItemInitiative}

// IsKanbanItemType reports whether s names a known kanban item type.
func IsKanbanItemType(s string) bool {
	for _, t := range KanbanItemTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Kanban columns.
const (
	ColumnTodo       = "TODO"
	ColumnInProgress = "IN_PROGRESS"
	ColumnDone       = "DONE"
)

// KanbanColumns lists every valid kanban column.
var KanbanColumns = []string{ColumnTodo, ColumnInProgress, ColumnDone}

// IsKanbanColumn reports whether s names a known kanban column.
func IsKanbanColumn(s string) bool {
	for _, c := range KanbanColumns {
		if s == c {
			return true
		}
	}
	return false
}

// Entity number prefixes handed out by the number generator, e.g. "KR-123".
const (
	NumberPrefixGoal       = "GOAL"
	NumberPrefixObjective  = "OBJ"
	NumberPrefixKeyResult  = "KR"
	NumberPrefixInitiative = "INI"
	NumberPrefixCategory   = "CAT"
)
