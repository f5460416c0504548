// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package learning defines the boundary to an external learning system that
// may hold references to published paragraphs.
package learning

import "context"

// Module answers whether content is referenced by learning material.
// Deleting a paragraph that is in use must be refused.
type Module interface {
	IsParagraphInUse(ctx context.Context, paragraphID int64) (bool, error)
}

// Unconfigured is the Module used when no learning system is attached.
// It reports every paragraph as unused.
type Unconfigured struct{}

// IsParagraphInUse always reports false.
func (Unconfigured) IsParagraphInUse(context.Context, int64) (bool, error) {
	return false, nil
}
