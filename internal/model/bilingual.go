// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models, enumerations and value objects shared
// across the groeiboek backend: bilingual text, content statuses, review
// statuses, kanban columns and user/team roles.
package model

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported content languages.
const (
	LangNL = "nl"
	LangEN = "en"
)

// Bilingual holds a Dutch/English text pair. Every titled entity carries one
// for its title and optionally one for its description.
type Bilingual struct {
	NL string `json:"nl"`
	EN string `json:"en"`
}

// IsBlank reports whether both languages are empty after trimming.
func (b Bilingual) IsBlank() bool {
	return strings.TrimSpace(b.NL) == "" && strings.TrimSpace(b.EN) == ""
}

// Normalize trims both fields and backfills an empty language with the other
// one. At least one language must be non-empty; callers are expected to have
// validated that with IsBlank first. Normalize is re-applied on every title
// update, not only at creation.
func (b Bilingual) Normalize() Bilingual {
	nl := strings.TrimSpace(b.NL)
	en := strings.TrimSpace(b.EN)
	if nl == "" {
		nl = en
	}
	if en == "" {
		en = nl
	}
	return Bilingual{NL: nl, EN: en}
}

// In returns the text for the requested language, falling back to the other
// language when the requested one is empty.
func (b Bilingual) In(lang string) string {
	switch lang {
	case LangEN:
		if b.EN != "" {
			return b.EN
		}
		return b.NL
	default:
		if b.NL != "" {
			return b.NL
		}
		return b.EN
	}
}

// matcher prefers Dutch, the platform's primary language.
var matcher = language.NewMatcher([]language.Tag{
	language.Dutch,
	language.English,
})

// LangFromAcceptLanguage resolves an Accept-Language header value to one of
// the supported content languages. An empty or unparsable header yields nl.
func LangFromAcceptLanguage(header string) string {
	if header == "" {
		return LangNL
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return LangNL
	}
	_, idx, _ := matcher.Match(tags...)
	if idx == 1 {
		return LangEN
	}
	return LangNL
}
