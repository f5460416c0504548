package model

import (
	"testing"
)

func TestBilingualNormalize(t *testing.T) {
	tests := []struct {
		name   string
		in     Bilingual
		wantNL string
		wantEN string
	}{
		{
			name:   "both present",
			in:     Bilingual{NL: "Geloof", EN: "Faith"},
			wantNL: "Geloof",
			wantEN: "Faith",
		},
		{
			name:   "only dutch",
			in:     Bilingual{NL: "Geloof"},
			wantNL: "Geloof",
			wantEN: "Geloof",
		},
		{
			name:   "only english",
			in:     Bilingual{EN: "Faith"},
			wantNL: "Faith",
			wantEN: "Faith",
		},
		{
			name:   "whitespace counts as empty",
			in:     Bilingual{NL: "  ", EN: "Faith"},
			wantNL: "Faith",
			wantEN: "Faith",
		},
		{
			name:   "trims both",
			in:     Bilingual{NL: " Geloof ", EN: " Faith "},
			wantNL: "Geloof",
			wantEN: "Faith",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got.NL != tt.wantNL {
				t.Errorf("NL = %q, want %q", got.NL, tt.wantNL)
			}
			if got.EN != tt.wantEN {
				t.Errorf("EN = %q, want %q", got.EN, tt.wantEN)
			}
		})
	}
}

func TestBilingualIsBlank(t *testing.T) {
	if !(Bilingual{}).IsBlank() {
		t.Error("empty pair should be blank")
	}
	if !(Bilingual{NL: "  ", EN: "\t"}).IsBlank() {
		t.Error("whitespace-only pair should be blank")
	}
	if (Bilingual{NL: "x"}).IsBlank() {
		t.Error("pair with NL set should not be blank")
	}
}

func TestBilingualIn(t *testing.T) {
	b := Bilingual{NL: "Boek", EN: "Book"}
	if got := b.In(LangNL); got != "Boek" {
		t.Errorf("In(nl) = %q, want %q", got, "Boek")
	}
	if got := b.In(LangEN); got != "Book" {
		t.Errorf("In(en) = %q, want %q", got, "Book")
	}

	// Falls back to the other language when the requested one is empty.
	only := Bilingual{NL: "Boek"}
	if got := only.In(LangEN); got != "Boek" {
		t.Errorf("In(en) fallback = %q, want %q", got, "Boek")
	}
}

func TestLangFromAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", LangNL},
		{"nl", LangNL},
		{"nl-NL,nl;q=0.9", LangNL},
		{"en-US,en;q=0.9", LangEN},
		{"en;q=0.8,nl;q=0.9", LangNL},
		{"de-DE", LangNL},
		{"not a header ;;;", LangNL},
	}

	for _, tt := range tests {
		if got := LangFromAcceptLanguage(tt.header); got != tt.want {
			t.Errorf("LangFromAcceptLanguage(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
