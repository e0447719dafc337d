// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"errors"
	"testing"
)

func TestResolveAlphabet_Default(t *testing.T) {
	a, err := ResolveAlphabet("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind() != KindDefault {
		t.Fatalf("expected default kind, got %s", a.Kind())
	}
	if a.Len() != 26 {
		t.Fatalf("expected 26 symbols, got %d", a.Len())
	}
	if a.Symbols() != latinLower {
		t.Fatalf("unexpected symbols %q", a.Symbols())
	}
	for _, r := range []rune{'a', 'z', 'A', 'Z'} {
		if !a.Contains(r) {
			t.Fatalf("expected %q to be in the default alphabet", r)
		}
	}
	for _, r := range []rune{'1', ' ', '.', 'é'} {
		if a.Contains(r) {
			t.Fatalf("expected %q to be outside the default alphabet", r)
		}
	}
}

func TestResolveAlphabet_CustomSharesOrderingAcrossCases(t *testing.T) {
	a, err := ResolveAlphabet("ueyplkizjgncdbqshoaxmrwftv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind() != KindCustom {
		t.Fatalf("expected custom kind, got %s", a.Kind())
	}
	// 'T' sits at index 24; 24+7 wraps to 5, which is 'k'.
	if got := a.shift('T', 7); got != 'K' {
		t.Fatalf("expected 'K', got %q", got)
	}
	if got := a.shift('h', 7); got != 'f' {
		t.Fatalf("expected 'f', got %q", got)
	}
}

func TestResolveAlphabet_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		symbol   rune
		position int
	}{
		{"duplicate", "abca", 'a', 3},
		{"duplicate across case", "abcA", 'A', 3},
		{"digit", "abc1", '1', 3},
		{"space", "ab c", ' ', 2},
		{"non ascii", "abcé", 'é', 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveAlphabet(tt.alphabet)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("expected ErrConfiguration, got %v", err)
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigurationError, got %T", err)
			}
			if cfgErr.Symbol != tt.symbol || cfgErr.Position != tt.position {
				t.Fatalf("expected symbol %q at %d, got %q at %d", tt.symbol, tt.position, cfgErr.Symbol, cfgErr.Position)
			}
		})
	}
}

func TestAlphabetShift_NormalisesOffsets(t *testing.T) {
	a := DefaultAlphabet()
	tests := []struct {
		in     rune
		offset int
		want   rune
	}{
		{'a', 0, 'a'},
		{'a', 1, 'b'},
		{'z', 1, 'a'},
		{'a', -1, 'z'},
		{'A', 26, 'A'},
		{'A', 28, 'C'},
		{'c', -28, 'a'},
		{'t', 10008, 'r'},
		{'T', -10008, 'V'},
		{'!', 5, '!'},
	}
	for _, tt := range tests {
		if got := a.shift(tt.in, tt.offset); got != tt.want {
			t.Fatalf("shift(%q, %d): expected %q, got %q", tt.in, tt.offset, tt.want, got)
		}
	}
}
