// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"strings"
	"unicode"
)

// AlphabetKind tells the default Latin alphabet apart from a user alphabet.
type AlphabetKind int

const (
	// KindDefault is the 26-letter Latin alphabet in both cases.
	KindDefault AlphabetKind = iota
	// KindCustom is a user-supplied ordering reused for both cases.
	KindCustom
)

func (k AlphabetKind) String() string {
	if k == KindCustom {
		return "custom"
	}
	return "default"
}

const (
	latinLower = "abcdefghijklmnopqrstuvwxyz"
	latinUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Alphabet is a resolved pair of index-aligned lookup tables. Position i in
// the lower table and position i in the upper table are the same rung.
type Alphabet struct {
	kind  AlphabetKind
	lower []rune
	upper []rune
	index map[rune]int
}

// DefaultAlphabet returns the standard Latin alphabet.
func DefaultAlphabet() Alphabet {
	return newAlphabet(KindDefault, latinLower, latinUpper)
}

// ResolveAlphabet builds the alphabet for an optional custom ordering. An
// empty string selects the default alphabet. A custom alphabet must consist
// of distinct ASCII letters; case is ignored when checking for duplicates
// because upper- and lower-case letters share the one ordering.
func ResolveAlphabet(custom string) (Alphabet, error) {
	if custom == "" {
		return DefaultAlphabet(), nil
	}
	seen := make(map[rune]bool, len(custom))
	for i, r := range []rune(custom) {
		switch {
		case r > unicode.MaxASCII:
			return Alphabet{}, &ConfigurationError{Alphabet: custom, Symbol: r, Position: i, Reason: "is not ASCII"}
		case !unicode.IsLetter(r):
			return Alphabet{}, &ConfigurationError{Alphabet: custom, Symbol: r, Position: i, Reason: "is not a letter"}
		case seen[unicode.ToLower(r)]:
			return Alphabet{}, &ConfigurationError{Alphabet: custom, Symbol: r, Position: i, Reason: "is a duplicate"}
		}
		seen[unicode.ToLower(r)] = true
	}
	return newAlphabet(KindCustom, strings.ToLower(custom), strings.ToUpper(custom)), nil
}

func newAlphabet(kind AlphabetKind, lower, upper string) Alphabet {
	a := Alphabet{
		kind:  kind,
		lower: []rune(lower),
		upper: []rune(upper),
		index: make(map[rune]int, 2*len(lower)),
	}
	for i, r := range a.lower {
		a.index[r] = i
	}
	for i, r := range a.upper {
		a.index[r] = i
	}
	return a
}

// Kind reports which variant this alphabet is.
func (a Alphabet) Kind() AlphabetKind { return a.kind }

// Len is the number of symbols, which is also the shift modulus.
func (a Alphabet) Len() int { return len(a.lower) }

// Symbols returns the ordering in lower case.
func (a Alphabet) Symbols() string { return string(a.lower) }

// Contains reports whether r is shifted by this alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// shift moves r by offset positions within the table matching its case.
// Runes outside the alphabet are returned unchanged.
func (a Alphabet) shift(r rune, offset int) rune {
	i, ok := a.index[r]
	if !ok {
		return r
	}
	n := len(a.lower)
	j := ((i+offset%n)%n + n) % n
	if unicode.IsUpper(r) {
		return a.upper[j]
	}
	return a.lower[j]
}
