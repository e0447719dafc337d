// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks an unusable alphabet or cipher option.
	ErrConfiguration = errors.New("invalid cipher configuration")
	// ErrMissingOffset is returned when decoding without an offset.
	ErrMissingOffset = errors.New("message cannot be decoded without selecting an offset")
	// ErrMutualExclusion is returned when both encode and decode are requested.
	ErrMutualExclusion = errors.New("select to encode or decode a message, not both")
	// ErrNoSelection is returned when no operation was requested at all.
	ErrNoSelection = errors.New("select a message to encode, decode or crack")
)

// ConfigurationError describes the symbol that made a custom alphabet unusable.
type ConfigurationError struct {
	Alphabet string
	Symbol   rune
	Position int
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("alphabet %q: symbol %q at position %d %s", e.Alphabet, e.Symbol, e.Position, e.Reason)
}

// Unwrap lets errors.Is match ErrConfiguration.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
