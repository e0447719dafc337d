// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

// Offset is an optional signed shift. The zero value is unset.
type Offset struct {
	value int
	set   bool
}

// Some returns an offset set to v. Zero is a valid, set offset.
func Some(v int) Offset { return Offset{value: v, set: true} }

// None returns an unset offset.
func None() Offset { return Offset{} }

// Get returns the value and whether it is set.
func (o Offset) Get() (int, bool) { return o.value, o.set }

// IsSet reports whether the offset carries a value.
func (o Offset) IsSet() bool { return o.set }

func (o Offset) String() string {
	if !o.set {
		return "unset"
	}
	return strconv.Itoa(o.value)
}

// ParseOffset reads a decimal offset. Blank input yields an unset offset.
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return None(), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return None(), fmt.Errorf("invalid offset %q: %w", s, err)
	}
	return Some(v), nil
}
