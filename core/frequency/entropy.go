// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package frequency

import (
	"errors"
	"math"
	"unicode"
)

// ErrUndefinedScore is returned by Score for text without a single
// non-alphabetic character, where the normalisation divisor is zero.
var ErrUndefinedScore = errors.New("score undefined: text has no non-alphabetic characters")

// Entropy returns the information content of s in bits under the English
// letter model: the sum of -log2(p) over every letter. Lower values are more
// plausible English. Letters the model does not know contribute nothing and
// non-letters are ignored.
func Entropy(s string) float64 {
	var total float64
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if p, ok := Of(r); ok {
			total += -math.Log(p) / math.Ln2
		}
	}
	return total
}

// Score returns the normalised log-likelihood of s: the sum of ln(p) over
// letters, converted to bits and divided by the number of non-alphabetic
// characters. Higher (less negative) is more plausible.
//
// The divisor only depends on the non-letters of s, which a shift never
// changes, so ranking shifts of one message by Score or by Entropy gives the
// same order whenever Score is defined.
func Score(s string) (float64, error) {
	var total float64
	ignored := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			ignored++
			continue
		}
		if p, ok := Of(r); ok {
			total += math.Log(p)
		}
	}
	if ignored == 0 {
		return 0, ErrUndefinedScore
	}
	return total / math.Ln2 / float64(ignored), nil
}
