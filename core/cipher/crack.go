// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"cmp"
	"slices"

	"github.com/toeirei/caesarcipher/core/frequency"
	"github.com/toeirei/caesarcipher/internal/logging"
)

// DefaultTrials is the number of decode shifts tried by default: 0 through
// -24. A message encoded with a shift of 25 needs WithExhaustive.
const DefaultTrials = 25

// Candidate is one decode attempt made by the cracker.
type Candidate struct {
	Trial   int
	Text    string
	Entropy float64
}

// Candidates decodes message with every trial shift and returns the attempts
// ranked from most to least plausible. Equal entropies keep trial order, so
// the lowest shift wins a tie. An empty message has no candidates.
func (c *Cipher) Candidates(message string) []Candidate {
	if message == "" {
		return nil
	}
	logging.Debugf("Cracking message: %s", message)

	candidates := make([]Candidate, 0, c.trials)
	for i := range c.trials {
		text := c.apply(message, -i)
		entropy := frequency.Entropy(text)
		logging.Debugf("Attempt offset %d: %q entropy %.4f", i, text, entropy)
		candidates = append(candidates, Candidate{Trial: i, Text: text, Entropy: entropy})
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(a.Entropy, b.Entropy)
	})
	return candidates
}

// Crack returns the most plausible English plaintext for message without
// knowing the offset. Result.Offset is the offset that decodes message.
func (c *Cipher) Crack(message string) Result {
	candidates := c.Candidates(message)
	if len(candidates) == 0 {
		return Result{}
	}
	best := candidates[0]
	logging.Debugf("Most likely offset: %d", best.Trial)
	return Result{Text: best.Text, Offset: best.Trial}
}
