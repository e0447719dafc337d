// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/toeirei/caesarcipher/internal/logging"
)

// Random offsets are drawn from [MinRandomOffset, MaxRandomOffset) so an
// encoded message never lands too close to its plaintext.
const (
	MinRandomOffset = 5
	MaxRandomOffset = 25
)

// CaseMode selects how letter case is treated in the output.
type CaseMode int

const (
	// CasePreserve keeps the case of every input letter.
	CasePreserve CaseMode = iota
	// CaseUpper upper-cases every output letter.
	CaseUpper
)

func (m CaseMode) String() string {
	if m == CaseUpper {
		return "upper"
	}
	return "preserve"
}

// Result is the output of an operation together with the offset it used.
// For Crack, Offset is the value that decodes the ciphertext.
type Result struct {
	Text   string
	Offset int
	Random bool
}

// Cipher applies the shift transform over a resolved alphabet.
type Cipher struct {
	alphabet Alphabet
	caseMode CaseMode
	intn     func(n int) int
	trials   int
}

type options struct {
	alphabet   string
	caseMode   CaseMode
	intn       func(n int) int
	trials     int
	exhaustive bool
}

// Option configures a Cipher.
type Option func(*options)

// WithAlphabet selects a custom ordered alphabet. Empty means the default.
func WithAlphabet(alphabet string) Option {
	return func(o *options) { o.alphabet = alphabet }
}

// WithCaseMode selects the output case handling.
func WithCaseMode(mode CaseMode) Option {
	return func(o *options) { o.caseMode = mode }
}

// WithRand replaces the source used to draw random offsets. intn must return
// a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(o *options) { o.intn = intn }
}

// WithTrials sets how many decode shifts the cracker tries.
func WithTrials(n int) Option {
	return func(o *options) { o.trials = n }
}

// WithExhaustive makes the cracker try every shift of the alphabet.
func WithExhaustive() Option {
	return func(o *options) { o.exhaustive = true }
}

// New builds a Cipher. It fails with ErrConfiguration when the alphabet or
// trial count is unusable.
func New(opts ...Option) (*Cipher, error) {
	o := options{intn: rand.IntN, trials: DefaultTrials}
	for _, opt := range opts {
		opt(&o)
	}

	alphabet, err := ResolveAlphabet(o.alphabet)
	if err != nil {
		return nil, err
	}
	if o.exhaustive {
		o.trials = alphabet.Len()
	}
	if o.trials < 1 {
		return nil, fmt.Errorf("%w: crack trials must be positive, got %d", ErrConfiguration, o.trials)
	}
	if o.intn == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrConfiguration)
	}

	logging.Debugf("Cipher ready: %s alphabet of %d symbols, %s case, %d crack trials",
		alphabet.Kind(), alphabet.Len(), o.caseMode, o.trials)

	return &Cipher{
		alphabet: alphabet,
		caseMode: o.caseMode,
		intn:     o.intn,
		trials:   o.trials,
	}, nil
}

// Alphabet returns the resolved alphabet.
func (c *Cipher) Alphabet() Alphabet { return c.alphabet }

// Trials returns the number of shifts Crack tries.
func (c *Cipher) Trials() int { return c.trials }

// Encode shifts message forward by offset. An unset offset is replaced by a
// random one in [MinRandomOffset, MaxRandomOffset), reported in the result.
func (c *Cipher) Encode(message string, offset Offset) (Result, error) {
	value, ok := offset.Get()
	if message == "" {
		return Result{Offset: value}, nil
	}
	random := false
	if !ok {
		value = MinRandomOffset + c.intn(MaxRandomOffset-MinRandomOffset)
		random = true
		logging.Debugf("Random offset selected: %d", value)
	}
	logging.Debugf("Offset set: %d", value)
	logging.Debugf("Encoding message: %s", message)

	return Result{Text: c.apply(message, value), Offset: value, Random: random}, nil
}

// Decode shifts message back by offset, which must be set. The offset is
// never modified, so decoding twice gives the same text twice.
func (c *Cipher) Decode(message string, offset Offset) (Result, error) {
	value, ok := offset.Get()
	if !ok {
		return Result{}, ErrMissingOffset
	}
	if message == "" {
		return Result{Offset: value}, nil
	}
	logging.Debugf("Offset set: %d", value)
	logging.Debugf("Decoding message: %s", message)

	// Reduce before negating so the most negative int cannot overflow.
	return Result{Text: c.apply(message, -(value % c.alphabet.Len())), Offset: value}, nil
}

// apply runs the shift transform. Characters outside the alphabet keep their
// value and position.
func (c *Cipher) apply(message string, offset int) string {
	var b strings.Builder
	b.Grow(len(message))
	for _, r := range message {
		r = c.alphabet.shift(r, offset)
		if c.caseMode == CaseUpper {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

var defaultCipher, _ = New()

// Encode encodes message with the default alphabet.
func Encode(message string, offset Offset) (Result, error) {
	return defaultCipher.Encode(message, offset)
}

// Decode decodes message with the default alphabet.
func Decode(message string, offset Offset) (Result, error) {
	return defaultCipher.Decode(message, offset)
}

// Crack cracks message with the default alphabet.
func Crack(message string) Result {
	return defaultCipher.Crack(message)
}
