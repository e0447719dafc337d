// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package frequency

import "unicode"

// english maps each lowercase Latin letter to its relative frequency in
// English text. The values sum to roughly 1.
var english = map[rune]float64{
	'a': 0.08167,
	'b': 0.01492,
	'c': 0.02782,
	'd': 0.04253,
	'e': 0.130001,
	'f': 0.02228,
	'g': 0.02015,
	'h': 0.06094,
	'i': 0.06966,
	'j': 0.00153,
	'k': 0.00772,
	'l': 0.04025,
	'm': 0.02406,
	'n': 0.06749,
	'o': 0.07507,
	'p': 0.01929,
	'q': 0.00095,
	'r': 0.05987,
	's': 0.06327,
	't': 0.09056,
	'u': 0.02758,
	'v': 0.00978,
	'w': 0.02360,
	'x': 0.00150,
	'y': 0.01974,
	'z': 0.00074,
}

// Of returns the relative frequency of r, ignoring case. The boolean is false
// for anything outside a-z.
func Of(r rune) (float64, bool) {
	p, ok := english[unicode.ToLower(r)]
	return p, ok
}

// Letters returns the modelled letters in alphabetical order.
func Letters() []rune {
	out := make([]rune, 0, len(english))
	for r := 'a'; r <= 'z'; r++ {
		out = append(out, r)
	}
	return out
}
