// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import "testing"

func TestFormatOutputAndDecodeInput(t *testing.T) {
	for _, format := range []string{"text", "hex", "base64", "HEX"} {
		enc, err := formatOutput("Khoor, Zruog!", format)
		if err != nil {
			t.Fatalf("%s: format: %v", format, err)
		}
		dec, err := decodeInput(enc, format)
		if err != nil {
			t.Fatalf("%s: decode: %v", format, err)
		}
		if dec != "Khoor, Zruog!" {
			t.Fatalf("%s: expected round trip, got %q", format, dec)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	if err := validateFormat("base64"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateFormat("yaml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
