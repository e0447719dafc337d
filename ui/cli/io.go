// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoMessage = errors.New("no message provided")

// readMessage returns the message from, in order: the positional argument,
// the --file flag, or standard input when it is not a terminal.
func readMessage(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", file, err)
		}
		return trimNewline(string(data)), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", newUserError("cli.no_message", errNoMessage)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", newUserError("cli.no_message", errNoMessage)
	}
	return trimNewline(string(data)), nil
}

func trimNewline(s string) string {
	return strings.TrimRight(s, "\r\n")
}

func validateFormat(format string) error {
	switch strings.ToLower(format) {
	case "text", "", "hex", "base64":
		return nil
	default:
		return fmt.Errorf("unknown format: %s. Available: text, hex, base64", format)
	}
}

func formatOutput(text, format string) (string, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return text, nil
	case "hex":
		return hex.EncodeToString([]byte(text)), nil
	case "base64":
		return base64.StdEncoding.EncodeToString([]byte(text)), nil
	default:
		return "", validateFormat(format)
	}
}

func decodeInput(text, format string) (string, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return text, nil
	case "hex":
		data, err := hex.DecodeString(strings.TrimSpace(text))
		if err != nil {
			return "", fmt.Errorf("invalid hex input: %w", err)
		}
		return string(data), nil
	case "base64":
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
		if err != nil {
			return "", fmt.Errorf("invalid base64 input: %w", err)
		}
		return string(data), nil
	default:
		return "", validateFormat(format)
	}
}
