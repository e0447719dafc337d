// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive cipher workbench.
// This file, tui.go, is the entry point that runs the Bubble Tea program.
package tui // import "github.com/toeirei/caesarcipher/internal/tui"

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/caesarcipher/core/cipher"
	"github.com/toeirei/caesarcipher/internal/logging"
)

// Run starts the workbench and blocks until the user quits.
func Run(opts Options) error {
	if _, err := cipher.ResolveAlphabet(opts.Alphabet); err != nil {
		return err
	}
	if _, err := tea.NewProgram(newWorkbenchModel(opts), tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
