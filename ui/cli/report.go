// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/caesarcipher/core/cipher"
	"github.com/toeirei/caesarcipher/internal/i18n"
)

const (
	colorSubtle    = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("81")
)

var (
	reportTitleStyle  = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true).MarginBottom(1)
	reportHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSubtle)
	reportBestStyle   = lipgloss.NewStyle().Foreground(colorHighlight)
	reportRowStyle    = lipgloss.NewStyle()

	rankCell    = lipgloss.NewStyle().Width(6)
	offsetCell  = lipgloss.NewStyle().Width(8)
	entropyCell = lipgloss.NewStyle().Width(11)
)

// renderReport writes the ranked crack candidates, best first.
func renderReport(w io.Writer, candidates []cipher.Candidate) error {
	rows := make([]string, 0, len(candidates)+2)
	rows = append(rows, reportTitleStyle.Render(i18n.T("cli.report_title")))
	rows = append(rows, reportHeaderStyle.Render(reportRow(
		i18n.T("cli.report_rank"),
		i18n.T("cli.report_offset"),
		i18n.T("cli.report_entropy"),
		i18n.T("cli.report_candidate"),
	)))

	for i, c := range candidates {
		style := reportRowStyle
		if i == 0 {
			style = reportBestStyle
		}
		rows = append(rows, style.Render(reportRow(
			strconv.Itoa(i+1),
			strconv.Itoa(c.Trial),
			strconv.FormatFloat(c.Entropy, 'f', 3, 64),
			c.Text,
		)))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return err
}

func reportRow(rank, offset, entropy, text string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		rankCell.Render(rank),
		offsetCell.Render(offset),
		entropyCell.Render(entropy),
		text,
	)
}
