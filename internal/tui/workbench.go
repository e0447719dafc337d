// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive cipher workbench.
// This file holds the workbench model: three inputs, a mode switch and a
// live result pane that is recomputed on every edit.
package tui // import "github.com/toeirei/caesarcipher/internal/tui"

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/caesarcipher/core/cipher"
	"github.com/toeirei/caesarcipher/internal/i18n"
)

// writeClipboard is swapped out by tests.
var writeClipboard = clipboard.WriteAll

type mode int

const (
	modeEncode mode = iota
	modeDecode
	modeCrack
)

func (m mode) label() string {
	switch m {
	case modeDecode:
		return i18n.T("tui.mode_decode")
	case modeCrack:
		return i18n.T("tui.mode_crack")
	default:
		return i18n.T("tui.mode_encode")
	}
}

const (
	fieldMessage = iota
	fieldOffset
	fieldAlphabet
	fieldCount
)

// Options seeds the workbench from the resolved settings.
type Options struct {
	Alphabet   string
	Uppercase  bool
	Exhaustive bool
}

// workbenchModel is the single view of the TUI.
type workbenchModel struct {
	opts   Options
	inputs []textinput.Model
	focus  int
	mode   mode

	// random is the offset drawn for the first encode without an explicit
	// offset. It is reused so the output does not change on every keystroke.
	random cipher.Offset

	output string
	info   string
	status string
	err    error
}

func newWorkbenchModel(opts Options) workbenchModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Cursor.Style = focusedStyle
		inputs[i] = ti
	}
	inputs[fieldMessage].CharLimit = 4096
	inputs[fieldMessage].Width = 60
	inputs[fieldOffset].CharLimit = 12
	inputs[fieldOffset].Width = 12
	inputs[fieldAlphabet].CharLimit = 52
	inputs[fieldAlphabet].Width = 52
	inputs[fieldAlphabet].SetValue(opts.Alphabet)

	inputs[fieldMessage].Focus()
	inputs[fieldMessage].TextStyle = focusedStyle

	return workbenchModel{opts: opts, inputs: inputs}
}

// Init starts the cursor blinking.
func (m workbenchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and keeps the result pane current.
func (m workbenchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "ctrl+t":
			m.mode = (m.mode + 1) % 3
			m.status = ""
			m.recompute()
			return m, nil
		case "ctrl+y":
			if m.output == "" {
				return m, nil
			}
			if err := writeClipboard(m.output); err != nil {
				m.status = errorStyle.Render(i18n.T("cli.copy_failed", err))
			} else {
				m.status = successStyle.Render(i18n.T("tui.copied"))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
		m.recompute()
	}
	return m, cmd
}

// setFocus moves the cursor to input i. It mutates the inputs slice shared
// with the caller's copy of the model.
func (m *workbenchModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.inputs[m.focus].TextStyle = lipgloss.NewStyle()
	m.focus = i
	m.inputs[i].TextStyle = focusedStyle
	return m.inputs[i].Focus()
}

// recompute runs the selected operation over the current inputs.
func (m *workbenchModel) recompute() {
	m.output, m.info, m.err = "", "", nil

	message := m.inputs[fieldMessage].Value()
	if message == "" {
		return
	}

	opts := []cipher.Option{cipher.WithAlphabet(m.inputs[fieldAlphabet].Value())}
	if m.opts.Uppercase {
		opts = append(opts, cipher.WithCaseMode(cipher.CaseUpper))
	}
	if m.opts.Exhaustive {
		opts = append(opts, cipher.WithExhaustive())
	}
	c, err := cipher.New(opts...)
	if err != nil {
		m.err = err
		return
	}

	offset, err := cipher.ParseOffset(m.inputs[fieldOffset].Value())
	if err != nil {
		m.err = err
		return
	}

	switch m.mode {
	case modeCrack:
		res := c.Crack(message)
		m.output = res.Text
		m.info = i18n.T("cli.cracked_offset", res.Offset)

	case modeDecode:
		if !offset.IsSet() {
			m.err = cipher.ErrMissingOffset
			m.info = i18n.T("cli.missing_offset")
			return
		}
		res, err := c.Decode(message, offset)
		if err != nil {
			m.err = err
			return
		}
		m.output = res.Text

	default:
		if !offset.IsSet() {
			if !m.random.IsSet() {
				res, err := c.Encode(message, cipher.None())
				if err != nil {
					m.err = err
					return
				}
				m.random = cipher.Some(res.Offset)
			}
			offset = m.random
			v, _ := m.random.Get()
			m.info = i18n.T("cli.random_offset", v)
		}
		res, err := c.Encode(message, offset)
		if err != nil {
			m.err = err
			return
		}
		m.output = res.Text
	}
}

// View renders the workbench.
func (m workbenchModel) View() string {
	labels := []string{i18n.T("tui.message"), i18n.T("tui.offset"), i18n.T("tui.alphabet")}
	rows := []string{titleStyle.Render(i18n.T("tui.title"))}
	for i, in := range m.inputs {
		label := labelStyle.Render(labels[i])
		if i == m.focus {
			label = focusedLabelStyle.Render(labels[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, in.View()))
	}
	rows = append(rows, "",
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(i18n.T("tui.mode")), specialStyle.Render(m.mode.label())),
		"",
		labelStyle.Render(i18n.T("tui.output")),
		outputPaneStyle.Render(m.output),
	)

	switch {
	case m.err != nil && m.info != "":
		rows = append(rows, errorStyle.Render(m.info))
	case m.err != nil:
		rows = append(rows, errorStyle.Render(m.err.Error()))
	case m.info != "":
		rows = append(rows, helpStyle.Render(m.info))
	}
	if m.status != "" {
		rows = append(rows, m.status)
	}
	rows = append(rows, "", helpStyle.Render(i18n.T("tui.help")))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
