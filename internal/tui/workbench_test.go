// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/caesarcipher/core/cipher"
	"github.com/toeirei/caesarcipher/internal/i18n"
)

func press(t *testing.T, m workbenchModel, msg tea.KeyMsg) (workbenchModel, tea.Cmd) {
	t.Helper()
	mi, cmd := m.Update(msg)
	next, ok := mi.(workbenchModel)
	if !ok {
		t.Fatalf("expected workbenchModel, got %T", mi)
	}
	return next, cmd
}

func typeText(t *testing.T, m workbenchModel, s string) workbenchModel {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestWorkbench_EncodeWithOffset(t *testing.T) {
	i18n.Init("en")
	m := newWorkbenchModel(Options{})
	m = typeText(t, m, "Hello, World!")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != fieldOffset {
		t.Fatalf("expected focus on offset, got %d", m.focus)
	}
	m = typeText(t, m, "3")

	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.output != "Khoor, Zruog!" {
		t.Fatalf("expected Khoor, Zruog!, got %q", m.output)
	}
}

func TestWorkbench_DecodeRequiresOffset(t *testing.T) {
	i18n.Init("en")
	m := newWorkbenchModel(Options{})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.mode != modeDecode {
		t.Fatalf("expected decode mode, got %v", m.mode)
	}
	m = typeText(t, m, "Khoor")
	if !errors.Is(m.err, cipher.ErrMissingOffset) {
		t.Fatalf("expected ErrMissingOffset, got %v", m.err)
	}
	if !strings.Contains(m.View(), i18n.T("cli.missing_offset")) {
		t.Fatalf("expected missing offset hint in view")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "3")
	if m.err != nil || m.output != "Hello" {
		t.Fatalf("expected Hello, got %q (err %v)", m.output, m.err)
	}
}

func TestWorkbench_Crack(t *testing.T) {
	i18n.Init("en")
	m := newWorkbenchModel(Options{})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.mode != modeCrack {
		t.Fatalf("expected crack mode, got %v", m.mode)
	}
	m = typeText(t, m, "Vjg swkem dtqyp hqz lworu qxgt vjg ncba fqi.")
	if m.output != "The quick brown fox jumps over the lazy dog." {
		t.Fatalf("unexpected crack output %q", m.output)
	}
	if m.info != i18n.T("cli.cracked_offset", 2) {
		t.Fatalf("unexpected info %q", m.info)
	}
}

func TestWorkbench_RandomOffsetIsStable(t *testing.T) {
	i18n.Init("en")
	m := newWorkbenchModel(Options{})
	m = typeText(t, m, "abc")
	v, ok := m.random.Get()
	if !ok {
		t.Fatalf("expected a random offset to be drawn")
	}
	if v < cipher.MinRandomOffset || v >= cipher.MaxRandomOffset {
		t.Fatalf("random offset %d out of range", v)
	}

	m = typeText(t, m, "def")
	if again, _ := m.random.Get(); again != v {
		t.Fatalf("random offset changed from %d to %d", v, again)
	}
	want, err := cipher.Encode("abcdef", cipher.Some(v))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if m.output != want.Text {
		t.Fatalf("expected %q, got %q", want.Text, m.output)
	}
}

func TestWorkbench_CustomAlphabet(t *testing.T) {
	i18n.Init("en")
	m := newWorkbenchModel(Options{Alphabet: "abc"})
	m = typeText(t, m, "cab")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "1")
	if m.output != "abc" {
		t.Fatalf("expected abc, got %q", m.output)
	}

	// Invalid alphabets surface as configuration errors.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "a")
	if !errors.Is(m.err, cipher.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", m.err)
	}
	if m.output != "" {
		t.Fatalf("expected empty output on error, got %q", m.output)
	}
}

func TestWorkbench_Uppercase(t *testing.T) {
	i18n.Init("en")
	m := newWorkbenchModel(Options{Uppercase: true})
	m = typeText(t, m, "Hello")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "0")
	if m.output != "HELLO" {
		t.Fatalf("expected HELLO, got %q", m.output)
	}
}

func TestWorkbench_CopyToClipboard(t *testing.T) {
	i18n.Init("en")
	var copied string
	old := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = old })

	m := newWorkbenchModel(Options{})
	m = typeText(t, m, "abc")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "1")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "bcd" {
		t.Fatalf("expected bcd on clipboard, got %q", copied)
	}
	if m.status == "" {
		t.Fatalf("expected a status message after copy")
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !strings.Contains(m.status, "no clipboard") {
		t.Fatalf("expected copy failure in status, got %q", m.status)
	}
}

func TestWorkbench_QuitAndFocusCycle(t *testing.T) {
	i18n.Init("en")
	m := newWorkbenchModel(Options{})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldAlphabet {
		t.Fatalf("expected focus to wrap to alphabet, got %d", m.focus)
	}

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestWorkbench_View(t *testing.T) {
	i18n.Init("en")
	m := newWorkbenchModel(Options{})
	v := m.View()
	for _, want := range []string{i18n.T("tui.title"), i18n.T("tui.message"), i18n.T("tui.mode_encode")} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}
