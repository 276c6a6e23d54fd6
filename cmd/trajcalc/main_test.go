package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func feed(m tea.Model, keys ...string) tea.Model {
	for _, s := range keys {
		m, _ = m.Update(key(s))
	}
	return m
}

func typeNumber(m tea.Model, number string) tea.Model {
	for _, r := range number {
		m = feed(m, string(r))
	}
	return feed(m, "enter")
}

func TestMenuToVelocityResult(t *testing.T) {
	m := feed(model{}, "1")
	tm := typeNumber(m, "50") // distance
	tm = typeNumber(tm, "10") // height
	res, ok := tm.(model)
	if !ok {
		t.Fatal("unexpected model type")
	}
	if res.state != stateResult {
		t.Fatalf("expected result state, got %d", res.state)
	}
	if !strings.Contains(res.View(), "35.02 m/s") {
		t.Fatalf("unexpected result view:\n%s", res.View())
	}
	// Any key returns to the menu.
	back := feed(tm, " ").(model)
	if back.state != stateMenu {
		t.Fatalf("expected menu state, got %d", back.state)
	}
}

func TestPromptRejectsBadInput(t *testing.T) {
	m := feed(model{}, "2") // launch angles: v0 must be positive
	bad := typeNumber(m, "0").(model)
	if bad.state != statePrompt || bad.fieldIdx != 0 {
		t.Fatalf("zero speed was accepted: state %d, field %d", bad.state, bad.fieldIdx)
	}
	if bad.inputErr == "" {
		t.Fatal("expected a validation message")
	}
	// Non-numeric characters never reach the buffer; enter on an empty
	// buffer re-prompts.
	bad = feed(bad, "x", "enter").(model)
	if bad.state != statePrompt || bad.inputErr == "" {
		t.Fatal("empty input was accepted")
	}
	// The prompt recovers: a valid value moves to the next field.
	good := typeNumber(bad, "20").(model)
	if good.fieldIdx != 1 || good.inputErr != "" {
		t.Fatalf("valid input rejected: field %d, err %q", good.fieldIdx, good.inputErr)
	}
}

func TestAnglesNoSolution(t *testing.T) {
	m := feed(model{}, "2")
	tm := typeNumber(m, "5")   // v0
	tm = typeNumber(tm, "100") // distance, out of reach
	tm = typeNumber(tm, "0")   // height
	res := tm.(model)
	if res.state != stateResult {
		t.Fatalf("expected result state, got %d", res.state)
	}
	if !strings.Contains(res.View(), "unreachable") {
		t.Fatalf("unexpected result view:\n%s", res.View())
	}
}

func TestEscBacksOutOfPrompt(t *testing.T) {
	m := feed(model{}, "3", "esc").(model)
	if m.state != stateMenu {
		t.Fatalf("expected menu state, got %d", m.state)
	}
}
