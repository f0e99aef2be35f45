package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"a", runeKey('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionJump},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"s", runeKey('s'), core.ActionSlide},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSlide},
		{"space", runeKey(' '), core.ActionConfirm},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionBack},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %s, expected %s", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 11 {
		t.Errorf("full help lists %d bindings, expected all 11", total)
	}
}
