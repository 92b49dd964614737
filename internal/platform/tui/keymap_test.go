package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	runes := func(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		terminal bool
		expected core.Action
	}{
		{"space flaps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, core.ActionFlap},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, false, core.ActionFlap},
		{"w flaps", runes("w"), false, core.ActionFlap},
		{"flap restarts when over", runes("w"), true, core.ActionRestart},
		{"r restarts", runes("r"), true, core.ActionRestart},
		{"p pauses", runes("p"), false, core.ActionPause},
		{"q quits", runes("q"), false, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, true, core.ActionQuit},
		{"unbound key", runes("x"), false, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg, tt.terminal); got != tt.expected {
				t.Errorf("Action() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
