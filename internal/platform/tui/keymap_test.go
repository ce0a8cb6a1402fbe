package tui

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"s", core.ActionDown},
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"d", core.ActionRight},
		{"p", core.ActionPause},
		{" ", core.ActionPause},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"esc", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.MapKey(keyMsg(tc.key)); got != tc.want {
				t.Errorf("MapKey(%q) = %s, expected %s", tc.key, got, tc.want)
			}
		})
	}
}

func TestKeyMapHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()

	count := 0
	for _, col := range km.FullHelp() {
		count += len(col)
	}
	if count != 8 {
		t.Errorf("FullHelp lists %d bindings, expected 8", count)
	}
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
}
