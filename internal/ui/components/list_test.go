package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func items(labels ...string) []ListItem {
	out := make([]ListItem, len(labels))
	for i, l := range labels {
		out[i] = ListItem{Label: l}
	}
	return out
}

func TestList_Navigation(t *testing.T) {
	l := NewList(items("a", "b", "c"))

	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if l.Selected != 2 {
		t.Errorf("Selected = %d, want 2 (clamped)", l.Selected)
	}

	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if l.Selected != 1 {
		t.Errorf("Selected = %d, want 1", l.Selected)
	}
}

func TestList_SkipsDisabled(t *testing.T) {
	its := items("a", "b", "c")
	its[0].Disabled = true
	its[1].Disabled = true

	l := NewList(its)
	if l.Selected != 2 {
		t.Errorf("Selected = %d, want first enabled 2", l.Selected)
	}
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if l.Selected != 2 {
		t.Errorf("Selected = %d, cursor should not land on disabled items", l.Selected)
	}
}

func TestList_EnterRunsAction(t *testing.T) {
	ran := false
	l := NewList([]ListItem{{Label: "go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})

	l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected Enter to run the selected action")
	}
}

func TestList_IgnoresKeysWhenBlurred(t *testing.T) {
	l := NewList(items("a", "b"))
	l.Focused = false

	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if l.Selected != 0 {
		t.Errorf("Selected = %d, blurred list should ignore keys", l.Selected)
	}
}

func TestList_SetItemsClampsCursor(t *testing.T) {
	l := NewList(items("a", "b", "c"))
	l.Selected = 2

	l.SetItems(items("a"))
	if l.Selected != 0 {
		t.Errorf("Selected = %d, want 0", l.Selected)
	}

	l.SetItems(nil)
	if _, ok := l.Current(); ok {
		t.Error("Current should report no item for an empty list")
	}
}

func TestList_EmptyView(t *testing.T) {
	l := NewList(nil)
	l.Empty = "Toutes les étiquettes sont placées"
	if !strings.Contains(l.View(), "Toutes les étiquettes") {
		t.Errorf("empty view = %q", l.View())
	}
}

func TestProgressBar_Width(t *testing.T) {
	p := NewProgressBar("", 0.5, false, 20)
	if got := len([]rune(stripANSI(p.View()))); got != 20 {
		t.Errorf("bar width = %d, want 20", got)
	}
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
