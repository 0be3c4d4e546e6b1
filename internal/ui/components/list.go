package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/squelette/internal/ui/theme"
)

// ListItem is a single row of a List.
type ListItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// List is a vertical selectable list, used for menus and the label pool.
// Keys are handled only while Focused.
type List struct {
	Items    []ListItem
	Selected int
	Focused  bool
	// Empty is shown when there are no items.
	Empty string
}

// NewList creates a focused list with the cursor on the first enabled item.
func NewList(items []ListItem) List {
	l := List{Items: items, Focused: true}
	l.Selected = l.firstEnabled()
	return l
}

func (l List) firstEnabled() int {
	for i, item := range l.Items {
		if !item.Disabled {
			return i
		}
	}
	return 0
}

// SetItems replaces the items, keeping the cursor in range.
func (l *List) SetItems(items []ListItem) {
	l.Items = items
	if l.Selected >= len(items) {
		l.Selected = len(items) - 1
	}
	if l.Selected < 0 || (l.Selected < len(items) && items[l.Selected].Disabled) {
		l.Selected = l.firstEnabled()
	}
}

// Current returns the selected item.
func (l List) Current() (ListItem, bool) {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return ListItem{}, false
	}
	return l.Items[l.Selected], true
}

// Update handles keyboard navigation.
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	if !l.Focused {
		return l, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := l.Selected - 1; i >= 0; i-- {
			if !l.Items[i].Disabled {
				l.Selected = i
				break
			}
		}
	case "down", "j":
		for i := l.Selected + 1; i < len(l.Items); i++ {
			if !l.Items[i].Disabled {
				l.Selected = i
				break
			}
		}
	case "enter":
		if item, ok := l.Current(); ok && item.Action != nil && !item.Disabled {
			return l, item.Action()
		}
	}

	return l, nil
}

// View renders the list.
func (l List) View() string {
	if len(l.Items) == 0 {
		return theme.Hint.Render("  " + l.Empty)
	}

	var b strings.Builder
	for i, item := range l.Items {
		switch {
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("    " + item.Label))
		case i == l.Selected && l.Focused:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		case i == l.Selected:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ▹ " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
