package anchors

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/squelette/internal/anatomy"
	"github.com/abhisek/squelette/internal/router"
	"github.com/abhisek/squelette/internal/screen"
	quizscreen "github.com/abhisek/squelette/internal/screens/quiz"
	"github.com/abhisek/squelette/internal/ui/layout"
	"github.com/abhisek/squelette/internal/ui/theme"
)

// AnchorsScreen lists the bones of the quiz with their labels.
type AnchorsScreen struct {
	deps    quizscreen.Deps
	anchors []anatomy.Anchor
}

var _ screen.Screen = (*AnchorsScreen)(nil)
var _ screen.KeyHintProvider = (*AnchorsScreen)(nil)

// New creates a new AnchorsScreen. Enter replaces it with a quiz built
// from deps.
func New(deps quizscreen.Deps) *AnchorsScreen {
	return &AnchorsScreen{deps: deps, anchors: anatomy.Skeleton()}
}

func (a *AnchorsScreen) Init() tea.Cmd {
	return nil
}

func (a *AnchorsScreen) Title() string {
	return "Liste des os"
}

func (a *AnchorsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Entrée", Description: "Commencer le quiz"},
		{Key: "Esc", Description: "Retour"},
	}
}

func (a *AnchorsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		deps := a.deps
		return a, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: quizscreen.New(deps)}
		}
	}
	return a, nil
}

func (a *AnchorsScreen) View(width, height int) string {
	head := lipgloss.NewStyle().Foreground(theme.TextDim)
	id := lipgloss.NewStyle().Foreground(theme.Neutral)

	var b strings.Builder
	b.WriteString(head.Render(fmt.Sprintf("%-12s  %-20s  %s", "ID", "Os", "Position")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", 52)))
	b.WriteString("\n")
	for _, an := range a.anchors {
		p := an.Position
		b.WriteString(id.Render(fmt.Sprintf("%-12s", an.ID)))
		b.WriteString("  ")
		b.WriteString(theme.Body.Render(fmt.Sprintf("%-20s", an.Label)))
		b.WriteString("  ")
		b.WriteString(head.Render(fmt.Sprintf("(%5.2f, %5.2f, %5.2f)", p.X, p.Y, p.Z)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d os à placer", len(a.anchors))))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}
