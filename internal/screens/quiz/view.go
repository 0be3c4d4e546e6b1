package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/squelette/internal/quiz"
	"github.com/abhisek/squelette/internal/ui/components"
	"github.com/abhisek/squelette/internal/ui/layout"
	"github.com/abhisek/squelette/internal/ui/theme"
	"github.com/abhisek/squelette/internal/viewport"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const sidePaneMinWidth = 32

func formatScore(score int) string {
	return fmt.Sprintf("Score %d %%", score)
}

func formatProgress(assigned, total int) string {
	return fmt.Sprintf("%d/%d placées", assigned, total)
}

func (s *QuizScreen) View(width, height int) string {
	leftW, rightW := layout.SplitWidths(width, 0.6, sidePaneMinWidth)
	paneH := height - 1 // status line

	left := s.renderViewportPane(leftW, paneH)
	right := s.renderLabelPane(rightW, paneH)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, body, s.renderStatusLine(width))
}

// markers derives the per-anchor overlay from the quiz state.
func (s *QuizScreen) markers() map[string]viewport.Marker {
	hovered := s.hoveredID()
	finished := s.quiz.Phase() == qz.PhaseFinished
	out := make(map[string]viewport.Marker, len(s.anchors))
	for _, a := range s.anchors {
		isHover := a.ID == hovered && !finished
		m := viewport.Marker{
			Token:   s.quiz.Token(a.ID, isHover),
			Pending: a.ID == s.quiz.Pending(),
		}
		if label, ok := s.quiz.Assignment(a.ID); ok {
			m.Caption = label
		} else if isHover || m.Pending {
			m.Caption = "?"
		}
		out[a.ID] = m
	}
	return out
}

func (s *QuizScreen) renderViewportPane(width, height int) string {
	style := theme.Blurred
	if s.focus == paneViewport && !s.filter.Focused() {
		style = theme.Focused
	}
	// Border and padding take two rows and four columns.
	innerW, innerH := max(width-4, 0), max(height-2, 0)
	grid := viewport.Render(s.model, s.anchors, s.markers(), innerW, innerH)
	return style.Width(width).Height(height).Render(grid)
}

func (s *QuizScreen) renderLabelPane(width, height int) string {
	style := theme.Blurred
	if s.focus == paneLabels || s.filter.Focused() {
		style = theme.Focused
	}

	var b strings.Builder
	if s.quiz.Phase() == qz.PhaseFinished {
		s.writeFinished(&b)
	} else {
		s.writePlaying(&b)
	}
	return style.Width(width).Height(height).Render(b.String())
}

func (s *QuizScreen) writePlaying(b *strings.Builder) {
	b.WriteString(theme.Selected.Render(fmt.Sprintf("Étiquettes (%d)", s.quiz.Remaining())))
	b.WriteString("\n")
	b.WriteString(s.filter.View())
	b.WriteString("\n\n")
	b.WriteString(s.labels.View())
	b.WriteString("\n")

	if id := s.quiz.Pending(); id != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Hover).Render("◉ Os sélectionné : placez une étiquette"))
	} else {
		b.WriteString(theme.Hint.Render("Choisissez un point puis une étiquette"))
	}
	b.WriteString("\n\n")
	b.WriteString(components.NewButton("Vérifier", "c", s.quiz.CanCheck()).View())
}

func (s *QuizScreen) writeFinished(b *strings.Builder) {
	score := s.quiz.Score()
	style := theme.Correct
	if score < 60 {
		style = theme.Incorrect
	}
	b.WriteString(style.Render(formatScore(score)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(qz.MessageFor(score)))
	b.WriteString("\n\n")
	if s.notifyErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("Envoi du score échoué"))
		b.WriteString("\n\n")
	}
	b.WriteString(components.NewButton("Recommencer", "r", true).View())
}

func (s *QuizScreen) renderStatusLine(width int) string {
	var parts []string
	if s.loading {
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		parts = append(parts, frame+" "+viewport.Status(nil))
	} else {
		parts = append(parts, viewport.Status(s.model))
	}
	parts = append(parts,
		fmt.Sprintf("%d restantes", s.quiz.Remaining()),
		formatProgress(s.quiz.AssignedCount(), len(s.anchors)),
	)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Render("  " + strings.Join(parts, "  •  "))
}
