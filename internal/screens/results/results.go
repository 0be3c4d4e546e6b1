package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/squelette/internal/quiz"
	"github.com/abhisek/squelette/internal/router"
	"github.com/abhisek/squelette/internal/screen"
	"github.com/abhisek/squelette/internal/ui/components"
	"github.com/abhisek/squelette/internal/ui/layout"
	"github.com/abhisek/squelette/internal/ui/theme"
)

// RetryMsg asks the quiz screen underneath to start a new attempt.
type RetryMsg struct{}

// Row is the verdict for one anchor.
type Row struct {
	Expected string
	// Given is empty when the anchor was left unlabeled.
	Given   string
	Correct bool
}

// Summary is what the results screen displays.
type Summary struct {
	Score   int
	Correct int
	Total   int
	Message string
	Rows    []Row
}

// FromQuiz builds a Summary from a checked quiz. Rows follow the anchor
// order.
func FromQuiz(q *qz.Quiz) Summary {
	snap := q.Snapshot()
	anchors := q.Anchors()

	sum := Summary{
		Score:   snap.Score,
		Total:   len(anchors),
		Message: qz.MessageFor(snap.Score),
		Rows:    make([]Row, 0, len(anchors)),
	}
	for _, a := range anchors {
		ok := snap.Results[a.ID]
		if ok {
			sum.Correct++
		}
		sum.Rows = append(sum.Rows, Row{
			Expected: a.Label,
			Given:    snap.Assignments[a.ID],
			Correct:  ok,
		})
	}
	return sum
}

// ResultsScreen shows the score after answers are checked.
type ResultsScreen struct {
	summary Summary
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(summary Summary) *ResultsScreen {
	return &ResultsScreen{summary: summary}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Résultats"
}

func (s *ResultsScreen) Status() string {
	return fmt.Sprintf("%d/%d", s.summary.Correct, s.summary.Total)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Entrée", Description: "Voir le squelette"},
		{Key: "R", Description: "Recommencer"},
		{Key: "H", Description: "Accueil"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			return s, tea.Sequence(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return RetryMsg{} },
			)
		case "h":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	scoreStyle := theme.Correct
	if sum.Score < 60 {
		scoreStyle = theme.Incorrect
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(scoreStyle.Render(fmt.Sprintf("%d %%", sum.Score))))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Body.Render(sum.Message)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", float64(sum.Score)/100, false, min(width-8, 50))
	if sum.Score < 60 {
		bar.Fill = theme.Error
	} else {
		bar.Fill = theme.Success
	}
	b.WriteString(center(bar.View()))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d bonnes réponses sur %d", sum.Correct, sum.Total))))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", max(min(width-8, 50), 0)))))
	b.WriteString("\n")

	// Two columns keep all verdicts visible at the minimum height.
	half := (len(sum.Rows) + 1) / 2
	left := renderRows(sum.Rows[:half])
	right := renderRows(sum.Rows[half:])
	b.WriteString(center(lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)))

	return b.String()
}

func renderRows(rows []Row) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		var line string
		switch {
		case r.Correct:
			line = theme.Correct.Render("✓ ") + theme.Body.Render(r.Expected)
		case r.Given == "":
			line = theme.Incorrect.Render("✗ ") + theme.Body.Render(r.Expected) +
				theme.Hint.Render(" (vide)")
		default:
			line = theme.Incorrect.Render("✗ ") + theme.Body.Render(r.Expected) +
				theme.Hint.Render(" ("+r.Given+")")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
