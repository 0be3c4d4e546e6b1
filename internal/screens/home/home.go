package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/squelette/internal/anatomy"
	"github.com/abhisek/squelette/internal/router"
	"github.com/abhisek/squelette/internal/screen"
	"github.com/abhisek/squelette/internal/screens/anchors"
	quizscreen "github.com/abhisek/squelette/internal/screens/quiz"
	"github.com/abhisek/squelette/internal/ui/components"
)

var menuLabels = []string{"COMMENCER LE QUIZ", "LISTE DES OS", "QUITTER"}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu      components.List
	anchors   int
	lastScore int
	played    bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. deps is handed to every quiz screen it
// opens.
func New(deps quizscreen.Deps) *HomeScreen {
	items := []components.ListItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(deps)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: anchors.New(deps)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewList(items),
		anchors: len(anatomy.Skeleton()),
	}
}

// RecordScore updates the stats bar with the score of a finished attempt.
func (h *HomeScreen) RecordScore(score int) {
	h.lastScore = score
	h.played = true
}

// Played reports whether a score has been recorded.
func (h *HomeScreen) Played() bool {
	return h.played
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	termHeight := height + 8
	compact := termHeight < 30 || width < 100
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, RenderMascot(MascotFor(h.lastScore, h.played)))
	}
	sections = append(sections, renderStatsBar(h.anchors, h.lastScore, h.played, cw))
	if compact {
		sections = append(sections, renderMenuCompact(menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(menuLabels, h.menu.Selected, cw))
	}

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Accueil"
}
