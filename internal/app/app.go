package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/squelette/internal/completion"
	"github.com/abhisek/squelette/internal/router"
	"github.com/abhisek/squelette/internal/screen"
	"github.com/abhisek/squelette/internal/screens/home"
	quizscreen "github.com/abhisek/squelette/internal/screens/quiz"
	"github.com/abhisek/squelette/internal/ui/layout"
)

// Options holds the dependencies the app hands to its screens.
type Options struct {
	Quiz quizscreen.Deps

	// Listener receives completion events in-process; the home screen shows
	// the last score from it. May be nil.
	Listener *completion.Listener

	Log *zap.Logger
}

// completionMsg carries one event read from the listener.
type completionMsg completion.Event

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	home     *home.HomeScreen
	listener *completion.Listener
	log      *zap.Logger
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Quiz.Log == nil {
		opts.Quiz.Log = log
	}
	homeScreen := home.New(opts.Quiz)
	return AppModel{
		router:   router.New(homeScreen),
		home:     homeScreen,
		listener: opts.Listener,
		log:      log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.waitForCompletion()
}

func (m AppModel) waitForCompletion() tea.Cmd {
	if m.listener == nil {
		return nil
	}
	events := m.listener.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return completionMsg(ev)
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case completionMsg:
		m.log.Debug("completion received", zap.String("block_id", msg.BlockID), zap.Int("score", msg.Score))
		m.home.RecordScore(msg.Score)
		return m, m.waitForCompletion()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quitter"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Retour"},
			{Key: "Ctrl+C", Description: "Quitter"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Entrée", Description: "Choisir"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
	}
	if p, ok := active.(screen.StatusProvider); ok {
		status = p.Status()
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
