package quiz

import (
	"cmp"
	"context"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/squelette/internal/anatomy"
	"github.com/abhisek/squelette/internal/completion"
	qz "github.com/abhisek/squelette/internal/quiz"
	"github.com/abhisek/squelette/internal/router"
	"github.com/abhisek/squelette/internal/screen"
	"github.com/abhisek/squelette/internal/screens/results"
	"github.com/abhisek/squelette/internal/ui/components"
	"github.com/abhisek/squelette/internal/ui/layout"
	"github.com/abhisek/squelette/internal/viewport"
)

// deliverTimeout bounds one completion delivery to the host.
const deliverTimeout = 5 * time.Second

// Deps are the collaborators of the quiz screen.
type Deps struct {
	// Loader provides the viewport model. Nil means placeholder.
	Loader      viewport.Loader
	LoadTimeout time.Duration

	// Host receives completion events. Nil disables delivery.
	Host completion.Notifier

	// Options are passed to the quiz state machine.
	Options []qz.Option

	Log *zap.Logger
}

type pane int

const (
	paneViewport pane = iota
	paneLabels
)

// QuizScreen implements screen.Screen for the labeling game.
type QuizScreen struct {
	deps    Deps
	quiz    *qz.Quiz
	anchors []anatomy.Anchor // top to bottom, navigation order

	hover  int
	focus  pane
	labels components.List
	filter components.TextInput

	model        *viewport.Model
	loading      bool
	spinnerFrame int

	// outbox holds events emitted by the quiz until the screen hands them
	// to the host.
	outbox    []completion.Event
	notifyErr string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.BackInterceptor = (*QuizScreen)(nil)

// New creates a QuizScreen over the skeleton anchor set.
func New(deps Deps) *QuizScreen {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Loader == nil {
		deps.Loader = viewport.PlaceholderLoader{}
	}

	s := &QuizScreen{
		deps:    deps,
		loading: true,
		filter:  components.NewTextInput("filtrer les étiquettes", 24),
	}

	opts := slices.Clone(deps.Options)
	opts = append(opts,
		qz.WithLogger(deps.Log),
		qz.WithNotifier(completion.NotifierFunc(s.capture)),
	)
	s.quiz = qz.New(anatomy.Skeleton(), opts...)

	s.anchors = s.quiz.Anchors()
	slices.SortStableFunc(s.anchors, func(a, b anatomy.Anchor) int {
		if c := cmp.Compare(b.Position.Y, a.Position.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.Position.X, b.Position.X)
	})

	s.labels = components.NewList(nil)
	s.labels.Empty = "Toutes les étiquettes sont placées"
	s.setFocus(paneViewport)
	s.syncLabels()
	return s
}

// capture is the quiz notifier: events are queued and delivered from a
// command so the network never blocks input handling.
func (s *QuizScreen) capture(_ context.Context, ev completion.Event) error {
	s.outbox = append(s.outbox, ev)
	return nil
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.loadModel(), s.spinnerTick())
}

func (s *QuizScreen) Title() string {
	return "Quiz du squelette"
}

func (s *QuizScreen) InterceptBack() bool {
	return s.filter.Focused()
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case modelLoadedMsg:
		return s.handleModelLoaded(msg)

	case spinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.spinnerFrame++
		return s, s.spinnerTick()

	case completionSentMsg:
		s.notifyErr = ""
		if msg.Err != nil {
			s.notifyErr = msg.Err.Error()
			s.deps.Log.Warn("completion delivery failed",
				zap.String("block_id", s.quiz.BlockID()),
				zap.Int("score", msg.Score),
				zap.Error(msg.Err),
			)
		}
		return s, nil

	case results.RetryMsg:
		s.reset()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.filter.Focused() {
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) loadModel() tea.Cmd {
	loader := s.deps.Loader
	timeout := s.deps.LoadTimeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		m, err := loader.Load(ctx)
		return modelLoadedMsg{owner: s, Model: m, Err: err}
	}
}

func (s *QuizScreen) spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{owner: s}
	})
}

func (s *QuizScreen) handleModelLoaded(msg modelLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil || msg.Model == nil {
		// The quiz keeps working on bare anchors.
		reason := "empty model"
		if msg.Err != nil {
			reason = msg.Err.Error()
		}
		s.deps.Log.Warn("viewport model unavailable", zap.String("reason", reason))
		s.model = &viewport.Model{Source: viewport.SourceNone, FallbackReason: reason}
		return s, nil
	}
	s.model = msg.Model
	s.deps.Log.Info("viewport model ready",
		zap.Stringer("source", msg.Model.Source),
		zap.Int("bytes", msg.Model.Size),
	)
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.filter.Focused() {
		switch key {
		case "esc":
			s.filter.Reset()
			s.filter.Blur()
			s.syncLabels()
			return s, nil
		case "enter", "tab", "down", "up":
			s.filter.Blur()
			if key == "enter" || key == "tab" {
				return s, nil
			}
			return s.handleKey(msg)
		}
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		s.syncLabels()
		return s, cmd
	}

	switch key {
	case "tab":
		if s.focus == paneViewport {
			s.setFocus(paneLabels)
		} else {
			s.setFocus(paneViewport)
		}
		return s, nil
	case "c":
		return s.checkAnswers()
	case "r":
		s.reset()
		return s, nil
	}

	if s.quiz.Phase() == qz.PhaseFinished {
		if key == "enter" {
			return s, s.pushResults()
		}
		return s, nil
	}

	if s.focus == paneViewport {
		return s.handleViewportKey(key)
	}
	return s.handleLabelKey(msg)
}

func (s *QuizScreen) handleViewportKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.hover > 0 {
			s.hover--
		}
	case "down", "j":
		if s.hover < len(s.anchors)-1 {
			s.hover++
		}
	case "enter", "space", " ":
		s.quiz.SelectAnchor(s.hoveredID())
		s.setFocus(paneLabels)
	case "x", "backspace", "delete":
		s.quiz.RemoveAssignment(s.hoveredID())
		s.syncLabels()
	}
	return s, nil
}

func (s *QuizScreen) handleLabelKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "/":
		return s, s.filter.Focus()
	case "enter":
		item, ok := s.labels.Current()
		if !ok {
			return s, nil
		}
		if s.quiz.Pending() == "" {
			// Label first, anchor second: target the hovered anchor.
			s.quiz.SelectAnchor(s.hoveredID())
		}
		s.quiz.AssignLabel(item.Label)
		s.filter.Reset()
		s.syncLabels()
		s.setFocus(paneViewport)
		return s, nil
	}

	var cmd tea.Cmd
	s.labels, cmd = s.labels.Update(msg)
	return s, cmd
}

func (s *QuizScreen) checkAnswers() (screen.Screen, tea.Cmd) {
	if !s.quiz.CanCheck() {
		return s, nil
	}
	s.quiz.CheckAnswers()
	s.setFocus(paneViewport)
	return s, tea.Batch(s.deliver(), s.pushResults())
}

func (s *QuizScreen) pushResults() tea.Cmd {
	summary := results.FromQuiz(s.quiz)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(summary)}
	}
}

// deliver hands queued completion events to the host.
func (s *QuizScreen) deliver() tea.Cmd {
	events := s.outbox
	s.outbox = nil
	host := s.deps.Host
	if host == nil || len(events) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(events))
	for _, ev := range events {
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
			defer cancel()
			return completionSentMsg{owner: s, Score: ev.Score, Err: host.Notify(ctx, ev)}
		})
	}
	return tea.Batch(cmds...)
}

func (s *QuizScreen) reset() {
	s.quiz.Reset()
	s.outbox = nil
	s.notifyErr = ""
	s.hover = 0
	s.filter.Reset()
	s.filter.Blur()
	s.setFocus(paneViewport)
	s.syncLabels()
}

func (s *QuizScreen) setFocus(p pane) {
	s.focus = p
	s.labels.Focused = p == paneLabels
}

// syncLabels rebuilds the label list from the pool and the filter.
func (s *QuizScreen) syncLabels() {
	pool := filterLabels(s.quiz.Pool(), s.filter.Value())
	items := make([]components.ListItem, len(pool))
	for i, l := range pool {
		items[i] = components.ListItem{Label: l}
	}
	s.labels.SetItems(items)
}

func (s *QuizScreen) hoveredID() string {
	if s.hover < 0 || s.hover >= len(s.anchors) {
		return ""
	}
	return s.anchors[s.hover].ID
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Entrée", Description: "Valider"},
			{Key: "Esc", Description: "Effacer"},
		}
	}
	if s.quiz.Phase() == qz.PhaseFinished {
		return []layout.KeyHint{
			{Key: "Entrée", Description: "Résultats"},
			{Key: "R", Description: "Recommencer"},
			{Key: "Esc", Description: "Retour"},
		}
	}
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Naviguer"}}
	if s.focus == paneViewport {
		hints = append(hints,
			layout.KeyHint{Key: "Entrée", Description: "Choisir l'os"},
			layout.KeyHint{Key: "X", Description: "Retirer"},
		)
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "Entrée", Description: "Placer"},
			layout.KeyHint{Key: "/", Description: "Filtrer"},
		)
	}
	hints = append(hints,
		layout.KeyHint{Key: "Tab", Description: "Panneau"},
		layout.KeyHint{Key: "C", Description: "Vérifier"},
		layout.KeyHint{Key: "R", Description: "Recommencer"},
	)
	return hints
}

func (s *QuizScreen) Status() string {
	if s.quiz.Phase() == qz.PhaseFinished {
		return formatScore(s.quiz.Score())
	}
	return formatProgress(s.quiz.AssignedCount(), len(s.anchors))
}
