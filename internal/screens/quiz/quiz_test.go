package quiz

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/squelette/internal/completion"
	qz "github.com/abhisek/squelette/internal/quiz"
	"github.com/abhisek/squelette/internal/router"
	"github.com/abhisek/squelette/internal/screens/results"
	"github.com/abhisek/squelette/internal/viewport"
)

type recordingHost struct {
	mu     sync.Mutex
	events []completion.Event
	err    error
}

func (h *recordingHost) Notify(_ context.Context, ev completion.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
	return h.err
}

func newTestScreen(host completion.Notifier) *QuizScreen {
	return New(Deps{
		Loader:  viewport.PlaceholderLoader{},
		Host:    host,
		Options: []qz.Option{qz.WithRand(rand.New(rand.NewPCG(7, 11)))},
	})
}

// drain runs cmd and every command batched under it, collecting messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func press(s *QuizScreen, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(key(k))
	}
	return cmd
}

func TestQuizScreen_Title(t *testing.T) {
	s := newTestScreen(nil)
	if s.Title() != "Quiz du squelette" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestQuizScreen_AnchorsTopToBottom(t *testing.T) {
	s := newTestScreen(nil)
	for i := 1; i < len(s.anchors); i++ {
		if s.anchors[i].Position.Y > s.anchors[i-1].Position.Y {
			t.Errorf("anchor %s is above %s", s.anchors[i].ID, s.anchors[i-1].ID)
		}
	}
}

func TestQuizScreen_LoadsModel(t *testing.T) {
	s := newTestScreen(nil)
	msg := s.loadModel()()
	s.Update(msg)

	if s.loading {
		t.Error("expected loading to end")
	}
	if s.model == nil || s.model.Source != viewport.SourcePlaceholder {
		t.Errorf("model = %+v, want placeholder", s.model)
	}
}

func TestQuizScreen_LoadFailureKeepsQuizPlayable(t *testing.T) {
	s := newTestScreen(nil)
	s.Update(modelLoadedMsg{Err: errors.New("boom")})

	if s.model == nil || s.model.Source != viewport.SourceNone {
		t.Fatalf("model = %+v, want SourceNone", s.model)
	}
	press(s, "enter", "enter")
	if s.quiz.AssignedCount() != 1 {
		t.Errorf("AssignedCount = %d, want 1", s.quiz.AssignedCount())
	}
	if view := s.View(100, 30); view == "" {
		t.Error("expected non-empty view")
	}
}

func TestQuizScreen_SelectThenAssign(t *testing.T) {
	s := newTestScreen(nil)
	press(s, "down")
	target := s.hoveredID()

	press(s, "enter")
	if s.quiz.Pending() != target {
		t.Fatalf("Pending = %q, want %q", s.quiz.Pending(), target)
	}
	if s.focus != paneLabels {
		t.Fatal("expected focus on the label pane")
	}

	press(s, "down")
	item, ok := s.labels.Current()
	if !ok {
		t.Fatal("expected a current label")
	}
	press(s, "enter")

	got, ok := s.quiz.Assignment(target)
	if !ok || got != item.Label {
		t.Errorf("Assignment(%s) = %q, want %q", target, got, item.Label)
	}
	if s.quiz.Remaining() != 11 || len(s.labels.Items) != 11 {
		t.Errorf("Remaining = %d, list = %d, want 11", s.quiz.Remaining(), len(s.labels.Items))
	}
	if s.focus != paneViewport {
		t.Error("expected focus back on the viewport")
	}
}

func TestQuizScreen_RemoveLabel(t *testing.T) {
	s := newTestScreen(nil)
	press(s, "enter", "enter")
	if s.quiz.AssignedCount() != 1 {
		t.Fatalf("AssignedCount = %d, want 1", s.quiz.AssignedCount())
	}

	press(s, "x")
	if s.quiz.AssignedCount() != 0 || s.quiz.Remaining() != 12 {
		t.Errorf("after remove: assigned %d, remaining %d", s.quiz.AssignedCount(), s.quiz.Remaining())
	}
	if len(s.labels.Items) != 12 {
		t.Errorf("list = %d items, want 12", len(s.labels.Items))
	}
}

func TestQuizScreen_CheckDisabledWithoutAssignments(t *testing.T) {
	s := newTestScreen(nil)
	if cmd := press(s, "c"); cmd != nil {
		t.Error("expected no command when nothing is placed")
	}
	if s.quiz.Phase() != qz.PhasePlaying {
		t.Error("expected Playing phase")
	}
}

func TestQuizScreen_CheckDeliversOnce(t *testing.T) {
	host := &recordingHost{}
	s := newTestScreen(host)
	press(s, "enter", "enter")

	cmd := press(s, "c")
	if s.quiz.Phase() != qz.PhaseFinished {
		t.Fatal("expected Finished phase")
	}

	var pushed, sent bool
	for _, msg := range drain(cmd) {
		switch m := msg.(type) {
		case router.PushScreenMsg:
			if _, ok := m.Screen.(*results.ResultsScreen); ok {
				pushed = true
			}
		case completionSentMsg:
			sent = true
			s.Update(m)
		}
	}
	if !pushed {
		t.Error("expected the results screen to be pushed")
	}
	if !sent {
		t.Error("expected a completion delivery")
	}
	if len(host.events) != 1 {
		t.Fatalf("host events = %d, want 1", len(host.events))
	}
	if host.events[0].Score != s.quiz.Score() {
		t.Errorf("event score = %d, want %d", host.events[0].Score, s.quiz.Score())
	}

	// A second check is a no-op.
	drain(press(s, "c"))
	if len(host.events) != 1 {
		t.Errorf("host events after second check = %d, want 1", len(host.events))
	}
}

func TestQuizScreen_DeliveryFailureIsShown(t *testing.T) {
	host := &recordingHost{err: errors.New("offline")}
	s := newTestScreen(host)
	press(s, "enter", "enter")

	for _, msg := range drain(press(s, "c")) {
		if m, ok := msg.(completionSentMsg); ok {
			s.Update(m)
		}
	}
	if s.notifyErr == "" {
		t.Error("expected the delivery error to be recorded")
	}
	if !strings.Contains(s.View(100, 30), "Envoi du score échoué") {
		t.Error("expected the delivery error in the view")
	}
}

func TestQuizScreen_DeliveryFailureReachesQuizUnderResults(t *testing.T) {
	host := &recordingHost{err: errors.New("offline")}
	s := newTestScreen(host)
	r := router.New(s)

	var cmd tea.Cmd
	for _, k := range []string{"enter", "enter", "c"} {
		cmd = r.Update(key(k))
	}

	// Push the results screen first, then deliver, as the runtime may.
	msgs := drain(cmd)
	for _, msg := range msgs {
		if push, ok := msg.(router.PushScreenMsg); ok {
			r.Update(push)
		}
	}
	if r.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", r.Depth())
	}
	for _, msg := range msgs {
		if _, ok := msg.(completionSentMsg); ok {
			r.Update(msg)
		}
	}

	r.Update(router.PopScreenMsg{})
	if r.Active() != s {
		t.Fatal("expected the quiz screen back on top")
	}
	if s.notifyErr != "offline" {
		t.Errorf("notifyErr = %q, want %q", s.notifyErr, "offline")
	}
	if !strings.Contains(s.View(100, 30), "Envoi du score échoué") {
		t.Error("expected the delivery error in the view")
	}
}

func TestQuizScreen_ModelLoadsUnderResults(t *testing.T) {
	s := newTestScreen(nil)
	r := router.New(s)
	r.Update(key("enter"))
	r.Update(key("enter"))
	r.Update(router.PushScreenMsg{Screen: results.New(results.FromQuiz(s.quiz))})

	r.Update(s.loadModel()())

	if s.loading {
		t.Error("expected the load result to reach the covered quiz screen")
	}
}

func TestQuizScreen_FinishedIgnoresEditing(t *testing.T) {
	s := newTestScreen(nil)
	press(s, "enter", "enter", "c")
	before := s.quiz.Snapshot()

	press(s, "down", "x", "tab", "enter")
	after := s.quiz.Snapshot()
	if len(after.Assignments) != len(before.Assignments) || after.Phase != qz.PhaseFinished {
		t.Error("expected Finished state to be unchanged")
	}
}

func TestQuizScreen_Reset(t *testing.T) {
	s := newTestScreen(nil)
	press(s, "enter", "enter", "c")
	attempt := s.quiz.AttemptID()

	press(s, "r")
	if s.quiz.Phase() != qz.PhasePlaying {
		t.Error("expected Playing after reset")
	}
	if s.quiz.AssignedCount() != 0 || s.quiz.Remaining() != 12 {
		t.Error("expected a full pool after reset")
	}
	if s.quiz.AttemptID() == attempt {
		t.Error("expected a new attempt id")
	}
}

func TestQuizScreen_RetryMsgResets(t *testing.T) {
	s := newTestScreen(nil)
	press(s, "enter", "enter", "c")
	s.Update(results.RetryMsg{})
	if s.quiz.Phase() != qz.PhasePlaying {
		t.Error("expected Playing after RetryMsg")
	}
}

func TestQuizScreen_FilterInterceptsBack(t *testing.T) {
	s := newTestScreen(nil)
	if s.InterceptBack() {
		t.Fatal("expected no interception before the filter opens")
	}

	press(s, "tab", "/")
	if !s.InterceptBack() {
		t.Fatal("expected interception while filtering")
	}

	press(s, "esc")
	if s.InterceptBack() {
		t.Error("expected Esc to close the filter")
	}
}

func TestQuizScreen_Status(t *testing.T) {
	s := newTestScreen(nil)
	if got := s.Status(); got != "0/12 placées" {
		t.Errorf("Status = %q", got)
	}
	press(s, "enter", "enter", "c")
	if got := s.Status(); !strings.HasPrefix(got, "Score ") {
		t.Errorf("Status = %q, want score", got)
	}
}

func TestFilterLabels(t *testing.T) {
	labels := []string{"Côtes", "Fémur", "Clavicule", "Colonne vertébrale"}
	tests := []struct {
		query string
		want  []string
	}{
		{"", labels},
		{"cote", []string{"Côtes"}},
		{"FEM", []string{"Fémur"}},
		{"vertebrale", []string{"Colonne vertébrale"}},
		{"c", []string{"Côtes", "Clavicule", "Colonne vertébrale"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := filterLabels(labels, tt.query)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("filterLabels(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
