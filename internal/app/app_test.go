package app

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/squelette/internal/completion"
	qz "github.com/abhisek/squelette/internal/quiz"
	"github.com/abhisek/squelette/internal/router"
	quizscreen "github.com/abhisek/squelette/internal/screens/quiz"
	"github.com/abhisek/squelette/internal/viewport"
)

func testModel(l *completion.Listener) AppModel {
	m := newAppModel(Options{
		Quiz: quizscreen.Deps{
			Loader:  viewport.PlaceholderLoader{},
			Options: []qz.Option{qz.WithRand(rand.New(rand.NewPCG(3, 5)))},
		},
		Listener: l,
	})
	m.width, m.height = 120, 40
	return m
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func TestApp_EscAtRootDoesNothing(t *testing.T) {
	m := testModel(nil)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command on Esc at the root")
	}
}

func TestApp_EscPopsPushedScreen(t *testing.T) {
	m := testModel(nil)
	m, _ = update(t, m, router.PushScreenMsg{Screen: quizscreen.New(quizscreen.Deps{})})
	if m.router.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", m.router.Depth())
	}

	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestApp_EscInterceptedByFilter(t *testing.T) {
	m := testModel(nil)
	m, _ = update(t, m, router.PushScreenMsg{Screen: quizscreen.New(quizscreen.Deps{})})
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	m, _ = update(t, m, tea.KeyPressMsg{Code: '/', Text: "/"})

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("Esc should close the filter, not pop the screen")
		}
	}
	if m.router.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", m.router.Depth())
	}
}

func TestApp_ListenerFeedsHome(t *testing.T) {
	l := completion.NewListener(1)
	m := testModel(l)

	if err := l.Notify(context.Background(), completion.New("squelette-3d", 75)); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	msg := m.Init()()
	if _, ok := msg.(completionMsg); !ok {
		t.Fatalf("Init cmd returned %T, want completionMsg", msg)
	}

	m, cmd := update(t, m, msg)
	if cmd == nil {
		t.Error("expected the listener to be re-armed")
	}
	if !m.home.Played() {
		t.Error("expected the home screen to record the score")
	}
}

func TestApp_FooterUsesScreenHints(t *testing.T) {
	m := testModel(nil)
	qs := quizscreen.New(quizscreen.Deps{})
	m, _ = update(t, m, router.PushScreenMsg{Screen: qs})

	hints := m.footerHints(m.router.Active())
	if len(hints) != len(qs.KeyHints())+1 {
		t.Errorf("hints = %d, want screen hints plus quit", len(hints))
	}
}
