package quiz

import (
	"github.com/abhisek/squelette/internal/screen"
	"github.com/abhisek/squelette/internal/viewport"
)

// The messages below finish work started by one QuizScreen. They carry
// that screen so the router delivers them even under the results screen.

// modelLoadedMsg is sent when the viewport loader finishes, successfully
// or not.
type modelLoadedMsg struct {
	owner *QuizScreen
	Model *viewport.Model
	Err   error
}

func (m modelLoadedMsg) Target() screen.Screen { return m.owner }

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg struct {
	owner *QuizScreen
}

func (m spinnerTickMsg) Target() screen.Screen { return m.owner }

// completionSentMsg reports delivery of a completion event to the host.
type completionSentMsg struct {
	owner *QuizScreen
	Score int
	Err   error
}

func (m completionSentMsg) Target() screen.Screen { return m.owner }
