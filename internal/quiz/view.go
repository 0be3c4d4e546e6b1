package quiz

import (
	"maps"
	"slices"

	"github.com/abhisek/squelette/internal/anatomy"
)

// Snapshot is a read-only copy of the quiz state for rendering.
type Snapshot struct {
	Phase       Phase
	Pending     string
	Assignments map[string]string
	// Results is nil until answers are checked.
	Results map[string]bool
	Pool    []string
	Score   int
}

// Snapshot returns a copy of the current state.
func (q *Quiz) Snapshot() Snapshot {
	s := Snapshot{
		Phase:       q.phase,
		Pending:     q.pending,
		Assignments: maps.Clone(q.assignments),
		Pool:        slices.Clone(q.pool),
		Score:       q.score,
	}
	if q.results != nil {
		s.Results = maps.Clone(q.results)
	}
	return s
}

func (q *Quiz) Phase() Phase              { return q.phase }
func (q *Quiz) Pending() string           { return q.pending }
func (q *Quiz) Score() int                { return q.score }
func (q *Quiz) Remaining() int            { return len(q.pool) }
func (q *Quiz) AssignedCount() int        { return len(q.assignments) }
func (q *Quiz) AttemptID() string         { return q.attemptID }
func (q *Quiz) BlockID() string           { return q.blockID }
func (q *Quiz) Pool() []string            { return slices.Clone(q.pool) }
func (q *Quiz) Anchors() []anatomy.Anchor { return slices.Clone(q.anchors) }

// CanCheck reports whether checking answers is meaningful.
func (q *Quiz) CanCheck() bool {
	return q.phase == PhasePlaying && len(q.assignments) > 0
}

// Assignment returns the label placed on id, if any.
func (q *Quiz) Assignment(id string) (string, bool) {
	l, ok := q.assignments[id]
	return l, ok
}

// Token returns the display state of an anchor. hovered is viewport-local
// and only matters while playing.
func (q *Quiz) Token(id string, hovered bool) Token {
	if q.phase == PhaseFinished {
		if q.results[id] {
			return TokenCorrect
		}
		return TokenIncorrect
	}
	if _, ok := q.assignments[id]; ok {
		return TokenAssigned
	}
	if hovered {
		return TokenHovered
	}
	return TokenNeutral
}
