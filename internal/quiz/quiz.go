package quiz

import (
	"context"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/squelette/internal/anatomy"
	"github.com/abhisek/squelette/internal/completion"
)

// DefaultBlockID identifies the widget in completion events.
const DefaultBlockID = "squelette-3d"

// Quiz is the labeling game state machine. It is owned by a single caller
// and is not safe for concurrent use.
//
// Operations never fail: calls made in the wrong phase or without their
// preconditions are ignored and leave the state untouched.
type Quiz struct {
	anchors []anatomy.Anchor
	index   map[string]int

	pool        []string
	assignments map[string]string
	pending     string
	results     map[string]bool
	phase       Phase
	score       int
	attemptID   string

	rng      *rand.Rand
	order    LabelOrder
	blockID  string
	notifier completion.Notifier
	log      *zap.Logger
}

// Option configures a Quiz.
type Option func(*Quiz)

// WithRand sets the shuffle source.
func WithRand(r *rand.Rand) Option {
	return func(q *Quiz) { q.rng = r }
}

// WithNotifier sets where completion events go.
func WithNotifier(n completion.Notifier) Option {
	return func(q *Quiz) { q.notifier = n }
}

// WithBlockID overrides DefaultBlockID.
func WithBlockID(id string) Option {
	return func(q *Quiz) {
		if id != "" {
			q.blockID = id
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(q *Quiz) {
		if l != nil {
			q.log = l
		}
	}
}

// WithLabelOrder sets the re-insertion order used by RemoveAssignment.
func WithLabelOrder(o LabelOrder) Option {
	return func(q *Quiz) { q.order = o }
}

// New creates a quiz over the given anchors in the Playing phase with a
// freshly shuffled label pool.
func New(anchors []anatomy.Anchor, opts ...Option) *Quiz {
	q := &Quiz{
		anchors: slices.Clone(anchors),
		index:   make(map[string]int, len(anchors)),
		blockID: DefaultBlockID,
		log:     zap.NewNop(),
	}
	for i, a := range q.anchors {
		q.index[a.ID] = i
	}
	for _, o := range opts {
		o(q)
	}
	if q.rng == nil {
		q.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	q.Reset()
	return q
}

// SelectAnchor makes id the anchor awaiting a label, replacing any earlier
// pending selection. An existing label on id stays until overwritten.
func (q *Quiz) SelectAnchor(id string) {
	if q.phase != PhasePlaying {
		return
	}
	if _, ok := q.index[id]; !ok {
		return
	}
	q.pending = id
	q.log.Debug("anchor selected", zap.String("attempt_id", q.attemptID), zap.String("anchor", id))
}

// AssignLabel places label on the pending anchor. A label the anchor
// already carried goes back to the pool.
func (q *Quiz) AssignLabel(label string) {
	if q.phase != PhasePlaying || q.pending == "" {
		return
	}
	i := slices.Index(q.pool, label)
	if i < 0 {
		return
	}

	anchor := q.pending
	q.pool = slices.Delete(q.pool, i, i+1)
	if prev, ok := q.assignments[anchor]; ok {
		q.returnToPool(prev)
	}
	q.assignments[anchor] = label
	q.pending = ""

	q.log.Debug("label assigned",
		zap.String("attempt_id", q.attemptID),
		zap.String("anchor", anchor),
		zap.String("label", label),
	)
}

// RemoveAssignment takes the label off id and returns it to the pool.
func (q *Quiz) RemoveAssignment(id string) {
	if q.phase != PhasePlaying {
		return
	}
	label, ok := q.assignments[id]
	if !ok {
		return
	}
	delete(q.assignments, id)
	q.returnToPool(label)

	q.log.Debug("label removed",
		zap.String("attempt_id", q.attemptID),
		zap.String("anchor", id),
		zap.String("label", label),
	)
}

// returnToPool appends label and re-sorts the whole pool. The initial
// pool is shuffled, so this ordering differs from a fresh one.
func (q *Quiz) returnToPool(label string) {
	q.pool = append(q.pool, label)
	q.order.sort(q.pool)
}

// Result is the outcome of checking answers.
type Result struct {
	Score   int
	Correct int
	Total   int
	// PerAnchor holds one verdict per anchor ID.
	PerAnchor map[string]bool
}

// CheckAnswers scores every anchor, moves to Finished and emits one
// completion event. Unassigned anchors count as incorrect. Once Finished,
// further calls return the same result without emitting again.
func (q *Quiz) CheckAnswers() Result {
	if q.phase != PhasePlaying {
		return q.result()
	}

	q.results = make(map[string]bool, len(q.anchors))
	for _, a := range q.anchors {
		q.results[a.ID] = q.assignments[a.ID] == a.Label
	}
	q.phase = PhaseFinished
	q.pending = ""

	res := q.result()
	q.score = res.Score

	q.log.Info("answers checked",
		zap.String("attempt_id", q.attemptID),
		zap.Int("correct", res.Correct),
		zap.Int("total", res.Total),
		zap.Int("score", res.Score),
	)

	if q.notifier != nil {
		ev := completion.New(q.blockID, q.score)
		if err := q.notifier.Notify(context.Background(), ev); err != nil {
			q.log.Warn("completion notification failed", zap.String("attempt_id", q.attemptID), zap.Error(err))
		}
	}
	return res
}

func (q *Quiz) result() Result {
	res := Result{
		Total:     len(q.anchors),
		PerAnchor: make(map[string]bool, len(q.results)),
	}
	for id, ok := range q.results {
		res.PerAnchor[id] = ok
		if ok {
			res.Correct++
		}
	}
	res.Score = ScorePercent(res.Correct, res.Total)
	return res
}

// Reset rebuilds the attempt from the anchor set: empty assignments and
// results, a reshuffled full pool, score 0 and the Playing phase.
func (q *Quiz) Reset() {
	q.pool = anatomy.Labels(q.anchors)
	q.rng.Shuffle(len(q.pool), func(i, j int) {
		q.pool[i], q.pool[j] = q.pool[j], q.pool[i]
	})
	q.assignments = make(map[string]string, len(q.anchors))
	q.results = nil
	q.pending = ""
	q.score = 0
	q.phase = PhasePlaying
	q.attemptID = uuid.New().String()

	q.log.Debug("quiz reset", zap.String("attempt_id", q.attemptID))
}
