package completion

// TypeBlockCompletion is the message type hosts listen for.
const TypeBlockCompletion = "BLOCK_COMPLETION"

// MaxScore is the fixed maximum score reported with every event.
const MaxScore = 100

// Event is the structural message sent to the hosting environment when a
// quiz attempt is checked. It carries no learner data beyond the score.
type Event struct {
	Type      string `json:"type"`
	BlockID   string `json:"blockId"`
	Completed bool   `json:"completed"`
	Score     int    `json:"score"`
	MaxScore  int    `json:"maxScore"`
}

// New returns a completed event for the given block and score.
func New(blockID string, score int) Event {
	return Event{
		Type:      TypeBlockCompletion,
		BlockID:   blockID,
		Completed: true,
		Score:     score,
		MaxScore:  MaxScore,
	}
}
