package quiz

// Phase is the game lifecycle.
type Phase int

const (
	PhasePlaying  Phase = iota // Labels can be placed and removed
	PhaseFinished              // Answers checked, results visible
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Token is the display state of one anchor.
type Token int

const (
	TokenNeutral   Token = iota // Gray
	TokenHovered                // Amber highlight
	TokenAssigned               // Blue
	TokenCorrect                // Green
	TokenIncorrect              // Red
)

func (t Token) String() string {
	switch t {
	case TokenNeutral:
		return "neutral"
	case TokenHovered:
		return "hovered"
	case TokenAssigned:
		return "assigned"
	case TokenCorrect:
		return "correct"
	case TokenIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}
