package quiz

import "math"

// ScorePercent returns the rounded percentage of correct answers.
// Halves round away from zero: 8.5 correct of 12 gives 71.
func ScorePercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// messageTiers are evaluated high to low; the first threshold the score
// reaches wins.
var messageTiers = []struct {
	min     int
	message string
}{
	{90, "Excellent ! Vous connaissez parfaitement le squelette humain."},
	{75, "Très bien ! Vous maîtrisez la plupart des os."},
	{60, "Bien ! Encore quelques os à revoir."},
	{40, "Pas mal, mais il faut réviser l'anatomie du squelette."},
}

const fallbackMessage = "Continuez à vous entraîner, vous allez progresser !"

// MessageFor returns the feedback message for a score.
func MessageFor(score int) string {
	for _, t := range messageTiers {
		if score >= t.min {
			return t.message
		}
	}
	return fallbackMessage
}
