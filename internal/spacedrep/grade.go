package spacedrep

// Confidence assumed when the learner did not rate an answer.
const (
	DefaultCorrectConfidence   = 0.7
	DefaultIncorrectConfidence = 0.3
)

// HighConfidence is the confidence above which a correct answer earns a
// perfect grade.
const HighConfidence = 0.8

// GradeFromAnswer maps a right/wrong game answer and optional self-rated
// confidence to an SM-2 grade. It returns the grade and the confidence
// that should accompany it in the ReviewOutcome.
func GradeFromAnswer(correct bool, confidence *float64) (int, float64) {
	conf := DefaultIncorrectConfidence
	if correct {
		conf = DefaultCorrectConfidence
	}
	if confidence != nil {
		conf = *confidence
	}

	switch {
	case !correct:
		return 2, conf
	case conf > HighConfidence:
		return 5, conf
	default:
		return 4, conf
	}
}
