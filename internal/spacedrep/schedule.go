package spacedrep

// Ease factor bounds. New cards start at DefaultEaseFactor.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 2.8
)

// PassGrade is the lowest grade counted as a successful recall.
const PassGrade = 3

// Bootstrap intervals for the first two successful recalls, in minutes.
const (
	FirstIntervalMinutes  = 10
	SecondIntervalMinutes = 60
)

// A failed recall shrinks the interval to FailureShrink of its previous
// value, or of FailureFallbackMinutes when nothing was scheduled yet.
const (
	FailureFallbackMinutes = 10
	FailureShrink          = 0.25
	MinFailureMinutes      = 1
)

// MinutesPerDay is the length of a calendar day in UTC.
const MinutesPerDay = 24 * 60

// MaxDueMinutes is the furthest a due time is placed ahead of now, about a
// thousand years. It keeps due times in four-digit years, which RFC 3339 and
// the stores' time columns require. The interval itself is never capped.
const MaxDueMinutes = MinutesPerDay * 365 * 1000

// RollingWeight is the weight given to the newest sample in the response
// time and confidence averages.
const RollingWeight = 0.3

// MinIntervalLadder is the interval floor, in minutes, indexed by
// repetitions-1: 10 min, 1 hour, 6 hours, 1 day, 1 week.
var MinIntervalLadder = []float64{10, 60, 6 * 60, 24 * 60, 7 * 24 * 60}

// MinIntervalFor returns the ladder floor for the given repetition count.
// The second result is false when repetitions falls outside the ladder.
func MinIntervalFor(repetitions int) (float64, bool) {
	if repetitions < 1 || repetitions > len(MinIntervalLadder) {
		return 0, false
	}
	return MinIntervalLadder[repetitions-1], true
}
