package spacedrep

import "math"

// SM2EaseDelta is the classic SM-2 ease adjustment for a grade.
// Grades outside [0,5] are used at face value.
func SM2EaseDelta(grade int) float64 {
	miss := float64(5 - grade)
	return 0.1 - miss*(0.08+miss*0.02)
}

// LatencyPenalty is subtracted from the ease factor for slow answers:
// nothing up to 6 seconds, then 0.02 per second, capped at 0.2.
// Negative response times are not rejected; they fall under the threshold
// and cost nothing.
func LatencyPenalty(responseMs float64) float64 {
	seconds := responseMs / 1000
	return math.Min(0.2, math.Max(0, (seconds-6)*0.02))
}

// ClampConfidenceReward converts self-reported confidence into an ease
// adjustment: positive above 0.6, negative below, bounded to ±0.15.
func ClampConfidenceReward(confidence float64) float64 {
	return math.Min(0.15, math.Max(-0.15, (confidence-0.6)*0.3))
}

// ClampEaseFactor bounds ef to [MinEaseFactor, MaxEaseFactor].
func ClampEaseFactor(ef float64) float64 {
	return math.Max(MinEaseFactor, math.Min(MaxEaseFactor, ef))
}

// FailureInterval collapses an interval after a failed recall. A zero
// previous interval falls back to FailureFallbackMinutes.
func FailureInterval(prevMinutes float64) float64 {
	base := prevMinutes
	if base == 0 {
		base = FailureFallbackMinutes
	}
	return math.Max(MinFailureMinutes, math.Round(base*FailureShrink))
}

// rolling blends a new sample into an exponentially weighted average.
func rolling(avg, sample float64) float64 {
	return avg*(1-RollingWeight) + sample*RollingWeight
}
