package session

// SelectSessionCards returns the first dailyCap cards of an already ordered
// pool. It never reorders; a cap of zero or less selects nothing.
// The result shares its backing array with ordered.
func SelectSessionCards[T any](ordered []T, dailyCap int) []T {
	if dailyCap <= 0 || len(ordered) == 0 {
		return []T{}
	}
	if dailyCap > len(ordered) {
		dailyCap = len(ordered)
	}
	return ordered[:dailyCap]
}

// PickDailyNewLimit clamps the number of never-seen cards to admit today
// into [0, dailyCap].
func PickDailyNewLimit(totalNew, dailyCap int) int {
	return max(0, min(totalNew, dailyCap))
}
