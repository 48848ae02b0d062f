package domain

// TargetSum is the fixed total a played card plus captured table cards must
// reach for a capture.
const TargetSum = 15

// FindCapture returns the table cards captured by playing a card of the
// given value, or nil when no capture exists.
//
// Subsets are enumerated by increasing bitmask over the table's current
// order and the first subset whose values sum to TargetSum-playedValue is
// taken. The enumeration order is the tie-break: there is no "best capture"
// heuristic, so repeated calls on the same table are deterministic.
//
// A remainder of zero never captures: the played card must combine with at
// least one table card, otherwise it is placed.
func FindCapture(playedValue int, table []CardID) []CardID {
	remainder := TargetSum - playedValue
	if remainder <= 0 || len(table) == 0 {
		return nil
	}

	n := len(table)
	for mask := 1; mask < 1<<n; mask++ {
		sum := 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sum += GameValue(table[i])
			}
		}
		if sum != remainder {
			continue
		}
		subset := make([]CardID, 0, n)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, table[i])
			}
		}
		return subset
	}
	return nil
}
