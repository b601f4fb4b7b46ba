package engine

// KHalvingRange returns the descending ladder of block side multipliers:
// maxK, maxK/2, maxK/4, ... (integer halving), stopping before the first
// value below minK. Consecutive repeats from halving small values are
// de-duplicated. Larger multipliers come first so the covering prefers fewer,
// larger merged blocks.
func KHalvingRange(maxK, minK int) []int {
	var ladder []int
	prev := 0
	for k := maxK; k >= minK && k > 0; k /= 2 {
		if k != prev {
			ladder = append(ladder, k)
			prev = k
		}
	}
	return ladder
}
