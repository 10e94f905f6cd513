package hash

// LinearProbingHashAlgorithm - The internally used bucket selection algorithm for Linear Probing.
// Buckets are selected by summing code points (see codePointTable) and collisions are resolved by
// stepping one bucket at a time, wrapping to bucket 0 after the last bucket.
type LinearProbingHashAlgorithm struct {
	codePointTable
}

// NewLinearProbingHashAlgorithm - Returns a pointer to a new LinearProbingHashAlgorithm instance
func NewLinearProbingHashAlgorithm(tableSize int64) *LinearProbingHashAlgorithm {
	ha := &LinearProbingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// ProbeIteration - Implements Linear Probing
func (L *LinearProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + iteration) % L.tableSize
}
