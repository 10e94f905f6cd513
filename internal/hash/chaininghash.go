package hash

// SeparateChainingHashAlgorithm - The internally used bucket selection algorithm for Separate Chaining.
type SeparateChainingHashAlgorithm struct {
	codePointTable
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(tableSize int64) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// ProbeIteration - Not used in separate chaining collision resolution techniques, returns the home bucket
func (S *SeparateChainingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return hf1Value
}
