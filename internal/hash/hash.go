package hash

// codePointTable - Common part of the internal hash algorithms. The bucket of a key is the sum of the
// Unicode code points in the key's text form modulo the table size. Keys made of the same characters
// in any order alias to the same bucket.
type codePointTable struct {
	tableSize int64
}

// SetTableSize - Sets the table size for the hash algorithm, table sizes below 1 are raised to 1.
func (C *codePointTable) SetTableSize(tableSize int64) {
	if tableSize < 1 {
		tableSize = 1
	}
	C.tableSize = tableSize
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (C *codePointTable) GetTableSize() int64 {
	return C.tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (C *codePointTable) HashFunc1(key string) int64 {
	return SumCodePoints(key) % C.tableSize
}

// SumCodePoints - Returns the sum of all Unicode code points in s
func SumCodePoints(s string) (sum int64) {
	for _, r := range s {
		sum += int64(r)
	}

	return
}

// CollisionHashAlgorithm - The internally used bucket selection algorithm for tables without collision
// handling. It never probes, every iteration returns the home bucket.
type CollisionHashAlgorithm struct {
	codePointTable
}

// NewCollisionHashAlgorithm - Returns a pointer to a new CollisionHashAlgorithm instance
func NewCollisionHashAlgorithm(tableSize int64) *CollisionHashAlgorithm {
	ha := &CollisionHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// ProbeIteration - There is no probing without collision handling, the home bucket is always returned
func (C *CollisionHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return hf1Value
}
