package hashfunc

// Key - Constraint for keys in a hash map. The text form returned by String is what the hash
// algorithm works on, so it has to be stable for equal keys. Key equality is Go equality.
type Key interface {
	comparable
	String() string
}

// HashAlgorithm - Interface that permits an implementation using the HashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when creating a new hash map and every time the hash map grows. Hence, if a custom
	// hash algorithm is supplied that implements this interface and the instance is already having a table size, it
	// will be overwritten by the number of buckets the hash map currently has.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given the text form of a key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key string) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting.
	// The hash map never rounds table sizes, so this is expected to return exactly what was given to SetTableSize.
	GetTableSize() int64

	// ProbeIteration - Returns the bucket to examine in the given iteration of a probe sequence starting at
	// hf1Value (the value from HashFunc1). Iteration 0 must return hf1Value itself.
	// The function is not used for the Separate Chaining Collision Resolution Technique.
	ProbeIteration(hf1Value, iteration int64) int64
}
