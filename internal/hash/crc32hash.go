package hash

import "hash/crc32"

// Crc32HashAlgorithm - An alternative bucket selection algorithm using crc32.ChecksumIEEE over the key's
// text form, reduced modulo the table size. It spreads keys far better than the code point sum and probes
// linearly, so it can be handed to any of the collision resolution techniques as a custom algorithm.
type Crc32HashAlgorithm struct {
	tableSize int64
}

// NewCrc32HashAlgorithm - Returns a pointer to a new Crc32HashAlgorithm instance
func NewCrc32HashAlgorithm(tableSize int64) *Crc32HashAlgorithm {
	ha := &Crc32HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm, table sizes below 1 are raised to 1.
func (C *Crc32HashAlgorithm) SetTableSize(tableSize int64) {
	if tableSize < 1 {
		tableSize = 1
	}
	C.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (C *Crc32HashAlgorithm) HashFunc1(key string) int64 {
	k := int64(crc32.ChecksumIEEE([]byte(key)))
	return k % C.tableSize
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (C *Crc32HashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}

// ProbeIteration - Implements Linear Probing
func (C *Crc32HashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + iteration) % C.tableSize
}
