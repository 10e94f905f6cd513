package datastructs

import (
	"github.com/gostonefire/datastructs/crt"
	"github.com/gostonefire/datastructs/hashfunc"
)

// KeyIterator - Is used to iterate over keys one by one. It works on the keys present when it was created,
// so changes to the hash map during iteration are not seen. Once exhausted it stays exhausted, ask the
// hash map for a new one to iterate again.
type KeyIterator[K hashfunc.Key] struct {
	keys []K
	pos  int
}

// newKeyIterator - Returns a pointer to a new KeyIterator struct
func newKeyIterator[K hashfunc.Key](keys []K) *KeyIterator[K] {
	return &KeyIterator[K]{keys: keys}
}

// HasNext - Returns true if there are more keys to be fetched from a call to Next.
func (I *KeyIterator[K]) HasNext() bool {
	return I.pos < len(I.keys)
}

// Next - Returns key.
// It returns:
//   - key is the next key.
//   - err is of type crt.NoRecordFound if there are no more keys when calling this function.
func (I *KeyIterator[K]) Next() (key K, err error) {
	if !I.HasNext() {
		err = crt.NoRecordFound{}
		return
	}

	key = I.keys[I.pos]
	I.pos++

	return
}
