package datastructs

import (
	"fmt"
	"github.com/gostonefire/datastructs/crt"
	"github.com/gostonefire/datastructs/internal/model"
	"github.com/gostonefire/datastructs/internal/utils"
	"github.com/pkg/errors"
)

// Get - Gets the value that corresponds to the given key.
// With crt.Collision the value of whatever record occupies the key's bucket is returned.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (H *HashMap[K, V]) Get(key K) (value V, err error) {
	record, err := H.storage.Get(key)
	if err != nil {
		return
	}

	value = record.Value

	return
}

// GetOrDefault - Returns the value of key, or def if the key is not present
func (H *HashMap[K, V]) GetOrDefault(key K, def V) V {
	value, err := H.Get(key)
	if err != nil {
		return def
	}

	return value
}

// Put - Sets value for key and returns what was there before.
//   - key is the identifier of a record
//   - value is the value to store
//
// It returns:
//   - previous is the value that key had, zero value if it had none
//   - found is true if key had a value
//   - err is a standard error, if something went wrong, in which case nothing was stored
func (H *HashMap[K, V]) Put(key K, value V) (previous V, found bool, err error) {
	previous, err = H.Get(key)
	if err != nil && !errors.Is(err, crt.NoRecordFound{}) {
		err = errors.Wrapf(err, "error while getting key %s", key.String())
		return
	}
	found = err == nil

	err = H.Set(key, value)

	return
}

// Set - Updates an existing record with new data or add it if no existing is found with same key.
// The table grows if the insertion makes it reach its load factor.
//   - key is the identifier of a record
//   - value is the value to store
//
// It returns:
//   - err is a standard error, if something went wrong
func (H *HashMap[K, V]) Set(key K, value V) (err error) {
	err = H.storage.Set(model.Record[K, V]{Key: key, Value: value})
	if err != nil {
		err = errors.Wrapf(err, "error while setting key %s", key.String())
	}

	return
}

// Pop - Returns the entry corresponding to key and removes it from the hash map.
// With crt.Collision the entry occupying the key's bucket is removed, whatever its key.
//   - key is the identifier of a record
//
// It returns:
//   - entry is the removed key and value, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (H *HashMap[K, V]) Pop(key K) (entry Entry[K, V], err error) {
	record, err := H.storage.Delete(key)
	if err != nil {
		return
	}

	entry = Entry[K, V]{Key: record.Key, Value: record.Value}

	return
}

// Contains - Returns true if Get would find a value for key
func (H *HashMap[K, V]) Contains(key K) bool {
	_, err := H.storage.Get(key)
	return err == nil
}

// Items - Returns all entries in bucket order
func (H *HashMap[K, V]) Items() []Entry[K, V] {
	records := H.storage.Records()
	entries := make([]Entry[K, V], len(records))
	for i, record := range records {
		entries[i] = Entry[K, V]{Key: record.Key, Value: record.Value}
	}

	return entries
}

// Keys - Returns all keys in bucket order
func (H *HashMap[K, V]) Keys() []K {
	records := H.storage.Records()
	keys := make([]K, len(records))
	for i, record := range records {
		keys[i] = record.Key
	}

	return keys
}

// Values - Returns all values in bucket order
func (H *HashMap[K, V]) Values() []V {
	records := H.storage.Records()
	values := make([]V, len(records))
	for i, record := range records {
		values[i] = record.Value
	}

	return values
}

// Len - Returns number of entries
func (H *HashMap[K, V]) Len() int {
	return int(H.storage.GetStorageParameters().Records)
}

// Size - Returns current number of buckets
func (H *HashMap[K, V]) Size() int64 {
	return H.storage.GetStorageParameters().NumberOfBuckets
}

// IsEmpty - Returns true if there are no entries
func (H *HashMap[K, V]) IsEmpty() bool {
	return H.Len() == 0
}

// Iterator - Returns a new KeyIterator over the keys present right now
func (H *HashMap[K, V]) Iterator() *KeyIterator[K] {
	return newKeyIterator(H.Keys())
}

// String - Returns the buckets as text, for instance "[(1, 1), nil, nil]", or "[[(1, 1), (6, 6)], []]" for chains
func (H *HashMap[K, V]) String() string {
	return H.storage.String()
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (H *HashMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat, err error) {
	sp := H.storage.GetStorageParameters()

	hashMapStat = HashMapStat{
		Records:         sp.Records,
		NumberOfBuckets: sp.NumberOfBuckets,
		Filled:          sp.Filled,
		LoadFactor:      utils.LoadFactor(sp.Filled, sp.NumberOfBuckets),
	}

	if !includeDistribution {
		return
	}

	var records []model.Record[K, V]
	hashMapStat.BucketDistribution = make([]int64, sp.NumberOfBuckets)
	for i := int64(0); i < sp.NumberOfBuckets; i++ {
		records, err = H.storage.GetBucket(i)
		if err != nil {
			err = fmt.Errorf("error while reading bucket %d: %w", i, err)
			return
		}
		hashMapStat.BucketDistribution[i] = int64(len(records))
	}

	H.logger.WithField("records", hashMapStat.Records).Debug("bucket distribution collected")

	return
}
