package separatechaining

import (
	"fmt"
	"github.com/gostonefire/datastructs/crt"
	"github.com/gostonefire/datastructs/hashfunc"
	"github.com/gostonefire/datastructs/internal/hash"
	"github.com/gostonefire/datastructs/internal/model"
	"github.com/gostonefire/datastructs/internal/storage"
	"github.com/gostonefire/datastructs/internal/utils"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket is a chain (a slice) of records hashed to that bucket, searched linearly.
//
// The fill counter counts buckets that got their first record, not records. A chain that is emptied
// by Delete gives its count back, and growth recounts the non-empty chains of the new bucket array.
type SCTable[K hashfunc.Key, V any] struct {
	buckets           [][]model.Record[K, V]
	filled            int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	logger            *log.Entry
}

// NewSCTable - Returns a pointer to a new instance of the Separate Chaining implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewSCTable[K hashfunc.Key, V any](crtConf model.CRTConf) (scTable *SCTable[K, V], err error) {
	if crtConf.NumberOfBuckets < 1 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewSeparateChainingHashAlgorithm(crtConf.NumberOfBuckets)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfBuckets)
	}

	if crtConf.Logger == nil {
		crtConf.Logger = utils.DiscardLogger()
	}

	scTable = &SCTable[K, V]{
		buckets:           make([][]model.Record[K, V], crtConf.HashAlgorithm.GetTableSize()),
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
		logger:            crtConf.Logger,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		NumberOfBuckets:              int64(len(S.buckets)),
		Filled:                       S.filled,
		Records:                      int64(len(S.Records())),
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// GetBucket - Returns a copy of the chain of a bucket
//   - bucketNo is the identifier of a bucket
func (S *SCTable[K, V]) GetBucket(bucketNo int64) (records []model.Record[K, V], err error) {
	err = storage.CheckBucketNo(bucketNo, int64(len(S.buckets)))
	if err != nil {
		return
	}

	records = slices.Clone(S.buckets[bucketNo])

	return
}

// Get - Gets record that corresponds to the given key by scanning the chain of its home bucket.
//   - key is the identifier of a record
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCTable[K, V]) Get(key K) (record model.Record[K, V], err error) {
	bucketNo, err := S.getBucketNo(key)
	if err != nil {
		return
	}

	i := indexOf(S.buckets[bucketNo], key)
	if i < 0 {
		err = crt.NoRecordFound{}
		return
	}

	record = S.buckets[bucketNo][i]

	return
}

// Set - Updates an existing record with new data or add it if no existing is found with same key.
// An updated record is moved to the end of its chain. If growth fails the table is left as it was.
//   - record is the record to set, it needs only to contain Key and Value
//
// It returns:
//   - err is a standard error, if something went wrong
func (S *SCTable[K, V]) Set(record model.Record[K, V]) (err error) {
	bucketNo, err := S.getBucketNo(record.Key)
	if err != nil {
		return
	}

	filled := S.filled
	if len(S.buckets[bucketNo]) == 0 {
		filled++
	}

	record.State = model.RecordOccupied

	if utils.ReachesLoadFactor(filled, int64(len(S.buckets))) {
		err = S.grow(record)
		return
	}

	S.filled = filled
	S.buckets[bucketNo] = addToChain(S.buckets[bucketNo], record)

	return
}

// Delete - Removes the record with key from its chain, other records in the chain are left untouched.
//   - key is the identifier of a record
//
// It returns:
//   - record is the removed record, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCTable[K, V]) Delete(key K) (record model.Record[K, V], err error) {
	bucketNo, err := S.getBucketNo(key)
	if err != nil {
		return
	}

	i := indexOf(S.buckets[bucketNo], key)
	if i < 0 {
		err = crt.NoRecordFound{}
		return
	}

	record = S.buckets[bucketNo][i]
	S.buckets[bucketNo] = slices.Delete(S.buckets[bucketNo], i, i+1)
	if len(S.buckets[bucketNo]) == 0 {
		S.filled--
	}

	return
}

// Records - Returns all records with chains flattened in bucket order, chain order preserved
func (S *SCTable[K, V]) Records() (records []model.Record[K, V]) {
	records = make([]model.Record[K, V], 0, len(S.buckets))
	for _, chain := range S.buckets {
		records = append(records, chain...)
	}

	return
}

// String - Returns the chains as text, "[[(key, value), ...], [], ...]"
func (S *SCTable[K, V]) String() string {
	return storage.FormatChains(S.buckets)
}
