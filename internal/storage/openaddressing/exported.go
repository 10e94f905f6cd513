package openaddressing

import (
	"fmt"
	"github.com/gostonefire/datastructs/crt"
	"github.com/gostonefire/datastructs/hashfunc"
	"github.com/gostonefire/datastructs/internal/hash"
	"github.com/gostonefire/datastructs/internal/model"
	"github.com/gostonefire/datastructs/internal/storage"
	"github.com/gostonefire/datastructs/internal/utils"

	log "github.com/sirupsen/logrus"
)

// OATable - Represents an implementation of the Open Addressing Collision Resolution Technique.
// It uses one array of buckets where each bucket holds at most one record. In case of a collision, it probes through
// the table using the hash algorithm's probe iteration, looking for an empty slot, and assigns the free slot to the record.
// Deleted records leave a tombstone behind so that records further along a probe sequence stay reachable.
//
// The fill counter is increased by every call to Set, also when an existing key is only updated. The table
// therefore grows earlier than the number of records alone would call for.
type OATable[K hashfunc.Key, V any] struct {
	buckets           []model.Record[K, V]
	filled            int64
	nOccupied         int64
	nDeleted          int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	logger            *log.Entry
}

// NewOATable - Returns a pointer to a new instance of the Open Addressing implementation.
//   - crtConf is a model.CRTConf struct providing configuration parameters
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewOATable[K hashfunc.Key, V any](crtConf model.CRTConf) (oaTable *OATable[K, V], err error) {
	if crtConf.NumberOfBuckets < 1 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewLinearProbingHashAlgorithm(crtConf.NumberOfBuckets)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfBuckets)
	}

	if crtConf.Logger == nil {
		crtConf.Logger = utils.DiscardLogger()
	}

	oaTable = &OATable[K, V]{
		buckets:           make([]model.Record[K, V], crtConf.HashAlgorithm.GetTableSize()),
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
		logger:            crtConf.Logger,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from OATable
func (O *OATable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		NumberOfBuckets:              int64(len(O.buckets)),
		Filled:                       O.filled,
		Records:                      O.nOccupied,
		InternalAlgorithm:            O.internalAlgorithm,
	}

	return
}

// GetBucket - Returns the occupied records of a bucket, which is either none or one.
// A record found in a bucket is not necessarily hashed to that bucket, it may have been probed there.
//   - bucketNo is the identifier of a bucket
func (O *OATable[K, V]) GetBucket(bucketNo int64) (records []model.Record[K, V], err error) {
	err = storage.CheckBucketNo(bucketNo, int64(len(O.buckets)))
	if err != nil {
		return
	}

	records = storage.OccupiedRecords(O.buckets[bucketNo : bucketNo+1])

	return
}

// Get - Gets record that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - record is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (O *OATable[K, V]) Get(key K) (record model.Record[K, V], err error) {
	bucketNo, err := O.probingForGet(key)
	if err != nil {
		return
	}

	record = O.buckets[bucketNo]

	return
}

// Set - Updates an existing record with new data or add it if no existing is found with same key.
// If growth fails the table is left as it was.
//   - record is the record to set, it needs only to contain Key and Value
//
// It returns:
//   - err is a standard error, if something went wrong
func (O *OATable[K, V]) Set(record model.Record[K, V]) (err error) {
	filled := O.filled + 1

	record.State = model.RecordOccupied

	if utils.ReachesLoadFactor(filled, int64(len(O.buckets))) {
		err = O.grow(record)
		if err != nil {
			return
		}
		O.filled = filled
		return
	}

	err = O.insert(record)
	if err != nil {
		err = fmt.Errorf("error while updating or adding record to bucket: %w", err)
		return
	}

	O.filled = filled

	return
}

// Delete - Finds the record of key by probing and replaces it with a tombstone.
//   - key is the identifier of a record
//
// It returns:
//   - record is the deleted record, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (O *OATable[K, V]) Delete(key K) (record model.Record[K, V], err error) {
	bucketNo, err := O.probingForGet(key)
	if err != nil {
		return
	}

	record = O.buckets[bucketNo]
	O.buckets[bucketNo] = model.Record[K, V]{State: model.RecordDeleted}
	O.updateUtilizationInfo(model.RecordOccupied, model.RecordDeleted)
	O.filled--

	return
}

// Records - Returns all records in bucket order
func (O *OATable[K, V]) Records() []model.Record[K, V] {
	return storage.OccupiedRecords(O.buckets)
}

// String - Returns the bucket array as text, empty and deleted buckets are shown as nil
func (O *OATable[K, V]) String() string {
	return storage.FormatSlots(O.buckets)
}
