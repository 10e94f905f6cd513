package collision

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

// CTable - Represents a table without any collision handling. Each bucket holds at most one record and
// a record whose key hashes to an occupied bucket simply replaces what is there, whatever key it had.
// Get and Delete look at the home bucket only and do not compare keys, so a key that has been
// overwritten by an aliasing key answers with the other key's record.
type CTable[K hashfunc.Key, V any] struct {
	buckets           []model.Record[K, V]
	filled            int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	logger            *log.Entry
}

// NewCTable - Returns a pointer to a new instance of a table without collision handling.
//   - crtConf is a model.CRTConf struct providing configuration parameters
//
// It returns:
//   - cTable which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewCTable[K hashfunc.Key, V any](crtConf model.CRTConf) (cTable *CTable[K, V], err error) {
	if crtConf.NumberOfBuckets < 1 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if crtConf.HashAlgorithm == nil {
		crtConf.HashAlgorithm = hash.NewCollisionHashAlgorithm(crtConf.NumberOfBuckets)
		internalAlg = true
	} else {
		crtConf.HashAlgorithm.SetTableSize(crtConf.NumberOfBuckets)
	}

	if crtConf.Logger == nil {
		crtConf.Logger = utils.DiscardLogger()
	}

	cTable = &CTable[K, V]{
		buckets:           make([]model.Record[K, V], crtConf.HashAlgorithm.GetTableSize()),
		hashAlgorithm:     crtConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
		logger:            crtConf.Logger,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from CTable
func (C *CTable[K, V]) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.Collision,
		NumberOfBuckets:              int64(len(C.buckets)),
		Filled:                       C.filled,
		Records:                      int64(len(C.Records())),
		InternalAlgorithm:            C.internalAlgorithm,
	}

	return
}

// GetBucket - Returns the occupied records of a bucket, which is either none or one
//   - bucketNo is the identifier of a bucket
func (C *CTable[K, V]) GetBucket(bucketNo int64) (records []model.Record[K, V], err error) {
	err = storage.CheckBucketNo(bucketNo, int64(len(C.buckets)))
	if err != nil {
		return
	}

	records = storage.OccupiedRecords(C.buckets[bucketNo : bucketNo+1])

	return
}

// Get - Gets the record in the home bucket of key. The key of the returned record may differ from key.
//   - key is the identifier of a record
//
// It returns:
//   - record is the record occupying the home bucket, if the bucket is empty an error of type crt.NoRecordFound is returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (C *CTable[K, V]) Get(key K) (record model.Record[K, V], err error) {
	bucketNo, err := C.getBucketNo(key)
	if err != nil {
		return
	}

	if C.buckets[bucketNo].State != model.RecordOccupied {
		err = crt.NoRecordFound{}
		return
	}

	record = C.buckets[bucketNo]

	return
}

// Set - Writes the record to its home bucket, replacing whatever record was there.
// If the bucket was empty the fill counter is increased, and if the table then reaches the load factor
// it is grown and every present record plus the new one is rehashed. If growth fails the table is left as it was.
//   - record is the record to set, it needs only to contain Key and Value
//
// It returns:
//   - err is a standard error, if something went wrong
func (C *CTable[K, V]) Set(record model.Record[K, V]) (err error) {
	bucketNo, err := C.getBucketNo(record.Key)
	if err != nil {
		return
	}

	filled := C.filled
	if C.buckets[bucketNo].State != model.RecordOccupied {
		filled++
	}

	record.State = model.RecordOccupied

	if utils.ReachesLoadFactor(filled, int64(len(C.buckets))) {
		err = C.grow(record)
		if err != nil {
			return
		}
		C.filled = filled
		return
	}

	C.filled = filled
	C.buckets[bucketNo] = record

	return
}

// Delete - Clears the home bucket of key, whatever key the record in it has.
//   - key is the identifier of a record
//
// It returns:
//   - record is the record that was cleared, if the bucket was empty an error of type crt.NoRecordFound is returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (C *CTable[K, V]) Delete(key K) (record model.Record[K, V], err error) {
	bucketNo, err := C.getBucketNo(key)
	if err != nil {
		return
	}

	if C.buckets[bucketNo].State != model.RecordOccupied {
		err = crt.NoRecordFound{}
		return
	}

	record = C.buckets[bucketNo]
	C.buckets[bucketNo] = model.Record[K, V]{}
	C.filled--

	return
}

// Records - Returns all records in bucket order
func (C *CTable[K, V]) Records() []model.Record[K, V] {
	return storage.OccupiedRecords(C.buckets)
}

// String - Returns the bucket array as text, empty buckets are shown as nil
func (C *CTable[K, V]) String() string {
	return storage.FormatSlots(C.buckets)
}
