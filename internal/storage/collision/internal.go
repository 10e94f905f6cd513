package collision

import (
	"fmt"
	"github.com/gostonefire/datastructs/internal/model"
	"github.com/gostonefire/datastructs/internal/storage"
	"github.com/gostonefire/datastructs/internal/utils"
)

// getBucketNo - Returns the home bucket of key
func (C *CTable[K, V]) getBucketNo(key K) (bucketNo int64, err error) {
	bucketNo = C.hashAlgorithm.HashFunc1(key.String())
	err = storage.CheckBucketNo(bucketNo, int64(len(C.buckets)))

	return
}

// grow - Doubles the number of buckets and rehashes all present records together with record into
// a new bucket array. Records aliasing to the same bucket at the new size overwrite each other,
// the later one in bucket order wins and record itself is written last. The new array only replaces
// the current one when every record found a bucket.
func (C *CTable[K, V]) grow(record model.Record[K, V]) (err error) {
	records := append(C.Records(), record)
	fromSize := int64(len(C.buckets))

	C.hashAlgorithm.SetTableSize(utils.GrownSize(fromSize))
	buckets := make([]model.Record[K, V], C.hashAlgorithm.GetTableSize())

	var bucketNo int64
	for _, r := range records {
		bucketNo = C.hashAlgorithm.HashFunc1(r.Key.String())
		err = storage.CheckBucketNo(bucketNo, int64(len(buckets)))
		if err != nil {
			C.hashAlgorithm.SetTableSize(fromSize)
			err = fmt.Errorf("error while growing from %d buckets: %w", fromSize, err)
			return
		}
		buckets[bucketNo] = r
	}

	C.buckets = buckets

	storage.LogGrowth(C.logger, fromSize, int64(len(C.buckets)), len(records))

	return
}
