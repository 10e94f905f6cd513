package separatechaining

import (
	"fmt"
	"github.com/gostonefire/datastructs/internal/model"
	"github.com/gostonefire/datastructs/internal/storage"
	"github.com/gostonefire/datastructs/internal/utils"

	"golang.org/x/exp/slices"
)

// getBucketNo - Returns the home bucket of key
func (S *SCTable[K, V]) getBucketNo(key K) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc1(key.String())
	err = storage.CheckBucketNo(bucketNo, int64(len(S.buckets)))

	return
}

// addToChain - Removes any record with the same key from chain and appends record, returning the new chain
func addToChain[K comparable, V any](chain []model.Record[K, V], record model.Record[K, V]) []model.Record[K, V] {
	if i := indexOf(chain, record.Key); i >= 0 {
		chain = slices.Delete(chain, i, i+1)
	}
	return append(chain, record)
}

// grow - Doubles the number of buckets and rehashes the flattened records together with record into new chains.
// The new chains are built aside and only replace the current ones when every record found a bucket,
// the fill counter is then set to the number of non-empty chains.
func (S *SCTable[K, V]) grow(record model.Record[K, V]) (err error) {
	records := append(S.Records(), record)
	fromSize := int64(len(S.buckets))

	S.hashAlgorithm.SetTableSize(utils.GrownSize(fromSize))
	buckets := make([][]model.Record[K, V], S.hashAlgorithm.GetTableSize())

	var bucketNo, filled int64
	for _, r := range records {
		bucketNo = S.hashAlgorithm.HashFunc1(r.Key.String())
		err = storage.CheckBucketNo(bucketNo, int64(len(buckets)))
		if err != nil {
			S.hashAlgorithm.SetTableSize(fromSize)
			err = fmt.Errorf("error while growing from %d buckets: %w", fromSize, err)
			return
		}
		if len(buckets[bucketNo]) == 0 {
			filled++
		}
		buckets[bucketNo] = addToChain(buckets[bucketNo], r)
	}

	S.buckets = buckets
	S.filled = filled

	storage.LogGrowth(S.logger, fromSize, int64(len(S.buckets)), len(records))

	return
}

// indexOf - Returns the position of key in chain or -1
func indexOf[K comparable, V any](chain []model.Record[K, V], key K) int {
	return slices.IndexFunc(chain, func(r model.Record[K, V]) bool { return r.Key == key })
}
