package openaddressing

import (
	"fmt"
	"github.com/gostonefire/datastructs/crt"
	"github.com/gostonefire/datastructs/internal/model"
	"github.com/gostonefire/datastructs/internal/storage"
	"github.com/gostonefire/datastructs/internal/utils"
)

// insert - Writes record to the bucket found by probingForSet and keeps utilization info up to date
func (O *OATable[K, V]) insert(record model.Record[K, V]) (err error) {
	bucketNo, err := O.probingForSet(record.Key)
	if err != nil {
		return
	}

	fromState := O.buckets[bucketNo].State
	O.buckets[bucketNo] = record
	O.updateUtilizationInfo(fromState, model.RecordOccupied)

	return
}

// grow - Doubles the number of buckets and re-inserts all present records together with record by
// probing into the new bucket array. Tombstones are not carried over. If a record can not be placed
// the previous bucket array is restored.
func (O *OATable[K, V]) grow(record model.Record[K, V]) (err error) {
	records := append(O.Records(), record)
	fromSize := int64(len(O.buckets))
	fromBuckets, fromOccupied, fromDeleted := O.buckets, O.nOccupied, O.nDeleted

	O.hashAlgorithm.SetTableSize(utils.GrownSize(fromSize))
	O.buckets = make([]model.Record[K, V], O.hashAlgorithm.GetTableSize())
	O.nOccupied = 0
	O.nDeleted = 0

	for _, r := range records {
		err = O.insert(r)
		if err != nil {
			O.hashAlgorithm.SetTableSize(fromSize)
			O.buckets, O.nOccupied, O.nDeleted = fromBuckets, fromOccupied, fromDeleted
			err = fmt.Errorf("error while growing from %d buckets: %w", fromSize, err)
			return
		}
	}

	storage.LogGrowth(O.logger, fromSize, int64(len(O.buckets)), len(records))

	return
}

// updateUtilizationInfo - Keeps track of number of occupied and deleted buckets
func (O *OATable[K, V]) updateUtilizationInfo(fromState, toState uint8) {
	switch fromState {
	case model.RecordOccupied:
		O.nOccupied--
	case model.RecordDeleted:
		O.nDeleted--
	}

	switch toState {
	case model.RecordOccupied:
		O.nOccupied++
	case model.RecordDeleted:
		O.nDeleted++
	}
}

// probingForGet - Is the Probing Collision Resolution Technique algorithm for getting a record.
// It returns the bucket number holding the record with key.
func (O *OATable[K, V]) probingForGet(key K) (bucketNo int64, err error) {
	var probe, n int64

	numberOfBuckets := int64(len(O.buckets))
	hf1Value := O.hashAlgorithm.HashFunc1(key.String())
	err = storage.CheckBucketNo(hf1Value, numberOfBuckets)
	if err != nil {
		return
	}

	iMax := numberOfBuckets * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < numberOfBuckets && probe >= 0 {
			switch O.buckets[probe].State {
			case model.RecordEmpty:
				err = crt.NoRecordFound{}
				return

			case model.RecordOccupied:
				if O.buckets[probe].Key == key {
					bucketNo = probe
					return
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of buckets
			n++
			if n >= numberOfBuckets {
				err = crt.NoRecordFound{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// probingForSet - Is the Probing Collision Resolution Technique algorithm for finding the bucket to set a record in.
// A bucket already holding key wins, otherwise the first deleted bucket passed on the way, otherwise the first empty bucket.
func (O *OATable[K, V]) probingForSet(key K) (bucketNo int64, err error) {
	var deletedBucketNo int64
	var hasCached bool
	var probe, n int64

	numberOfBuckets := int64(len(O.buckets))
	hf1Value := O.hashAlgorithm.HashFunc1(key.String())
	err = storage.CheckBucketNo(hf1Value, numberOfBuckets)
	if err != nil {
		return
	}

	iMax := numberOfBuckets * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = O.hashAlgorithm.ProbeIteration(hf1Value, i)
		if probe < numberOfBuckets && probe >= 0 {
			switch O.buckets[probe].State {
			case model.RecordEmpty:
				if hasCached {
					bucketNo = deletedBucketNo
				} else {
					bucketNo = probe
				}
				return

			case model.RecordOccupied:
				if O.buckets[probe].Key == key {
					bucketNo = probe
					return
				}

			case model.RecordDeleted:
				if !hasCached {
					deletedBucketNo = probe
					hasCached = true
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of buckets
			n++
			if n >= numberOfBuckets {
				if hasCached {
					bucketNo = deletedBucketNo
					return
				}
				err = crt.TableFull{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}
