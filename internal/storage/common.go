package storage

import (
	"fmt"
	"github.com/gostonefire/datastructs/hashfunc"
	"github.com/gostonefire/datastructs/internal/model"
	"strings"

	log "github.com/sirupsen/logrus"
)

// NilSlot - Text representation of a bucket slot holding no record
const NilSlot string = "nil"

// FormatRecord - Returns a record as "(key, value)"
func FormatRecord[K hashfunc.Key, V any](record model.Record[K, V]) string {
	return fmt.Sprintf("(%s, %v)", record.Key.String(), record.Value)
}

// FormatSlots - Returns a slice of single record buckets as "[(key, value), nil, ...]" where
// buckets without an occupied record are shown as nil.
func FormatSlots[K hashfunc.Key, V any](buckets []model.Record[K, V]) string {
	parts := make([]string, len(buckets))
	for i, record := range buckets {
		if record.State == model.RecordOccupied {
			parts[i] = FormatRecord(record)
		} else {
			parts[i] = NilSlot
		}
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// FormatChains - Returns a slice of chains as "[[(key, value), ...], [], ...]"
func FormatChains[K hashfunc.Key, V any](chains [][]model.Record[K, V]) string {
	parts := make([]string, len(chains))
	for i, chain := range chains {
		records := make([]string, len(chain))
		for j, record := range chain {
			records[j] = FormatRecord(record)
		}
		parts[i] = fmt.Sprintf("[%s]", strings.Join(records, ", "))
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

// OccupiedRecords - Returns all occupied records of single record buckets in bucket order
func OccupiedRecords[K hashfunc.Key, V any](buckets []model.Record[K, V]) (records []model.Record[K, V]) {
	records = make([]model.Record[K, V], 0, len(buckets))
	for _, record := range buckets {
		if record.State == model.RecordOccupied {
			records = append(records, record)
		}
	}

	return
}

// CheckBucketNo - Returns an error if bucketNo is outside 0 -> numberOfBuckets - 1
func CheckBucketNo(bucketNo, numberOfBuckets int64) (err error) {
	if bucketNo < 0 || bucketNo >= numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside permitted range 0 to %d", bucketNo, numberOfBuckets-1)
	}

	return
}

// LogGrowth - Reports a table growth at debug level
func LogGrowth(logger *log.Entry, fromSize, toSize int64, records int) {
	logger.WithFields(log.Fields{
		"from":    fromSize,
		"to":      toSize,
		"records": records,
	}).Debug("table reached load factor, growing and rehashing")
}
