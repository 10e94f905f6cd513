package model

import (
	"github.com/gostonefire/datastructs/hashfunc"
	log "github.com/sirupsen/logrus"
)

// RecordEmpty - State indicating a record that is or has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a record that is in use
const RecordOccupied uint8 = 1

// RecordDeleted - State indicating a record that has been in use but was deleted
const RecordDeleted uint8 = 2

// Record - Represents one record in a bucket
type Record[K comparable, V any] struct {
	State uint8
	Key   K
	Value V
}

// StorageParameters - Represents parameters specific for any implementation of storage
//   - CollisionResolutionTechnique is one of the crt constants
//   - NumberOfBuckets is the current table size
//   - Filled is the occupancy counter the storage uses for its load factor decisions
//   - Records is the number of live records
//   - InternalAlgorithm is true if no custom hash algorithm was supplied
type StorageParameters struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	Filled                       int64
	Records                      int64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table creation and processing.
//   - CollisionResolutionTechnique is one of the crt constants
//   - NumberOfBuckets is the initial number of buckets
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal algorithm
//   - Logger is the log entry used to report table growth, nil discards such logging
type CRTConf struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	HashAlgorithm                hashfunc.HashAlgorithm
	Logger                       *log.Entry
}
