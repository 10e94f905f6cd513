package datastructs

import (
	"github.com/gostonefire/datastructs/crt"
	"github.com/gostonefire/datastructs/hashfunc"
	"github.com/gostonefire/datastructs/internal/conf"
	"github.com/gostonefire/datastructs/internal/hash"
	"github.com/gostonefire/datastructs/internal/model"
	"github.com/gostonefire/datastructs/internal/storage/collision"
	"github.com/gostonefire/datastructs/internal/storage/openaddressing"
	"github.com/gostonefire/datastructs/internal/storage/separatechaining"
	"github.com/pkg/errors"

	log "github.com/sirupsen/logrus"
)

// Storage - Interface for any table implementation behind the HashMap
type Storage[K hashfunc.Key, V any] interface {
	Get(key K) (record model.Record[K, V], err error)
	Set(record model.Record[K, V]) (err error)
	Delete(key K) (record model.Record[K, V], err error)
	GetBucket(bucketNo int64) (records []model.Record[K, V], err error)
	GetStorageParameters() (params model.StorageParameters)
	Records() []model.Record[K, V]
	String() string
}

// Conf - Configuration for NewHashMap
//   - Name is the name of the hash map, it is only used as a logging field
//   - CollisionResolutionTechnique is one of crt.Collision, crt.LinearProbing or crt.SeparateChaining, 0 (zero) selects crt.SeparateChaining
//   - InitialSize is the initial number of buckets, 0 (zero) selects the default of 5
//   - HashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface
//   - Logger is an optional logrus logger, nil selects the logrus standard logger
type Conf struct {
	Name                         string
	CollisionResolutionTechnique int
	InitialSize                  int64
	HashAlgorithm                hashfunc.HashAlgorithm
	Logger                       *log.Logger
}

// HashMapInfo - Information structure containing some information about the hash map created
//   - CollisionResolutionTechnique is the technique in use
//   - NumberOfBuckets is the initial number of buckets
//   - InternalAlgorithm is true if the internal hash algorithm is in use
type HashMapInfo struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	InternalAlgorithm            bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - NumberOfBuckets is the current number of buckets
//   - Filled is the fill counter the table uses to decide when to grow
//   - LoadFactor is Filled / NumberOfBuckets
//   - BucketDistribution is the number of records stored in each bucket
type HashMapStat struct {
	Records            int64
	NumberOfBuckets    int64
	Filled             int64
	LoadFactor         float64
	BucketDistribution []int64
}

// Entry - A key and value pair as stored in a HashMap
type Entry[K hashfunc.Key, V any] struct {
	Key   K
	Value V
}

// HashMap - The main implementation struct
type HashMap[K hashfunc.Key, V any] struct {
	storage   Storage[K, V]
	technique int
	logger    *log.Entry
}

// NewHashMap - Returns a new, empty hash map using the collision resolution technique given in conf.
// All techniques grow by doubling the number of buckets when the fill counter reaches 75% of the buckets.
//   - conf is a Conf struct
//
// It returns:
//   - hashMap is a pointer to a HashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created.
//   - err is a normal go Error which should be nil if everything went ok
func NewHashMap[K hashfunc.Key, V any](conf Conf) (hashMap *HashMap[K, V], hashMapInfo HashMapInfo, err error) {
	numberOfBuckets, err := initialSize(conf.InitialSize)
	if err != nil {
		return
	}

	technique := conf.CollisionResolutionTechnique
	if technique == 0 {
		technique = crt.SeparateChaining
	}

	logger := conf.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	entry := logger.WithFields(log.Fields{
		"crt": crt.Name(technique),
		"map": conf.Name,
	})

	crtConf := model.CRTConf{
		CollisionResolutionTechnique: technique,
		NumberOfBuckets:              numberOfBuckets,
		HashAlgorithm:                conf.HashAlgorithm,
		Logger:                       entry,
	}

	var s Storage[K, V]
	switch technique {
	case crt.Collision:
		s, err = collision.NewCTable[K, V](crtConf)
	case crt.LinearProbing:
		s, err = openaddressing.NewOATable[K, V](crtConf)
	case crt.SeparateChaining:
		s, err = separatechaining.NewSCTable[K, V](crtConf)
	default:
		err = errors.Errorf("unsupported collision resolution technique %d", technique)
	}
	if err != nil {
		return
	}

	hashMap = &HashMap[K, V]{
		storage:   s,
		technique: technique,
		logger:    entry,
	}

	sp := s.GetStorageParameters()

	hashMapInfo = HashMapInfo{
		CollisionResolutionTechnique: sp.CollisionResolutionTechnique,
		NumberOfBuckets:              sp.NumberOfBuckets,
		InternalAlgorithm:            sp.InternalAlgorithm,
	}

	entry.WithField("buckets", sp.NumberOfBuckets).Debug("hash map created")

	return
}

// NewCrc32HashAlgorithm - Returns a custom hash algorithm based on crc32.ChecksumIEEE with linear probing,
// to be given in Conf.HashAlgorithm. The table size is overwritten by the hash map.
func NewCrc32HashAlgorithm(tableSize int64) hashfunc.HashAlgorithm {
	return hash.NewCrc32HashAlgorithm(tableSize)
}

// initialSize - Returns the number of buckets to start with
func initialSize(size int64) (int64, error) {
	switch {
	case size < 0:
		return 0, errors.Errorf("initial size must not be negative, got %d", size)
	case size == 0:
		return conf.DefaultTableSize, nil
	default:
		return size, nil
	}
}
