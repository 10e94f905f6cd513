package utils

import (
	"github.com/gostonefire/datastructs/internal/conf"
	"io"

	log "github.com/sirupsen/logrus"
)

// ReachesLoadFactor - Returns true if filled buckets make up at least the load factor of tableSize.
// The comparison is done in integers, filled >= 0.75 * tableSize.
func ReachesLoadFactor(filled, tableSize int64) bool {
	return filled*conf.LoadFactorDenominator >= tableSize*conf.LoadFactorNumerator
}

// LoadFactor - Returns filled / tableSize, or 0 for an empty table size
func LoadFactor(filled, tableSize int64) float64 {
	if tableSize <= 0 {
		return 0
	}
	return float64(filled) / float64(tableSize)
}

// GrownSize - Returns the table size after one growth step
func GrownSize(tableSize int64) int64 {
	return tableSize * conf.GrowthFactor
}

// DiscardLogger - Returns a log entry whose output goes nowhere, used when no logger is configured
func DiscardLogger() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return log.NewEntry(logger)
}
