package conf

// DefaultTableSize - Number of buckets in a table when no initial size is given
const DefaultTableSize int64 = 5

// LoadFactorNumerator - Numerator of the load factor (3/4) at which a table grows
const LoadFactorNumerator int64 = 3

// LoadFactorDenominator - Denominator of the load factor (3/4) at which a table grows
const LoadFactorDenominator int64 = 4

// GrowthFactor - Factor the number of buckets is multiplied with when a table grows
const GrowthFactor int64 = 2
