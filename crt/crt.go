package crt

// Collision - No collision handling at all, a bucket holds one record and a newer record
// hashing to the same bucket overwrites it.
const Collision int = 1

// LinearProbing - Open addressing where a collision is resolved by stepping one bucket forward,
// wrapping around at the end of the table.
const LinearProbing int = 2

// SeparateChaining - Each bucket holds an ordered chain of records.
const SeparateChaining int = 3

// Name - Returns a readable name for a collision resolution technique
func Name(technique int) string {
	switch technique {
	case Collision:
		return "Collision"
	case LinearProbing:
		return "LinearProbing"
	case SeparateChaining:
		return "SeparateChaining"
	default:
		return "Unknown"
	}
}
