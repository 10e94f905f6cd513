package datastructs

import "strconv"

// IntKey - An int usable as hash map key, hashed on its decimal text form
type IntKey int

// String - Returns the decimal text form
func (I IntKey) String() string {
	return strconv.Itoa(int(I))
}

// StringKey - A string usable as hash map key
type StringKey string

// String - Returns the string itself
func (S StringKey) String() string {
	return string(S)
}
