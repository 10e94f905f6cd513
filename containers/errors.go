package containers

// CapacityExceeded - Custom error to inform that adding an item would exceed the maximum length of a container
type CapacityExceeded struct {
	msg string
}

// Error - Used to notify that the maximum length was exceeded
func (E CapacityExceeded) Error() string {
	if E.msg == "" {
		return "max length exceeded"
	}
	return E.msg
}

// Is - Makes errors.Is match any CapacityExceeded regardless of message
func (E CapacityExceeded) Is(target error) bool {
	_, ok := target.(CapacityExceeded)
	return ok
}

// OutOfBounds - Custom error to inform that a position is outside a container, which includes any position of an empty container
type OutOfBounds struct {
	msg string
}

// Error - Used to notify that a position was out of bounds
func (E OutOfBounds) Error() string {
	if E.msg == "" {
		return "index out of bounds"
	}
	return E.msg
}

// Is - Makes errors.Is match any OutOfBounds regardless of message
func (E OutOfBounds) Is(target error) bool {
	_, ok := target.(OutOfBounds)
	return ok
}
