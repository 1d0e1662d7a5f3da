package crt

// NoRecordFound - Custom error to inform that no record was found for a key
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// InvalidCapacity - Custom error to inform that a chain hash map can't be created with the requested capacity
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that the capacity is lower than 1
func (E InvalidCapacity) Error() string {
	if E.msg == "" {
		return "capacity must be a positive value higher than 0 (zero)"
	}
	return E.msg
}

// AllocationFailure - Custom error to inform that the bucket array could not be reserved
type AllocationFailure struct {
	msg string
}

// Error - Used to notify that memory for the buckets could not be reserved
func (E AllocationFailure) Error() string {
	if E.msg == "" {
		return "unable to allocate buckets"
	}
	return E.msg
}

// KeyTooLong - Custom error to inform that a key exceeds the maximum key length
type KeyTooLong struct {
	msg string
}

// Error - Used to notify that a key was rejected due to its length
func (E KeyTooLong) Error() string {
	if E.msg == "" {
		return "key too long"
	}
	return E.msg
}
