package model

// Entry - Represents one key/value pair stored in a bucket chain
type Entry struct {
	Key   string
	Value int64
}
