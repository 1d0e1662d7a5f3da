package utils

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/crt"
)

// CheckKeyLength - Returns the key to use given the maximum key length and the truncate policy.
//   - key is the key as given by the caller
//   - maxKeyLength is the maximum number of bytes a key may have
//   - truncate set to true cuts a too long key at maxKeyLength bytes, false rejects it.
//     The cut counts bytes, not runes, so a multi-byte UTF-8 character may be split leaving invalid UTF-8.
//
// It returns:
//   - checked is the key to hash and compare with
//   - err is a wrapped crt.KeyTooLong if the key was rejected
func CheckKeyLength(key string, maxKeyLength int, truncate bool) (checked string, err error) {
	if len(key) <= maxKeyLength {
		checked = key
		return
	}

	if !truncate {
		err = fmt.Errorf("key length %d exceeds max key length %d: %w", len(key), maxKeyLength, crt.KeyTooLong{})
		return
	}

	checked = key[:maxKeyLength]

	return
}

// LoadFactor - Returns the ratio of stored records to number of buckets
func LoadFactor(records, buckets int64) float64 {
	if buckets <= 0 {
		return 0
	}
	return float64(records) / float64(buckets)
}
