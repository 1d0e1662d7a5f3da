package hash

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/hashfunc"
)

// Names of the built-in bucket selection algorithms as used in configuration
const (
	Shift  string = "shift"
	CRC32  string = "crc32"
	XXHash string = "xxhash"
)

// NewHashAlgorithm - Returns a built-in hash algorithm given its name
//   - name is one of Shift, CRC32 or XXHash, an empty name gives Shift
//   - tableSize is the number of buckets the chain hash map will address
func NewHashAlgorithm(name string, tableSize int64) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch name {
	case Shift, "":
		hashAlgorithm = NewShiftHashAlgorithm(tableSize)
	case CRC32:
		hashAlgorithm = NewCRC32HashAlgorithm(tableSize)
	case XXHash:
		hashAlgorithm = NewXXHashAlgorithm(tableSize)
	default:
		err = fmt.Errorf("unknown hash algorithm %q", name)
	}

	return
}
