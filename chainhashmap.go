package chainhashmap

import (
	"fmt"
	"github.com/RoaringBitmap/roaring"
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/chain"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/hash"
)

// KeyPolicy - Decides what happens with keys longer than the max key length
type KeyPolicy int

const (
	// RejectLongKeys - Keys longer than the max key length are refused with a crt.KeyTooLong error
	RejectLongKeys KeyPolicy = iota
	// TruncateLongKeys - Keys longer than the max key length are cut at the max key length (in bytes).
	// The cut may split a multi-byte UTF-8 character, the resulting key is then not valid UTF-8 but is still
	// the same for every call with the same key.
	TruncateLongKeys
)

// Conf - Is a struct used in the call to NewChainMapFromConf holding the map configuration.
//   - Capacity is the fixed number of buckets, it must be between 1 and conf.MaxCapacity
//   - MaxKeyLength is the maximum number of bytes in a key, 0 (zero) gives conf.DefaultMaxKeyLength
//   - KeyPolicy is what to do with keys longer than MaxKeyLength
//   - HashAlgorithm is an optional custom bucket selection algorithm, nil gives the internal shift algorithm
type Conf struct {
	Capacity      int64
	MaxKeyLength  int
	KeyPolicy     KeyPolicy
	HashAlgorithm hashfunc.HashAlgorithm
}

// HashMapInfo - Information structure containing some information about the chain hash map created
//   - Capacity is the fixed number of buckets
//   - MaxKeyLength is the maximum number of bytes in a key
//   - KeyPolicy is what happens with keys longer than MaxKeyLength
//   - InternalAlgorithm is true if the internal shift algorithm is used for bucket selection
type HashMapInfo struct {
	Capacity          int64
	MaxKeyLength      int
	KeyPolicy         KeyPolicy
	InternalAlgorithm bool
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the most populated bucket
//   - LoadFactor is Records divided by the number of buckets
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	UsedBuckets        int64
	LongestChain       int64
	LoadFactor         float64
	BucketDistribution []int64
}

// ChainMap - The main implementation struct, a fixed capacity string to int64 hash map using separate chaining.
// It is not safe for concurrent use, callers sharing an instance must serialize all access.
type ChainMap struct {
	buckets           []chain.Chain
	occupied          *roaring.Bitmap
	records           int64
	capacity          int64
	maxKeyLength      int
	keyPolicy         KeyPolicy
	bucketAlg         hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewChainMap - Returns a new chain hash map with a fixed number of buckets. The capacity never changes, there
// is no rehashing, so chains will grow if far more keys than buckets are stored.
//   - capacity is the number of buckets
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the HashAlgorithm interface.
//
// It returns:
//   - chainMap is a pointer to a ChainMap struct
//   - err is of type crt.InvalidCapacity or crt.AllocationFailure, or a standard error if something went wrong
func NewChainMap(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (chainMap *ChainMap, err error) {
	return NewChainMapFromConf(Conf{Capacity: capacity, HashAlgorithm: hashAlgorithm})
}

// NewChainMapFromConf - Returns a new chain hash map configured by a Conf struct.
//   - mapConf is the configuration, see Conf for details
//
// It returns:
//   - chainMap is a pointer to a ChainMap struct
//   - err is of type crt.InvalidCapacity or crt.AllocationFailure, or a standard error if something went wrong
func NewChainMapFromConf(mapConf Conf) (chainMap *ChainMap, err error) {
	// Check if capacity is valid
	if mapConf.Capacity < 1 {
		err = crt.InvalidCapacity{}
		return
	}
	if mapConf.Capacity > conf.MaxCapacity {
		err = fmt.Errorf("capacity %d is above max capacity %d: %w", mapConf.Capacity, conf.MaxCapacity, crt.AllocationFailure{})
		return
	}

	// Check if the max key length is valid
	if mapConf.MaxKeyLength < 0 {
		err = fmt.Errorf("max key length must be a positive value or 0 (zero) for default")
		return
	}
	if mapConf.MaxKeyLength == 0 {
		mapConf.MaxKeyLength = conf.DefaultMaxKeyLength
	}

	// Check if the key policy is valid
	if mapConf.KeyPolicy != RejectLongKeys && mapConf.KeyPolicy != TruncateLongKeys {
		err = fmt.Errorf("unknown key policy %d", mapConf.KeyPolicy)
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if mapConf.HashAlgorithm == nil {
		mapConf.HashAlgorithm = hash.NewShiftHashAlgorithm(mapConf.Capacity)
		internalAlg = true
	} else {
		mapConf.HashAlgorithm.SetTableSize(mapConf.Capacity)
		if ts := mapConf.HashAlgorithm.GetTableSize(); ts != mapConf.Capacity {
			err = fmt.Errorf("hash algorithm table size %d differs from capacity %d", ts, mapConf.Capacity)
			return
		}
	}

	chainMap = &ChainMap{
		buckets:           make([]chain.Chain, mapConf.Capacity),
		occupied:          roaring.New(),
		capacity:          mapConf.Capacity,
		maxKeyLength:      mapConf.MaxKeyLength,
		keyPolicy:         mapConf.KeyPolicy,
		bucketAlg:         mapConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Info - Returns information on how the chain hash map was created
func (C *ChainMap) Info() HashMapInfo {
	return HashMapInfo{
		Capacity:          C.capacity,
		MaxKeyLength:      C.maxKeyLength,
		KeyPolicy:         C.keyPolicy,
		InternalAlgorithm: C.internalAlgorithm,
	}
}

// Capacity - Returns the fixed number of buckets
func (C *ChainMap) Capacity() int64 {
	return C.capacity
}

// Len - Returns the number of records stored
func (C *ChainMap) Len() int64 {
	return C.records
}

// Clear - Releases all records, the map stays usable with the same capacity
func (C *ChainMap) Clear() {
	it := C.occupied.Iterator()
	for it.HasNext() {
		C.buckets[it.Next()].Clear()
	}
	C.occupied.Clear()
	C.records = 0
}
