package hashfunc

//go:generate mockgen -destination=mock_hashfunc/mock_hashfunc.go -package=mock_hashfunc github.com/gostonefire/chainhashmap/hashfunc HashAlgorithm

// HashAlgorithm - Interface that permits an implementation using the ChainMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new chain hash map. If a custom hash algorithm is supplied that implements
	// this interface and the instance is already having a table size, it will be overwritten by the capacity
	// given when creating the chain hash map.
	//   - tableSize is the number of buckets the chain hash map will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// The function must be deterministic, the same key must always end up in the same bucket.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The chain hash map never rehashes, so an implementation that rounds the table size (for instance up to
	// nearest 2 to the power of x) will be refused since the bucket count must equal the requested capacity.
	GetTableSize() int64
}
