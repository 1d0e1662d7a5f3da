package hash

// ShiftHashAlgorithm - The default bucket selection algorithm. It runs a 32-bit accumulator over the key where
// each byte shifts the accumulator left by 8 bits before the unsigned byte value is added, overflow wraps around.
// The bucket is then given by accumulator % tableSize.
type ShiftHashAlgorithm struct {
	tableSize int64
}

// NewShiftHashAlgorithm - Returns a pointer to a new ShiftHashAlgorithm instance
func NewShiftHashAlgorithm(tableSize int64) *ShiftHashAlgorithm {
	ha := &ShiftHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the chain hash map will address
func (S *ShiftHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (S *ShiftHashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(Accumulate(key)) % S.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (S *ShiftHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}

// Accumulate - Returns the raw 32-bit accumulator value for key, before it is reduced to a bucket number.
// Only the last four bytes of a key affect the result since earlier bytes are shifted out.
func Accumulate(key []byte) (acc uint32) {
	for _, b := range key {
		acc = acc<<8 + uint32(b)
	}

	return
}
