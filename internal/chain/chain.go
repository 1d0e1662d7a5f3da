package chain

import (
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/internal/model"
	"golang.org/x/exp/slices"
)

// Chain - Represents the entries of one bucket, kept in strictly ascending key order (byte-wise comparison).
// The zero value is an empty chain ready to use.
type Chain struct {
	entries []model.Entry
}

// Len - Returns number of entries in the chain
func (C *Chain) Len() int {
	return len(C.entries)
}

// IsEmpty - Returns true if the chain holds no entries
func (C *Chain) IsEmpty() bool {
	return len(C.entries) == 0
}

// Entries - Returns the entries of the chain in key order.
// The returned slice is owned by the chain and must not be modified.
func (C *Chain) Entries() []model.Entry {
	return C.entries
}

// Get - Gets the value stored for key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type crt.NoRecordFound if there is no entry with the key
func (C *Chain) Get(key string) (value int64, err error) {
	pos, found := C.search(key)
	if !found {
		err = crt.NoRecordFound{}
		return
	}

	value = C.entries[pos].Value

	return
}

// Set - Updates the value of an existing entry in place, or splices in a new entry at its sorted position.
//   - key is the identifier of an entry
//   - value is the value to store
//
// It returns:
//   - added is true if a new entry was created, false if an existing entry was updated
func (C *Chain) Set(key string, value int64) (added bool) {
	pos, found := C.search(key)
	if found {
		C.entries[pos].Value = value
		return
	}

	C.entries = slices.Insert(C.entries, pos, model.Entry{Key: key, Value: value})
	added = true

	return
}

// Delete - Removes the entry with key from the chain.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value the removed entry had
//   - err is of type crt.NoRecordFound if there is no entry with the key, the chain is then left untouched
func (C *Chain) Delete(key string) (value int64, err error) {
	pos, found := C.search(key)
	if !found {
		err = crt.NoRecordFound{}
		return
	}

	value = C.entries[pos].Value
	n := len(C.entries)
	C.entries = slices.Delete(C.entries, pos, pos+1)

	// Zero the vacated tail slot so the removed key is not kept reachable
	C.entries[:n][n-1] = model.Entry{}

	// Release the backing array once the chain is empty
	if len(C.entries) == 0 {
		C.entries = nil
	}

	return
}

// Clear - Releases all entries in the chain
func (C *Chain) Clear() {
	C.entries = nil
}

// search - Scans the chain for the first entry with a key greater than or equal to key.
// It returns the position where key is (found is true) or where it should be inserted (found is false),
// the latter being len(entries) when every key in the chain sorts before key.
func (C *Chain) search(key string) (pos int, found bool) {
	for pos = 0; pos < len(C.entries); pos++ {
		if C.entries[pos].Key >= key {
			found = C.entries[pos].Key == key
			return
		}
	}

	return
}
