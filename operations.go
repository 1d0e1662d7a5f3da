package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/iterator"
	"github.com/gostonefire/chainhashmap/internal/model"
	"github.com/gostonefire/chainhashmap/internal/utils"
)

// Entry - A key/value pair as returned by ToList and the Iterator
type Entry = model.Entry

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record, its length is checked according to the key policy
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound, crt.KeyTooLong or a standard error, if something went wrong
func (C *ChainMap) Get(key string) (value int64, err error) {
	key, bucketNo, err := C.locate(key)
	if err != nil {
		return
	}

	value, err = C.buckets[bucketNo].Get(key)

	return
}

// Has - Returns true if a record with the given key exists
func (C *ChainMap) Has(key string) bool {
	_, err := C.Get(key)
	return err == nil
}

// Set - Updates an existing record with a new value or adds it if no existing is found with same key.
//   - key is the identifier of a record, its length is checked according to the key policy
//   - value is the value to store
//
// It returns:
//   - err is either of type crt.KeyTooLong or a standard error, if something went wrong
func (C *ChainMap) Set(key string, value int64) (err error) {
	key, bucketNo, err := C.locate(key)
	if err != nil {
		return
	}

	if C.buckets[bucketNo].Set(key, value) {
		C.records++
		C.occupied.Add(uint32(bucketNo))
	}

	return
}

// Delete - Removes the record that corresponds to the given key.
//   - key is the identifier of a record, its length is checked according to the key policy
//
// It returns:
//   - err is either of type crt.NoRecordFound if there was nothing to delete, crt.KeyTooLong or a standard error
func (C *ChainMap) Delete(key string) (err error) {
	_, err = C.Pop(key)
	return
}

// Pop - Returns the value corresponding to key and removes the record from the chain hash map.
//   - key is the identifier of a record, its length is checked according to the key policy
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound, crt.KeyTooLong or a standard error, if something went wrong
func (C *ChainMap) Pop(key string) (value int64, err error) {
	key, bucketNo, err := C.locate(key)
	if err != nil {
		return
	}

	value, err = C.buckets[bucketNo].Delete(key)
	if err != nil {
		return
	}

	C.records--
	if C.buckets[bucketNo].IsEmpty() {
		C.occupied.Remove(uint32(bucketNo))
	}

	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of a record, its length is checked according to the key policy
func (C *ChainMap) GetBucketNo(key string) (bucketNo int64, err error) {
	_, bucketNo, err = C.locate(key)
	return
}

// ForEach - Calls fn for every record, bucket by bucket in ascending bucket number and within a bucket in
// ascending key order. The order is neither insertion order nor a global key order.
// The chain hash map must not be modified from within fn.
func (C *ChainMap) ForEach(fn func(key string, value int64)) {
	it := C.occupied.Iterator()
	for it.HasNext() {
		for _, e := range C.buckets[it.Next()].Entries() {
			fn(e.Key, e.Value)
		}
	}
}

// ToList - Returns a copy of all records in the same order as ForEach
func (C *ChainMap) ToList() (entries []Entry) {
	entries = make([]Entry, 0, C.records)
	C.ForEach(func(key string, value int64) {
		entries = append(entries, Entry{Key: key, Value: value})
	})

	return
}

// Iterator - Returns a new Iterator positioned before the first record.
// Records are visited in the same order as ForEach. The Iterator must not be used after the chain hash map
// has been modified, create a new one instead.
func (C *ChainMap) Iterator() *Iterator {
	getBucketFunc := func(bucketNo int64) []model.Entry { return C.buckets[bucketNo].Entries() }
	return &Iterator{records: iterator.NewRecords(getBucketFunc, C.occupied)}
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
// For big capacities the HashMapStat.BucketDistribution slice can be memory heavy (there will be one entry per bucket).
//   - includeDistribution set to true will include a slice of length Capacity with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (C *ChainMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat) {
	var hms HashMapStat

	if includeDistribution {
		hms.BucketDistribution = make([]int64, C.capacity)
	}

	// Only non-empty buckets need a visit
	it := C.occupied.Iterator()
	for it.HasNext() {
		bucketNo := it.Next()
		n := int64(C.buckets[bucketNo].Len())
		hms.Records += n
		hms.UsedBuckets++
		if n > hms.LongestChain {
			hms.LongestChain = n
		}
		if includeDistribution {
			hms.BucketDistribution[bucketNo] = n
		}
	}

	hms.LoadFactor = utils.LoadFactor(hms.Records, C.capacity)
	hashMapStat = &hms

	return
}

// locate - Applies the key policy and returns the key to use together with its bucket number
func (C *ChainMap) locate(key string) (checked string, bucketNo int64, err error) {
	checked, err = utils.CheckKeyLength(key, C.maxKeyLength, C.keyPolicy == TruncateLongKeys)
	if err != nil {
		return
	}

	bucketNo = C.bucketAlg.HashFunc1([]byte(checked))
	if bucketNo < 0 || bucketNo >= C.capacity {
		err = fmt.Errorf("received bucket number %d from bucket algorithm is outside permitted range", bucketNo)
		return
	}

	return
}
