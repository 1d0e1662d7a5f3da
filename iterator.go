package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/internal/iterator"
)

// Iterator - Is used to iterate over records one by one, see ChainMap.Iterator
type Iterator struct {
	records *iterator.Records
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (I *Iterator) HasNext() bool {
	return I.records.HasNext()
}

// Next - Returns the next record.
// It returns:
//   - key is the key of the record
//   - value is the value of the record
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (I *Iterator) Next() (key string, value int64, err error) {
	record, err := I.records.Next()
	if err != nil {
		return
	}

	key, value = record.Key, record.Value

	return
}
