package iterator

import (
	"github.com/RoaringBitmap/roaring"
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// Records - Is used to iterate over all entries one by one, bucket by bucket in ascending bucket number and
// within a bucket in chain (key) order. Only buckets present in the occupied bitmap are visited.
type Records struct {
	getBucketFunc func(int64) []model.Entry
	occupied      roaring.IntIterable
	current       []model.Entry
	pos           int
}

// NewRecords - Returns a pointer to a new Records struct
//   - getBucketFunc returns the entries of a given bucket number
//   - occupied is a bitmap with the numbers of all non-empty buckets
func NewRecords(getBucketFunc func(int64) []model.Entry, occupied *roaring.Bitmap) *Records {

	return &Records{
		getBucketFunc: getBucketFunc,
		occupied:      occupied.Iterator(),
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	for R.pos >= len(R.current) {
		if !R.occupied.HasNext() {
			return false
		}
		R.current = R.getBucketFunc(int64(R.occupied.Next()))
		R.pos = 0
	}

	return true
}

// Next - Returns record.
// It returns:
//   - record is the next entry.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (R *Records) Next() (record model.Entry, err error) {
	if !R.HasNext() {
		err = crt.NoRecordFound{}
		return
	}

	record = R.current[R.pos]
	R.pos++

	return
}
