//go:build unit

package chainhashmap

import (
	"github.com/golang/mock/gomock"
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/hashfunc/mock_hashfunc"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewChainMap(t *testing.T) {
	t.Run("creates chain hash map", func(t *testing.T) {
		// Execute
		cm, err := NewChainMap(16, nil)

		// Check
		assert.NoError(t, err, "creates chain hash map")
		assert.Equal(t, int64(16), cm.Capacity(), "correct capacity")
		assert.Equal(t, 16, len(cm.buckets), "correct number of buckets")
		assert.Equal(t, int64(0), cm.Len(), "empty map")

		info := cm.Info()
		assert.Equal(t, int64(16), info.Capacity, "correct capacity in info")
		assert.Equal(t, conf.DefaultMaxKeyLength, info.MaxKeyLength, "default max key length")
		assert.Equal(t, RejectLongKeys, info.KeyPolicy, "default key policy")
		assert.True(t, info.InternalAlgorithm, "has internal hash algorithm")
	})

	t.Run("creates chain hash map with capacity one", func(t *testing.T) {
		// Execute
		cm, err := NewChainMap(1, nil)

		// Check
		assert.NoError(t, err, "creates chain hash map")
		assert.Equal(t, int64(1), cm.Capacity(), "correct capacity")
	})

	t.Run("refuses invalid capacity", func(t *testing.T) {
		// Execute
		_, err0 := NewChainMap(0, nil)
		_, errNeg := NewChainMap(-5, nil)

		// Check
		assert.ErrorIs(t, err0, crt.InvalidCapacity{}, "zero capacity refused")
		assert.ErrorIs(t, errNeg, crt.InvalidCapacity{}, "negative capacity refused")
	})

	t.Run("refuses capacity that can't be allocated", func(t *testing.T) {
		// Execute
		_, err := NewChainMap(conf.MaxCapacity+1, nil)

		// Check
		assert.ErrorIs(t, err, crt.AllocationFailure{}, "allocation failure")
	})

	t.Run("refuses invalid max key length and key policy", func(t *testing.T) {
		// Execute
		_, errLength := NewChainMapFromConf(Conf{Capacity: 16, MaxKeyLength: -1})
		_, errPolicy := NewChainMapFromConf(Conf{Capacity: 16, KeyPolicy: KeyPolicy(7)})

		// Check
		assert.Error(t, errLength, "negative max key length refused")
		assert.Error(t, errPolicy, "unknown key policy refused")
	})

	t.Run("uses custom hash algorithm", func(t *testing.T) {
		// Prepare
		ha := hash.NewCRC32HashAlgorithm(5)

		// Execute
		cm, err := NewChainMapFromConf(Conf{Capacity: 1000, MaxKeyLength: 10, KeyPolicy: TruncateLongKeys, HashAlgorithm: ha})

		// Check
		assert.NoError(t, err, "creates chain hash map")
		assert.Equal(t, int64(1000), ha.GetTableSize(), "table size set from capacity")
		assert.False(t, cm.Info().InternalAlgorithm, "has custom hash algorithm")
		assert.Equal(t, 10, cm.Info().MaxKeyLength, "max key length preserved")
		assert.Equal(t, TruncateLongKeys, cm.Info().KeyPolicy, "key policy preserved")

		bucketNo, err := cm.GetBucketNo("123456789")
		assert.NoError(t, err, "gets bucket number")
		assert.Equal(t, int64(262), bucketNo, "custom algorithm used")
	})

	t.Run("refuses hash algorithm with other table size", func(t *testing.T) {
		// Prepare
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ha := mock_hashfunc.NewMockHashAlgorithm(ctrl)
		ha.EXPECT().SetTableSize(int64(10))
		ha.EXPECT().GetTableSize().Return(int64(16))

		// Execute
		_, err := NewChainMap(10, ha)

		// Check
		assert.Error(t, err, "table size mismatch refused")
	})
}
