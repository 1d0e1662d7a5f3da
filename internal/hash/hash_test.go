//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCRC32HashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		key := []byte("123456789")

		// Execute
		bucketNo16 := NewCRC32HashAlgorithm(16).HashFunc1(key)
		bucketNo1000 := NewCRC32HashAlgorithm(1000).HashFunc1(key)

		// Check
		assert.Equal(t, int64(6), bucketNo16, "create a valid bucket number")
		assert.Equal(t, int64(262), bucketNo1000, "create a valid bucket number")
	})
}

func TestXXHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(16)

		// Execute
		bucketNo := h.HashFunc1([]byte{})

		// Check
		assert.Equal(t, int64(9), bucketNo, "create a valid bucket number")
	})

	t.Run("stays within table size", func(t *testing.T) {
		// Prepare
		h := NewXXHashAlgorithm(13)

		// Execute and Check
		for _, key := range []string{"a", "b", "key1", "some longer key"} {
			bucketNo := h.HashFunc1([]byte(key))
			assert.GreaterOrEqual(t, bucketNo, int64(0), "not below zero")
			assert.Less(t, bucketNo, int64(13), "below table size")
		}
	})
}

func TestNewHashAlgorithm(t *testing.T) {
	t.Run("returns built-in algorithms by name", func(t *testing.T) {
		// Execute
		shift, err1 := NewHashAlgorithm(Shift, 10)
		empty, err2 := NewHashAlgorithm("", 10)
		crc, err3 := NewHashAlgorithm(CRC32, 10)
		xx, err4 := NewHashAlgorithm(XXHash, 10)

		// Check
		assert.NoError(t, err1, "shift found")
		assert.NoError(t, err2, "default found")
		assert.NoError(t, err3, "crc32 found")
		assert.NoError(t, err4, "xxhash found")
		assert.IsType(t, &ShiftHashAlgorithm{}, shift, "shift algorithm")
		assert.IsType(t, &ShiftHashAlgorithm{}, empty, "shift is default")
		assert.IsType(t, &CRC32HashAlgorithm{}, crc, "crc32 algorithm")
		assert.IsType(t, &XXHashAlgorithm{}, xx, "xxhash algorithm")
		assert.Equal(t, int64(10), xx.GetTableSize(), "table size set")
	})

	t.Run("fails on unknown name", func(t *testing.T) {
		// Execute
		_, err := NewHashAlgorithm("md5", 10)

		// Check
		assert.Error(t, err, "unknown algorithm")
	})
}
