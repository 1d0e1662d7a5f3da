//go:build unit

package crt

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestErrors(t *testing.T) {
	t.Run("default messages are set", func(t *testing.T) {
		// Check
		assert.Equal(t, "no record found", NoRecordFound{}.Error(), "no record found message")
		assert.Equal(t, "capacity must be a positive value higher than 0 (zero)", InvalidCapacity{}.Error(), "invalid capacity message")
		assert.Equal(t, "unable to allocate buckets", AllocationFailure{}.Error(), "allocation failure message")
		assert.Equal(t, "key too long", KeyTooLong{}.Error(), "key too long message")
	})

	t.Run("wrapped errors are matched with errors.Is", func(t *testing.T) {
		// Prepare
		err := fmt.Errorf("key length 120 exceeds 99: %w", KeyTooLong{})

		// Check
		assert.True(t, errors.Is(err, KeyTooLong{}), "matches key too long")
		assert.False(t, errors.Is(err, NoRecordFound{}), "does not match no record found")
	})
}
