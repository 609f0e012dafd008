package xxhash_test

import (
	"testing"

	"github.com/fwojciec/lawtree/xxhash"
	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	t.Parallel()

	t.Run("returns the same hash for the same content", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, xxhash.Sum("<p>a</p>"), xxhash.Sum("<p>a</p>"))
		assert.NotEqual(t, xxhash.Sum("<p>a</p>"), xxhash.Sum("<p>b</p>"))
	})

	t.Run("pads to sixteen hex digits", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "ef46db3751d8e999", xxhash.Sum(""))
		assert.Len(t, xxhash.Sum("Điều 1"), 16)
	})
}
