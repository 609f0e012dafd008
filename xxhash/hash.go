// Package xxhash fingerprints document content with
// github.com/cespare/xxhash/v2.
package xxhash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sum returns the xxHash of content as 16 lower-case hex digits.
func Sum(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
