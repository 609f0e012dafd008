package lawtree_test

import (
	"testing"

	"github.com/fwojciec/lawtree"
	"github.com/stretchr/testify/assert"
)

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	t.Run("reports counts metadata and attachments", func(t *testing.T) {
		t.Parallel()

		got := lawtree.FormatSummary(sampleResult(t))

		expected := "Tài liệu\n" +
			"nodes: 4\n" +
			"  chapter: 1\n" +
			"  article: 1\n" +
			"  clause: 1\n" +
			"  point: 1\n" +
			"recipients: 2\n" +
			"  Nơi nhận:\n" +
			"  - Lưu: VT.\n" +
			"signers: 1\n" +
			"  KT. BỘ TRƯỞNG\n" +
			"attachments: 1\n" +
			"  PHỤ LỤC I"
		assert.Equal(t, expected, got)
	})

	t.Run("returns empty string for nil result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, lawtree.FormatSummary(nil))
	})
}
