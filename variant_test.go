package lawtree_test

import (
	"testing"

	"github.com/fwojciec/lawtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  lawtree.Variant
	}{
		{"Luật", lawtree.Hierarchical},
		{"Thông tư liên tịch", lawtree.Hierarchical},
		{"Quyết định", lawtree.Decision},
		{"  nghị quyết ", lawtree.Decision},
		{"THÔNG BÁO", lawtree.Directive},
		{"Chỉ thị", lawtree.Plan},
		{"Báo cáo", lawtree.Plan},
		{"Công văn", lawtree.Hierarchical},
		{"", lawtree.Hierarchical},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, lawtree.VariantFor(tt.label))
		})
	}
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	t.Run("covers every variant", func(t *testing.T) {
		t.Parallel()

		seen := make(map[lawtree.Variant]bool)
		for _, r := range lawtree.Routes() {
			seen[r.Variant] = true
		}

		for _, v := range lawtree.Variants() {
			assert.True(t, seen[v], v.String())
		}
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()

		routes := lawtree.Routes()
		routes[0].Variant = lawtree.Plan

		assert.Equal(t, lawtree.Hierarchical, lawtree.VariantFor(routes[0].Label))
	})
}

func TestInferDocumentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Thông tư 80/2021/TT-BTC hướng dẫn Luật Quản lý thuế", "Thông tư"},
		{"Thông tư liên tịch 01/2020/TTLT-BTC-BCA", "Thông tư liên tịch"},
		{"QUYẾT ĐỊNH về việc ban hành quy chế", "Quyết định"},
		{"Lệnh công bố Luật", "Lệnh"},
		{"Luật2020", ""},
		{"Công văn 123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, lawtree.InferDocumentType(tt.title))
		})
	}
}

func TestVariant(t *testing.T) {
	t.Parallel()

	t.Run("allows tables and spans only for hierarchical documents", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, lawtree.Hierarchical.Elements(), "table")
		assert.Contains(t, lawtree.Hierarchical.Elements(), "span")
		assert.NotContains(t, lawtree.Decision.Elements(), "table")
		assert.NotContains(t, lawtree.Plan.Elements(), "span")
	})

	t.Run("merges only formal document families", func(t *testing.T) {
		t.Parallel()

		assert.True(t, lawtree.Hierarchical.Merges())
		assert.True(t, lawtree.Decision.Merges())
		assert.False(t, lawtree.Directive.Merges())
		assert.False(t, lawtree.Plan.Merges())
	})

	t.Run("uses a shorter metadata threshold for hierarchical documents", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 50, lawtree.Hierarchical.MetadataThreshold())
		assert.Equal(t, 60, lawtree.Directive.MetadataThreshold())
	})

	t.Run("parses variant names", func(t *testing.T) {
		t.Parallel()

		for _, v := range lawtree.Variants() {
			got, err := lawtree.ParseVariant(v.String())
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("rejects unknown variant names", func(t *testing.T) {
		t.Parallel()

		_, err := lawtree.ParseVariant("memo")

		assert.Equal(t, lawtree.EINVALID, lawtree.ErrorCode(err))
	})
}
