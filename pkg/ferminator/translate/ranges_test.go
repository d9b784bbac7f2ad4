package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCellRange(t *testing.T) {
	t.Run("single column", func(t *testing.T) {
		r, ok := parseCellRange("A1:A3")
		assert.True(t, ok)
		assert.True(t, r.singleColumn())
		assert.Equal(t, []string{"A1", "A2", "A3"}, r.addresses())
	})

	t.Run("rectangle expands column-major", func(t *testing.T) {
		r, ok := parseCellRange("A1:B2")
		assert.True(t, ok)
		assert.False(t, r.singleColumn())
		assert.Equal(t, []string{"A1", "A2", "B1", "B2"}, r.addresses())
	})

	t.Run("single cell", func(t *testing.T) {
		r, ok := parseCellRange("C5:C5")
		assert.True(t, ok)
		assert.Equal(t, []string{"C5"}, r.addresses())
	})

	t.Run("rejects unsupported shapes", func(t *testing.T) {
		for _, ref := range []string{
			"AA1:AB3", // multi-letter columns
			"Z1:AA5",  // crosses past column Z
			"A3:A1",   // reversed rows
			"B1:A1",   // reversed columns
			"A1",      // not a range
			"",
		} {
			_, ok := parseCellRange(ref)
			assert.False(t, ok, "expected %q to be rejected", ref)
		}
	})
}
