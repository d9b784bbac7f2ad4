package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSheetName(t *testing.T) {
	assert.Equal(t, "Sheet1", SanitizeSheetName("Sheet1"))
	assert.Equal(t, "MySheet", SanitizeSheetName("My Sheet"))
	assert.Equal(t, "Costs2024", SanitizeSheetName("Costs (2024)"))
}

func TestAddressNormalizer_SingleSheet(t *testing.T) {
	n := NewAddressNormalizer([]string{"Sheet1"})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", n.Normalize("", "Sheet1"))
	})

	t.Run("bare addresses are wrapped without prefix", func(t *testing.T) {
		assert.Equal(t,
			"(${metric:A1}+${metric:A2}+${metric:A3})",
			n.Normalize("(A1+A2+A3)", "Sheet1"),
		)
	})

	t.Run("function arguments are wrapped", func(t *testing.T) {
		assert.Equal(t,
			"sum(${metric:A1},${metric:B2})",
			n.Normalize("sum(A1,B2)", "Sheet1"),
		)
	})

	t.Run("numbers are untouched", func(t *testing.T) {
		assert.Equal(t,
			"(1 / log10(2.71828) * log10(5))",
			n.Normalize("(1 / log10(2.71828) * log10(5))", "Sheet1"),
		)
	})
}

func TestAddressNormalizer_MultiSheet(t *testing.T) {
	n := NewAddressNormalizer([]string{"Sheet1", "My Sheet"})

	t.Run("bare address gets the current sheet prefix", func(t *testing.T) {
		assert.Equal(t,
			"${metric:Sheet1!A1}*2",
			n.Normalize("A1*2", "Sheet1"),
		)
	})

	t.Run("quoted cross-sheet reference is sanitized", func(t *testing.T) {
		assert.Equal(t,
			"${metric:Sheet1!A1}+${metric:MySheet!B2}",
			n.Normalize("A1+'My Sheet'!B2", "Sheet1"),
		)
	})

	t.Run("already prefixed address is not double-prefixed", func(t *testing.T) {
		out := n.Normalize("Sheet1!A1+A1", "Sheet1")
		assert.Equal(t, "${metric:Sheet1!A1}+${metric:Sheet1!A1}", out)
		assert.False(t, strings.Contains(out, "Sheet1!Sheet1"))
	})

	t.Run("every reference is wrapped exactly once", func(t *testing.T) {
		out := n.Normalize("'My Sheet'!C3/D4", "My Sheet")
		assert.Equal(t, "${metric:MySheet!C3}/${metric:MySheet!D4}", out)
		assert.Equal(t, 2, strings.Count(out, "${metric:"))
	})
}
