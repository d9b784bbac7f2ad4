package ferminator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Recursing/Ferminator/pkg/ferminator/models"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Revenue"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", 100))
	require.NoError(t, f.SetCellFormula("Sheet1", "B2", "=B1*2"))

	path := filepath.Join(t.TempDir(), "model.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestConvert(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Convert("does-not-exist.xlsx", DefaultOptions())
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("full pipeline", func(t *testing.T) {
		result, err := Convert(writeTestWorkbook(t), DefaultOptions())
		require.NoError(t, err)

		// The label cell merges into B1, leaving two graph nodes.
		assert.Equal(t, 2, result.Grid.Len())
		assert.Len(t, result.Graph.Metrics, 2)
	})
}

func TestConvertWorkbook(t *testing.T) {
	f, err := excelize.OpenFile(writeTestWorkbook(t))
	require.NoError(t, err)
	defer f.Close()

	result, err := ConvertWorkbook(f, DefaultOptions())
	require.NoError(t, err)

	t.Run("grid", func(t *testing.T) {
		require.Equal(t, 2, result.Grid.Len())
		b1 := result.Grid.Get("B1")
		require.NotNil(t, b1)
		assert.Equal(t, "Revenue", b1.Description)
		assert.Equal(t, "100", b1.Value)

		b2 := result.Grid.Get("B2")
		require.NotNil(t, b2)
		assert.Equal(t, "=${metric:B1}*2", b2.Formula)
	})

	t.Run("graph", func(t *testing.T) {
		require.Len(t, result.Graph.Metrics, 2)
		require.Len(t, result.Graph.Guesstimates, 2)
		assert.Equal(t, models.GuesstimatePoint, result.Graph.Guesstimates[0].GuesstimateType)
		assert.Equal(t, models.GuesstimateFunction, result.Graph.Guesstimates[1].GuesstimateType)
	})

	t.Run("diagram", func(t *testing.T) {
		assert.Contains(t, result.Diagram, "graph LR\n")
		assert.Contains(t, result.Diagram, "B1 --> B2\n")
	})

	t.Run("diagram can be disabled", func(t *testing.T) {
		f2, err := excelize.OpenFile(writeTestWorkbook(t))
		require.NoError(t, err)
		defer f2.Close()

		off := false
		result, err := ConvertWorkbook(f2, Options{IncludeDiagram: &off})
		require.NoError(t, err)
		assert.Equal(t, "", result.Diagram)
	})
}
