package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadDocument(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Revenue"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", 100))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 200.5))
	require.NoError(t, f.SetCellFormula(sheetName, "C1", "=B1*2"))

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	doc, err := ReadDocument(f2)
	require.NoError(t, err)
	require.Len(t, doc.Sheets, 1)
	assert.Equal(t, []string{sheetName}, doc.SheetNames())

	cells := doc.Sheets[0].Cells
	byRef := map[string]int{}
	for i, c := range cells {
		byRef[c.Ref] = i
	}

	t.Run("text cell", func(t *testing.T) {
		i, ok := byRef["A1"]
		require.True(t, ok)
		assert.Equal(t, "Revenue", cells[i].Display)
		assert.Equal(t, 1, cells[i].Row)
		assert.Equal(t, 1, cells[i].Col)
	})

	t.Run("numeric cells keep raw values", func(t *testing.T) {
		i, ok := byRef["B1"]
		require.True(t, ok)
		assert.Equal(t, "100", cells[i].Raw)

		i, ok = byRef["B2"]
		require.True(t, ok)
		assert.Equal(t, "200.5", cells[i].Raw)
	})

	t.Run("formula cell carries the bare formula", func(t *testing.T) {
		i, ok := byRef["C1"]
		require.True(t, ok)
		assert.Equal(t, "B1*2", cells[i].Formula)
	})

	t.Run("cells come in row-major order", func(t *testing.T) {
		for i := 1; i < len(cells); i++ {
			prev, cur := cells[i-1], cells[i]
			ordered := prev.Row < cur.Row || (prev.Row == cur.Row && prev.Col < cur.Col)
			assert.True(t, ordered, "cell %s should come after %s", cur.Ref, prev.Ref)
		}
	})
}

func TestReadDocument_RichText(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellRichText("Sheet1", "A1", []excelize.RichTextRun{
		{Text: "Annual "},
		{Text: "Revenue"},
	}))

	tmpFile := filepath.Join(t.TempDir(), "rich.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	defer f2.Close()

	doc, err := ReadDocument(f2)
	require.NoError(t, err)
	require.Len(t, doc.Sheets, 1)
	require.Len(t, doc.Sheets[0].Cells, 1)
	assert.Equal(t, "Annual Revenue", doc.Sheets[0].Cells[0].Display)
}
