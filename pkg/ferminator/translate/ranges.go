package translate

import (
	"regexp"
	"strconv"
)

var rangePattern = regexp.MustCompile(`^([A-Z])([0-9]+):([A-Z])([0-9]+)$`)

// cellRange is a rectangular range with single-letter column endpoints.
// Multi-letter columns (past Z) are not supported and fail to parse, so the
// enclosing rewrite pass leaves the call unresolved instead of mis-expanding.
type cellRange struct {
	colStart, colEnd byte
	rowStart, rowEnd int
}

func parseCellRange(ref string) (cellRange, bool) {
	m := rangePattern.FindStringSubmatch(ref)
	if m == nil {
		return cellRange{}, false
	}
	r := cellRange{colStart: m[1][0], colEnd: m[3][0]}
	r.rowStart, _ = strconv.Atoi(m[2])
	r.rowEnd, _ = strconv.Atoi(m[4])
	if r.colEnd < r.colStart || r.rowEnd < r.rowStart {
		return cellRange{}, false
	}
	return r, true
}

func (r cellRange) singleColumn() bool {
	return r.colStart == r.colEnd
}

// addresses enumerates every address in the rectangle, column-major.
func (r cellRange) addresses() []string {
	out := make([]string, 0, int(r.colEnd-r.colStart+1)*(r.rowEnd-r.rowStart+1))
	for col := r.colStart; col <= r.colEnd; col++ {
		for row := r.rowStart; row <= r.rowEnd; row++ {
			out = append(out, string(col)+strconv.Itoa(row))
		}
	}
	return out
}
