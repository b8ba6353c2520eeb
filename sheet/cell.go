package sheet

import (
	"fmt"
	"strconv"
	"time"
)

// CellType represents the type of data in a cell.
type CellType int

const (
	// CellTypeEmpty indicates an empty cell.
	CellTypeEmpty CellType = iota
	// CellTypeString indicates a string value.
	CellTypeString
	// CellTypeNumber indicates a numeric value.
	CellTypeNumber
	// CellTypeBoolean indicates a boolean value.
	CellTypeBoolean
)

// Cell represents a cell in a worksheet. Value holds the display value;
// numeric cells keep their raw decimal representation so callers can
// interpret Excel serial dates.
type Cell struct {
	Value string
	Type  CellType
}

// IsEmpty returns true if the cell has no value.
func (c Cell) IsEmpty() bool {
	return c.Type == CellTypeEmpty || c.Value == ""
}

// Float returns the cell's numeric value. The second return value is false
// for non-numeric cells.
func (c Cell) Float() (float64, bool) {
	if c.Type != CellTypeNumber {
		return 0, false
	}
	v, err := strconv.ParseFloat(c.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// excelEpoch is day zero of Excel's 1900 date system, shifted to absorb the
// 1900 leap-year bug.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Date interprets the cell as a calendar date: numeric cells as Excel serial
// day numbers, string cells via common date layouts. The second return value
// is false when no interpretation works.
func (c Cell) Date() (time.Time, bool) {
	if serial, ok := c.Float(); ok {
		if serial <= 0 {
			return time.Time{}, false
		}
		return excelEpoch.Add(time.Duration(serial * 24 * float64(time.Hour))), true
	}
	if c.Type != CellTypeString || c.Value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "2006.01.02.", "2006.01.02", "01/02/2006", time.RFC3339} {
		if t, err := time.Parse(layout, c.Value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseCellRef splits a cell reference such as "G12" into 0-indexed column
// and row numbers.
func ParseCellRef(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A') + 1
		i++
	}
	if i == 0 || i == len(ref) {
		return 0, 0, fmt.Errorf("malformed cell reference %q", ref)
	}
	r, err := strconv.Atoi(ref[i:])
	if err != nil || r < 1 {
		return 0, 0, fmt.Errorf("malformed cell reference %q", ref)
	}
	return col - 1, r - 1, nil
}
