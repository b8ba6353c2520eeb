package timetable

import "fmt"

// Tolerances holds the coordinate buffers used by the layout heuristics.
// The zero value is not usable; call SetDefaults or start from
// DefaultTolerances.
type Tolerances struct {
	// LeftMargin is the X threshold below which period row labels live.
	// Fragments right of it count as cell content.
	LeftMargin float64 `json:"left_margin"`
	// HeaderBuffer is added to the header band Y when searching for the
	// person's name above the table.
	HeaderBuffer float64 `json:"header_buffer"`
	// CellXBuffer widens each day column box to the left.
	CellXBuffer float64 `json:"cell_x_buffer"`
	// RowYBuffer extends each period row box above the row label.
	RowYBuffer float64 `json:"row_y_buffer"`
	// DefaultColumnWidth is the assumed column width when only one day
	// column was located.
	DefaultColumnWidth float64 `json:"default_column_width"`
}

// DefaultTolerances returns the buffers tuned for Kréta timetable exports.
func DefaultTolerances() Tolerances {
	return Tolerances{
		LeftMargin:         100,
		HeaderBuffer:       20,
		CellXBuffer:        10,
		RowYBuffer:         10,
		DefaultColumnWidth: 100,
	}
}

// SetDefaults fills unset fields with the default buffer values.
func (t *Tolerances) SetDefaults() {
	def := DefaultTolerances()
	if t.LeftMargin == 0 {
		t.LeftMargin = def.LeftMargin
	}
	if t.HeaderBuffer == 0 {
		t.HeaderBuffer = def.HeaderBuffer
	}
	if t.CellXBuffer == 0 {
		t.CellXBuffer = def.CellXBuffer
	}
	if t.RowYBuffer == 0 {
		t.RowYBuffer = def.RowYBuffer
	}
	if t.DefaultColumnWidth == 0 {
		t.DefaultColumnWidth = def.DefaultColumnWidth
	}
}

// Validate checks that all buffers are positive.
func (t Tolerances) Validate() error {
	if t.LeftMargin <= 0 {
		return fmt.Errorf("left_margin must be positive, got %v", t.LeftMargin)
	}
	if t.HeaderBuffer <= 0 {
		return fmt.Errorf("header_buffer must be positive, got %v", t.HeaderBuffer)
	}
	if t.CellXBuffer <= 0 {
		return fmt.Errorf("cell_x_buffer must be positive, got %v", t.CellXBuffer)
	}
	if t.RowYBuffer <= 0 {
		return fmt.Errorf("row_y_buffer must be positive, got %v", t.RowYBuffer)
	}
	if t.DefaultColumnWidth <= 0 {
		return fmt.Errorf("default_column_width must be positive, got %v", t.DefaultColumnWidth)
	}
	return nil
}
