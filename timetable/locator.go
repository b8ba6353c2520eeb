package timetable

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/tsawler/vigilia/model"
)

// periodLabelRe matches a bare period number, optionally followed by a
// period character, e.g. "3" or "3.".
var periodLabelRe = regexp.MustCompile(`^(\d+)\.?$`)

// Locator identifies the axes of a timetable page: the X coordinates of the
// five weekday column headers and the Y coordinates of the period row labels.
type Locator struct {
	tol Tolerances
}

// NewLocator creates a locator using the given tolerances.
func NewLocator(tol Tolerances) *Locator {
	return &Locator{tol: tol}
}

// DayColumns locates the weekday column headers by exact string match against
// the fixed weekday labels, sorted by X ascending. The returned headerY is the
// greatest Y among the matched headers, marking the top of the header band.
//
// An empty result means the page carries no schedule table; callers skip such
// pages rather than treating them as errors.
func (l *Locator) DayColumns(idx *Index) (cols []model.DayColumn, headerY float64) {
	headerY = -1
	for _, f := range idx.Fragments() {
		if !model.IsWeekday(f.Text) {
			continue
		}
		if f.Y > headerY {
			headerY = f.Y
		}
		cols = append(cols, model.DayColumn{Day: f.Text, X: f.X})
	}

	// Width inference assumes left-to-right column order.
	sort.Slice(cols, func(i, j int) bool { return cols[i].X < cols[j].X })

	return cols, headerY
}

// PeriodRows locates the period row labels: fragments matching a bare integer
// (optionally with a trailing period character) left of the left-margin
// threshold. Numbers outside [1,8] are discarded silently. When a period
// number appears more than once, the first occurrence wins.
//
// The result is sorted by period number ascending, not by Y: the table lists
// periods top to bottom, so ascending periods have decreasing Y.
func (l *Locator) PeriodRows(idx *Index) []model.PeriodRow {
	seen := make(map[int]bool)
	var rows []model.PeriodRow

	for _, f := range idx.Fragments() {
		if f.X >= l.tol.LeftMargin {
			continue
		}
		m := periodLabelRe.FindStringSubmatch(f.Text)
		if m == nil {
			continue
		}
		period, err := strconv.Atoi(m[1])
		if err != nil || period < model.FirstPeriod || period > model.LastPeriod {
			continue
		}
		if seen[period] {
			continue
		}
		seen[period] = true
		rows = append(rows, model.PeriodRow{Period: period, Y: f.Y})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })

	return rows
}
