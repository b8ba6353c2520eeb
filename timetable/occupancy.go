package timetable

import "github.com/tsawler/vigilia/model"

// Resolver decides cell occupancy for every (day, period) box bounded by the
// locator output. A cell with at least one content-bearing fragment inside its
// box is teaching time; otherwise the period is free.
type Resolver struct {
	tol Tolerances
}

// NewResolver creates a resolver using the given tolerances.
func NewResolver(tol Tolerances) *Resolver {
	return &Resolver{tol: tol}
}

// FreePeriods computes the free-period sets for every weekday from the located
// columns and rows. Days whose column was not located contribute an empty set.
// A period with no located row is free on every day: absence of a row means
// absence of a lesson, not missing data.
func (r *Resolver) FreePeriods(idx *Index, cols []model.DayColumn, rows []model.PeriodRow) map[string][]int {
	free := make(map[string][]int, len(model.Weekdays))
	for _, day := range model.Weekdays {
		free[day] = []int{}
	}

	avgWidth := r.tol.DefaultColumnWidth
	if len(cols) > 1 {
		avgWidth = cols[1].X - cols[0].X
	}

	for _, day := range model.Weekdays {
		ci := columnIndex(cols, day)
		if ci < 0 {
			continue
		}
		col := cols[ci]

		startX := col.X - r.tol.CellXBuffer
		endX := col.X + avgWidth
		if ci < len(cols)-1 {
			endX = cols[ci+1].X - r.tol.CellXBuffer
		}

		for p := model.FirstPeriod; p <= model.LastPeriod; p++ {
			row, ok := rowFor(rows, p)
			if !ok {
				free[day] = append(free[day], p)
				continue
			}

			top := row.Y + r.tol.RowYBuffer
			bottom := row.Y - 20 // assumed row height when no neighbor row exists
			if next, ok := rowFor(rows, p+1); ok {
				bottom = next.Y + r.tol.RowYBuffer
			} else if prev, ok := rowFor(rows, p-1); ok {
				bottom = row.Y - (prev.Y - row.Y) + r.tol.RowYBuffer
			}

			if !r.occupied(idx, startX, endX, bottom, top) {
				free[day] = append(free[day], p)
			}
		}
	}

	return free
}

// occupied reports whether any content-bearing fragment falls inside the cell
// box. The X range is half-open on the right so adjacent columns never share a
// fragment, and fragments left of the left-margin threshold are ignored: the
// row-number label itself is not content.
func (r *Resolver) occupied(idx *Index, startX, endX, bottom, top float64) bool {
	box := model.NewBBoxFromEdges(startX, bottom, endX, top)
	return idx.AnyInBox(box, func(f model.TextFragment) bool {
		return f.X > r.tol.LeftMargin && f.X < endX
	})
}

// columnIndex returns the position of the named day within the sorted column
// list, or -1 when the day's column was not located.
func columnIndex(cols []model.DayColumn, day string) int {
	for i, c := range cols {
		if c.Day == day {
			return i
		}
	}
	return -1
}

// rowFor returns the located row for a period number, if any.
func rowFor(rows []model.PeriodRow, period int) (model.PeriodRow, bool) {
	for _, row := range rows {
		if row.Period == period {
			return row, true
		}
	}
	return model.PeriodRow{}, false
}
