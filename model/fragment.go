package model

import "strings"

// TextFragment represents a positioned piece of text extracted from one page
// of a timetable document. Text is trimmed and non-empty; X and Y locate the
// fragment's text origin in page coordinate space (Y increases upward).
//
// Fragments are created once per page by the rendering collaborator and
// discarded after the page has been processed.
type TextFragment struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Position returns the fragment's origin as a point.
func (f TextFragment) Position() Point {
	return Point{X: f.X, Y: f.Y}
}

// Page holds the flat list of text fragments extracted from a single document
// page. The extraction pipeline does not care how the fragments were produced.
type Page struct {
	Number    int            `json:"number"` // 1-indexed page number
	Fragments []TextFragment `json:"fragments"`
}

// NewPage creates an empty page with the given 1-indexed number.
func NewPage(number int) *Page {
	return &Page{Number: number, Fragments: make([]TextFragment, 0)}
}

// AddFragment appends a fragment to the page, trimming its text. Fragments
// that are empty after trimming are dropped.
func (p *Page) AddFragment(text string, x, y float64) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	p.Fragments = append(p.Fragments, TextFragment{Text: text, X: x, Y: y})
}

// DayColumn locates one weekday column of a timetable page: the day's header
// label and the X coordinate where the label starts.
type DayColumn struct {
	Day string
	X   float64
}

// PeriodRow locates one period row of a timetable page: the period number
// (1-8) and the Y coordinate of its row label. Rows are listed top to bottom
// on the page, so ascending period numbers have decreasing Y.
type PeriodRow struct {
	Period int
	Y      float64
}
