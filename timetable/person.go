package timetable

import (
	"regexp"
	"strings"
)

// bareNumberRe matches fragments that are nothing but digits, such as page or
// week numbers.
var bareNumberRe = regexp.MustCompile(`^\d+$`)

// stoplistToken is the organization name printed on every export page.
const stoplistToken = "KRÉTA"

// weekIndicator marks week-label fragments such as "37. hét".
const weekIndicator = "hét"

// IdentifyPerson locates the staff member's name on a page: the topmost
// fragment above the header band (headerY plus the header buffer), excluding
// boilerplate tokens. Returns false when no candidate remains, in which case
// the page yields no person and must be skipped.
func IdentifyPerson(idx *Index, headerY float64, tol Tolerances) (string, bool) {
	name := ""
	maxY := -1.0

	for _, f := range idx.Above(headerY + tol.HeaderBuffer) {
		if f.Text == stoplistToken || strings.Contains(f.Text, weekIndicator) || bareNumberRe.MatchString(f.Text) {
			continue
		}
		if name == "" || f.Y > maxY {
			name = f.Text
			maxY = f.Y
		}
	}

	return name, name != ""
}
