package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tsawler/vigilia/sheet"
)

// Substitution log column layout (0-indexed): A=date, B=period, G=substitute.
const (
	colDate    = 0
	colPeriod  = 1
	colTeacher = 6
)

// Summary is one teacher's substitution totals: the overall count and the
// per-month breakdown keyed by "YYYY-MM". Substitutions without a readable
// date count toward the total but not toward any month.
type Summary struct {
	Name    string         `json:"name"`
	Count   int            `json:"count"`
	Monthly map[string]int `json:"monthlyCounts"`
}

// hungarian orders names the way a Hungarian reader expects.
var hungarian = collate.New(language.Hungarian)

// Summarize aggregates a substitution log worksheet into per-teacher
// summaries, sorted by count descending with name order as tiebreak.
//
// The first row is a header and is skipped. A teacher substituting in the
// same period on the same date is one event, however many parallel class
// groups the log lists for it.
func Summarize(s *sheet.Sheet) []Summary {
	type event struct {
		teacher string
		date    sheet.Cell
	}
	seen := make(map[string]bool)
	var events []event

	for r := 1; r < s.RowCount(); r++ {
		date := s.Cell(r, colDate)
		period := s.Cell(r, colPeriod)
		teacher := s.Cell(r, colTeacher)
		if teacher.IsEmpty() || date.IsEmpty() || period.IsEmpty() {
			continue
		}

		key := date.Value + "|" + period.Value + "|" + teacher.Value
		if seen[key] {
			continue
		}
		seen[key] = true
		events = append(events, event{teacher: teacher.Value, date: date})
	}

	byName := make(map[string]*Summary)
	for _, ev := range events {
		sum := byName[ev.teacher]
		if sum == nil {
			sum = &Summary{Name: ev.teacher, Monthly: make(map[string]int)}
			byName[ev.teacher] = sum
		}
		sum.Count++
		if month, ok := monthKey(ev.date); ok {
			sum.Monthly[month]++
		}
	}

	out := make([]Summary, 0, len(byName))
	for _, sum := range byName {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return hungarian.CompareString(out[i].Name, out[j].Name) < 0
	})

	return out
}

// monthKey renders a date cell as "YYYY-MM". Unreadable dates report false.
func monthKey(c sheet.Cell) (string, bool) {
	t, ok := c.Date()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())), true
}

// Months returns the sorted union of all month keys in the summaries.
func Months(summaries []Summary) []string {
	set := make(map[string]bool)
	for _, s := range summaries {
		for m := range s.Monthly {
			set[m] = true
		}
	}
	months := make([]string, 0, len(set))
	for m := range set {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

// hungarianMonths maps month numbers to their Hungarian names for report
// headers.
var hungarianMonths = [...]string{
	"január", "február", "március", "április", "május", "június",
	"július", "augusztus", "szeptember", "október", "november", "december",
}

// monthHeader renders a "YYYY-MM" key as a Hungarian report header, e.g.
// "2024. szeptember". Malformed keys pass through unchanged.
func monthHeader(key string) string {
	if len(key) != 7 || key[4] != '-' {
		return key
	}
	year, errY := strconv.Atoi(key[:4])
	month, errM := strconv.Atoi(key[5:])
	if errY != nil || errM != nil || month < 1 || month > 12 {
		return key
	}
	return fmt.Sprintf("%d. %s", year, hungarianMonths[month-1])
}

// ExportCSV writes the summaries as a CSV report with rank, name, total and
// one column per month present in the data.
func ExportCSV(w io.Writer, summaries []Summary) error {
	months := Months(summaries)

	cw := csv.NewWriter(w)
	header := []string{"Helyezés", "Pedagógus neve", "Összesen"}
	for _, m := range months {
		header = append(header, monthHeader(m))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}

	for i, s := range summaries {
		record := []string{strconv.Itoa(i + 1), s.Name, strconv.Itoa(s.Count)}
		for _, m := range months {
			record = append(record, strconv.Itoa(s.Monthly[m]))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
