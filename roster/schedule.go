package roster

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tsawler/vigilia/model"
	"github.com/tsawler/vigilia/sheet"
)

// Schedule export column layout (0-indexed): B=day, C=period, G=teacher.
const (
	colSchedDay     = 1
	colSchedPeriod  = 2
	colSchedTeacher = 6
)

// Schedules converts a tabular schedule export into weekly free-period
// matrices: every listed (teacher, day, period) row marks a teaching period,
// and each teacher's free periods are the complement within [1,8].
//
// The first row is a header and is skipped. Rows with an unknown day name or
// a period outside [1,8] are ignored. The result is ordered by Hungarian
// collation of the teacher names.
func Schedules(s *sheet.Sheet) []model.Schedule {
	type slot struct {
		day    string
		period int
	}
	occupied := make(map[string]map[slot]bool)
	var names []string

	for r := 1; r < s.RowCount(); r++ {
		day := s.Cell(r, colSchedDay).Value
		teacher := s.Cell(r, colSchedTeacher).Value
		if day == "" || teacher == "" || !model.IsWeekday(day) {
			continue
		}
		period, ok := parsePeriod(s.Cell(r, colSchedPeriod))
		if !ok {
			continue
		}

		if occupied[teacher] == nil {
			occupied[teacher] = make(map[slot]bool)
			names = append(names, teacher)
		}
		occupied[teacher][slot{day: day, period: period}] = true
	}

	sort.Slice(names, func(i, j int) bool {
		return hungarian.CompareString(names[i], names[j]) < 0
	})

	schedules := make([]model.Schedule, 0, len(names))
	for _, name := range names {
		sched := model.NewSchedule(name)
		for _, day := range model.Weekdays {
			for p := model.FirstPeriod; p <= model.LastPeriod; p++ {
				if !occupied[name][slot{day: day, period: p}] {
					sched.FreePeriods[day] = append(sched.FreePeriods[day], p)
				}
			}
		}
		schedules = append(schedules, sched)
	}

	return schedules
}

// parsePeriod reads a period cell: a number, or a string such as "1" or "1.".
func parsePeriod(c sheet.Cell) (int, bool) {
	if c.IsEmpty() {
		return 0, false
	}
	v := strings.TrimSuffix(strings.TrimSpace(c.Value), ".")
	period, err := strconv.Atoi(v)
	if err != nil && c.Type == sheet.CellTypeNumber {
		if f, ok := c.Float(); ok {
			period = int(f)
			err = nil
		}
	}
	if err != nil || period < model.FirstPeriod || period > model.LastPeriod {
		return 0, false
	}
	return period, true
}
