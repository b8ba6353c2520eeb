package model

// Weekdays are the five fixed column labels of a timetable page, in table
// order. Day names elsewhere in the system always refer to one of these.
var Weekdays = []string{"Hétfő", "Kedd", "Szerda", "Csütörtök", "Péntek"}

// Period range of a school day. Every period number in the system lies within
// [FirstPeriod, LastPeriod].
const (
	FirstPeriod = 1
	LastPeriod  = 8
)

// IsWeekday reports whether name is one of the five fixed weekday labels.
func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// Schedule is one person's weekly free-period matrix. FreePeriods maps each
// weekday name to the ordered set of period numbers (1-8) with no recorded
// lesson; the complement within [1,8] represents teaching periods.
//
// Schedules are produced once per extraction run and treated as read-only
// input by the standby engine.
type Schedule struct {
	Name        string           `json:"name"`
	FreePeriods map[string][]int `json:"freePeriods"`
}

// NewSchedule creates a schedule with an empty free-period list for every
// weekday.
func NewSchedule(name string) Schedule {
	free := make(map[string][]int, len(Weekdays))
	for _, d := range Weekdays {
		free[d] = []int{}
	}
	return Schedule{Name: name, FreePeriods: free}
}

// IsFree reports whether the person has no recorded lesson at (day, period).
func (s Schedule) IsFree(day string, period int) bool {
	for _, p := range s.FreePeriods[day] {
		if p == period {
			return true
		}
	}
	return false
}

// TeachingPeriods returns the ascending teaching periods on the given day:
// the complement of the day's free periods within [1,8].
func (s Schedule) TeachingPeriods(day string) []int {
	teaching := make([]int, 0, LastPeriod)
	for p := FirstPeriod; p <= LastPeriod; p++ {
		if !s.IsFree(day, p) {
			teaching = append(teaching, p)
		}
	}
	return teaching
}

// FreeAt returns the names of all people in schedules that are free at
// (day, period), preserving schedule order.
func FreeAt(schedules []Schedule, day string, period int) []string {
	var names []string
	for _, s := range schedules {
		if s.IsFree(day, period) {
			names = append(names, s.Name)
		}
	}
	return names
}
