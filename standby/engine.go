package standby

import (
	"sort"

	"github.com/google/uuid"

	"github.com/tsawler/vigilia/model"
)

// Slot priorities: gaps between lessons beat slots adjacent to the day's
// schedule boundary.
const (
	priorityAdjacent = 1
	priorityGap      = 2
)

// candidate is one placeable slot for a person, collected before the greedy
// walk.
type candidate struct {
	day      string
	period   int
	priority int
}

// Engine produces standby assignments from weekly free-period matrices with a
// single deterministic greedy pass.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine enforcing the given limits.
func NewEngine(cfg Config) *Engine {
	cfg.SetDefaults()
	return &Engine{cfg: cfg}
}

// Assign extends existing with new assignments for the selected people, in
// selection order, and returns the combined list. The existing assignments are
// preserved verbatim as a prefix; the inputs are never mutated.
//
// Per person: free periods flanked by real teaching activity become candidate
// slots (a day with zero teaching periods contributes none), gaps are assigned
// before adjacent slots, and the walk stops at the weekly quota. The daily
// load limit is re-checked before each pick, since earlier picks in the same
// pass may have filled a day.
//
// Exclusions are accepted for interface compatibility but not consulted here;
// they are enforced at manual placement time only (see the package comment).
func (e *Engine) Assign(selected []string, schedules []model.Schedule, existing []model.StandbyAssignment, _ []model.Exclusion) []model.StandbyAssignment {
	state := newPlanState(existing)

	for _, name := range selected {
		sched, ok := scheduleFor(schedules, name)
		if !ok {
			continue
		}
		if state.weeklyCount(name) >= e.cfg.WeeklyQuota {
			continue
		}

		candidates := e.collect(sched, state)

		// Stable sort keeps the day-then-period encounter order within
		// each priority class.
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].priority > candidates[j].priority
		})

		for _, c := range candidates {
			if state.weeklyCount(name) >= e.cfg.WeeklyQuota {
				break
			}
			if state.dailyLoad(sched, c.day) >= e.cfg.DailyLoadLimit {
				continue
			}
			state.add(model.StandbyAssignment{
				ID:     uuid.NewString(),
				Name:   name,
				Day:    c.day,
				Period: c.period,
			})
		}
	}

	return state.assignments
}

// collect gathers the person's candidate slots across all weekdays in fixed
// day order.
func (e *Engine) collect(sched model.Schedule, state *planState) []candidate {
	var candidates []candidate

	for _, day := range model.Weekdays {
		teaching := sched.TeachingPeriods(day)
		if len(teaching) == 0 {
			// A free period is only usable as standby when flanked by
			// real teaching activity.
			continue
		}
		firstLesson := teaching[0]
		lastLesson := teaching[len(teaching)-1]

		for _, period := range freePeriodsAscending(sched, day) {
			if state.holds(sched.Name, day, period) {
				continue
			}
			if state.dailyLoad(sched, day) >= e.cfg.DailyLoadLimit {
				continue
			}

			switch {
			case period > firstLesson && period < lastLesson:
				candidates = append(candidates, candidate{day: day, period: period, priority: priorityGap})
			case period == firstLesson-1 || period == lastLesson+1:
				candidates = append(candidates, candidate{day: day, period: period, priority: priorityAdjacent})
			}
		}
	}

	return candidates
}

// freePeriodsAscending returns the day's free periods restricted to [1,8] in
// ascending order, without mutating the schedule.
func freePeriodsAscending(sched model.Schedule, day string) []int {
	free := make([]int, 0, len(sched.FreePeriods[day]))
	for _, p := range sched.FreePeriods[day] {
		if p >= model.FirstPeriod && p <= model.LastPeriod {
			free = append(free, p)
		}
	}
	sort.Ints(free)
	return free
}

// scheduleFor returns the first schedule with the given name.
func scheduleFor(schedules []model.Schedule, name string) (model.Schedule, bool) {
	for _, s := range schedules {
		if s.Name == name {
			return s, true
		}
	}
	return model.Schedule{}, false
}

// planState is the explicit accumulator threaded through a generation pass:
// the assignments placed so far, existing ones included.
type planState struct {
	assignments []model.StandbyAssignment
}

func newPlanState(existing []model.StandbyAssignment) *planState {
	state := &planState{assignments: make([]model.StandbyAssignment, len(existing))}
	copy(state.assignments, existing)
	return state
}

func (s *planState) add(a model.StandbyAssignment) {
	s.assignments = append(s.assignments, a)
}

// holds reports whether the person already has an assignment at (day, period).
func (s *planState) holds(name, day string, period int) bool {
	for _, a := range s.assignments {
		if a.Name == name && a.Day == day && a.Period == period {
			return true
		}
	}
	return false
}

// weeklyCount returns the person's total assignments so far this week.
func (s *planState) weeklyCount(name string) int {
	count := 0
	for _, a := range s.assignments {
		if a.Name == name {
			count++
		}
	}
	return count
}

// dailyLoad returns the person's combined teaching and standby load for a day.
func (s *planState) dailyLoad(sched model.Schedule, day string) int {
	load := len(sched.TeachingPeriods(day))
	for _, a := range s.assignments {
		if a.Name == sched.Name && a.Day == day {
			load++
		}
	}
	return load
}
