package standby

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tsawler/vigilia/model"
)

// Rejection reasons for manual placement. Callers can distinguish them with
// errors.Is; every rejection leaves the board unchanged.
var (
	// ErrExcluded marks a slot forbidden for the person by an exclusion.
	ErrExcluded = errors.New("slot excluded for person")
	// ErrDuplicateSlot marks a slot the person already holds via another
	// assignment.
	ErrDuplicateSlot = errors.New("person already holds this slot")
	// ErrQuotaReached marks a person at the weekly quota.
	ErrQuotaReached = errors.New("weekly quota reached")
	// ErrUnknownAssignment marks a move of an assignment ID the board does
	// not hold.
	ErrUnknownAssignment = errors.New("unknown assignment")
)

// Board holds the editable standby plan: the assignment list plus the
// exclusion rules, with all manual mutations validated. The interaction model
// is single-user and sequential; every edit runs to completion before the
// next one is accepted.
type Board struct {
	cfg         Config
	engine      *Engine
	assignments []model.StandbyAssignment
	exclusions  []model.Exclusion
}

// NewBoard creates an empty board enforcing the given limits.
func NewBoard(cfg Config) *Board {
	cfg.SetDefaults()
	return &Board{cfg: cfg, engine: NewEngine(cfg)}
}

// Assignments returns a copy of the current assignment list.
func (b *Board) Assignments() []model.StandbyAssignment {
	out := make([]model.StandbyAssignment, len(b.assignments))
	copy(out, b.assignments)
	return out
}

// SetAssignments replaces the assignment list, e.g. with persisted state.
// Records are accepted verbatim.
func (b *Board) SetAssignments(assignments []model.StandbyAssignment) {
	b.assignments = make([]model.StandbyAssignment, len(assignments))
	copy(b.assignments, assignments)
}

// Exclusions returns a copy of the current exclusion rules.
func (b *Board) Exclusions() []model.Exclusion {
	out := make([]model.Exclusion, len(b.exclusions))
	copy(out, b.exclusions)
	return out
}

// SetExclusions replaces the exclusion rules, e.g. with persisted state.
func (b *Board) SetExclusions(exclusions []model.Exclusion) {
	b.exclusions = make([]model.Exclusion, len(exclusions))
	copy(b.exclusions, exclusions)
}

// ToggleExclusion adds the exclusion if absent and removes it if present,
// returning true when it is now set.
func (b *Board) ToggleExclusion(name, day string, period int) bool {
	for i, e := range b.exclusions {
		if e.Matches(name, day, period) {
			b.exclusions = append(b.exclusions[:i], b.exclusions[i+1:]...)
			return false
		}
	}
	b.exclusions = append(b.exclusions, model.Exclusion{Name: name, Day: day, Period: period})
	return true
}

// Generate runs the automatic engine for the selected people on top of the
// current assignments and stores the result.
func (b *Board) Generate(selected []string, schedules []model.Schedule) []model.StandbyAssignment {
	b.assignments = b.engine.Assign(selected, schedules, b.assignments, b.exclusions)
	return b.Assignments()
}

// Place validates a new manual placement and appends it with a fresh ID.
// Rejected placements return a reason error and change nothing.
func (b *Board) Place(name, day string, period int) (model.StandbyAssignment, error) {
	if err := b.checkSlot(name, day, period, ""); err != nil {
		return model.StandbyAssignment{}, err
	}
	if b.weeklyCount(name) >= b.cfg.WeeklyQuota {
		return model.StandbyAssignment{}, fmt.Errorf("%w: %s already holds %d", ErrQuotaReached, name, b.cfg.WeeklyQuota)
	}

	a := model.StandbyAssignment{ID: uuid.NewString(), Name: name, Day: day, Period: period}
	b.assignments = append(b.assignments, a)
	return a, nil
}

// Move validates moving an existing assignment onto (day, period) and mutates
// its slot in place, preserving the ID. Moving an assignment onto its current
// slot is a no-op. Moves never re-check the quota: the assignment is already
// held.
func (b *Board) Move(id, day string, period int) error {
	idx := -1
	for i, a := range b.assignments {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownAssignment, id)
	}

	if err := b.checkSlot(b.assignments[idx].Name, day, period, id); err != nil {
		return err
	}

	b.assignments[idx].Day = day
	b.assignments[idx].Period = period
	return nil
}

// Remove deletes an assignment unconditionally, reporting whether it existed.
func (b *Board) Remove(id string) bool {
	for i, a := range b.assignments {
		if a.ID == id {
			b.assignments = append(b.assignments[:i], b.assignments[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every assignment.
func (b *Board) Clear() {
	b.assignments = nil
}

// checkSlot applies the exclusion and duplicate-slot guards shared by Place
// and Move. selfID exempts the assignment being moved from the duplicate
// check.
func (b *Board) checkSlot(name, day string, period int, selfID string) error {
	for _, e := range b.exclusions {
		if e.Matches(name, day, period) {
			return fmt.Errorf("%w: %s at %s period %d", ErrExcluded, name, day, period)
		}
	}
	for _, a := range b.assignments {
		if a.Name == name && a.Day == day && a.Period == period && a.ID != selfID {
			return fmt.Errorf("%w: %s at %s period %d", ErrDuplicateSlot, name, day, period)
		}
	}
	return nil
}

// weeklyCount returns the person's current assignment count.
func (b *Board) weeklyCount(name string) int {
	count := 0
	for _, a := range b.assignments {
		if a.Name == name {
			count++
		}
	}
	return count
}
