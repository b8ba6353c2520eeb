// Package vigilia reconstructs weekly free-period schedules from positioned
// timetable text and allocates standby-duty slots into them.
//
// Basic usage:
//
//	pages, err := store.LoadDocument("timetable.json")
//	if err != nil {
//	    // handle error
//	}
//	schedules := vigilia.ExtractSchedules(pages)
//	assignments := vigilia.GenerateStandby(selected, schedules, nil, nil)
//
// With options:
//
//	schedules := vigilia.ExtractSchedules(pages,
//	    vigilia.WithTolerances(tol),
//	    vigilia.WithLogger(log))
//
// For finer control, the timetable and standby packages expose the pipeline
// stages and the interactive board directly.
package vigilia

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/vigilia/model"
	"github.com/tsawler/vigilia/standby"
	"github.com/tsawler/vigilia/timetable"
)

// Option configures an extraction run.
type Option func(*settings)

type settings struct {
	tol timetable.Tolerances
	log zerolog.Logger
}

// WithTolerances overrides the default layout tolerances.
func WithTolerances(tol timetable.Tolerances) Option {
	return func(s *settings) { s.tol = tol }
}

// WithLogger routes page-skip diagnostics to the given logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) { s.log = log }
}

// ExtractSchedules runs the full extraction pipeline over the pages and
// returns one weekly free-period schedule per page that yields both a table
// and a person. Pages without either are skipped, never fatal.
func ExtractSchedules(pages []model.Page, opts ...Option) []model.Schedule {
	s := settings{tol: timetable.DefaultTolerances(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&s)
	}
	return timetable.NewAssembler(s.tol, s.log).Assemble(pages)
}

// GenerateStandby allocates standby-duty slots for the selected people on top
// of the existing assignments, using the production limits. The inputs are
// never mutated; existing assignments are returned verbatim as a prefix.
func GenerateStandby(selected []string, schedules []model.Schedule, existing []model.StandbyAssignment, exclusions []model.Exclusion) []model.StandbyAssignment {
	return standby.NewEngine(standby.DefaultConfig()).Assign(selected, schedules, existing, exclusions)
}

// FreePeople returns the names of everyone free at (day, period), in schedule
// order.
func FreePeople(schedules []model.Schedule, day string, period int) []string {
	return model.FreeAt(schedules, day, period)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
