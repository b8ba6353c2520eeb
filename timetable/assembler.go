package timetable

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/tsawler/vigilia/model"
)

// ErrDocumentUnreadable marks a document that cannot be opened or parsed at
// all. It is the only fatal outcome of an extraction run; per-page problems
// are skipped, never raised.
var ErrDocumentUnreadable = errors.New("document unreadable")

// Assembler runs the per-page pipeline (locator, person identifier, occupancy
// resolver) and accumulates one schedule per page that yields both a table and
// a person.
type Assembler struct {
	tol      Tolerances
	locator  *Locator
	resolver *Resolver
	log      zerolog.Logger
}

// NewAssembler creates an assembler with the given tolerances. Diagnostics for
// skipped pages go to log; pass zerolog.Nop() to discard them.
func NewAssembler(tol Tolerances, log zerolog.Logger) *Assembler {
	return &Assembler{
		tol:      tol,
		locator:  NewLocator(tol),
		resolver: NewResolver(tol),
		log:      log,
	}
}

// Assemble processes the pages in order and returns the accumulated schedules.
// Pages without weekday headers or without an identifiable person are skipped
// and simply omit their contribution.
//
// A person appearing on more than one page produces one entry per page; the
// entries are not merged, and lookups by name see the first occurrence. The
// duplicate is logged so split schedules can be spotted in diagnostics.
func (a *Assembler) Assemble(pages []model.Page) []model.Schedule {
	schedules := make([]model.Schedule, 0, len(pages))
	seen := make(map[string]bool)

	for _, page := range pages {
		s, ok := a.AssemblePage(page)
		if !ok {
			continue
		}
		if seen[s.Name] {
			a.log.Warn().Int("page", page.Number).Str("name", s.Name).
				Msg("person appears on multiple pages; entries not merged")
		}
		seen[s.Name] = true
		schedules = append(schedules, s)
	}

	return schedules
}

// AssemblePage runs the pipeline on a single page. The second return value is
// false when the page holds no schedule table or no identifiable person.
func (a *Assembler) AssemblePage(page model.Page) (model.Schedule, bool) {
	idx := NewIndex(page.Fragments)

	cols, headerY := a.locator.DayColumns(idx)
	if len(cols) == 0 {
		a.log.Debug().Int("page", page.Number).Msg("no weekday headers; not a schedule table")
		return model.Schedule{}, false
	}

	name, ok := IdentifyPerson(idx, headerY, a.tol)
	if !ok {
		a.log.Info().Int("page", page.Number).Msg("no person name found above header band; page skipped")
		return model.Schedule{}, false
	}

	rows := a.locator.PeriodRows(idx)
	free := a.resolver.FreePeriods(idx, cols, rows)

	return model.Schedule{Name: name, FreePeriods: free}, true
}
