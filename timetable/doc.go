// Package timetable reconstructs weekly free-period schedules from the
// positioned text fragments of a timetable document.
//
// Timetable exports carry no table grid lines, so the pipeline relies purely
// on positional heuristics:
//
//  1. [Index] - read-only geometry view over one page's fragments
//  2. [Locator] - finds the weekday column headers and period row labels
//  3. [IdentifyPerson] - finds the staff member's name above the header band
//  4. [Resolver] - decides cell occupancy for every (day, period) box
//  5. [Assembler] - runs the above per page and accumulates schedules
//
// A page without weekday headers is not a schedule table and is skipped; a
// page without an identifiable person is skipped with a diagnostic log entry.
// Neither outcome is an error: absence is modeled as empty results, and only
// document-level I/O failures abort an extraction run.
//
// All pixel buffers used by the heuristics are named fields of [Tolerances]
// and injected into the locator and resolver, so boundary values can be
// exercised precisely in tests.
package timetable
