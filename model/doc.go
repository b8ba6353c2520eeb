// Package model defines the shared data types for timetable extraction and
// standby-duty rostering.
//
// On the extraction side it provides positioned text fragments and the
// geometry primitives used to reason about them:
//
//   - [TextFragment] - a trimmed, non-empty piece of text at an (x, y) position
//   - [Page] - one page's bag of fragments
//   - [BBox], [Point] - bounding box and point with containment queries
//   - [DayColumn], [PeriodRow] - located table axes
//
// On the rostering side it provides the record types that are persisted and
// edited:
//
//   - [Schedule] - one person's weekly free-period matrix
//   - [StandbyAssignment] - a duty slot held by a person
//   - [Exclusion] - a hard constraint forbidding a slot for a person
//
// The weekly free-period matrix is the sole contract between the two halves of
// the system: the extraction pipeline produces schedules, the standby engine
// consumes them read-only.
//
// Persisted types carry JSON tags matching the on-disk record format, so saved
// state round-trips verbatim.
package model
