// Package roster ingests spreadsheet exports that accompany the timetable:
// the substitution log, aggregated into per-teacher totals and monthly counts
// with CSV export, and the tabular schedule export, converted into weekly
// free-period matrices as an alternative to PDF extraction.
//
// Name ordering follows Hungarian collation throughout.
package roster
