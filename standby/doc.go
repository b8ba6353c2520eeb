// Package standby allocates weekly standby-duty slots into free periods.
//
// The [Engine] is a single deterministic greedy pass: for each selected person
// it collects candidate slots from the weekly free-period matrix, prefers gaps
// between lessons over slots adjacent to the day's schedule boundary, and
// assigns until the weekly quota is reached. It is a pure function of its
// inputs: existing assignments are returned verbatim as a prefix of the
// result, and infeasible input simply yields fewer assignments, never an
// error.
//
// The [Board] manages interactive editing on top of the engine: manual
// placement and moves are validated against exclusions, the duplicate-slot
// guard and the weekly quota, and rejected with a typed error and no state
// change. Removal is unconditional.
//
// Exclusions are enforced only on the manual path. Automatic generation
// deliberately mirrors the long-standing behavior of skipping them; unifying
// the two would change generated output and is pending product clarification.
package standby
