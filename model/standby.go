package model

// StandbyAssignment is a standby-duty slot held by a person. ID is unique
// across all assignments; several people may hold the same (day, period), but
// one person never holds the same slot twice.
//
// Assignments are created by the standby engine or by manual placement, moved
// by mutating Day and Period in place (ID preserved), and removed by manual
// action or a full clear.
type StandbyAssignment struct {
	ID     string `json:"id"`
	Name   string `json:"teacherName"`
	Day    string `json:"day"`
	Period int    `json:"period"`
}

// Slot returns the assignment's (day, period) slot for the holder.
func (a StandbyAssignment) Slot() (day string, period int) {
	return a.Day, a.Period
}

// Exclusion is a hard constraint: the named person must never receive a
// standby assignment at (day, period). Exclusions are created and removed only
// by manual user action.
type Exclusion struct {
	Name   string `json:"teacherName"`
	Day    string `json:"day"`
	Period int    `json:"period"`
}

// Matches reports whether the exclusion forbids (name, day, period).
func (e Exclusion) Matches(name, day string, period int) bool {
	return e.Name == name && e.Day == day && e.Period == period
}
