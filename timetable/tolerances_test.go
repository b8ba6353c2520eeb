package timetable

import "testing"

func TestTolerances_SetDefaults(t *testing.T) {
	var tol Tolerances
	tol.SetDefaults()
	if tol != DefaultTolerances() {
		t.Errorf("zero value after SetDefaults() = %+v, want %+v", tol, DefaultTolerances())
	}

	tol = Tolerances{LeftMargin: 80}
	tol.SetDefaults()
	if tol.LeftMargin != 80 {
		t.Errorf("explicit LeftMargin overwritten: %v", tol.LeftMargin)
	}
	if tol.HeaderBuffer != 20 {
		t.Errorf("unset HeaderBuffer = %v, want 20", tol.HeaderBuffer)
	}
}

func TestTolerances_Validate(t *testing.T) {
	if err := DefaultTolerances().Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}

	bad := DefaultTolerances()
	bad.RowYBuffer = -1
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted a negative buffer")
	}
}
