package model

import "testing"

func TestNewSchedule(t *testing.T) {
	s := NewSchedule("Nagy Pál")
	if s.Name != "Nagy Pál" {
		t.Errorf("Name = %q, want Nagy Pál", s.Name)
	}
	for _, day := range Weekdays {
		free, ok := s.FreePeriods[day]
		if !ok || free == nil {
			t.Errorf("FreePeriods[%s] missing", day)
		}
		if len(free) != 0 {
			t.Errorf("FreePeriods[%s] = %v, want empty", day, free)
		}
	}
}

func TestSchedule_TeachingPeriods(t *testing.T) {
	s := NewSchedule("Nagy Pál")
	s.FreePeriods["Szerda"] = []int{1, 4, 5, 7, 8}

	got := s.TeachingPeriods("Szerda")
	want := []int{2, 3, 6}
	if len(got) != len(want) {
		t.Fatalf("TeachingPeriods() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("TeachingPeriods() = %v, want %v", got, want)
		}
	}

	// A day with no free periods is fully taught; an unknown day too, since
	// absence from the map means nothing is recorded free.
	if got := s.TeachingPeriods("Hétfő"); len(got) != 8 {
		t.Errorf("TeachingPeriods(Hétfő) = %v, want all eight", got)
	}
}

func TestFreeAt(t *testing.T) {
	a := NewSchedule("Nagy Pál")
	a.FreePeriods["Hétfő"] = []int{2}
	b := NewSchedule("Kovács Éva")
	b.FreePeriods["Hétfő"] = []int{2, 3}

	got := FreeAt([]Schedule{a, b}, "Hétfő", 2)
	if len(got) != 2 || got[0] != "Nagy Pál" || got[1] != "Kovács Éva" {
		t.Errorf("FreeAt() = %v, want both in schedule order", got)
	}
	if got := FreeAt([]Schedule{a, b}, "Hétfő", 3); len(got) != 1 || got[0] != "Kovács Éva" {
		t.Errorf("FreeAt() = %v, want only Kovács Éva", got)
	}
}

func TestIsWeekday(t *testing.T) {
	for _, day := range Weekdays {
		if !IsWeekday(day) {
			t.Errorf("IsWeekday(%s) = false", day)
		}
	}
	for _, name := range []string{"Szombat", "Vasárnap", "hétfő", ""} {
		if IsWeekday(name) {
			t.Errorf("IsWeekday(%s) = true", name)
		}
	}
}

func TestPage_AddFragment(t *testing.T) {
	p := NewPage(1)
	p.AddFragment("  Nagy Pál  ", 200, 740)
	p.AddFragment("   ", 10, 10)
	p.AddFragment("", 20, 20)

	if len(p.Fragments) != 1 {
		t.Fatalf("Fragments = %+v, want only the non-blank one", p.Fragments)
	}
	if p.Fragments[0].Text != "Nagy Pál" {
		t.Errorf("Text = %q, want trimmed", p.Fragments[0].Text)
	}
}

func TestExclusion_Matches(t *testing.T) {
	e := Exclusion{Name: "Kovács Éva", Day: "Kedd", Period: 3}
	if !e.Matches("Kovács Éva", "Kedd", 3) {
		t.Error("Matches() = false for the excluded slot")
	}
	if e.Matches("Kovács Éva", "Kedd", 4) || e.Matches("Nagy Pál", "Kedd", 3) {
		t.Error("Matches() = true for a different slot or person")
	}
}
