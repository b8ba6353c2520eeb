package roster

import (
	"testing"

	"github.com/tsawler/vigilia/sheet"
)

// schedRow lays out a schedule export row: B=day, C=period, G=teacher.
func schedRow(day string, period sheet.Cell, teacher string) []sheet.Cell {
	row := make([]sheet.Cell, 7)
	row[1] = str(day)
	row[2] = period
	row[6] = str(teacher)
	return row
}

func TestSchedules(t *testing.T) {
	ws := &sheet.Sheet{Name: "Tantárgyfelosztás", Rows: [][]sheet.Cell{
		schedRow("Nap", str("Óra"), "Pedagógus"), // header, skipped
		schedRow("Hétfő", num("1"), "Nagy Pál"),
		schedRow("Hétfő", str("2."), "Nagy Pál"),
		schedRow("Kedd", str("3"), "Nagy Pál"),
		schedRow("Hétfő", num("1"), "Kovács Éva"),
		schedRow("Szombat", num("1"), "Nagy Pál"), // not a school day
		schedRow("Kedd", num("9"), "Nagy Pál"),    // period out of range
		schedRow("Kedd", str(""), "Nagy Pál"),     // no period
	}}

	got := Schedules(ws)

	if len(got) != 2 {
		t.Fatalf("Schedules() returned %d schedules, want 2", len(got))
	}
	if got[0].Name != "Kovács Éva" || got[1].Name != "Nagy Pál" {
		t.Errorf("order = %q, %q; want Hungarian name order", got[0].Name, got[1].Name)
	}

	pal := got[1]
	if pal.IsFree("Hétfő", 1) || pal.IsFree("Hétfő", 2) || pal.IsFree("Kedd", 3) {
		t.Error("listed teaching slots reported free")
	}
	if !pal.IsFree("Hétfő", 3) || !pal.IsFree("Kedd", 1) || !pal.IsFree("Szerda", 1) {
		t.Error("unlisted slots reported busy")
	}
	if teaching := pal.TeachingPeriods("Szerda"); len(teaching) != 0 {
		t.Errorf("Szerda teaching = %v, want none", teaching)
	}
}

func TestSchedules_EmptySheet(t *testing.T) {
	ws := &sheet.Sheet{Rows: [][]sheet.Cell{
		schedRow("Nap", str("Óra"), "Pedagógus"),
	}}
	if got := Schedules(ws); len(got) != 0 {
		t.Errorf("Schedules() on a header-only sheet returned %d entries", len(got))
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name string
		cell sheet.Cell
		want int
		ok   bool
	}{
		{name: "plain number", cell: num("3"), want: 3, ok: true},
		{name: "decimal serial", cell: num("3.0"), want: 3, ok: true},
		{name: "dotted label", cell: str("5."), want: 5, ok: true},
		{name: "padded label", cell: str(" 7 "), want: 7, ok: true},
		{name: "zero", cell: num("0"), ok: false},
		{name: "past last period", cell: num("9"), ok: false},
		{name: "text", cell: str("dupla"), ok: false},
		{name: "empty", cell: sheet.Cell{}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parsePeriod(tt.cell)
			if ok != tt.ok || got != tt.want {
				t.Errorf("parsePeriod(%+v) = %d, %v; want %d, %v", tt.cell, got, ok, tt.want, tt.ok)
			}
		})
	}
}
