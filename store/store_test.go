package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/vigilia/model"
	"github.com/tsawler/vigilia/timetable"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestStore_SchedulesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	sched := model.NewSchedule("Nagy Pál")
	sched.FreePeriods["Hétfő"] = []int{1, 4, 5}
	if err := s.SaveSchedules([]model.Schedule{sched}); err != nil {
		t.Fatalf("SaveSchedules() failed: %v", err)
	}

	got, err := s.LoadSchedules()
	if err != nil {
		t.Fatalf("LoadSchedules() failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Nagy Pál" {
		t.Fatalf("LoadSchedules() = %+v, want one schedule for Nagy Pál", got)
	}
	if !got[0].IsFree("Hétfő", 4) || got[0].IsFree("Hétfő", 2) {
		t.Errorf("free periods lost in round trip: %v", got[0].FreePeriods["Hétfő"])
	}
}

func TestStore_ExclusionsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := []model.Exclusion{{Name: "Kovács Éva", Day: "Kedd", Period: 3}}
	if err := s.SaveExclusions(in); err != nil {
		t.Fatalf("SaveExclusions() failed: %v", err)
	}
	got, err := s.LoadExclusions()
	if err != nil {
		t.Fatalf("LoadExclusions() failed: %v", err)
	}
	if len(got) != 1 || got[0] != in[0] {
		t.Errorf("LoadExclusions() = %+v, want %+v", got, in)
	}
}

func TestStore_MissingFilesYieldEmptyState(t *testing.T) {
	s := newTestStore(t)

	if got, err := s.LoadSchedules(); err != nil || len(got) != 0 {
		t.Errorf("LoadSchedules() = %v, %v; want empty, nil", got, err)
	}
	if got, err := s.LoadExclusions(); err != nil || len(got) != 0 {
		t.Errorf("LoadExclusions() = %v, %v; want empty, nil", got, err)
	}
}

func TestStore_SelectionPrunedAgainstSchedules(t *testing.T) {
	s := newTestStore(t)
	schedules := []model.Schedule{
		model.NewSchedule("Nagy Pál"),
		model.NewSchedule("Kovács Éva"),
	}

	if err := s.SaveSelection([]string{"Nagy Pál", "Távozott Tibor"}); err != nil {
		t.Fatalf("SaveSelection() failed: %v", err)
	}

	got, err := s.LoadSelection(schedules)
	if err != nil {
		t.Fatalf("LoadSelection() failed: %v", err)
	}
	if len(got) != 1 || got[0] != "Nagy Pál" {
		t.Errorf("LoadSelection() = %v, want only names present in the schedules", got)
	}
}

func TestStore_SelectionFallsBackToEveryone(t *testing.T) {
	s := newTestStore(t)
	schedules := []model.Schedule{
		model.NewSchedule("Nagy Pál"),
		model.NewSchedule("Kovács Éva"),
	}

	// No saved file at all.
	got, err := s.LoadSelection(schedules)
	if err != nil {
		t.Fatalf("LoadSelection() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("LoadSelection() = %v, want everyone", got)
	}

	// A saved file naming only departed people behaves the same.
	if err := s.SaveSelection([]string{"Távozott Tibor"}); err != nil {
		t.Fatalf("SaveSelection() failed: %v", err)
	}
	got, err = s.LoadSelection(schedules)
	if err != nil {
		t.Fatalf("LoadSelection() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("LoadSelection() after pruning everything = %v, want everyone", got)
	}
}

func TestStore_EmptySelectionNotPersisted(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := s.SaveSelection(nil); err != nil {
		t.Fatalf("SaveSelection(nil) failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "selection.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("empty selection created a state file: %v", err)
	}
}

func TestLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.json")
	content := `{"pages": [
		{"fragments": [
			{"text": "Nagy Pál", "x": 200, "y": 740},
			{"text": "   ", "x": 10, "y": 10},
			{"text": " Hétfő ", "x": 120, "y": 700}
		]},
		{"number": 5, "fragments": []}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	pages, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() failed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("LoadDocument() returned %d pages, want 2", len(pages))
	}
	if pages[0].Number != 1 || pages[1].Number != 5 {
		t.Errorf("page numbers = %d, %d; want 1 and 5 (explicit number kept)", pages[0].Number, pages[1].Number)
	}
	if len(pages[0].Fragments) != 2 {
		t.Fatalf("blank fragment not dropped: %+v", pages[0].Fragments)
	}
	if pages[0].Fragments[1].Text != "Hétfő" {
		t.Errorf("fragment text not trimmed: %q", pages[0].Fragments[1].Text)
	}
}

func TestLoadDocument_Unreadable(t *testing.T) {
	if _, err := LoadDocument(filepath.Join(t.TempDir(), "nincs.json")); !errors.Is(err, timetable.ErrDocumentUnreadable) {
		t.Errorf("missing file error = %v, want ErrDocumentUnreadable", err)
	}

	path := filepath.Join(t.TempDir(), "rossz.json")
	if err := os.WriteFile(path, []byte("nem json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDocument(path); !errors.Is(err, timetable.ErrDocumentUnreadable) {
		t.Errorf("malformed file error = %v, want ErrDocumentUnreadable", err)
	}
}
