// Package store persists extraction and rostering state as plain JSON
// records: weekly schedules, exclusion rules and the selected-person list. It
// also loads fragment-dump documents for the extraction pipeline.
//
// Saved records round-trip verbatim; loading state that is absent on disk
// yields empty collections, not errors. A failed save leaves the caller's
// in-memory state untouched: the data is live but unsaved.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/vigilia/model"
	"github.com/tsawler/vigilia/timetable"
)

// File names within the state directory.
const (
	schedulesFile  = "schedules.json"
	exclusionsFile = "exclusions.json"
	selectionFile  = "selection.json"
)

// Store reads and writes rostering state under a single directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// SaveSchedules writes the weekly schedules.
func (s *Store) SaveSchedules(schedules []model.Schedule) error {
	return s.writeJSON(schedulesFile, schedules)
}

// LoadSchedules reads the weekly schedules. A missing file yields an empty
// list.
func (s *Store) LoadSchedules() ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := s.readJSON(schedulesFile, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// SaveExclusions writes the exclusion rules.
func (s *Store) SaveExclusions(exclusions []model.Exclusion) error {
	return s.writeJSON(exclusionsFile, exclusions)
}

// LoadExclusions reads the exclusion rules. A missing file yields an empty
// list.
func (s *Store) LoadExclusions() ([]model.Exclusion, error) {
	var exclusions []model.Exclusion
	if err := s.readJSON(exclusionsFile, &exclusions); err != nil {
		return nil, err
	}
	return exclusions, nil
}

// SaveSelection writes the selected-person list. Empty selections are not
// persisted, so a later load falls back to selecting everyone.
func (s *Store) SaveSelection(names []string) error {
	if len(names) == 0 {
		return nil
	}
	return s.writeJSON(selectionFile, names)
}

// LoadSelection reads the selected-person list and prunes it against the
// current schedules. When nothing valid remains - no saved file, or a file
// naming only people absent from the schedules - every scheduled person is
// selected.
func (s *Store) LoadSelection(schedules []model.Schedule) ([]string, error) {
	var saved []string
	if err := s.readJSON(selectionFile, &saved); err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(schedules))
	for _, sched := range schedules {
		known[sched.Name] = true
	}

	var selected []string
	for _, name := range saved {
		if known[name] {
			selected = append(selected, name)
		}
	}
	if len(selected) > 0 {
		return selected, nil
	}

	selected = make([]string, 0, len(schedules))
	for _, sched := range schedules {
		selected = append(selected, sched.Name)
	}
	return selected, nil
}

// writeJSON atomically replaces the named state file.
func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	target := filepath.Join(s.dir, name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}

// readJSON reads a state file; a missing file leaves v untouched.
func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

// Document is a fragment dump: the positioned text content of a timetable
// export, one entry per page, as produced by the rendering collaborator.
type Document struct {
	Pages []model.Page `json:"pages"`
}

// LoadDocument reads a fragment-dump document. Any failure to open or decode
// it is fatal for the whole extraction and wraps
// [timetable.ErrDocumentUnreadable]; empty and whitespace-only fragments are
// dropped during load so downstream heuristics only see content.
func LoadDocument(path string) ([]model.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", timetable.ErrDocumentUnreadable, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", timetable.ErrDocumentUnreadable, err)
	}

	for i := range doc.Pages {
		page := &doc.Pages[i]
		if page.Number == 0 {
			page.Number = i + 1
		}
		kept := page.Fragments[:0]
		for _, f := range page.Fragments {
			f.Text = strings.TrimSpace(f.Text)
			if f.Text != "" {
				kept = append(kept, f)
			}
		}
		page.Fragments = kept
	}

	return doc.Pages, nil
}
