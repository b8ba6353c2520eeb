package timetable

import "github.com/tsawler/vigilia/model"

// Index is a read-only geometry view over one page's text fragments, offering
// containment and band queries by coordinate range. It never mutates the
// fragments it was built from.
type Index struct {
	fragments []model.TextFragment
}

// NewIndex creates an index over the given fragments. The slice is not copied;
// callers must not modify it while the index is in use.
func NewIndex(fragments []model.TextFragment) *Index {
	return &Index{fragments: fragments}
}

// Len returns the number of indexed fragments.
func (idx *Index) Len() int {
	return len(idx.fragments)
}

// Fragments returns the indexed fragments in page order.
func (idx *Index) Fragments() []model.TextFragment {
	return idx.fragments
}

// InBox returns all fragments whose position lies inside the box, edges
// inclusive, in page order.
func (idx *Index) InBox(box model.BBox) []model.TextFragment {
	var hits []model.TextFragment
	for _, f := range idx.fragments {
		if box.Contains(f.Position()) {
			hits = append(hits, f)
		}
	}
	return hits
}

// AnyInBox reports whether any fragment inside the box (edges inclusive)
// satisfies pred. A nil pred matches every fragment.
func (idx *Index) AnyInBox(box model.BBox, pred func(model.TextFragment) bool) bool {
	for _, f := range idx.fragments {
		if !box.Contains(f.Position()) {
			continue
		}
		if pred == nil || pred(f) {
			return true
		}
	}
	return false
}

// Above returns all fragments positioned strictly above the given Y, in page
// order.
func (idx *Index) Above(y float64) []model.TextFragment {
	var hits []model.TextFragment
	for _, f := range idx.fragments {
		if f.Y > y {
			hits = append(hits, f)
		}
	}
	return hits
}
