package textedit

import (
	"cmp"
	"iter"
	"slices"
)

// EditSet is an immutable collection of edits ordered by start offset.
//
// Edits with equal start offsets keep the order in which they were added.
// Sets are never validated on construction; overlap and bounds checks happen
// in Apply. The zero value is an empty set.
type EditSet struct {
	edits []TextEdit
}

// New creates a set from the given edits, stable-sorted by start offset.
func New(edits ...TextEdit) EditSet {
	return EditSet{edits: sortEdits(edits)}
}

// None returns an empty set.
func None() EditSet {
	return EditSet{}
}

// One returns a set holding a single edit.
func One(edit TextEdit) EditSet {
	return EditSet{edits: []TextEdit{edit}}
}

// FromTextEdits creates a set from a slice of edits.
// The slice is copied and may be reused by the caller.
func FromTextEdits(edits []TextEdit) EditSet {
	return EditSet{edits: sortEdits(edits)}
}

// Add returns a new set holding this set's edits plus edit.
// When edit shares a start offset with existing edits it is ordered after them.
func (s EditSet) Add(edit TextEdit) EditSet {
	combined := make([]TextEdit, 0, len(s.edits)+1)
	combined = append(combined, s.edits...)
	combined = append(combined, edit)
	return EditSet{edits: sortInPlace(combined)}
}

// Merge returns a new set holding the edits of both sets.
//
// Edits from this set are ordered before those of other when their start
// offsets are equal.
func (s EditSet) Merge(other EditSet) EditSet {
	if len(other.edits) == 0 {
		return s
	}
	combined := make([]TextEdit, 0, len(s.edits)+len(other.edits))
	combined = append(combined, s.edits...)
	combined = append(combined, other.edits...)
	return EditSet{edits: sortInPlace(combined)}
}

// Len returns the number of edits in the set.
func (s EditSet) Len() int {
	return len(s.edits)
}

// IsEmpty reports whether the set holds no edits.
func (s EditSet) IsEmpty() bool {
	return len(s.edits) == 0
}

// Edits returns a copy of the edits in sorted order.
func (s EditSet) Edits() []TextEdit {
	return slices.Clone(s.edits)
}

// All iterates over the edits in sorted order, yielding each edit's index.
// The sequence can be ranged over any number of times.
func (s EditSet) All() iter.Seq2[int, TextEdit] {
	return func(yield func(int, TextEdit) bool) {
		for i, e := range s.edits {
			if !yield(i, e) {
				return
			}
		}
	}
}

func sortEdits(edits []TextEdit) []TextEdit {
	if len(edits) == 0 {
		return nil
	}
	return sortInPlace(slices.Clone(edits))
}

// sortInPlace orders edits by start offset only; ties keep slice order.
func sortInPlace(edits []TextEdit) []TextEdit {
	slices.SortStableFunc(edits, func(a, b TextEdit) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return edits
}
