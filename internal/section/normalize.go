package section

import "sort"

// Normalize re-establishes the order density invariant by reassigning each
// section's Order to its positional index 0..N-1. The slice position is the
// source of truth during editing; every structural mutation (add, remove,
// duplicate, move, drag reorder) finishes by calling this.
func Normalize(sections []Section) {
	for i := range sections {
		sections[i].Order = i
	}
}

// SortByOrder stable-sorts sections ascending by Order. The renderer uses
// this on stored pages, where Order rather than slice position is
// authoritative.
func SortByOrder(sections []Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
}

// CloneAll deep-copies a section list.
func CloneAll(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s.Clone()
	}
	return out
}
