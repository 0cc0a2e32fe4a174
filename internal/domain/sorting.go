package domain

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/cases"
)

// Comparator orders two persons: negative if a sorts first, positive if b
// does, zero if they are equal for ordering purposes.
type Comparator func(a, b Person) int

// SortOrder selects the secondary comparator applied after pin priority.
type SortOrder string

const (
	// SortNone keeps insertion order.
	SortNone SortOrder = "none"
	// SortByName orders alphabetically by name, ignoring case.
	SortByName SortOrder = "name"
	// SortByRecent orders most recently added first.
	SortByRecent SortOrder = "recent"
)

// IsValid checks if the sort order is valid.
func (s SortOrder) IsValid() bool {
	switch s {
	case SortNone, SortByName, SortByRecent:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort order.
func (s SortOrder) String() string {
	return string(s)
}

// ParseSortOrder parses a string into a SortOrder.
func ParseSortOrder(order string) (SortOrder, error) {
	o := SortOrder(order)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid sort order: %s", order)
	}
	return o, nil
}

// ByName compares persons by case-folded name.
func ByName() Comparator {
	return func(a, b Person) int {
		folder := cases.Fold()
		return cmp.Compare(folder.String(string(a.Name)), folder.String(string(b.Name)))
	}
}

// ByRecency puts persons added later to canonical first. Positions are
// looked up in canonical, the insertion-ordered record list; persons not
// found there sort last.
func ByRecency(canonical []Person) Comparator {
	position := make(map[string]int, len(canonical))
	for i, p := range canonical {
		position[p.Key()] = i
	}
	indexOf := func(p Person) int {
		if i, ok := position[p.Key()]; ok {
			return i
		}
		return -1
	}
	return func(a, b Person) int {
		return cmp.Compare(indexOf(b), indexOf(a))
	}
}

// ComparatorFor returns the secondary comparator for order, or nil for
// insertion order.
func ComparatorFor(order SortOrder, canonical []Person) Comparator {
	switch order {
	case SortByName:
		return ByName()
	case SortByRecent:
		return ByRecency(canonical)
	default:
		return nil
	}
}

// PinPriority wraps secondary so that pinned persons always sort before
// unpinned ones and pinned persons order by pin time, newest first.
// A nil secondary leaves unpinned persons equal.
func PinPriority(secondary Comparator) Comparator {
	return func(a, b Person) int {
		switch {
		case a.Pinned && !b.Pinned:
			return -1
		case !a.Pinned && b.Pinned:
			return 1
		case a.Pinned && b.Pinned:
			return comparePinTimes(a.PinnedAt, b.PinnedAt)
		}
		if secondary == nil {
			return 0
		}
		return secondary(a, b)
	}
}

// comparePinTimes orders newest first. A missing time sorts after a present one.
func comparePinTimes(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return b.Compare(a)
}

// Project filters persons by pred and sorts the result by pin priority
// followed by secondary. Returns a new slice; persons is not modified.
func Project(persons []Person, pred Predicate, secondary Comparator) []Person {
	view := FilterPersons(persons, pred)
	slices.SortStableFunc(view, PinPriority(secondary))
	return view
}
