package domain

// Predicate decides whether a person is part of the current view.
type Predicate func(Person) bool

// ShowAll matches every person.
func ShowAll(Person) bool {
	return true
}

// FilterPersons returns the persons matching pred, preserving order.
// A nil predicate matches everything. The input slice is never modified.
func FilterPersons(persons []Person, pred Predicate) []Person {
	result := make([]Person, 0, len(persons))
	for _, p := range persons {
		if pred == nil || pred(p) {
			result = append(result, p)
		}
	}
	return result
}

// HasTagPredicate matches persons carrying tag.
func HasTagPredicate(tag Tag) Predicate {
	return func(p Person) bool {
		return p.HasTag(tag)
	}
}
