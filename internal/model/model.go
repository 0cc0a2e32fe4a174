// Package model owns the canonical contact list and the state of the
// displayed view (current filter and sort order).
package model

import (
	"errors"
	"slices"

	"github.com/cristianoliveira/rolodex/internal/domain"
)

var (
	// ErrDuplicatePerson is returned when a mutation would store two persons with the same identity.
	ErrDuplicatePerson = errors.New("person already exists")
	// ErrPersonNotFound is returned when the target of a mutation is not stored.
	ErrPersonNotFound = errors.New("person not found")
)

// Model holds the insertion-ordered person list. The view is derived on
// every call to View and is never stored.
type Model struct {
	persons   []domain.Person
	predicate domain.Predicate
	order     domain.SortOrder
}

// New returns a model over a copy of persons showing everyone in insertion order.
func New(persons []domain.Person) *Model {
	return &Model{
		persons:   slices.Clone(persons),
		predicate: domain.ShowAll,
		order:     domain.SortNone,
	}
}

// HasPerson reports whether a person with the same identity is stored.
func (m *Model) HasPerson(p domain.Person) bool {
	return m.indexOf(p) >= 0
}

// AddPerson appends p.
func (m *Model) AddPerson(p domain.Person) error {
	if m.HasPerson(p) {
		return ErrDuplicatePerson
	}
	m.persons = append(m.persons, p)
	return nil
}

// DeletePerson removes the stored person with p's identity.
func (m *Model) DeletePerson(p domain.Person) error {
	i := m.indexOf(p)
	if i < 0 {
		return ErrPersonNotFound
	}
	m.persons = slices.Delete(m.persons, i, i+1)
	return nil
}

// SetPerson replaces target with edited, keeping its position.
func (m *Model) SetPerson(target, edited domain.Person) error {
	i := m.indexOf(target)
	if i < 0 {
		return ErrPersonNotFound
	}
	if !target.IsSamePerson(edited) && m.HasPerson(edited) {
		return ErrDuplicatePerson
	}
	m.persons[i] = edited
	return nil
}

// SetPersons replaces the whole list.
func (m *Model) SetPersons(persons []domain.Person) {
	m.persons = slices.Clone(persons)
}

// Persons returns a snapshot of every stored person in insertion order.
func (m *Model) Persons() []domain.Person {
	return slices.Clone(m.persons)
}

// SetPredicate filters the view. A nil predicate shows everyone.
func (m *Model) SetPredicate(pred domain.Predicate) {
	if pred == nil {
		pred = domain.ShowAll
	}
	m.predicate = pred
}

// ApplySort selects the secondary ordering of the view.
func (m *Model) ApplySort(order domain.SortOrder) {
	if !order.IsValid() {
		order = domain.SortNone
	}
	m.order = order
}

// ResetSort restores insertion order.
func (m *Model) ResetSort() {
	m.order = domain.SortNone
}

// SortOrder returns the current secondary ordering.
func (m *Model) SortOrder() domain.SortOrder {
	return m.order
}

// View returns the filtered, pin-prioritised, sorted projection of the list.
func (m *Model) View() []domain.Person {
	return domain.Project(m.persons, m.predicate, domain.ComparatorFor(m.order, m.persons))
}

func (m *Model) indexOf(p domain.Person) int {
	return slices.IndexFunc(m.persons, p.IsSamePerson)
}
