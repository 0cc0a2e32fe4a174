package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func person(name string) Person {
	return NewPerson(Name(name), "12345", "x@example.com", "", "", "", nil)
}

func names(persons []Person) []string {
	out := make([]string, len(persons))
	for i, p := range persons {
		out[i] = string(p.Name)
	}
	return out
}

var base = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestSortOrder_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		order SortOrder
		want  bool
	}{
		{"none", SortNone, true},
		{"name", SortByName, true},
		{"recent", SortByRecent, true},
		{"invalid", SortOrder("size"), false},
		{"empty", SortOrder(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.IsValid())
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	o, err := ParseSortOrder("recent")
	require.NoError(t, err)
	assert.Equal(t, SortByRecent, o)

	_, err = ParseSortOrder("bogus")
	assert.Error(t, err)
}

func TestPinPriority(t *testing.T) {
	unpinnedA := person("Alice")
	unpinnedB := person("Bob")
	pinnedOld := person("Carol").WithPin(base)
	pinnedNew := person("Dave").WithPin(base.Add(time.Hour))
	pinnedNoTime := person("Eve")
	pinnedNoTime.Pinned = true

	byName := ByName()

	tests := []struct {
		name      string
		a, b      Person
		secondary Comparator
		want      int
	}{
		{"pinned before unpinned", pinnedOld, unpinnedA, nil, -1},
		{"unpinned after pinned", unpinnedA, pinnedOld, nil, 1},
		{"pinned before unpinned ignores secondary", pinnedOld, unpinnedA, func(Person, Person) int { return 1 }, -1},
		{"newer pin first", pinnedNew, pinnedOld, nil, -1},
		{"older pin second", pinnedOld, pinnedNew, byName, 1},
		{"missing pin time sorts after present", pinnedNoTime, pinnedOld, nil, 1},
		{"present pin time sorts before missing", pinnedOld, pinnedNoTime, nil, -1},
		{"both missing pin time compare equal", pinnedNoTime, pinnedNoTime, nil, 0},
		{"unpinned fall through to secondary", unpinnedB, unpinnedA, byName, 1},
		{"unpinned without secondary are equal", unpinnedB, unpinnedA, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PinPriority(tt.secondary)(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestByNameIgnoresCase(t *testing.T) {
	cmp := ByName()
	assert.Zero(t, cmp(person("alice"), person("ALICE")))
	assert.Negative(t, cmp(person("alice"), person("Bob")))
}

func TestByRecency(t *testing.T) {
	canonical := []Person{person("Alice"), person("Bob"), person("Carol")}
	cmp := ByRecency(canonical)

	assert.Positive(t, cmp(canonical[0], canonical[2]))
	assert.Negative(t, cmp(canonical[2], canonical[1]))
	assert.Positive(t, cmp(person("Stranger"), canonical[0]), "unknown persons sort last")
}

func TestProject(t *testing.T) {
	alice := person("alice")
	bob := person("Bob").WithTags([]Tag{"friends"})
	carol := person("Carol").WithPin(base)
	dave := person("Dave").WithTags([]Tag{"friends"}).WithPin(base.Add(time.Minute))
	canonical := []Person{bob, alice, carol, dave}

	t.Run("insertion order with pins first", func(t *testing.T) {
		got := Project(canonical, ShowAll, nil)
		assert.Equal(t, []string{"Dave", "Carol", "Bob", "alice"}, names(got))
	})

	t.Run("alphabetical", func(t *testing.T) {
		got := Project(canonical, nil, ComparatorFor(SortByName, canonical))
		assert.Equal(t, []string{"Dave", "Carol", "alice", "Bob"}, names(got))
	})

	t.Run("most recent first", func(t *testing.T) {
		got := Project(canonical, ShowAll, ComparatorFor(SortByRecent, canonical))
		assert.Equal(t, []string{"Dave", "Carol", "alice", "Bob"}, names(got))
	})

	t.Run("filter applies before sort", func(t *testing.T) {
		got := Project(canonical, HasTagPredicate("friends"), ByName())
		assert.Equal(t, []string{"Dave", "Bob"}, names(got))
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = Project(canonical, ShowAll, ByName())
		assert.Equal(t, []string{"Bob", "alice", "Carol", "Dave"}, names(canonical))
	})
}

func TestComparatorForNone(t *testing.T) {
	assert.Nil(t, ComparatorFor(SortNone, nil))
}
