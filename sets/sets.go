// Package sets groups statistics into named, nestable collections so
// that a whole subsystem can be printed or cleared with one call.
package sets

import (
	"github.com/statkit/statkit/output"
	"github.com/statkit/statkit/stats"
	"github.com/statkit/statkit/timer"
)

// Set is a named collection of statistics and child sets.
type Set struct {
	name    string
	members []stats.Statistic
	subsets []*Set
}

// NewSet creates an empty collection.
func NewSet(name string) *Set {
	return &Set{name: name}
}

// Name returns the collection's name.
func (s *Set) Name() string {
	return s.name
}

// AddMember adds an existing statistic to the collection.
func (s *Set) AddMember(member stats.Statistic) {
	s.members = append(s.members, member)
}

// AddInteger creates an integer accumulator and adds it.
func (s *Set) AddInteger(name string) *stats.RunningInteger {
	member := stats.NewRunningInteger(name)
	s.AddMember(member)
	return member
}

// AddFloat creates a float accumulator and adds it.
func (s *Set) AddFloat(name string) *stats.RunningFloat {
	member := stats.NewRunningFloat(name)
	s.AddMember(member)
	return member
}

// AddTime creates a time accumulator around the given timer and adds
// it.
func (s *Set) AddTime(name string, t timer.Timer) *stats.RunningTime {
	member := stats.NewRunningTime(name, t)
	s.AddMember(member)
	return member
}

// AddCounter creates a counter and adds it.
func (s *Set) AddCounter(name string) *stats.Counter {
	member := stats.NewCounter(name)
	s.AddMember(member)
	return member
}

// NewSubset creates a child collection and adds it.
func (s *Set) NewSubset(name string) *Set {
	subset := NewSet(name)
	s.subsets = append(s.subsets, subset)
	return subset
}

// Member returns the first member with the given name, searching this
// collection only.
func (s *Set) Member(name string) (stats.Statistic, bool) {
	for _, member := range s.members {
		if member.Name() == name {
			return member, true
		}
	}
	return nil, false
}

// Subset returns the child collection with the given name.
func (s *Set) Subset(name string) (*Set, bool) {
	for _, subset := range s.subsets {
		if subset.name == name {
			return subset, true
		}
	}
	return nil, false
}

// RemoveMember removes the first member with the given name and
// reports whether one was found.
func (s *Set) RemoveMember(name string) bool {
	for i, member := range s.members {
		if member.Name() == name {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSubset removes the child collection with the given name and
// reports whether one was found.
func (s *Set) RemoveSubset(name string) bool {
	for i, subset := range s.subsets {
		if subset.name == name {
			s.subsets = append(s.subsets[:i], s.subsets[i+1:]...)
			return true
		}
	}
	return false
}

// Traverse visits every statistic in the collection and its children,
// depth first.
func (s *Set) Traverse(visit func(stats.Statistic)) {
	for _, member := range s.members {
		visit(member)
	}
	for _, subset := range s.subsets {
		subset.Traverse(visit)
	}
}

// PrintAll renders every statistic in the collection and its children,
// titles prefixed with the path of collection names.
func (s *Set) PrintAll(p output.Printer) {
	s.printPrefixed(p, s.name)
}

func (s *Set) printPrefixed(p output.Printer, prefix string) {
	for _, member := range s.members {
		member.PrintTitled(p, prefix+" / "+member.Title())
	}
	for _, subset := range s.subsets {
		subset.printPrefixed(p, prefix+" / "+subset.name)
	}
}

// ClearAll clears every statistic in the collection and its children.
func (s *Set) ClearAll() {
	for _, member := range s.members {
		member.Clear()
	}
	for _, subset := range s.subsets {
		subset.ClearAll()
	}
}
