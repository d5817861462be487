package hier

import (
	"testing"

	"github.com/statkit/statkit/stats"
)

func mustDimension(t *testing.T, period, retention int) Dimension {
	t.Helper()

	dim, err := NewDimension(period, retention)
	if err != nil {
		t.Fatalf("dimension (%d, %d) must be valid: %v", period, retention, err)
	}
	return dim
}

func mustDescriptor(t *testing.T, dimensions []Dimension, autoNext int64) Descriptor {
	t.Helper()

	descriptor, err := NewDescriptor(dimensions, autoNext)
	if err != nil {
		t.Fatalf("the descriptor must be valid: %v", err)
	}
	return descriptor
}

func newTestHier(t *testing.T, dimensions []Dimension, autoNext int64) *Hier {
	t.Helper()

	h, err := New(Config{
		Name:       "test",
		Descriptor: mustDescriptor(t, dimensions, autoNext),
		Generator:  IntegerGenerator{},
		LogLevel:   "error",
	})
	if err != nil {
		t.Fatalf("the hierarchy must be valid: %v", err)
	}
	return h
}

// TestHierAutoAdvance checks the rollup cadence: recording m*k samples
// with an auto-advance interval of k leaves m members at level 0.
func TestHierAutoAdvance(t *testing.T) {
	h := newTestHier(t, []Dimension{mustDimension(t, 4, 8)}, 2)

	for i := int64(0); i < 8; i++ {
		h.RecordInt(i)
	}

	if got := h.AllLen(0); got != 4 {
		t.Fatalf("8 samples at interval 2 must leave 4 members; got %d", got)
	}

	if h.EventCount() != 8 || h.AdvanceCount() != 3 {
		t.Fatalf("counter mismatch: events %d, advances %d", h.EventCount(), h.AdvanceCount())
	}

	// Each member holds exactly two samples.
	h.TraverseAll(0, func(member stats.Statistic) {
		if member.Count() != 2 {
			t.Errorf("every member must hold 2 samples; got %d", member.Count())
		}
	})
}

// TestHierCarry checks carry propagation through a three-level
// [4, 3, 2] layout with an advance on every sample.
func TestHierCarry(t *testing.T) {
	dims := []Dimension{
		mustDimension(t, 4, 8),
		mustDimension(t, 3, 6),
		mustDimension(t, 2, 4),
	}
	h := newTestHier(t, dims, 1)

	for i := int64(1); i <= 5; i++ {
		h.RecordInt(i)
	}

	if got := h.AllLen(1); got != 1 {
		t.Fatalf("the fifth sample must carry into level 1; got %d members", got)
	}

	level1, ok := h.Index(Index{Set: All, Level: 1, Which: 0})
	if !ok {
		t.Fatalf("the level-1 member must be addressable")
	}

	if level1.Count() != 4 {
		t.Fatalf("the level-1 member must pool 4 samples; got %d", level1.Count())
	}

	if h.AllLen(2) != 0 {
		t.Fatalf("level 2 must still be empty")
	}

	for i := int64(6); i <= 13; i++ {
		h.RecordInt(i)
	}

	if got := h.AllLen(2); got != 1 {
		t.Fatalf("the thirteenth sample must carry into level 2; got %d members", got)
	}

	level2, ok := h.Index(Index{Set: All, Level: 2, Which: 0})
	if !ok {
		t.Fatalf("the level-2 member must be addressable")
	}

	if level2.Count() != 12 {
		t.Fatalf("the level-2 member must pool 12 samples; got %d", level2.Count())
	}

	// The level-2 member pools samples 1..12.
	if level2.MinInt() != 1 || level2.MaxInt() != 12 {
		t.Errorf("the level-2 extremes must be 1 and 12; got %d and %d",
			level2.MinInt(), level2.MaxInt())
	}
}

// TestHierManualAdvance checks that a zero interval disables
// auto-advance.
func TestHierManualAdvance(t *testing.T) {
	h := newTestHier(t, []Dimension{mustDimension(t, 2, 4)}, 0)

	for i := int64(0); i < 100; i++ {
		h.RecordInt(i)
	}

	if h.AllLen(0) != 1 {
		t.Fatalf("without auto-advance all samples go to one member; got %d", h.AllLen(0))
	}

	h.Advance()

	if h.AllLen(0) != 2 {
		t.Fatalf("a manual advance must push a new member; got %d", h.AllLen(0))
	}

	if h.Count() != 0 {
		t.Fatalf("the fresh member must be empty; got %d samples", h.Count())
	}
}

// TestHierIndexSoftFailures checks that bad indices degrade to a miss
// instead of panicking.
func TestHierIndexSoftFailures(t *testing.T) {
	h, err := New(Config{
		Name:       "soft",
		Descriptor: mustDescriptor(t, []Dimension{mustDimension(t, 2, 4)}, 0),
		Generator:  IntegerGenerator{},
		LogLevel:   "critical",
	})
	if err != nil {
		t.Fatalf("the hierarchy must be valid: %v", err)
	}

	cases := []Index{
		{Set: All, Level: 1, Which: 0},  // no such level
		{Set: All, Level: -1, Which: 0}, // no such level
		{Set: All, Level: 0, Which: 9},  // beyond the retention
		{Set: All, Level: 0, Which: -1}, // negative position
		{Set: All, Level: 0, Which: 1},  // not filled yet
		{Set: Live, Level: 0, Which: 1}, // not filled yet
	}

	for _, index := range cases {
		if member, ok := h.Index(index); ok || member != nil {
			t.Errorf("index %+v must miss", index)
		}
	}

	if member, ok := h.Index(Index{Set: All, Level: 0, Which: 0}); !ok || member == nil {
		t.Errorf("the initial member must be addressable")
	}
}

// TestHierClear checks that clearing resets members and counters in
// place without changing the level structure, and is idempotent.
func TestHierClear(t *testing.T) {
	dims := []Dimension{
		mustDimension(t, 2, 4),
		mustDimension(t, 2, 4),
	}
	h := newTestHier(t, dims, 1)

	for i := int64(1); i <= 10; i++ {
		h.RecordInt(i)
	}

	allBefore := h.AllLen(0)

	h.Clear()

	if h.EventCount() != 0 || h.AdvanceCount() != 0 {
		t.Fatalf("clearing must zero the counters")
	}

	if h.AllLen(0) != allBefore {
		t.Fatalf("clearing must not change the member count")
	}

	for level := 0; level < h.Levels(); level++ {
		h.TraverseAll(level, func(member stats.Statistic) {
			if member.Count() != 0 {
				t.Errorf("every member must be empty after a clear; got %d", member.Count())
			}
		})
	}

	h.Clear()

	if h.EventCount() != 0 || h.AllLen(0) != allBefore {
		t.Fatalf("a second clear must change nothing")
	}

	h.RecordInt(42)

	if h.Count() != 1 || h.Mean() != 42.0 {
		t.Fatalf("recording after a clear must work normally")
	}
}

// TestHierSum pools members across levels.
func TestHierSum(t *testing.T) {
	h := newTestHier(t, []Dimension{mustDimension(t, 4, 8)}, 2)

	for i := int64(1); i <= 8; i++ {
		h.RecordInt(i)
	}

	pooled, resolved := h.Sum("pooled", []Index{
		{Set: All, Level: 0, Which: 0},
		{Set: All, Level: 0, Which: 1},
		{Set: All, Level: 0, Which: 2},
		{Set: All, Level: 0, Which: 3},
		{Set: All, Level: 0, Which: 7}, // not filled; skipped
	})

	if resolved != 4 {
		t.Fatalf("4 of the 5 indices must resolve; got %d", resolved)
	}

	if pooled.Count() != 8 {
		t.Fatalf("the pooled statistic must hold all 8 samples; got %d", pooled.Count())
	}

	if pooled.Mean() != 4.5 {
		t.Errorf("the pooled mean must be 4.5; got %e", pooled.Mean())
	}
}

// TestHierStatisticSurface checks the delegation to the current
// member.
func TestHierStatisticSurface(t *testing.T) {
	h := newTestHier(t, []Dimension{mustDimension(t, 2, 4)}, 0)

	h.RecordInt(10)
	h.RecordInt(20)

	if h.Count() != 2 || h.Mean() != 15.0 {
		t.Errorf("queries must reflect the current member")
	}

	if h.MinInt() != 10 || h.MaxInt() != 20 {
		t.Errorf("the extremes must reflect the current member")
	}

	if h.Class() != "integer" {
		t.Errorf("an integer hierarchy must report class integer; got %q", h.Class())
	}

	if h.ToLogHistogram() == nil || h.ToFloatHistogram() != nil {
		t.Errorf("the histogram handles must come from the current member")
	}

	h.SetTitle("renamed")

	if h.Title() != "renamed" {
		t.Errorf("the title must be settable")
	}
}

func TestHierConfigErrors(t *testing.T) {
	if _, err := NewDimension(0, 4); err == nil {
		t.Errorf("a zero period must be rejected")
	}

	if _, err := NewDimension(4, 2); err == nil {
		t.Errorf("retention below the period must be rejected")
	}

	if _, err := NewDescriptor(nil, 0); err == nil {
		t.Errorf("an empty layout must be rejected")
	}

	dim := Dimension{period: 2, retention: 4}

	if _, err := NewDescriptor([]Dimension{dim}, -1); err == nil {
		t.Errorf("a negative auto-advance interval must be rejected")
	}

	descriptor := Descriptor{dimensions: []Dimension{dim}}

	if _, err := New(Config{Descriptor: descriptor, Generator: IntegerGenerator{}}); err == nil {
		t.Errorf("a nameless hierarchy must be rejected")
	}

	if _, err := New(Config{Name: "x", Descriptor: descriptor}); err == nil {
		t.Errorf("a generator is required")
	}

	if _, err := New(Config{Name: "x", Generator: IntegerGenerator{}}); err == nil {
		t.Errorf("an empty descriptor must be rejected")
	}

	narrow := Descriptor{dimensions: []Dimension{
		{period: 1, retention: 2},
		{period: 2, retention: 2},
	}}

	if _, err := New(Config{Name: "x", Descriptor: narrow, Generator: IntegerGenerator{}}); err == nil {
		t.Errorf("a non-final period below 2 must be rejected")
	}
}
