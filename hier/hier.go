// Package hier maintains multi-level rollups of statistics. Level 0
// collects raw samples; each advance finishes the current member, and
// every period-th advance merges a level's live members into one
// member pushed a level up. The result is a pyramid of summaries at
// coarsening time scales, queryable at every level.
//
// A hierarchy has a single logical writer; no locking happens inside.
package hier

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/statkit/statkit/logger"
	"github.com/statkit/statkit/output"
	"github.com/statkit/statkit/stats"
	"github.com/statkit/statkit/timer"
	"github.com/statkit/statkit/window"
)

// Dimension describes one level: how many members the level retains
// and how many of the newest ones are merged into the next level.
type Dimension struct {
	period    int
	retention int
}

// NewDimension creates a level layout. The retention must cover the
// period, since the live view feeds the merge.
func NewDimension(period int, retention int) (Dimension, error) {
	if period <= 0 {
		return Dimension{}, fmt.Errorf("hier: the period must be positive; got %d", period)
	}
	if retention < period {
		return Dimension{}, fmt.Errorf("hier: the retention %d may not be below the period %d", retention, period)
	}

	return Dimension{period: period, retention: retention}, nil
}

// Period returns how many members are merged into the next level.
func (d Dimension) Period() int {
	return d.period
}

// Retention returns how many members the level keeps.
func (d Dimension) Retention() int {
	return d.retention
}

// Descriptor is the full layout of a hierarchy: the level dimensions,
// lowest first, and the auto-advance interval.
type Descriptor struct {
	dimensions []Dimension
	autoNext   int64
}

// NewDescriptor creates a layout. autoNext gives the number of samples
// recorded into one level-0 member before the hierarchy advances
// itself; zero disables auto-advance.
func NewDescriptor(dimensions []Dimension, autoNext int64) (Descriptor, error) {
	if len(dimensions) == 0 {
		return Descriptor{}, fmt.Errorf("hier: at least one dimension is required")
	}
	if autoNext < 0 {
		return Descriptor{}, fmt.Errorf("hier: the auto-advance interval must not be negative; got %d", autoNext)
	}

	return Descriptor{dimensions: dimensions, autoNext: autoNext}, nil
}

// Levels returns the number of levels in the layout.
func (d Descriptor) Levels() int {
	return len(d.dimensions)
}

// AutoNext returns the auto-advance interval; zero means manual
// advance only.
func (d Descriptor) AutoNext() int64 {
	return d.autoNext
}

// Set selects which view of a level an Index addresses.
type Set int

const (
	// All addresses every retained member of a level.
	All Set = iota

	// Live addresses only the members eligible for the next merge.
	Live
)

// Index addresses one member of a hierarchy: a view, a level, and a
// position within the view, oldest first.
type Index struct {
	Set   Set
	Level int
	Which int
}

// Config collects the constructor parameters of a hierarchy.
type Config struct {
	// Name identifies the hierarchy; members derive their names from
	// it.
	Name string

	// Title is used for printing; it defaults to Name.
	Title string

	// Descriptor gives the level layout.
	Descriptor Descriptor

	// Generator creates and merges members of the hierarchy's kind.
	Generator Generator

	// Class labels the statistic kind for mixed collections; it
	// defaults to the members' own class.
	Class string

	// LogLevel selects the logging verbosity ("debug" shows every
	// rollup); it defaults to "info".
	LogLevel string
}

// Hier is a multi-level rollup of statistics. It implements the
// Statistic interface itself by recording into, and answering queries
// from, the newest level-0 member.
type Hier struct {
	name  string
	title string
	class string

	descriptor Descriptor
	generator  Generator

	// One window per level; windows[0] always holds at least one
	// member.
	windows []*window.Window[stats.Statistic]

	eventCount   int64
	advanceCount int64

	log *logging.Logger
}

var _ stats.Statistic = (*Hier)(nil)

// New creates a hierarchy with one empty member at level 0.
func New(cfg Config) (*Hier, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("hier: a name is required")
	}
	if cfg.Generator == nil {
		return nil, fmt.Errorf("hier: a generator is required")
	}
	if cfg.Descriptor.Levels() == 0 {
		return nil, fmt.Errorf("hier: the descriptor has no dimensions")
	}

	// A period of 1 below the top level would merge every member into
	// the next level on every advance.
	for i, dim := range cfg.Descriptor.dimensions {
		if i < cfg.Descriptor.Levels()-1 && dim.period < 2 {
			return nil, fmt.Errorf("hier: the period of level %d must be at least 2; got %d", i, dim.period)
		}
	}

	title := cfg.Title
	if title == "" {
		title = cfg.Name
	}

	level := cfg.LogLevel
	if level == "" {
		level = "info"
	}

	h := &Hier{
		name:       cfg.Name,
		title:      title,
		class:      cfg.Class,
		descriptor: cfg.Descriptor,
		generator:  cfg.Generator,
		windows:    make([]*window.Window[stats.Statistic], 0, cfg.Descriptor.Levels()),
		log:        logger.NewLogger(level, "hier"),
	}

	for i, dim := range cfg.Descriptor.dimensions {
		w, err := window.New[stats.Statistic](dim.retention, dim.period)
		if err != nil {
			return nil, fmt.Errorf("hier: level %d: %w", i, err)
		}
		h.windows = append(h.windows, w)
	}

	h.windows[0].Push(h.generator.MakeMember(h.memberName(0)))
	return h, nil
}

// memberName labels a member by its level and the advance at which it
// was created.
func (h *Hier) memberName(level int) string {
	return fmt.Sprintf("%s[%d.%d]", h.name, level, h.advanceCount)
}

// current returns the newest level-0 member, which receives all new
// samples.
func (h *Hier) current() stats.Statistic {
	member, _ := h.windows[0].Newest()
	return *member
}

// Current returns the member new samples are recorded into.
func (h *Hier) Current() stats.Statistic {
	return h.current()
}

// Advance finishes the current level-0 member. Every period-th advance
// of a level merges that level's live members into a new member one
// level up; the carry stops at the first level whose threshold is not
// hit. A fresh level-0 member is always pushed.
func (h *Hier) Advance() {
	h.advanceCount++

	threshold := int64(1)
	for level := 0; level+1 < len(h.windows); level++ {
		threshold *= int64(h.descriptor.dimensions[level].period)

		if h.advanceCount%threshold != 0 {
			break
		}

		h.rollup(level)
	}

	h.windows[0].Push(h.generator.MakeMember(h.memberName(0)))
}

// rollup merges the live members of a level into a new member at the
// level above.
func (h *Hier) rollup(level int) {
	exporter := h.generator.MakeExporter()

	it := h.windows[level].IterLive()
	for member, ok := it.Next(); ok; member, ok = it.Next() {
		h.generator.Push(exporter, *member)
	}

	merged := h.generator.MakeFromExporter(h.memberName(level+1), exporter)
	h.windows[level+1].Push(merged)

	h.log.Debugf("%s: advance %d merged %d live members of level %d into level %d",
		h.name, h.advanceCount, h.windows[level].LiveLen(), level, level+1)
}

// autoAdvance advances the hierarchy when the configured number of
// samples has gone into the current member.
func (h *Hier) autoAdvance() {
	next := h.descriptor.autoNext
	if next != 0 && h.eventCount > 0 && h.eventCount%next == 0 {
		h.Advance()
	}
}

// RecordInt records an integer sample into the current member.
func (h *Hier) RecordInt(sample int64) {
	h.autoAdvance()
	h.current().RecordInt(sample)
	h.eventCount++
}

// RecordFloat records a float sample into the current member.
func (h *Hier) RecordFloat(sample float64) {
	h.autoAdvance()
	h.current().RecordFloat(sample)
	h.eventCount++
}

// RecordEvent records an event into the current member.
func (h *Hier) RecordEvent() {
	h.autoAdvance()
	h.current().RecordEvent()
	h.eventCount++
}

// RecordEventReport records an event and returns the ticks recorded.
func (h *Hier) RecordEventReport() int64 {
	h.autoAdvance()
	ticks := h.current().RecordEventReport()
	h.eventCount++
	return ticks
}

// RecordTime records an elapsed interval into the current member.
func (h *Hier) RecordTime(ticks int64) {
	h.autoAdvance()
	h.current().RecordTime(ticks)
	h.eventCount++
}

// RecordInterval reads the given timer once and records the interval.
func (h *Hier) RecordInterval(t timer.Timer) {
	h.autoAdvance()
	h.current().RecordInterval(t)
	h.eventCount++
}

// Index returns the addressed member, or false when the index cannot
// be satisfied. Out-of-range indices are a soft failure: callers probe
// levels that may not have filled yet.
func (h *Hier) Index(index Index) (stats.Statistic, bool) {
	if index.Level < 0 || index.Level >= len(h.windows) {
		h.log.Warningf("%s: level %d is out of range; the hierarchy has %d levels",
			h.name, index.Level, len(h.windows))
		return nil, false
	}

	w := h.windows[index.Level]

	limit := w.SizeLimit()
	if index.Set == Live {
		limit = w.LiveLimit()
	}

	if index.Which < 0 || index.Which >= limit {
		h.log.Warningf("%s: member %d is out of range at level %d; the view holds at most %d",
			h.name, index.Which, index.Level, limit)
		return nil, false
	}

	var member *stats.Statistic
	var ok bool

	if index.Set == Live {
		member, ok = w.IndexLive(index.Which)
	} else {
		member, ok = w.IndexAll(index.Which)
	}

	if !ok {
		h.log.Warningf("%s: member %d of level %d has not been filled yet",
			h.name, index.Which, index.Level)
		return nil, false
	}

	return *member, true
}

// Sum pools the addressed members into one new statistic. It returns
// the pooled statistic and how many of the indices resolved;
// unresolved indices are skipped.
func (h *Hier) Sum(name string, indices []Index) (stats.Statistic, int) {
	exporter := h.generator.MakeExporter()
	resolved := 0

	for _, index := range indices {
		member, ok := h.Index(index)
		if !ok {
			continue
		}

		h.generator.Push(exporter, member)
		resolved++
	}

	return h.generator.MakeFromExporter(name, exporter), resolved
}

// TraverseAll visits every retained member of a level, oldest first.
func (h *Hier) TraverseAll(level int, visit func(stats.Statistic)) {
	if level < 0 || level >= len(h.windows) {
		h.log.Warningf("%s: cannot traverse level %d of %d levels", h.name, level, len(h.windows))
		return
	}

	it := h.windows[level].IterAll()
	for member, ok := it.Next(); ok; member, ok = it.Next() {
		visit(*member)
	}
}

// TraverseLive visits the live members of a level, oldest first.
func (h *Hier) TraverseLive(level int, visit func(stats.Statistic)) {
	if level < 0 || level >= len(h.windows) {
		h.log.Warningf("%s: cannot traverse level %d of %d levels", h.name, level, len(h.windows))
		return
	}

	it := h.windows[level].IterLive()
	for member, ok := it.Next(); ok; member, ok = it.Next() {
		visit(*member)
	}
}

// EventCount returns the number of samples recorded.
func (h *Hier) EventCount() int64 {
	return h.eventCount
}

// AdvanceCount returns the number of advances performed.
func (h *Hier) AdvanceCount() int64 {
	return h.advanceCount
}

// Levels returns the number of levels.
func (h *Hier) Levels() int {
	return len(h.windows)
}

// AllLen returns the number of retained members at a level, or 0 for
// an out-of-range level.
func (h *Hier) AllLen(level int) int {
	if level < 0 || level >= len(h.windows) {
		return 0
	}
	return h.windows[level].AllLen()
}

// LiveLen returns the number of live members at a level, or 0 for an
// out-of-range level.
func (h *Hier) LiveLen(level int) int {
	if level < 0 || level >= len(h.windows) {
		return 0
	}
	return h.windows[level].LiveLen()
}

func (h *Hier) Name() string {
	return h.name
}

func (h *Hier) Title() string {
	return h.title
}

func (h *Hier) SetTitle(title string) {
	h.title = title
}

// Class returns the configured class label, or the members' class when
// none was configured.
func (h *Hier) Class() string {
	if h.class != "" {
		return h.class
	}
	return h.current().Class()
}

func (h *Hier) Count() uint64 {
	return h.current().Count()
}

func (h *Hier) Mean() float64 {
	return h.current().Mean()
}

func (h *Hier) Variance() float64 {
	return h.current().Variance()
}

func (h *Hier) StdDev() float64 {
	return h.current().StdDev()
}

func (h *Hier) Skewness() float64 {
	return h.current().Skewness()
}

func (h *Hier) Kurtosis() float64 {
	return h.current().Kurtosis()
}

func (h *Hier) LogMode() int {
	return h.current().LogMode()
}

func (h *Hier) MinInt() int64 {
	return h.current().MinInt()
}

func (h *Hier) MaxInt() int64 {
	return h.current().MaxInt()
}

func (h *Hier) MinFloat() float64 {
	return h.current().MinFloat()
}

func (h *Hier) MaxFloat() float64 {
	return h.current().MaxFloat()
}

// Clear resets every retained member in place and zeroes the counters.
// The level structure and the retained member count are unchanged.
func (h *Hier) Clear() {
	for level := range h.windows {
		it := h.windows[level].IterAll()
		for member, ok := it.Next(); ok; member, ok = it.Next() {
			(*member).Clear()
		}
	}

	h.eventCount = 0
	h.advanceCount = 0
}

// Print renders the current member under the hierarchy's title.
func (h *Hier) Print(p output.Printer) {
	h.PrintTitled(p, h.title)
}

func (h *Hier) PrintTitled(p output.Printer, title string) {
	h.current().PrintTitled(p, title)
}

// PrintIndex renders one addressed member, degrading to a diagnostic
// line when the index cannot be satisfied.
func (h *Hier) PrintIndex(p output.Printer, index Index) {
	member, ok := h.Index(index)
	if !ok {
		p.Print(fmt.Sprintf("%s: no member at level %d, position %d", h.title, index.Level, index.Which))
		return
	}

	member.PrintTitled(p, fmt.Sprintf("%s  level %d, position %d", h.title, index.Level, index.Which))
}

// PrintAll renders every retained member, level by level.
func (h *Hier) PrintAll(p output.Printer) {
	for level := range h.windows {
		position := 0
		h.TraverseAll(level, func(member stats.Statistic) {
			member.PrintTitled(p, fmt.Sprintf("%s  level %d, position %d", h.title, level, position))
			position++
		})
	}
}

func (h *Hier) ToLogHistogram() *stats.LogHistogram {
	return h.current().ToLogHistogram()
}

func (h *Hier) ToFloatHistogram() *stats.FloatHistogram {
	return h.current().ToFloatHistogram()
}
