package hier

import (
	"github.com/statkit/statkit/stats"
	"github.com/statkit/statkit/timer"
)

// TimeGenerator builds hierarchies of RunningTime members sharing one
// timer. Only the current member records, so sharing is safe.
type TimeGenerator struct {
	timer timer.Timer
}

var _ Generator = (*TimeGenerator)(nil)

// NewTimeGenerator creates a generator around the given timer.
func NewTimeGenerator(t timer.Timer) *TimeGenerator {
	return &TimeGenerator{timer: t}
}

type timeExporter struct {
	exports []stats.Export
	used    bool
}

func (e *timeExporter) Len() int {
	return len(e.exports)
}

func (g *TimeGenerator) MakeMember(name string) stats.Statistic {
	return stats.NewRunningTime(name, g.timer)
}

func (g *TimeGenerator) MakeExporter() Exporter {
	return &timeExporter{}
}

func (g *TimeGenerator) Push(exporter Exporter, member stats.Statistic) {
	e, ok := exporter.(*timeExporter)
	if !ok {
		panic("TimeGenerator.Push: the exporter is not a time exporter")
	}

	m, ok := member.(*stats.RunningTime)
	if !ok {
		panic("TimeGenerator.Push: the member is not a RunningTime")
	}

	e.exports = append(e.exports, m.ExportData())
}

func (g *TimeGenerator) MakeFromExporter(name string, exporter Exporter) stats.Statistic {
	e, ok := exporter.(*timeExporter)
	if !ok {
		panic("TimeGenerator.MakeFromExporter: the exporter is not a time exporter")
	}

	if e.used {
		panic("TimeGenerator.MakeFromExporter: exporters are single use")
	}

	e.used = true

	merged := stats.SumExports(e.exports)
	if merged.LogHist == nil {
		merged.LogHist = stats.NewLogHistogram()
	}

	return stats.NewTimeFromExport(name, &merged, g.timer)
}

func (g *TimeGenerator) Hz() uint64 {
	return g.timer.Hz()
}

// NewTimeHier creates a time hierarchy around the given timer.
func NewTimeHier(name string, descriptor Descriptor, t timer.Timer) (*Hier, error) {
	return New(Config{
		Name:       name,
		Descriptor: descriptor,
		Generator:  NewTimeGenerator(t),
		Class:      "time",
	})
}
