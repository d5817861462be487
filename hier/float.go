package hier

import "github.com/statkit/statkit/stats"

// FloatGenerator builds hierarchies of RunningFloat members.
type FloatGenerator struct{}

var _ Generator = FloatGenerator{}

type floatExporter struct {
	exports []stats.Export
	used    bool
}

func (e *floatExporter) Len() int {
	return len(e.exports)
}

func (g FloatGenerator) MakeMember(name string) stats.Statistic {
	return stats.NewRunningFloat(name)
}

func (g FloatGenerator) MakeExporter() Exporter {
	return &floatExporter{}
}

func (g FloatGenerator) Push(exporter Exporter, member stats.Statistic) {
	e, ok := exporter.(*floatExporter)
	if !ok {
		panic("FloatGenerator.Push: the exporter is not a float exporter")
	}

	m, ok := member.(*stats.RunningFloat)
	if !ok {
		panic("FloatGenerator.Push: the member is not a RunningFloat")
	}

	e.exports = append(e.exports, m.ExportData())
}

func (g FloatGenerator) MakeFromExporter(name string, exporter Exporter) stats.Statistic {
	e, ok := exporter.(*floatExporter)
	if !ok {
		panic("FloatGenerator.MakeFromExporter: the exporter is not a float exporter")
	}

	if e.used {
		panic("FloatGenerator.MakeFromExporter: exporters are single use")
	}

	e.used = true

	merged := stats.SumExports(e.exports)
	if merged.FloatHist == nil {
		merged.FloatHist = stats.NewFloatHistogram()
	}

	return stats.NewFloatFromExport(name, &merged)
}

func (g FloatGenerator) Hz() uint64 {
	panic("FloatGenerator.Hz: float hierarchies have no timer")
}

// NewFloatHier creates a float hierarchy from the given layout.
func NewFloatHier(name string, descriptor Descriptor) (*Hier, error) {
	return New(Config{
		Name:       name,
		Descriptor: descriptor,
		Generator:  FloatGenerator{},
		Class:      "float",
	})
}
