package hier

import "github.com/statkit/statkit/stats"

// IntegerGenerator builds hierarchies of RunningInteger members.
type IntegerGenerator struct{}

var _ Generator = IntegerGenerator{}

type integerExporter struct {
	exports []stats.Export
	used    bool
}

func (e *integerExporter) Len() int {
	return len(e.exports)
}

func (g IntegerGenerator) MakeMember(name string) stats.Statistic {
	return stats.NewRunningInteger(name)
}

func (g IntegerGenerator) MakeExporter() Exporter {
	return &integerExporter{}
}

func (g IntegerGenerator) Push(exporter Exporter, member stats.Statistic) {
	e, ok := exporter.(*integerExporter)
	if !ok {
		panic("IntegerGenerator.Push: the exporter is not an integer exporter")
	}

	m, ok := member.(*stats.RunningInteger)
	if !ok {
		panic("IntegerGenerator.Push: the member is not a RunningInteger")
	}

	e.exports = append(e.exports, m.ExportData())
}

func (g IntegerGenerator) MakeFromExporter(name string, exporter Exporter) stats.Statistic {
	e, ok := exporter.(*integerExporter)
	if !ok {
		panic("IntegerGenerator.MakeFromExporter: the exporter is not an integer exporter")
	}

	if e.used {
		panic("IntegerGenerator.MakeFromExporter: exporters are single use")
	}

	e.used = true

	merged := stats.SumExports(e.exports)
	if merged.LogHist == nil {
		merged.LogHist = stats.NewLogHistogram()
	}

	return stats.NewIntegerFromExport(name, &merged)
}

func (g IntegerGenerator) Hz() uint64 {
	panic("IntegerGenerator.Hz: integer hierarchies have no timer")
}

// NewIntegerHier creates an integer hierarchy from the given layout.
func NewIntegerHier(name string, descriptor Descriptor) (*Hier, error) {
	return New(Config{
		Name:       name,
		Descriptor: descriptor,
		Generator:  IntegerGenerator{},
		Class:      "integer",
	})
}
