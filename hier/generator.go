package hier

import "github.com/statkit/statkit/stats"

// Exporter collects snapshots of members being merged. Exporters are
// created by a Generator, filled by Push, and consumed exactly once by
// MakeFromExporter.
type Exporter interface {
	// Len returns the number of snapshots collected so far.
	Len() int
}

// Generator hides the statistic kind from the hierarchy. The hierarchy
// itself only ever sees the Statistic interface; everything that needs
// the concrete type (creating members, merging snapshots) goes through
// the generator, so a hierarchy of any kind runs on the same code.
type Generator interface {
	// MakeMember creates a fresh, empty member.
	MakeMember(name string) stats.Statistic

	// MakeExporter creates an empty exporter for this kind.
	MakeExporter() Exporter

	// Push snapshots the member into the exporter. The member is not
	// modified. Push panics if the member or the exporter belongs to
	// another kind.
	Push(exporter Exporter, member stats.Statistic)

	// MakeFromExporter merges the collected snapshots into one new
	// member and consumes the exporter; reuse panics.
	MakeFromExporter(name string, exporter Exporter) stats.Statistic

	// Hz returns the tick frequency of timer-backed kinds and panics
	// for the others.
	Hz() uint64
}
