package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statkit/statkit/hier"
	"github.com/statkit/statkit/logger"
	"github.com/statkit/statkit/output"
	"github.com/statkit/statkit/sets"
	"github.com/statkit/statkit/stats"
	"github.com/statkit/statkit/timer"
	"github.com/statkit/statkit/visualizer"
)

var samplesFlag = cli.IntFlag{
	Name:  "samples",
	Usage: "number of synthetic samples to record",
	Value: 100_000,
}

var seedFlag = cli.Uint64Flag{
	Name:  "seed",
	Usage: "seed of the synthetic workload",
	Value: 42,
}

var dbFlag = cli.StringFlag{
	Name:  "db",
	Usage: "sqlite3 file to persist snapshots to; empty disables persistence",
	Value: "",
}

var portFlag = cli.StringFlag{
	Name:  "port",
	Usage: "port of the chart server",
	Value: "8080",
}

// DemoCommand records synthetic workloads into a statistics set and
// prints the summaries.
var DemoCommand = cli.Command{
	Action:    runDemo,
	Name:      "demo",
	Usage:     "record synthetic workloads and print the summaries",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&samplesFlag,
		&seedFlag,
		&dbFlag,
		&logger.LogLevelFlag,
	},
}

// VisualizeCommand serves charts of a synthetic hierarchy.
var VisualizeCommand = cli.Command{
	Action: runVisualize,
	Name:   "visualize",
	Usage:  "serve charts of a synthetic rollup hierarchy",
	Flags: []cli.Flag{
		&samplesFlag,
		&seedFlag,
		&portFlag,
		&logger.LogLevelFlag,
	},
}

// demoDescriptor is the rollup layout the demos use: 60 one-second
// members roll into 60 one-minute members, which roll into hours.
func demoDescriptor(autoNext int64) (hier.Descriptor, error) {
	seconds, err := hier.NewDimension(60, 120)
	if err != nil {
		return hier.Descriptor{}, err
	}
	minutes, err := hier.NewDimension(60, 120)
	if err != nil {
		return hier.Descriptor{}, err
	}
	hours, err := hier.NewDimension(24, 48)
	if err != nil {
		return hier.Descriptor{}, err
	}

	return hier.NewDescriptor([]hier.Dimension{seconds, minutes, hours}, autoNext)
}

// fillHier records normally distributed samples into a fresh integer
// hierarchy.
func fillHier(name string, count int, seed uint64, logLevel string) (*hier.Hier, error) {
	descriptor, err := demoDescriptor(1000)
	if err != nil {
		return nil, err
	}

	h, err := hier.New(hier.Config{
		Name:       name,
		Descriptor: descriptor,
		Generator:  hier.IntegerGenerator{},
		Class:      "integer",
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, err
	}

	normal := distuv.Normal{
		Mu:    1000.0,
		Sigma: 150.0,
		Src:   rand.NewSource(seed),
	}

	for i := 0; i < count; i++ {
		h.RecordInt(int64(normal.Rand()))
	}

	return h, nil
}

// printableOf snapshots the queryable surface of a statistic for the
// output sinks.
func printableOf(s stats.Statistic) output.Printable {
	return output.Printable{
		N:        s.Count(),
		MinInt:   s.MinInt(),
		MaxInt:   s.MaxInt(),
		MinFloat: s.MinFloat(),
		MaxFloat: s.MaxFloat(),
		LogMode:  s.LogMode(),
		Mean:     s.Mean(),
		Variance: s.Variance(),
		Skewness: s.Skewness(),
		Kurtosis: s.Kurtosis(),
		Float:    s.Class() == "float",
	}
}

func runDemo(ctx *cli.Context) error {
	count := ctx.Int(samplesFlag.Name)
	seed := ctx.Uint64(seedFlag.Name)
	logLevel := ctx.String(logger.LogLevelFlag.Name)

	log := logger.NewLogger(logLevel, "demo")
	log.Infof("recording %d samples per workload", count)

	collection := sets.NewSet("demo")

	// A timed workload: the interval between synthetic events.
	latency := collection.AddTime("event-latency", timer.NewDurationTimer())

	// A float workload drawn from an exponential distribution.
	ratio := collection.AddFloat("service-ratio")
	exponential := distuv.Exponential{
		Rate: 2.0,
		Src:  rand.NewSource(seed + 1),
	}

	errors := collection.AddCounter("errors")

	for i := 0; i < count; i++ {
		latency.RecordEvent()
		ratio.RecordFloat(exponential.Rand())
		if i%1000 == 0 {
			errors.RecordEvent()
		}
	}

	// A rollup hierarchy over a normal integer workload.
	rollup, err := fillHier("request-size", count, seed, logLevel)
	if err != nil {
		return err
	}
	collection.AddMember(rollup)

	headline := color.New(color.Bold)
	headline.Println("Workload summaries")

	printer := output.NewStdoutPrinter()
	collection.PrintAll(printer)

	headline.Println("Rollup summary")
	printableOf(rollup).Table(os.Stdout, rollup.Title())
	fmt.Printf("events %s, advances %s\n",
		output.CommasI64(rollup.EventCount()), output.CommasI64(rollup.AdvanceCount()))

	if db := ctx.String(dbFlag.Name); db != "" {
		sink, err := output.NewSqliteSink(db)
		if err != nil {
			return err
		}
		defer sink.Close()

		var werr error
		collection.Traverse(func(member stats.Statistic) {
			if err := sink.Write(member.Name(), printableOf(member)); err != nil {
				werr = err
			}
		})
		if werr != nil {
			return werr
		}

		log.Noticef("snapshots written to %s", db)
	}

	return nil
}

func runVisualize(ctx *cli.Context) error {
	count := ctx.Int(samplesFlag.Name)
	seed := ctx.Uint64(seedFlag.Name)
	logLevel := ctx.String(logger.LogLevelFlag.Name)

	rollup, err := fillHier("request-size", count, seed, logLevel)
	if err != nil {
		return err
	}

	port := ctx.String(portFlag.Name)

	log := logger.NewLogger(logLevel, "visualize")
	log.Noticef("serving charts on http://localhost:%s", port)

	return visualizer.New(rollup).FireUpWeb(port)
}
