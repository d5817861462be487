package output

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"
)

// Printable carries the queryable summary of one statistics instance in
// a form the output sinks can render. The statistics types fill it in;
// no statistics arithmetic happens here.
type Printable struct {
	N          uint64
	Nans       uint64
	Infinities uint64

	MinInt   int64
	MaxInt   int64
	MinFloat float64
	MaxFloat float64

	LogMode  int
	Mean     float64
	Variance float64
	Skewness float64
	Kurtosis float64

	// Float selects the float extremes over the integer ones.
	Float bool

	// TicksPerSecond converts tick values to seconds when non-zero.
	TicksPerSecond uint64
}

// StdDev returns the standard deviation for rendering.
func (pr Printable) StdDev() float64 {
	return math.Sqrt(pr.Variance)
}

// scientific renders a float the way the statistics reports do.
func scientific(value float64) string {
	return fmt.Sprintf("%+.5e", value)
}

// minLine and maxLine pick the extreme matching the statistic kind.
func (pr Printable) minLine() string {
	if pr.Float {
		return scientific(pr.MinFloat)
	}
	return CommasI64(pr.MinInt)
}

func (pr Printable) maxLine() string {
	if pr.Float {
		return scientific(pr.MaxFloat)
	}
	return CommasI64(pr.MaxInt)
}

// Print renders the summary block under the given title.
func (pr Printable) Print(p Printer, title string) {
	p.Print(title)
	p.Print(fmt.Sprintf("    Count     %14s", CommasU64(pr.N)))

	if pr.Nans > 0 || pr.Infinities > 0 {
		p.Print(fmt.Sprintf("    NaNs      %14s", CommasU64(pr.Nans)))
		p.Print(fmt.Sprintf("    Infinite  %14s", CommasU64(pr.Infinities)))
	}

	if pr.N > 0 {
		p.Print(fmt.Sprintf("    Minimum   %14s", pr.minLine()))
		p.Print(fmt.Sprintf("    Maximum   %14s", pr.maxLine()))
		p.Print(fmt.Sprintf("    Log Mode  %14d", pr.LogMode))
	}

	p.Print(fmt.Sprintf("    Mean      %14s", scientific(pr.Mean)))
	p.Print(fmt.Sprintf("    Std Dev   %14s", scientific(pr.StdDev())))
	p.Print(fmt.Sprintf("    Variance  %14s", scientific(pr.Variance)))
	p.Print(fmt.Sprintf("    Skewness  %14s", scientific(pr.Skewness)))
	p.Print(fmt.Sprintf("    Kurtosis  %14s", scientific(pr.Kurtosis)))
}

// Table renders the summary as a two-column table.
func (pr Printable) Table(w io.Writer, title string) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Statistic", title})
	tbl.SetBorder(true)

	tbl.Append([]string{"Count", CommasU64(pr.N)})

	if pr.Nans > 0 || pr.Infinities > 0 {
		tbl.Append([]string{"NaNs", CommasU64(pr.Nans)})
		tbl.Append([]string{"Infinite", CommasU64(pr.Infinities)})
	}

	if pr.N > 0 {
		tbl.Append([]string{"Minimum", pr.minLine()})
		tbl.Append([]string{"Maximum", pr.maxLine()})
		tbl.Append([]string{"Log Mode", fmt.Sprintf("%d", pr.LogMode)})
	}

	tbl.Append([]string{"Mean", scientific(pr.Mean)})
	tbl.Append([]string{"Std Dev", scientific(pr.StdDev())})
	tbl.Append([]string{"Variance", scientific(pr.Variance)})
	tbl.Append([]string{"Skewness", scientific(pr.Skewness)})
	tbl.Append([]string{"Kurtosis", scientific(pr.Kurtosis)})

	tbl.Render()
}
