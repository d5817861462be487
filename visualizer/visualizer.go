// Package visualizer serves charts of a statistics hierarchy over
// HTTP: the histogram of the current member and the per-level summary
// trends.
package visualizer

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/statkit/statkit/hier"
	"github.com/statkit/statkit/stats"
)

// HTML references for the rendered pages.
const histogramRef = "histogram"
const levelsRef = "levels"

// Visualizer renders one hierarchy. The hierarchy's writer must be
// paused while pages are rendered.
type Visualizer struct {
	hier *hier.Hier
}

// New creates a visualizer for the given hierarchy.
func New(h *hier.Hier) *Visualizer {
	return &Visualizer{hier: h}
}

// mainHTML is the index page.
func (v *Visualizer) mainHTML() string {
	return `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>statkit: ` + v.hier.Title() + `</title>
  </head>
  <body>
    <h1>statkit: ` + v.hier.Title() + `</h1>
    <ul>
    <li> <h3> <a href="/` + histogramRef + `"> Sample Histogram </a> </h3> </li>
    <li> <h3> <a href="/` + levelsRef + `"> Rollup Levels </a> </h3> </li>
    </ul>
</body>
</html>
`
}

// renderMain renders the main menu.
func (v *Visualizer) renderMain(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, v.mainHTML())
}

// histogramData converts the current member's histogram to labeled
// bars, skipping empty buckets.
func histogramData(member stats.Statistic) ([]string, []opts.BarData) {
	labels := []string{}
	items := []opts.BarData{}

	if h := member.ToLogHistogram(); h != nil {
		for i := len(h.Negative) - 1; i >= 0; i-- {
			if h.Negative[i] == 0 {
				continue
			}
			labels = append(labels, fmt.Sprintf("-2^%d", i))
			items = append(items, opts.BarData{Value: h.Negative[i]})
		}
		for i, count := range h.Positive {
			if count == 0 {
				continue
			}
			labels = append(labels, fmt.Sprintf("2^%d", i))
			items = append(items, opts.BarData{Value: count})
		}
		return labels, items
	}

	if h := member.ToFloatHistogram(); h != nil {
		for i, count := range h.Buckets {
			if count == 0 {
				continue
			}
			labels = append(labels, fmt.Sprintf("2^%d", i*16-1023))
			items = append(items, opts.BarData{Value: count})
		}
	}

	return labels, items
}

// renderHistogram renders the current member's bucket counts.
func (v *Visualizer) renderHistogram(w http.ResponseWriter, r *http.Request) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: "Sample Histogram",
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    v.hier.Title(),
			Subtitle: "bucket counts of the current member",
		}))

	labels, items := histogramData(v.hier.Current())
	bar.SetXAxis(labels).AddSeries("Samples", items)
	bar.Render(w)
}

// levelChart creates the summary trend of one level.
func (v *Visualizer) levelChart(level int) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    v.hier.Title(),
			Subtitle: fmt.Sprintf("level %d, oldest member first", level),
		}))

	labels := []string{}
	means := []opts.LineData{}
	deviations := []opts.LineData{}

	position := 0
	v.hier.TraverseAll(level, func(member stats.Statistic) {
		labels = append(labels, fmt.Sprintf("%d", position))
		means = append(means, opts.LineData{Value: member.Mean()})
		deviations = append(deviations, opts.LineData{Value: member.StdDev()})
		position++
	})

	chart.SetXAxis(labels).
		AddSeries("Mean", means).
		AddSeries("Std Dev", deviations)
	return chart
}

// renderLevels renders one trend chart per level.
func (v *Visualizer) renderLevels(w http.ResponseWriter, r *http.Request) {
	page := components.NewPage()
	for level := 0; level < v.hier.Levels(); level++ {
		page.AddCharts(v.levelChart(level))
	}
	page.Render(w)
}

// FireUpWeb starts the web server on the given port; it does not
// return unless the server fails.
func (v *Visualizer) FireUpWeb(addr string) error {
	http.HandleFunc("/", v.renderMain)
	http.HandleFunc("/"+histogramRef, v.renderHistogram)
	http.HandleFunc("/"+levelsRef, v.renderLevels)
	return http.ListenAndServe(":"+addr, nil)
}
