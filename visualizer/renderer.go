// Copyright 2025 The histogram-sampler Authors
// This file is part of the histogram-sampler workload tooling.
//
// histogram-sampler is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// histogram-sampler is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with histogram-sampler. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/jonhoo/histogram-sampler/recorder"
)

// HTML references for the rendered pages.
const histogramRef = "histogram-stats"
const ecdfRef = "ecdf-stats"
const driftRef = "drift-stats"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Histogram Sampler</title>
  </head>
  <body>
    <h1>Histogram Sampler</h1>
    <ul>
    <li> <h3> <a href="/` + histogramRef + `"> Input Histogram </a> </h3> </li>
    <li> <h3> <a href="/` + ecdfRef + `"> Input vs Sampled eCDF </a> </h3> </li>
    <li> <h3> <a href="/` + driftRef + `"> Per-Bin Drift </a> </h3> </li>
    </ul>
</body>
</html>
`

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// convertECDFData converts CDF points to chart points.
func convertECDFData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// chartOptions returns the shared global options of all charts.
func chartOptions(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeChalk,
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
			Title: title,
		}),
	}
}

// newHistogramChart creates a bar chart of the input bin counts.
func newHistogramChart(stats *recorder.StatsJSON) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(chartOptions(fmt.Sprintf("Input Histogram (bin width %d)", stats.BinWidth))...)
	labels := []string{}
	counts := []opts.BarData{}
	for _, b := range stats.Bins {
		labels = append(labels, fmt.Sprintf("%d", b.Label))
		counts = append(counts, opts.BarData{Value: b.Count})
	}
	chart.SetXAxis(labels).AddSeries("Count", counts)
	return chart
}

// renderHistogram renders the input histogram.
func renderHistogram(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_ = newHistogramChart(view.stats).Render(w)
}

// newECDFChart creates a line chart comparing input and sampled eCDFs.
func newECDFChart(input, sampled [][2]float64) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(chartOptions("Input vs Sampled eCDF")...)
	chart.AddSeries("Input", convertECDFData(input)).
		AddSeries("Sampled", convertECDFData(sampled))
	return chart
}

// renderECDF renders the eCDF comparison.
func renderECDF(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_ = newECDFChart(view.inputECDF, view.sampledECDF).Render(w)
}

// renderDrift renders the per-bin drift of the preview replay.
func renderDrift(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	chart := charts.NewBar()
	title := fmt.Sprintf("Per-Bin Drift of %d Samples (mean %.3fpp, max %.3fpp)",
		previewSamples, view.summary.MeanPP, view.summary.MaxPP)
	chart.SetGlobalOptions(chartOptions(title)...)
	labels := []string{}
	values := []opts.BarData{}
	for _, d := range view.drifts {
		labels = append(labels, fmt.Sprintf("%d", d.Label))
		values = append(values, opts.BarData{Value: d.DriftPP})
	}
	chart.SetXAxis(labels).AddSeries("Drift [pp]", values)
	_ = chart.Render(w)
}

// FireUpWeb produces a data model for the histogram stats and visualizes
// it with a local web-server.
func FireUpWeb(statsJSON *recorder.StatsJSON, addr string) error {
	if err := setViewState(statsJSON); err != nil {
		return err
	}

	// create web server
	http.HandleFunc("/", renderMain)
	http.HandleFunc("/"+histogramRef, renderHistogram)
	http.HandleFunc("/"+ecdfRef, renderECDF)
	http.HandleFunc("/"+driftRef, renderDrift)
	return http.ListenAndServe(":"+addr, nil)
}
