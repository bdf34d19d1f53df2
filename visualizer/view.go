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

// Package visualizer renders the distribution of a stats file, and of a
// preview replay drawn from it, as charts served by a local web server.
package visualizer

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/jonhoo/histogram-sampler/histogram"
	"github.com/jonhoo/histogram-sampler/recorder"
	"github.com/jonhoo/histogram-sampler/replayer"
)

const (
	// previewSamples is the size of the replay drawn for the sampled-side charts.
	previewSamples = 200000

	// previewSeed fixes the preview replay so repeated page loads agree.
	previewSeed = 1
)

type viewState struct {
	stats       *recorder.StatsJSON
	inputECDF   [][2]float64
	sampledECDF [][2]float64
	drifts      []replayer.BinDrift
	summary     replayer.DriftSummary
}

var (
	currentMu    sync.RWMutex
	currentState *viewState
)

func setViewState(stats *recorder.StatsJSON) error {
	if stats == nil {
		return fmt.Errorf("visualizer: stats are nil")
	}
	derived, err := buildViewState(stats)
	if err != nil {
		return err
	}
	currentMu.Lock()
	currentState = derived
	currentMu.Unlock()
	return nil
}

func currentView() (*viewState, error) {
	currentMu.RLock()
	defer currentMu.RUnlock()
	if currentState == nil {
		return nil, fmt.Errorf("visualizer: no stats loaded")
	}
	return currentState, nil
}

// buildViewState derives the chart model: the input histogram's eCDF, a
// preview replay, and the eCDF and drift of the replay's output.
func buildViewState(stats *recorder.StatsJSON) (*viewState, error) {
	sampler, err := stats.Sampler()
	if err != nil {
		return nil, fmt.Errorf("visualizer: construct sampler: %w", err)
	}

	rnd, err := replayer.NewEmpiricalRandomizer(rand.New(rand.NewSource(previewSeed)), sampler)
	if err != nil {
		return nil, fmt.Errorf("visualizer: construct randomizer: %w", err)
	}
	res, err := replayer.Run(replayer.Config{
		Samples:  previewSamples,
		BinWidth: stats.BinWidth,
	}, rnd, nil)
	if err != nil {
		return nil, fmt.Errorf("visualizer: preview replay: %w", err)
	}

	// re-aggregate the replay output so its eCDF is comparable with the input
	observed := make([]histogram.Bin, 0, len(res.Observed))
	for label, count := range res.Observed {
		observed = append(observed, histogram.Bin{Label: label, Count: count})
	}
	sampledStats, err := recorder.NewStats(observed, stats.BinWidth)
	if err != nil {
		return nil, fmt.Errorf("visualizer: aggregate preview replay: %w", err)
	}

	drifts, summary, err := res.Drift(stats.Bins)
	if err != nil {
		return nil, fmt.Errorf("visualizer: drift: %w", err)
	}

	return &viewState{
		stats:       stats,
		inputECDF:   sampler.ECDF(),
		sampledECDF: sampledStats.ECDF,
		drifts:      drifts,
		summary:     summary,
	}, nil
}
