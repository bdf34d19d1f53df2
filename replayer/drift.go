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

package replayer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/jonhoo/histogram-sampler/histogram"
)

// BinDrift reports for one bin how far the observed share of a replay run
// drifted from the share in the input histogram.
type BinDrift struct {
	Label         int64
	InputShare    float64
	ObservedShare float64
	DriftPP       float64 // observed minus input share, in percentage points
}

// DriftSummary aggregates the per-bin drift of a replay run. HeadPP is
// the combined absolute drift of the first two bins; histograms taken
// with a small bin width undercount the narrow zero bin and overcount
// its neighbour during upstream rounding, so a head drift of a few
// percentage points is expected there and is not a sampling defect.
type DriftSummary struct {
	MeanPP   float64
	StdDevPP float64
	MaxPP    float64
	HeadPP   float64
}

// Drift compares the re-bucketed output of a run against the histogram
// the sampler was built from. The bins must be the sampler's input bins.
func (r *Result) Drift(bins []histogram.Bin) ([]BinDrift, DriftSummary, error) {
	if len(bins) == 0 {
		return nil, DriftSummary{}, fmt.Errorf("Drift: no input bins")
	}
	total := int64(0)
	for _, b := range bins {
		total += b.Count
	}
	if total == 0 {
		return nil, DriftSummary{}, fmt.Errorf("Drift: input histogram has no probability mass")
	}

	drifts := make([]BinDrift, 0, len(bins))
	abs := make([]float64, 0, len(bins))
	summary := DriftSummary{}
	for i, b := range bins {
		inputShare := float64(b.Count) / float64(total)
		observedShare := float64(r.Observed[b.Label]) / float64(r.Samples)
		pp := (observedShare - inputShare) * 100.0
		drifts = append(drifts, BinDrift{
			Label:         b.Label,
			InputShare:    inputShare,
			ObservedShare: observedShare,
			DriftPP:       pp,
		})
		abs = append(abs, math.Abs(pp))
		if math.Abs(pp) > summary.MaxPP {
			summary.MaxPP = math.Abs(pp)
		}
		if i < 2 {
			summary.HeadPP += math.Abs(pp)
		}
	}
	summary.MeanPP = stat.Mean(abs, nil)
	summary.StdDevPP = stat.StdDev(abs, nil)
	if math.IsNaN(summary.StdDevPP) {
		summary.StdDevPP = 0.0
	}
	return drifts, summary, nil
}
