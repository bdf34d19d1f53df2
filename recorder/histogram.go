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

// Package recorder takes raw observations or pre-aggregated histogram
// files and produces the (label, count) bin tables consumed by the
// histogram package. It also defines the JSON stats-file format used by
// the command-line tools.
package recorder

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/jonhoo/histogram-sampler/histogram"
)

// Histogram accumulates raw observations into bins by rounding each value
// to the nearest multiple of the bin width.
type Histogram struct {
	binWidth int64
	freq     map[int64]int64
}

// NewHistogram creates an empty histogram for the given bin width.
func NewHistogram(binWidth int64) (*Histogram, error) {
	if binWidth <= 0 {
		return nil, fmt.Errorf("NewHistogram: bin width must be positive; got %d", binWidth)
	}
	return &Histogram{
		binWidth: binWidth,
		freq:     map[int64]int64{},
	}, nil
}

// Record counts one raw observation. Negative values are ignored.
func (h *Histogram) Record(value int64) {
	if value < 0 {
		return
	}
	label := ((value + h.binWidth/2) / h.binWidth) * h.binWidth
	h.freq[label]++
}

// RecordN counts a raw observation that occurred n times. Negative
// values and non-positive occurrence counts are ignored.
func (h *Histogram) RecordN(value int64, n int64) {
	if value < 0 || n <= 0 {
		return
	}
	label := ((value + h.binWidth/2) / h.binWidth) * h.binWidth
	h.freq[label] += n
}

// BinWidth returns the rounding granularity of the histogram.
func (h *Histogram) BinWidth() int64 {
	return h.binWidth
}

// Total returns the number of recorded observations.
func (h *Histogram) Total() int64 {
	total := int64(0)
	for _, freq := range h.freq {
		total += freq
	}
	return total
}

// Bins returns the accumulated (label, count) pairs in ascending label order.
func (h *Histogram) Bins() []histogram.Bin {
	labels := maps.Keys(h.freq)
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	bins := make([]histogram.Bin, 0, len(labels))
	for _, label := range labels {
		bins = append(bins, histogram.Bin{Label: label, Count: h.freq[label]})
	}
	return bins
}
