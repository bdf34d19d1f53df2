// Copyright 2024 The histogram-sampler Authors
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

// Package histogram reconstructs a sampleable value distribution from a
// lossy histogram summary. A histogram of the form (label, count), where
// each label is a raw value rounded to the nearest multiple of the bin
// width, is turned into a Sampler that produces an unbounded stream of
// synthetic values whose empirical distribution converges to that of the
// data the histogram was taken from.
//
// Sampling is a two-stage process. First a bin is selected with a
// probability proportional to its count (discrete inverse-CDF method over
// the cumulative bin counts). Then a value is drawn uniformly from the
// half-open interval of raw values that round to the selected bin's label.
//
// Note that when the bin width is small (<= ~10), the zero-label bin only
// covers [0, width/2) since any larger value rounds to the next label.
// Histograms taken over such data tend to undercount the first bin and
// overcount the second by a few percentage points. The sampler reproduces
// the supplied counts as-is; it does not attempt to re-weight the first
// two bins.
package histogram

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidInput is wrapped by all construction errors of FromBins.
var ErrInvalidInput = errors.New("invalid histogram input")

// Bin is a histogram bucket: a rounded label and the number of original
// observations that rounded to it. A count of zero is legal and denotes a
// bin with no probability mass.
type Bin struct {
	Label int64 `json:"label"`
	Count int64 `json:"count"`
}

// Range returns the half-open interval [lo, hi) of raw values that round
// to the bin's label for the given bin width. The zero-label bin only
// covers [0, width/2); every larger value rounds to the next label.
func (b Bin) Range(binWidth int64) (int64, int64) {
	if b.Label == 0 {
		return 0, binWidth / 2
	}
	return b.Label - binWidth/2, b.Label + binWidth/2
}

// Sampler draws values according to a histogram distribution. It is
// immutable after construction and may be shared by concurrent readers;
// each call site must bring its own Source.
type Sampler struct {
	bins     []Bin   // bins in ascending label order
	binWidth int64   // rounding granularity of the original histogram
	total    int64   // sum of all bin counts
	cum      []int64 // cum[i] is the sum of counts of bins[0..i]
}

// FromBins creates a Sampler from a histogram given as (label, count)
// pairs and the bin width used when the histogram was taken. The pairs
// need not be sorted. Construction fails with an error wrapping
// ErrInvalidInput if the bin width is not positive, the histogram is
// empty, a label or count is negative, a label occurs more than once, a
// bin with a positive count has an empty value range, the counts overflow
// an int64, or no bin has a positive count.
//
// Bins are validated individually; the stricter precondition that the bin
// ranges tile the non-negative integers without gaps (i.e. that the label
// spacing matches the declared bin width) is trusted, not checked.
func FromBins(bins []Bin, binWidth int64) (*Sampler, error) {
	if binWidth <= 0 {
		return nil, fmt.Errorf("%w: bin width must be positive; got %d", ErrInvalidInput, binWidth)
	}
	if len(bins) == 0 {
		return nil, fmt.Errorf("%w: no bins", ErrInvalidInput)
	}
	sorted := make([]Bin, len(bins))
	copy(sorted, bins)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Label < sorted[j].Label })

	cum := make([]int64, len(sorted))
	total := int64(0)
	for i, b := range sorted {
		if b.Label < 0 {
			return nil, fmt.Errorf("%w: negative label %d", ErrInvalidInput, b.Label)
		}
		if b.Count < 0 {
			return nil, fmt.Errorf("%w: negative count %d for label %d", ErrInvalidInput, b.Count, b.Label)
		}
		if i > 0 && sorted[i-1].Label == b.Label {
			return nil, fmt.Errorf("%w: duplicate label %d", ErrInvalidInput, b.Label)
		}
		if lo, hi := b.Range(binWidth); b.Count > 0 && lo >= hi {
			return nil, fmt.Errorf("%w: bin %d has count %d but an empty value range", ErrInvalidInput, b.Label, b.Count)
		}
		if b.Count > math.MaxInt64-total {
			return nil, fmt.Errorf("%w: total count overflows at label %d", ErrInvalidInput, b.Label)
		}
		total += b.Count
		cum[i] = total
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: all bins have a zero count", ErrInvalidInput)
	}
	return &Sampler{
		bins:     sorted,
		binWidth: binWidth,
		total:    total,
		cum:      cum,
	}, nil
}

// Sample returns one value drawn according to the histogram distribution.
// It consumes exactly two draws from the supplied source: one to select a
// bin weighted by its count, and one to pick a value uniformly within the
// selected bin's range. Sample cannot fail on a constructed Sampler.
func (s *Sampler) Sample(src Source) int64 {
	r := src.Int63n(s.total)
	// select the first bin whose cumulative count exceeds r; a zero-count
	// bin occupies an empty sub-range of [0, total) and is never selected
	i := sort.Search(len(s.cum), func(i int) bool { return s.cum[i] > r })
	lo, hi := s.bins[i].Range(s.binWidth)
	return lo + src.Int63n(hi-lo)
}

// BinWidth returns the rounding granularity of the underlying histogram.
func (s *Sampler) BinWidth() int64 {
	return s.binWidth
}

// TotalWeight returns the sum of all bin counts, i.e. the size of the
// discrete probability space used for bin selection.
func (s *Sampler) TotalWeight() int64 {
	return s.total
}

// NumBins returns the number of bins in the histogram.
func (s *Sampler) NumBins() int {
	return len(s.bins)
}

// Bins returns a copy of the bin table in ascending label order.
func (s *Sampler) Bins() []Bin {
	bins := make([]Bin, len(s.bins))
	copy(bins, s.bins)
	return bins
}
