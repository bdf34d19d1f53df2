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

package histogram

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"go.uber.org/mock/gomock"
)

// scriptedSource replays a fixed sequence of draws and records the bounds
// it was asked for.
type scriptedSource struct {
	draws  []int64
	bounds []int64
}

func (s *scriptedSource) Int63n(n int64) int64 {
	if len(s.draws) == 0 {
		panic("scripted source exhausted")
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	s.bounds = append(s.bounds, n)
	return v
}

// TestFromBins_RejectsInvalidInput checks that no sampler is produced for
// malformed histograms.
func TestFromBins_RejectsInvalidInput(t *testing.T) {
	valid := []Bin{{Label: 0, Count: 1}, {Label: 10, Count: 2}}
	for _, tc := range []struct {
		name  string
		bins  []Bin
		width int64
	}{
		{"zero bin width", valid, 0},
		{"negative bin width", valid, -10},
		{"empty bin list", []Bin{}, 10},
		{"all-zero counts", []Bin{{Label: 0, Count: 0}, {Label: 10, Count: 0}}, 10},
		{"negative label", []Bin{{Label: -10, Count: 1}}, 10},
		{"negative count", []Bin{{Label: 10, Count: -1}}, 10},
		{"duplicate label", []Bin{{Label: 10, Count: 1}, {Label: 10, Count: 2}}, 10},
		{"empty zero-bin range", []Bin{{Label: 0, Count: 1}, {Label: 1, Count: 1}}, 1},
		{"count overflow", []Bin{{Label: 0, Count: math.MaxInt64}, {Label: 10, Count: 1}}, 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := FromBins(tc.bins, tc.width)
			if err == nil {
				t.Fatalf("want construction error, got nil")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("error does not wrap ErrInvalidInput: %v", err)
			}
			if s != nil {
				t.Fatalf("want nil sampler on error, got %v", s)
			}
		})
	}
}

// TestFromBins_SortsAndAccumulates checks that the bin table is ordered
// and that the total weight conserves the input counts.
func TestFromBins_SortsAndAccumulates(t *testing.T) {
	s, err := FromBins([]Bin{
		{Label: 20, Count: 40},
		{Label: 0, Count: 100},
		{Label: 30, Count: 30},
		{Label: 10, Count: 80},
	}, 10)
	if err != nil {
		t.Fatalf("valid histogram: want nil error, got %v", err)
	}
	if got := s.BinWidth(); got != 10 {
		t.Fatalf("bin width: want 10, got %d", got)
	}
	if got := s.NumBins(); got != 4 {
		t.Fatalf("number of bins: want 4, got %d", got)
	}
	if got := s.TotalWeight(); got != 250 {
		t.Fatalf("total weight: want 250, got %d", got)
	}
	bins := s.Bins()
	sum := int64(0)
	for i := range bins {
		if i > 0 && bins[i-1].Label >= bins[i].Label {
			t.Fatalf("bins not in ascending label order: %v", bins)
		}
		sum += bins[i].Count
	}
	if sum != s.TotalWeight() {
		t.Fatalf("count sum (%d) mismatches total weight (%d)", sum, s.TotalWeight())
	}
}

// TestBin_Range checks the derived value ranges, in particular the narrow
// zero-label bin.
func TestBin_Range(t *testing.T) {
	if lo, hi := (Bin{Label: 0}).Range(10); lo != 0 || hi != 5 {
		t.Fatalf("zero bin, width 10: want [0,5), got [%d,%d)", lo, hi)
	}
	if lo, hi := (Bin{Label: 0}).Range(5); lo != 0 || hi != 2 {
		t.Fatalf("zero bin, odd width 5: want [0,2), got [%d,%d)", lo, hi)
	}
	if lo, hi := (Bin{Label: 30}).Range(10); lo != 25 || hi != 35 {
		t.Fatalf("bin 30, width 10: want [25,35), got [%d,%d)", lo, hi)
	}
	if lo, hi := (Bin{Label: 30}).Range(10); hi-lo != 10 {
		t.Fatalf("non-zero bin width: want 10, got %d", hi-lo)
	}
}

// TestSample_RangeContainment draws many values and checks that each one
// lies in the value range of the bin it was drawn from.
func TestSample_RangeContainment(t *testing.T) {
	bins := []Bin{
		{Label: 0, Count: 100},
		{Label: 10, Count: 80},
		{Label: 20, Count: 40},
		{Label: 30, Count: 30},
	}
	s, err := FromBins(bins, 10)
	if err != nil {
		t.Fatalf("cannot construct sampler: %v", err)
	}
	rg := rand.New(rand.NewSource(99))
	for i := 0; i < 10000; i++ {
		v := s.Sample(rg)
		if v < 0 {
			t.Fatalf("negative value sampled: %d", v)
		}
		if v >= 35 {
			t.Fatalf("value %d exceeds the upper bound of the last bin", v)
		}
		// the value must round back to a label of the histogram
		label := ((v + 5) / 10) * 10
		found := false
		for _, b := range bins {
			if b.Label == label {
				lo, hi := b.Range(10)
				if v < lo || v >= hi {
					t.Fatalf("value %d outside range [%d,%d) of bin %d", v, lo, hi, b.Label)
				}
				found = true
			}
		}
		if !found {
			t.Fatalf("value %d rounds to label %d which is not a bin", v, label)
		}
	}
}

// TestSample_DeterministicDraws pins bin selection and within-bin value
// selection for a scripted draw sequence.
func TestSample_DeterministicDraws(t *testing.T) {
	s, err := FromBins([]Bin{
		{Label: 0, Count: 2},
		{Label: 10, Count: 3},
		{Label: 20, Count: 5},
	}, 10)
	if err != nil {
		t.Fatalf("cannot construct sampler: %v", err)
	}
	// cumulative counts are [2,5,10]; ranges are [0,5), [5,15), [15,25)
	for _, tc := range []struct {
		name   string
		draws  []int64
		bounds []int64
		want   int64
	}{
		{"first slot selects bin 0", []int64{0, 3}, []int64{10, 5}, 3},
		{"last slot of bin 0", []int64{1, 4}, []int64{10, 5}, 4},
		{"first slot of bin 10", []int64{2, 0}, []int64{10, 10}, 5},
		{"middle of bin 10", []int64{4, 7}, []int64{10, 10}, 12},
		{"last slot selects bin 20", []int64{9, 9}, []int64{10, 10}, 24},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptedSource{draws: tc.draws}
			if got := s.Sample(src); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
			if len(src.bounds) != 2 {
				t.Fatalf("want exactly two draws, got %d", len(src.bounds))
			}
			for i := range tc.bounds {
				if src.bounds[i] != tc.bounds[i] {
					t.Fatalf("draw %d: want bound %d, got %d", i, tc.bounds[i], src.bounds[i])
				}
			}
		})
	}
}

// TestSample_MockSource pins one sampling call with a gomock source.
func TestSample_MockSource(t *testing.T) {
	s, err := FromBins([]Bin{
		{Label: 0, Count: 2},
		{Label: 10, Count: 3},
		{Label: 20, Count: 5},
	}, 10)
	if err != nil {
		t.Fatalf("cannot construct sampler: %v", err)
	}
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Int63n(int64(10)).Return(int64(4)),
		src.EXPECT().Int63n(int64(10)).Return(int64(7)),
	)
	if got := s.Sample(src); got != 12 {
		t.Fatalf("want 12, got %d", got)
	}
}

// TestSample_ZeroCountBinNeverSelected checks that a zero-count bin
// contributes no probability mass.
func TestSample_ZeroCountBinNeverSelected(t *testing.T) {
	s, err := FromBins([]Bin{
		{Label: 0, Count: 5},
		{Label: 10, Count: 0},
		{Label: 20, Count: 5},
	}, 10)
	if err != nil {
		t.Fatalf("cannot construct sampler: %v", err)
	}
	rg := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		v := s.Sample(rg)
		if v >= 5 && v < 15 {
			t.Fatalf("sampled value %d from the zero-count bin", v)
		}
	}
}
