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

package histogram

import (
	"math"
	"testing"
)

// TestECDF_Shape checks that the empirical CDF is a monotone piecewise
// linear function spanning the unit square.
func TestECDF_Shape(t *testing.T) {
	s, err := FromBins([]Bin{
		{Label: 0, Count: 100},
		{Label: 10, Count: 80},
		{Label: 20, Count: 40},
		{Label: 30, Count: 30},
	}, 10)
	if err != nil {
		t.Fatalf("cannot construct sampler: %v", err)
	}
	ecdf := s.ECDF()
	if len(ecdf) < 2 {
		t.Fatalf("eCDF too short: %v", ecdf)
	}
	if ecdf[0][0] != 0.0 || ecdf[0][1] != 0.0 {
		t.Fatalf("eCDF must start at (0,0); got (%v,%v)", ecdf[0][0], ecdf[0][1])
	}
	last := len(ecdf) - 1
	if ecdf[last][0] != 1.0 || math.Abs(ecdf[last][1]-1.0) > 1e-9 {
		t.Fatalf("eCDF must end at (1,1); got (%v,%v)", ecdf[last][0], ecdf[last][1])
	}
	for i := 0; i < last; i++ {
		if ecdf[i][0] > ecdf[i+1][0] {
			t.Fatalf("eCDF x-coordinates not monotone at point %d: %v", i, ecdf)
		}
		if ecdf[i][1] > ecdf[i+1][1]+1e-12 {
			t.Fatalf("eCDF y-coordinates not monotone at point %d: %v", i, ecdf)
		}
	}
}

// TestECDF_MassPerBin checks the cumulative probability after each bin.
func TestECDF_MassPerBin(t *testing.T) {
	s, err := FromBins([]Bin{
		{Label: 0, Count: 25},
		{Label: 10, Count: 75},
	}, 10)
	if err != nil {
		t.Fatalf("cannot construct sampler: %v", err)
	}
	// the zero bin ends at value 5 of a domain of 15 with mass 0.25
	ecdf := s.ECDF()
	found := false
	for _, p := range ecdf {
		if math.Abs(p[0]-5.0/15.0) < 1e-9 {
			if math.Abs(p[1]-0.25) > 1e-9 {
				t.Fatalf("cumulative mass after the zero bin: want 0.25, got %v", p[1])
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("no eCDF point at the end of the zero bin: %v", ecdf)
	}
}
