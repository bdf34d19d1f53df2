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
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// NumECDFPoints sets the number of points kept in a simplified empirical
// cumulative distribution function.
const NumECDFPoints = 300

// ECDF computes the empirical cumulative distribution function of the
// value distribution implied by the sampler as a piecewise linear
// function in the unit square. The x-axis is the value range normalized
// by the largest producible value; the y-axis is cumulative probability.
// The function is reduced to at most NumECDFPoints points using the
// Visvalingam-Whyatt algorithm. See:
// https://en.wikipedia.org/wiki/Visvalingam-Whyatt_algorithm
func (s *Sampler) ECDF() [][2]float64 {
	// the last bin bounds the producible values
	_, domain := s.bins[len(s.bins)-1].Range(s.binWidth)

	ls := orb.LineString{}
	ls = append(ls, orb.Point{0.0, 0.0})

	sum := 0.0 // Kahan's summation for accumulated probabilities
	c := 0.0   // compensation term of Kahan's algorithm
	for _, b := range s.bins {
		f := float64(b.Count) / float64(s.total)
		_, hi := b.Range(s.binWidth)
		x := float64(hi) / float64(domain)

		y := f - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		ls = append(ls, orb.Point{x, sum})
	}
	ls = append(ls, orb.Point{1.0, 1.0})

	simplifier := simplify.VisvalingamKeep(NumECDFPoints)
	simplified := simplifier.Simplify(ls).(orb.LineString)

	ecdf := make([][2]float64, len(simplified))
	for i := range simplified {
		ecdf[i] = [2]float64(simplified[i])
	}
	return ecdf
}
