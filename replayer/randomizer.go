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

// Package replayer turns a histogram sampler into a synthetic workload
// stream and measures how well the stream reproduces the input histogram.
package replayer

import (
	"fmt"
	"math/rand"

	"github.com/jonhoo/histogram-sampler/histogram"
)

// Randomizer produces the values of a synthetic workload.
type Randomizer interface {
	SampleValue() int64 // sample one value from the workload distribution
}

// EmpiricalRandomizer binds a sampler to a random generator.
type EmpiricalRandomizer struct {
	rg      *rand.Rand
	sampler *histogram.Sampler
}

// NewEmpiricalRandomizer creates a new randomizer for a sampler.
func NewEmpiricalRandomizer(rg *rand.Rand, sampler *histogram.Sampler) (*EmpiricalRandomizer, error) {
	if rg == nil {
		return nil, fmt.Errorf("NewEmpiricalRandomizer: random generator cannot be nil")
	}
	if sampler == nil {
		return nil, fmt.Errorf("NewEmpiricalRandomizer: sampler cannot be nil")
	}
	return &EmpiricalRandomizer{
		rg:      rg,
		sampler: sampler,
	}, nil
}

// SampleValue samples one value from the histogram distribution.
func (r *EmpiricalRandomizer) SampleValue() int64 {
	return r.sampler.Sample(r.rg)
}
