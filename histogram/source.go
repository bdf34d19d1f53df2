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

// Source supplies the uniform randomness consumed by a Sampler. It is
// satisfied by *math/rand.Rand. A Sampler never retains a Source; callers
// sharing one generator across goroutines must synchronize it themselves.
//
//go:generate mockgen -source source.go -destination source_mock.go -package histogram
type Source interface {
	// Int63n returns a uniformly distributed integer in [0, n).
	// It must not be called with n <= 0.
	Int63n(n int64) int64
}
