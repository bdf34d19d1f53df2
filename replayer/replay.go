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
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/jonhoo/histogram-sampler/logger"
)

// reportFrequency sets after how many samples a progress message is written.
const reportFrequency = 1_000_000

// Config parameterizes one replay run.
type Config struct {
	Samples  int64     // number of values to draw
	BinWidth int64     // bucket width for the observed histogram
	Sink     io.Writer // optional destination for the value stream, one value per line
}

// Result holds the outcome of a replay run.
type Result struct {
	Samples  int64           // number of values drawn
	BinWidth int64           // bucket width used for re-bucketing
	Observed map[int64]int64 // sampled values re-bucketed by rounding to the nearest label
	Elapsed  time.Duration
}

// Run draws cfg.Samples values from the randomizer, streams them to the
// sink if one is configured, and re-buckets them by rounding each value
// to the nearest multiple of the bin width.
func Run(cfg Config, rand Randomizer, log *logger.Logger) (*Result, error) {
	if cfg.Samples <= 0 {
		return nil, fmt.Errorf("Run: number of samples must be greater than zero; got %d", cfg.Samples)
	}
	if cfg.BinWidth <= 0 {
		return nil, fmt.Errorf("Run: bin width must be positive; got %d", cfg.BinWidth)
	}
	if rand == nil {
		return nil, fmt.Errorf("Run: randomizer cannot be nil")
	}

	var out *bufio.Writer
	if cfg.Sink != nil {
		out = bufio.NewWriter(cfg.Sink)
	}

	observed := map[int64]int64{}
	start := time.Now()
	for i := int64(0); i < cfg.Samples; i++ {
		v := rand.SampleValue()
		label := ((v + cfg.BinWidth/2) / cfg.BinWidth) * cfg.BinWidth
		observed[label]++
		if out != nil {
			if _, err := fmt.Fprintln(out, v); err != nil {
				return nil, fmt.Errorf("Run: failed writing value stream; %w", err)
			}
		}
		if log != nil && (i+1)%reportFrequency == 0 {
			hours, minutes, seconds := logger.ParseTime(time.Since(start))
			log.Infof("Elapsed time: %v:%02d:%02d; %d of %d samples drawn", hours, minutes, seconds, i+1, cfg.Samples)
		}
	}
	if out != nil {
		if err := out.Flush(); err != nil {
			return nil, fmt.Errorf("Run: failed flushing value stream; %w", err)
		}
	}

	return &Result{
		Samples:  cfg.Samples,
		BinWidth: cfg.BinWidth,
		Observed: observed,
		Elapsed:  time.Since(start),
	}, nil
}
