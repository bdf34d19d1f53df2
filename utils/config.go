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

package utils

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/jonhoo/histogram-sampler/logger"
)

// ArgMode defines the positional arguments an app action expects.
type ArgMode int

const (
	NoArgs              ArgMode = iota
	DatFileArg                  // <histogram.dat>
	StatsFileArg                // <stats.json>
	StatsFileSamplesArg         // <stats.json> <num-samples>
)

// Config holds the parsed command-line options of an app action.
type Config struct {
	LogLevel   string
	BinWidth   int64
	RandomSeed int64
	Output     string
	Db         string
	Port       string

	DatFile   string // positional histogram text file
	StatsFile string // positional stats file
	Samples   int64  // positional sample count
}

// NewConfig parses the flags and positional arguments of an app action.
func NewConfig(ctx *cli.Context, mode ArgMode) (*Config, error) {
	cfg := &Config{
		LogLevel:   ctx.String(logger.LogLevelFlag.Name),
		BinWidth:   ctx.Int64(BinWidthFlag.Name),
		RandomSeed: ctx.Int64(RandomSeedFlag.Name),
		Output:     ctx.String(OutputFlag.Name),
		Db:         ctx.String(DbFlag.Name),
		Port:       ctx.String(PortFlag.Name),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = logger.LogLevelFlag.Value
	}

	switch mode {
	case NoArgs:
		if ctx.Args().Len() != 0 {
			return nil, fmt.Errorf("command expects no arguments")
		}
	case DatFileArg:
		if ctx.Args().Len() != 1 {
			return nil, fmt.Errorf("command expects a histogram file as argument")
		}
		cfg.DatFile = ctx.Args().Get(0)
	case StatsFileArg:
		if ctx.Args().Len() != 1 {
			return nil, fmt.Errorf("command expects a stats file as argument")
		}
		cfg.StatsFile = ctx.Args().Get(0)
	case StatsFileSamplesArg:
		if ctx.Args().Len() != 2 {
			return nil, fmt.Errorf("command expects a stats file and a sample count as arguments")
		}
		cfg.StatsFile = ctx.Args().Get(0)
		samples, err := strconv.ParseInt(ctx.Args().Get(1), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("sample count is not an integer; %v", err)
		}
		if samples <= 0 {
			return nil, fmt.Errorf("sample count must be greater than zero")
		}
		cfg.Samples = samples
	default:
		return nil, fmt.Errorf("unknown argument mode %d", mode)
	}
	return cfg, nil
}
