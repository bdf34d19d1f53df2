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

// Package utils holds the command-line configuration and output helpers
// shared by the histogram-sampler apps.
package utils

import "github.com/urfave/cli/v2"

var (
	// BinWidthFlag sets the rounding granularity of a histogram.
	BinWidthFlag = cli.Int64Flag{
		Name:  "bin-width",
		Usage: "rounding granularity the histogram was taken with",
		Value: 10,
	}

	// RandomSeedFlag provides a seed for random number generation.
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "set random seed for reproducible runs; a negative value seeds from the clock",
		Value: -1,
	}

	// OutputFlag sets the output file of an app action.
	OutputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output path",
	}

	// DbFlag sets the run-registry database file.
	DbFlag = cli.StringFlag{
		Name:  "db",
		Usage: "sqlite3 database file recording replay-run summaries",
	}

	// PortFlag sets the port of the visualization web server.
	PortFlag = cli.StringFlag{
		Name:    "port",
		Aliases: []string{"v"},
		Usage:   "port of the visualization web server",
		Value:   "8080",
	}
)
