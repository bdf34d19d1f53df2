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

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jonhoo/histogram-sampler/cmd/histogram-sampler/sampler"
)

var app = cli.App{
	Name:      "Histogram Sampler",
	HelpName:  "histogram-sampler",
	Usage:     "reconstruct a sampleable distribution from a binned histogram",
	Copyright: "(c) 2025 The histogram-sampler Authors",
	Commands: []*cli.Command{
		&sampler.RecordCommand,
		&sampler.ReplayCommand,
		&sampler.InfoCommand,
		&sampler.VisualizeCommand,
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
