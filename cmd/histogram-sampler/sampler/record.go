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

package sampler

import (
	"github.com/urfave/cli/v2"

	"github.com/jonhoo/histogram-sampler/logger"
	"github.com/jonhoo/histogram-sampler/recorder"
	"github.com/jonhoo/histogram-sampler/utils"
)

// RecordCommand data structure for the record app
var RecordCommand = cli.Command{
	Action:    recordAction,
	Name:      "record",
	Usage:     "build a sampleable stats file from a histogram text file",
	ArgsUsage: "<histogram.dat>",
	Flags: []cli.Flag{
		&utils.BinWidthFlag,
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The record command requires one argument:
<histogram.dat>

<histogram.dat> is a text file with one "value count" pair per line.
Values are rounded to the nearest multiple of the bin width and the
aggregated histogram is written as a stats file.`,
}

// recordAction implements the aggregation of a histogram text file.
func recordAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.DatFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Record")

	pairs, err := recorder.ReadDat(cfg.DatFile)
	if err != nil {
		return err
	}
	h, err := recorder.NewHistogram(cfg.BinWidth)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		h.RecordN(p.Label, p.Count)
	}
	log.Infof("Aggregated %v observations into %v bins", h.Total(), len(h.Bins()))

	stats, err := recorder.NewStats(h.Bins(), cfg.BinWidth)
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output = "./stats.json"
	}
	log.Noticef("Write stats file %v ...", cfg.Output)
	return stats.Write(cfg.Output)
}
