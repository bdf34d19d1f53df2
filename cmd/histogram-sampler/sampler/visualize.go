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
	"github.com/jonhoo/histogram-sampler/visualizer"
)

// VisualizeCommand data structure for the visualize app
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "serve charts of a stats file in a web browser",
	ArgsUsage: "<stats.json>",
	Flags: []cli.Flag{
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command requires one argument:
<stats.json>

<stats.json> is a stats file produced by the record command. The web
server renders its histogram, the input and sampled eCDFs, and the
per-bin drift of a preview replay run.`,
}

// visualizeAction implements the chart server of a stats file.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.StatsFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")

	stats, err := recorder.Read(cfg.StatsFile)
	if err != nil {
		return err
	}
	log.Noticef("Open web browser on port %v", cfg.Port)
	log.Notice("Cancel the process with Ctrl-C")
	return visualizer.FireUpWeb(stats, cfg.Port)
}
