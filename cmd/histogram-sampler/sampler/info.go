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
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/jonhoo/histogram-sampler/logger"
	"github.com/jonhoo/histogram-sampler/recorder"
	"github.com/jonhoo/histogram-sampler/utils"
)

// InfoCommand data structure for the info app
var InfoCommand = cli.Command{
	Action:    infoAction,
	Name:      "info",
	Usage:     "print the bin table of a stats file",
	ArgsUsage: "<stats.json>",
	Flags: []cli.Flag{
		&utils.OutputFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The info command requires one argument:
<stats.json>

<stats.json> is a stats file produced by the record command. Its bins,
their derived value ranges, and their sampling shares are printed as a
table, to the console and optionally appended to the output file.`,
}

// infoAction implements the inspection of a stats file.
func infoAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.StatsFileArg)
	if err != nil {
		return err
	}
	stats, err := recorder.Read(cfg.StatsFile)
	if err != nil {
		return err
	}
	smp, err := stats.Sampler()
	if err != nil {
		return err
	}

	report := func() string {
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"bin", "range", "count", "share %"})
		for _, b := range stats.Bins {
			lo, hi := b.Range(stats.BinWidth)
			t.AppendRow(table.Row{
				b.Label,
				fmt.Sprintf("[%d, %d)", lo, hi),
				b.Count,
				fmt.Sprintf("%.3f", float64(b.Count)/float64(smp.TotalWeight())*100.0),
			})
		}
		t.AppendFooter(table.Row{"", "total", smp.TotalWeight(), "100.000"})
		return fmt.Sprintf("bin width: %d\n%s", stats.BinWidth, t.Render())
	}

	utils.NewPrinters().
		AddPrinterToConsole(false, report).
		AddPrinterToFile(cfg.Output, report).
		Print()
	return nil
}
