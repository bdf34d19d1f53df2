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
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/jonhoo/histogram-sampler/logger"
	"github.com/jonhoo/histogram-sampler/recorder"
	"github.com/jonhoo/histogram-sampler/registry"
	"github.com/jonhoo/histogram-sampler/replayer"
	"github.com/jonhoo/histogram-sampler/utils"
)

// ReplayCommand data structure for the replay app
var ReplayCommand = cli.Command{
	Action:    replayAction,
	Name:      "replay",
	Usage:     "draw samples from a stats file and report the drift",
	ArgsUsage: "<stats.json> <num-samples>",
	Flags: []cli.Flag{
		&utils.RandomSeedFlag,
		&utils.OutputFlag,
		&utils.DbFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The replay command requires two arguments:
<stats.json> <num-samples>

<stats.json> is a stats file produced by the record command and
<num-samples> is the number of values to draw from it. The drawn values
are optionally streamed to the output file, one value per line, and the
run summary is optionally recorded in a sqlite3 run registry.`,
}

// replayAction implements sampling from a stats file.
func replayAction(ctx *cli.Context) (err error) {
	cfg, err := utils.NewConfig(ctx, utils.StatsFileSamplesArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Replay")

	stats, err := recorder.Read(cfg.StatsFile)
	if err != nil {
		return err
	}
	smp, err := stats.Sampler()
	if err != nil {
		return err
	}

	seed := cfg.RandomSeed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	log.Infof("Using random seed %v", seed)
	rnd, err := replayer.NewEmpiricalRandomizer(rand.New(rand.NewSource(seed)), smp)
	if err != nil {
		return err
	}

	var sink io.Writer
	if cfg.Output != "" {
		file, ferr := os.Create(cfg.Output)
		if ferr != nil {
			return fmt.Errorf("cannot create output file; %v", ferr)
		}
		defer func() {
			err = errors.Join(err, file.Close())
		}()
		sink = file
	}

	res, err := replayer.Run(replayer.Config{
		Samples:  cfg.Samples,
		BinWidth: stats.BinWidth,
		Sink:     sink,
	}, rnd, log)
	if err != nil {
		return err
	}
	drifts, summary, err := res.Drift(stats.Bins)
	if err != nil {
		return err
	}
	log.Noticef("Total elapsed time: %.3f s, drew %v samples", res.Elapsed.Seconds(), res.Samples)

	utils.NewPrinters().
		AddPrinterToConsole(false, func() string {
			return renderDriftTable(drifts, summary)
		}).
		Print()

	if cfg.Db != "" {
		db, derr := registry.NewRunDB(cfg.Db)
		if derr != nil {
			return derr
		}
		defer func() {
			err = errors.Join(err, db.Close())
		}()
		return db.Add(registry.RunData{
			StatsFile:   cfg.StatsFile,
			BinWidth:    stats.BinWidth,
			TotalWeight: smp.TotalWeight(),
			Samples:     res.Samples,
			Seed:        seed,
			MeanDriftPP: summary.MeanPP,
			MaxDriftPP:  summary.MaxPP,
			ElapsedMs:   res.Elapsed.Milliseconds(),
			Created:     time.Now().Unix(),
		})
	}
	return nil
}

// renderDriftTable formats the per-bin drift of a replay run.
func renderDriftTable(drifts []replayer.BinDrift, summary replayer.DriftSummary) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"bin", "input %", "observed %", "drift pp"})
	for _, d := range drifts {
		t.AppendRow(table.Row{
			d.Label,
			fmt.Sprintf("%.3f", d.InputShare*100.0),
			fmt.Sprintf("%.3f", d.ObservedShare*100.0),
			fmt.Sprintf("%+.3f", d.DriftPP),
		})
	}
	t.AppendFooter(table.Row{"", "", "mean / max pp",
		fmt.Sprintf("%.3f / %.3f", summary.MeanPP, summary.MaxPP)})
	return t.Render()
}
