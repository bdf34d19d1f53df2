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

package recorder

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/jonhoo/histogram-sampler/histogram"
)

const statsFileID = "histogram"

// StatsJSON is the on-disk representation of an aggregated histogram.
type StatsJSON struct {
	FileId   string          `json:"FileId"` // file identification
	BinWidth int64           `json:"binWidth"`
	Bins     []histogram.Bin `json:"bins"`
	ECDF     [][2]float64    `json:"ecdf"` // eCDF of the implied value distribution
}

// MarshalJSON ensures the FileId is populated before serialising.
func (s StatsJSON) MarshalJSON() ([]byte, error) {
	if s.FileId == "" {
		s.FileId = statsFileID
	}
	type alias StatsJSON
	return json.Marshal(alias(s))
}

// UnmarshalJSON validates the FileId while deserialising.
func (s *StatsJSON) UnmarshalJSON(data []byte) error {
	type alias StatsJSON
	var tmp alias
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.FileId == "" {
		return fmt.Errorf("StatsJSON: missing FileId")
	}
	if tmp.FileId != statsFileID {
		return fmt.Errorf("StatsJSON: unexpected FileId %q", tmp.FileId)
	}
	*s = StatsJSON(tmp)
	return nil
}

// NewStats produces the stats for a bin table. The bins must form a
// samplable histogram; the eCDF is derived from a sampler over them.
func NewStats(bins []histogram.Bin, binWidth int64) (*StatsJSON, error) {
	s, err := histogram.FromBins(bins, binWidth)
	if err != nil {
		return nil, fmt.Errorf("cannot aggregate stats; %w", err)
	}
	return &StatsJSON{
		FileId:   statsFileID,
		BinWidth: binWidth,
		Bins:     s.Bins(),
		ECDF:     s.ECDF(),
	}, nil
}

// Sampler constructs the sampler for the stats' bin table.
func (s *StatsJSON) Sampler() (*histogram.Sampler, error) {
	return histogram.FromBins(s.Bins, s.BinWidth)
}

// Read a stats file in JSON format.
func Read(filename string) (stats *StatsJSON, err error) {
	file, fErr := os.Open(filename)
	if fErr != nil {
		return nil, fmt.Errorf("failed opening stats file %v; %w", filename, fErr)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)
	contents, rErr := io.ReadAll(file)
	if rErr != nil {
		return nil, fmt.Errorf("failed reading stats file; %w", rErr)
	}
	var statsJSON StatsJSON
	if uErr := json.Unmarshal(contents, &statsJSON); uErr != nil {
		return nil, fmt.Errorf("cannot unmarshal stats; %w", uErr)
	}
	return &statsJSON, nil
}

// Write a stats file in JSON format.
func (s *StatsJSON) Write(filename string) (err error) {
	f, fErr := os.Create(filename)
	if fErr != nil {
		return fmt.Errorf("cannot open JSON file; %w", fErr)
	}
	defer func(f *os.File) {
		err = errors.Join(err, f.Close())
	}(f)
	jOut, mErr := json.MarshalIndent(s, "", "    ")
	if mErr != nil {
		return fmt.Errorf("failed to convert JSON; %w", mErr)
	}
	if _, err = fmt.Fprintln(f, string(jOut)); err != nil {
		return fmt.Errorf("failed to write file; %w", err)
	}
	return nil
}
