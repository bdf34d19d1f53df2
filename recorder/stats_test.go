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
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jonhoo/histogram-sampler/histogram"
)

var testBins = []histogram.Bin{
	{Label: 0, Count: 100},
	{Label: 10, Count: 80},
	{Label: 20, Count: 40},
	{Label: 30, Count: 30},
}

// TestStats_WriteReadRoundTrip writes stats to a file and reads them back.
func TestStats_WriteReadRoundTrip(t *testing.T) {
	stats, err := NewStats(testBins, 10)
	if err != nil {
		t.Fatalf("cannot create stats: %v", err)
	}
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := stats.Write(path); err != nil {
		t.Fatalf("cannot write stats file: %v", err)
	}
	read, err := Read(path)
	if err != nil {
		t.Fatalf("cannot read stats file: %v", err)
	}
	if read.BinWidth != stats.BinWidth {
		t.Fatalf("bin width: want %d, got %d", stats.BinWidth, read.BinWidth)
	}
	if !reflect.DeepEqual(read.Bins, stats.Bins) {
		t.Fatalf("bins: want %v, got %v", stats.Bins, read.Bins)
	}
	if !reflect.DeepEqual(read.ECDF, stats.ECDF) {
		t.Fatalf("ecdf mismatch after round trip")
	}
}

// TestStats_RejectsWrongFileId checks the FileId validation.
func TestStats_RejectsWrongFileId(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.json")
	if err := os.WriteFile(path, []byte(`{"FileId":"state","binWidth":10}`), 0644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Fatalf("wrong FileId: want error, got nil")
	}
	path = filepath.Join(t.TempDir(), "missing.json")
	if err := os.WriteFile(path, []byte(`{"binWidth":10}`), 0644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Fatalf("missing FileId: want error, got nil")
	}
}

// TestStats_MarshalPopulatesFileId checks the default file identifier.
func TestStats_MarshalPopulatesFileId(t *testing.T) {
	out, err := json.Marshal(StatsJSON{BinWidth: 10, Bins: testBins})
	if err != nil {
		t.Fatalf("cannot marshal stats: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("cannot unmarshal probe: %v", err)
	}
	if m["FileId"] != statsFileID {
		t.Fatalf("FileId: want %q, got %v", statsFileID, m["FileId"])
	}
}

// TestStats_SamplerFromStats checks that stats reconstruct a working sampler.
func TestStats_SamplerFromStats(t *testing.T) {
	stats, err := NewStats(testBins, 10)
	if err != nil {
		t.Fatalf("cannot create stats: %v", err)
	}
	s, err := stats.Sampler()
	if err != nil {
		t.Fatalf("cannot construct sampler from stats: %v", err)
	}
	if s.TotalWeight() != 250 {
		t.Fatalf("total weight: want 250, got %d", s.TotalWeight())
	}
}

// TestStats_RejectsUnsamplableBins checks that aggregation fails for
// histograms with no probability mass.
func TestStats_RejectsUnsamplableBins(t *testing.T) {
	if _, err := NewStats([]histogram.Bin{{Label: 0, Count: 0}}, 10); err == nil {
		t.Fatalf("zero-mass histogram: want error, got nil")
	}
}

// TestReadDat parses the trawler text format.
func TestReadDat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "votes.dat")
	contents := "# votes per story\n0 100\n10 80\n\n20 40\n30 30\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}
	bins, err := ReadDat(path)
	if err != nil {
		t.Fatalf("cannot parse dat file: %v", err)
	}
	if !reflect.DeepEqual(bins, testBins) {
		t.Fatalf("bins: want %v, got %v", testBins, bins)
	}
}

// TestReadDat_Malformed rejects unparsable lines and empty files.
func TestReadDat_Malformed(t *testing.T) {
	dir := t.TempDir()
	for name, contents := range map[string]string{
		"three-fields.dat": "0 100 extra\n",
		"bad-label.dat":    "x 100\n",
		"bad-count.dat":    "0 x\n",
		"empty.dat":        "# only a comment\n",
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatalf("cannot write fixture: %v", err)
		}
		if _, err := ReadDat(path); err == nil {
			t.Fatalf("%s: want parse error, got nil", name)
		}
	}
}
