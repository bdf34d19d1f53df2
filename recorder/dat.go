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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jonhoo/histogram-sampler/histogram"
)

// ReadDat parses a pre-aggregated histogram from a text file with one
// "label count" pair per line. Blank lines and lines starting with '#'
// are skipped. This is the format of the trawler data files (e.g.
// votes_per_story.dat).
func ReadDat(filename string) (bins []histogram.Bin, err error) {
	file, fErr := os.Open(filename)
	if fErr != nil {
		return nil, fmt.Errorf("failed opening histogram file %v; %w", filename, fErr)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%v:%d: expected \"label count\", got %q", filename, lineNo, line)
		}
		label, pErr := strconv.ParseInt(fields[0], 10, 64)
		if pErr != nil {
			return nil, errors.Wrapf(pErr, "%v:%d: bad label", filename, lineNo)
		}
		count, pErr := strconv.ParseInt(fields[1], 10, 64)
		if pErr != nil {
			return nil, errors.Wrapf(pErr, "%v:%d: bad count", filename, lineNo)
		}
		bins = append(bins, histogram.Bin{Label: label, Count: count})
	}
	if sErr := scanner.Err(); sErr != nil {
		return nil, fmt.Errorf("failed reading histogram file %v; %w", filename, sErr)
	}
	if len(bins) == 0 {
		return nil, errors.Newf("histogram file %v contains no bins", filename)
	}
	return bins, nil
}
