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
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"

	"github.com/jonhoo/histogram-sampler/utils"
)

func TestCmd_RunVisualizeCommand(t *testing.T) {
	// given
	statsFile := writeStatsFile(t)
	app := cli.NewApp()
	app.Commands = []*cli.Command{&VisualizeCommand}
	port := "8182"
	args := utils.NewArgs("test").
		Arg(VisualizeCommand.Name).
		Flag(utils.PortFlag.Name, port).
		Arg(statsFile).
		Build()

	// create a context with timeout to prevent the test from hanging
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// channel to communicate errors from the goroutine
	errChan := make(chan error, 1)

	// start the web server in a goroutine since app.Run is blocking
	go func() {
		errChan <- app.Run(args)
	}()

	serverURL := fmt.Sprintf("http://localhost:%s", port)

	// try to connect to the server with retries
	var resp *http.Response
	var err error
	maxRetries := 10
	retryDelay := 500 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		select {
		case <-ctx.Done():
			t.Fatal("Test timeout reached while waiting for server to start")
		case err := <-errChan:
			if err != nil {
				t.Fatalf("Server failed to start: %v", err)
			}
		default:
			client := &http.Client{Timeout: 2 * time.Second}
			resp, err = client.Get(serverURL)
			if err == nil {
				break
			}
			time.Sleep(retryDelay)
		}
		if resp != nil {
			break
		}
	}

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, resp.Body.Close())
}

func TestCmd_VisualizeCommandRejectsMissingFile(t *testing.T) {
	app := cli.NewApp()
	app.Commands = []*cli.Command{&VisualizeCommand}
	args := utils.NewArgs("test").
		Arg(VisualizeCommand.Name).
		Arg(filepath.Join(t.TempDir(), "no-such.json")).
		Build()
	assert.Error(t, app.Run(args))
}
