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

// Package registry persists summaries of replay runs in a sqlite3
// database so convergence across runs and seeds can be tracked.
package registry

import (
	"database/sql"
	"fmt"

	// Your main or test packages require this import so the sql package is properly initialized.
	_ "github.com/mattn/go-sqlite3"
)

const (
	// bufferSize of the in-memory buffer for run records
	bufferSize = 100

	// SQL statement for inserting a run record
	insertRunSQL = `
INSERT INTO runs (
	statsFile, binWidth, totalWeight, samples, seed, meanDriftPP, maxDriftPP, elapsedMs, created
) VALUES (
	?, ?, ?, ?, ?, ?, ?, ?, ?
)
`

	// SQL statement for creating the run table
	createSQL = `
CREATE TABLE IF NOT EXISTS runs (
	statsFile TEXT,
	binWidth INTEGER,
	totalWeight INTEGER,
	samples INTEGER,
	seed INTEGER,
	meanDriftPP FLOAT,
	maxDriftPP FLOAT,
	elapsedMs INTEGER,
	created INTEGER
);
`
)

// RunData is one replay-run summary.
type RunData struct {
	StatsFile   string
	BinWidth    int64
	TotalWeight int64
	Samples     int64
	Seed        int64
	MeanDriftPP float64
	MaxDriftPP  float64
	ElapsedMs   int64
	Created     int64
}

// RunDB records replay runs.
//
//go:generate mockgen -source registry.go -destination registry_mock.go -package registry
type RunDB interface {
	Close() error
	Add(data RunData) error
	Flush() error
}

// runDB is a sqlite3-backed run registry.
type runDB struct {
	sql     *sql.DB   // Sqlite3 database
	runStmt *sql.Stmt // Prepared insert statement for a run
	buffer  []RunData // record buffer
}

// NewRunDB constructs a new run registry in the given database file.
func NewRunDB(dbFile string) (RunDB, error) {
	return newRunDB(dbFile)
}

func newRunDB(dbFile string) (*runDB, error) {
	sqlDB, err := sql.Open("sqlite3", dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %v; %v", dbFile, err)
	}
	if _, err = sqlDB.Exec(createSQL); err != nil {
		return nil, fmt.Errorf("failed to create run table; %v", err)
	}
	runStmt, err := sqlDB.Prepare(insertRunSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare a SQL statement for runs; %v", err)
	}
	return &runDB{
		sql:     sqlDB,
		runStmt: runStmt,
		buffer:  make([]RunData, 0, bufferSize),
	}, nil
}

// Close flushes the buffer and closes the registry.
func (db *runDB) Close() error {
	defer func() {
		db.runStmt.Close()
		db.sql.Close()
	}()
	if err := db.Flush(); err != nil {
		return err
	}
	return nil
}

// Add a run record to the registry.
func (db *runDB) Add(data RunData) error {
	db.buffer = append(db.buffer, data)
	if len(db.buffer) == cap(db.buffer) {
		if err := db.Flush(); err != nil {
			return fmt.Errorf("unable to flush run records: %w", err)
		}
	}
	return nil
}

// Flush the buffered run records into the database.
func (db *runDB) Flush() error {
	tx, err := db.sql.Begin()
	if err != nil {
		return err
	}
	for _, data := range db.buffer {
		_, err := tx.Stmt(db.runStmt).Exec(data.StatsFile, data.BinWidth, data.TotalWeight,
			data.Samples, data.Seed, data.MeanDriftPP, data.MaxDriftPP, data.ElapsedMs, data.Created)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	db.buffer = db.buffer[:0]
	return tx.Commit()
}
