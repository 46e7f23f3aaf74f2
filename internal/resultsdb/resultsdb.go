// Package resultsdb archives finalized sweep rows in an embedded
// sqlite database so repeated sweeps over the same data can be
// compared later without rerunning the analysis.
package resultsdb

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lammps-data/crater.report/internal/analysis"
	"github.com/lammps-data/crater.report/internal/sweep"
)

type DB struct {
	*sql.DB
}

// NewDB opens (creating if needed) the archive at path.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sweep_runs (
			run_id            TEXT PRIMARY KEY,
			base_dir          TEXT,
			tool              TEXT,
			trials            BIGINT,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS sweep_rows (
			run_id            TEXT,
			cutoff            DOUBLE,
			mean_1            DOUBLE,
			mean_2            DOUBLE,
			mean_3            DOUBLE,
			mean_4            DOUBLE,
			mean_5            DOUBLE,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(run_id) REFERENCES sweep_runs(run_id)
		);
	`)
	if err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// BeginRun records a new sweep run and returns its identifier.
func (db *DB) BeginRun(baseDir, tool string, trials int) (string, error) {
	runID := uuid.NewString()
	_, err := db.Exec(
		"INSERT INTO sweep_runs (run_id, base_dir, tool, trials) VALUES (?, ?, ?, ?)",
		runID, baseDir, tool, trials)
	if err != nil {
		return "", fmt.Errorf("record sweep run: %w", err)
	}
	return runID, nil
}

// RecordRow archives one finalized summary row under the given run.
func (db *DB) RecordRow(runID string, row sweep.Row) error {
	if len(row.Mean) != analysis.CutoffRecordLen {
		return fmt.Errorf("row has %d means, want %d", len(row.Mean), analysis.CutoffRecordLen)
	}
	_, err := db.Exec(
		"INSERT INTO sweep_rows (run_id, cutoff, mean_1, mean_2, mean_3, mean_4, mean_5) VALUES (?, ?, ?, ?, ?, ?, ?)",
		runID, row.Cutoff, row.Mean[0], row.Mean[1], row.Mean[2], row.Mean[3], row.Mean[4])
	if err != nil {
		return fmt.Errorf("record sweep row: %w", err)
	}
	return nil
}

// RunRows loads the archived rows of a run in ascending cutoff order.
func (db *DB) RunRows(runID string) ([]sweep.Row, error) {
	rows, err := db.Query(
		"SELECT cutoff, mean_1, mean_2, mean_3, mean_4, mean_5 FROM sweep_rows WHERE run_id = ? ORDER BY cutoff",
		runID)
	if err != nil {
		return nil, fmt.Errorf("load sweep rows: %w", err)
	}
	defer rows.Close()

	var out []sweep.Row
	for rows.Next() {
		row := sweep.Row{Mean: make([]float64, analysis.CutoffRecordLen)}
		if err := rows.Scan(&row.Cutoff, &row.Mean[0], &row.Mean[1], &row.Mean[2], &row.Mean[3], &row.Mean[4]); err != nil {
			return nil, fmt.Errorf("scan sweep row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
