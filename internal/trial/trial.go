// Package trial derives the on-disk layout of one repeated simulation run.
//
// Every trial lives in its own run_{index} directory under a common base
// directory and carries two LAMMPS dump files: the initial state and the
// final state with sputtered clusters removed. The dumps are opaque here;
// only the external analysis tools read them.
package trial

import (
	"fmt"
	"path/filepath"
)

// Conventional dump filenames inside each run directory.
const (
	InitialDumpName = "dump.initial"
	FinalDumpName   = "dump.final_no_cluster"
)

// Trial identifies one simulation run by its 1-based index within a base
// directory. Immutable once constructed; path derivation is pure and does
// not touch the filesystem.
type Trial struct {
	BaseDir string
	Index   int
}

// New returns the trial with the given 1-based index under baseDir.
func New(baseDir string, index int) Trial {
	return Trial{BaseDir: baseDir, Index: index}
}

// Dir returns the run directory for this trial.
func (t Trial) Dir() string {
	return filepath.Join(t.BaseDir, fmt.Sprintf("run_%d", t.Index))
}

// InitialDump returns the path of the initial-state dump file.
func (t Trial) InitialDump() string {
	return filepath.Join(t.Dir(), InitialDumpName)
}

// FinalDump returns the path of the final-state dump file.
func (t Trial) FinalDump() string {
	return filepath.Join(t.Dir(), FinalDumpName)
}
