package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/vinit-solanki/BhashniHackathon-MHGRS/modules/redressal/seed"
)

func TestExitCode(t *testing.T) {
	if got := exitCode(nil); got != exitOK {
		t.Fatalf("exitCode(nil) = %d, want %d", got, exitOK)
	}
	if got := exitCode(errors.New("plain")); got != 1 {
		t.Fatalf("exitCode(plain) = %d, want 1", got)
	}
	if got := exitCode(withCode(exitDB, errors.New("ping failed"))); got != exitDB {
		t.Fatalf("exitCode(withCode) = %d, want %d", got, exitDB)
	}
	// withCode wrapping preserves the innermost classification.
	wrapped := fmt.Errorf("outer: %w", withCode(exitUsage, errors.New("bad arg")))
	if got := exitCode(wrapped); got != exitUsage {
		t.Fatalf("exitCode(wrapped) = %d, want %d", got, exitUsage)
	}
}

func TestStageErrorClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"missing csv", fmt.Errorf("stage grievances: open csv data/combined_data.csv: %w", fs.ErrNotExist), exitValidation},
		{"no authorities", fmt.Errorf("stage parents: prerequisite not met: %w", seed.ErrNoAuthority), exitValidation},
		{"no departments", fmt.Errorf("stage workers: prerequisite not met: %w", seed.ErrNoDepartments), exitValidation},
		{"insert failure", errors.New("stage grievances: duplicate key"), exitDBWrite},
	}
	for _, tc := range cases {
		if got := exitCode(stageError(tc.err)); got != tc.want {
			t.Fatalf("%s: exit code %d, want %d", tc.name, got, tc.want)
		}
	}
}
