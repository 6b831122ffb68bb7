package codec

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/roach88/planner/internal/event"
	"github.com/roach88/planner/internal/schedule"
)

// DefaultPath is the data file used when none is configured.
const DefaultPath = "schedule.dat"

// SaveFile writes snap to path, creating or truncating it.
//
// Failures are IoError. A write that fails part way leaves a partial file
// behind; there is no rollback.
func SaveFile(path string, snap schedule.Snapshot) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return event.NewIO(fmt.Sprintf("open %s for writing", path), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = event.NewIO(fmt.Sprintf("close %s", path), closeErr)
		}
	}()

	if err := Encode(f, snap); err != nil {
		if event.IsInvalidValue(err) {
			return err
		}
		return event.NewIO(fmt.Sprintf("write %s", path), err)
	}
	return nil
}

// LoadFile reads the data file at path.
//
// A missing file is the first-run case: the result is an empty snapshot with
// Report.Missing set and no error.
func LoadFile(path string, capacity int) (schedule.Snapshot, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return schedule.Snapshot{NextID: 1}, Report{Missing: true}, nil
		}
		return schedule.Snapshot{}, Report{}, event.NewIO(fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()

	snap, rep, err := Decode(f, capacity)
	if err != nil {
		return schedule.Snapshot{}, rep, fmt.Errorf("load %s: %w", path, err)
	}
	return snap, rep, nil
}

// LoadInto loads path and replaces the contents of s with it.
// On error s is left as it was.
func LoadInto(path string, s *schedule.Schedule) (Report, error) {
	snap, rep, err := LoadFile(path, s.Capacity())
	if err != nil {
		return rep, err
	}
	if rep.Missing {
		return rep, nil
	}
	rep.Restore = s.Restore(snap)
	return rep, nil
}

// SaveFrom writes the contents of s to path.
func SaveFrom(path string, s *schedule.Schedule) error {
	return SaveFile(path, s.Snapshot())
}
