package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/planner/internal/event"
	"github.com/roach88/planner/internal/schedule"
)

var (
	// ErrMalformedHeader is returned when the header line is missing or is not
	// two decimal integers.
	ErrMalformedHeader = errors.New("malformed schedule header")

	// ErrTooManyEvents is returned when the header declares more events than
	// the schedule can hold.
	ErrTooManyEvents = errors.New("schedule file declares too many events")
)

// Report describes the outcome of a load.
type Report struct {
	// Missing is set when the data file did not exist.
	Missing bool

	// Declared is the event count from the header.
	Declared int

	// Loaded is the number of records that parsed.
	Loaded int

	// Skipped lists the records that did not parse, in file order.
	Skipped []SkippedRecord

	// Restore is filled in by LoadInto once the records reach the schedule.
	Restore schedule.RestoreResult
}

// SkippedRecord identifies a record dropped during a load.
type SkippedRecord struct {
	// Index is the zero-based position of the record after the header.
	Index int
	Err   error
}

// Encode writes snap to w in the data file format.
func Encode(w io.Writer, snap schedule.Snapshot) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", len(snap.Events), snap.NextID); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range snap.Events {
		// A delimiter in the category or a newline anywhere would corrupt
		// every following record.
		if err := e.Validate(); err != nil {
			return fmt.Errorf("encode event %d: %w", e.ID, err)
		}
		line := FormatRecord(e)
		Obfuscate(line)
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("write event %d: %w", e.ID, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Decode reads a data file from r.
//
// Up to the declared number of records are read; records that fail to parse
// are listed in the report and left out of the snapshot. Running out of input
// early is not an error.
func Decode(r io.Reader, capacity int) (schedule.Snapshot, Report, error) {
	var rep Report
	br := bufio.NewReader(r)

	count, nextID, err := readHeader(br)
	if err != nil {
		return schedule.Snapshot{}, rep, err
	}
	rep.Declared = count
	if count > capacity {
		return schedule.Snapshot{}, rep, fmt.Errorf("%w: %d declared, capacity %d", ErrTooManyEvents, count, capacity)
	}

	snap := schedule.Snapshot{
		Events: make([]event.Event, 0, count),
		NextID: nextID,
	}
	for i := 0; i < count; i++ {
		line, err := readRecord(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return schedule.Snapshot{}, rep, fmt.Errorf("read record %d: %w", i, err)
		}

		e, err := ParseRecord(string(line))
		if err != nil {
			rep.Skipped = append(rep.Skipped, SkippedRecord{Index: i, Err: err})
			continue
		}
		snap.Events = append(snap.Events, e)
	}

	rep.Loaded = len(snap.Events)
	return snap, rep, nil
}

// readHeader parses the clear-text "<count> <next_id>" line.
func readHeader(br *bufio.Reader) (int, int, error) {
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, 0, fmt.Errorf("read header: %w", err)
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, strings.TrimSpace(line))
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 0 {
		return 0, 0, fmt.Errorf("%w: bad event count %q", ErrMalformedHeader, fields[0])
	}
	nextID, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad next id %q", ErrMalformedHeader, fields[1])
	}
	return count, nextID, nil
}

// readRecord reads one obfuscated record and returns it in clear text without
// its newline.
//
// The line is de-obfuscated byte by byte and ends at the first decoded
// newline. An obfuscated byte that happens to equal '\n' is therefore not
// mistaken for a record boundary. A final record cut short by end of input is
// returned as is; io.EOF is returned only when no bytes remain.
func readRecord(br *bufio.Reader) ([]byte, error) {
	var line []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return line, nil
			}
			return nil, err
		}
		b ^= ObfuscationKey[len(line)%len(ObfuscationKey)]
		if b == '\n' {
			return line, nil
		}
		line = append(line, b)
	}
}
