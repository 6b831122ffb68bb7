package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/planner/internal/event"
)

// Op names a schedule mutation.
type Op string

const (
	OpAdd    Op = "add"
	OpEdit   Op = "edit"
	OpDelete Op = "delete"
	OpSort   Op = "sort"
)

// Entry is one journal record.
type Entry struct {
	Seq        int64        `json:"seq"`
	Session    string       `json:"session"`
	Op         Op           `json:"op"`
	EventID    int          `json:"event_id,omitempty"`
	Field      string       `json:"field,omitempty"`
	Event      *event.Event `json:"event,omitempty"`
	RecordedAt time.Time    `json:"recorded_at"`
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	EventID int
	Limit   int
}

// Record appends e and returns its seq. Seq on the argument is ignored.
func (j *Journal) Record(ctx context.Context, e Entry) (int64, error) {
	eventJSON := "{}"
	if e.Event != nil {
		data, err := json.Marshal(e.Event)
		if err != nil {
			return 0, fmt.Errorf("record entry: marshal event: %w", err)
		}
		eventJSON = string(data)
	}

	res, err := j.db.ExecContext(ctx, `
		INSERT INTO entries (session, op, event_id, field, event_json, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		e.Session,
		string(e.Op),
		e.EventID,
		e.Field,
		eventJSON,
		e.RecordedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("record entry: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record entry: last insert id: %w", err)
	}
	return seq, nil
}

// List returns entries matching f ordered by seq ascending. With a limit, the
// most recent entries are kept.
//
// Returns an empty slice (not nil) when nothing matches.
func (j *Journal) List(ctx context.Context, f Filter) ([]Entry, error) {
	query := `
		SELECT seq, session, op, event_id, field, event_json, recorded_at
		FROM entries
		WHERE (? = 0 OR event_id = ?)
		ORDER BY seq DESC
	`
	args := []any{f.EventID, f.EventID}
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	// Newest-first from SQL so LIMIT keeps the tail; flip to seq order.
	for i, k := 0, len(entries)-1; i < k; i, k = i+1, k-1 {
		entries[i], entries[k] = entries[k], entries[i]
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		e          Entry
		op         string
		eventJSON  string
		recordedAt string
	)
	if err := row.Scan(&e.Seq, &e.Session, &op, &e.EventID, &e.Field, &eventJSON, &recordedAt); err != nil {
		return Entry{}, fmt.Errorf("scan entry: %w", err)
	}
	e.Op = Op(op)

	if eventJSON != "" && eventJSON != "{}" {
		var ev event.Event
		if err := json.Unmarshal([]byte(eventJSON), &ev); err != nil {
			return Entry{}, fmt.Errorf("unmarshal entry %d event: %w", e.Seq, err)
		}
		e.Event = &ev
	}

	t, err := time.Parse(time.RFC3339Nano, recordedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parse entry %d time: %w", e.Seq, err)
	}
	e.RecordedAt = t
	return e, nil
}
