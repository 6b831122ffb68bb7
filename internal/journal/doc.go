// Package journal keeps a SQLite audit log of schedule mutations.
//
// Every add, edit, delete and sort issued through the CLI appends one entry
// carrying the CLI session token, the operation, the affected event id and a
// JSON copy of the event as it stood after the change (or, for deletes, the
// removed event). The journal is write-mostly and never feeds back into the
// schedule; the data file stays the source of truth.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//
// Entries are ordered by seq, an autoincrement key, never by timestamp.
package journal
