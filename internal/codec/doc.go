// Package codec reads and writes the schedule data file.
//
// # File format
//
// The first line is a clear-text header, "<count> <next_id>\n". Each event
// follows as one record line,
//
//	id|day|month|year|hour|minute|priority|category|description\n
//
// obfuscated on its own: every byte of the line, newline included, is XORed
// with ObfuscationKey, the key index restarting at zero for every line.
//
// The transform is obfuscation only. The key ships with the program, so the
// file is no more private than plain text; it exists for compatibility with
// files written by earlier versions of the planner.
//
// # Loading
//
// Loading tolerates partial corruption: a record that does not parse, or
// that describes an invalid event, is skipped and reported. The loaded count
// may be smaller than the header's declared count. A header declaring more
// events than the schedule can hold aborts the load.
package codec
