// Package event provides the record model for the planner.
//
// This package contains the Event type, its field-level validation rules and
// the domain error type shared by the store and the codec. It imports nothing
// internal; every other internal package builds on it.
//
// Key constraints:
//   - Dates are Gregorian, years 2000 through 2100 inclusive
//   - Priority 1 is the most urgent, 5 the least
//   - Free text is NFC-normalized and bounded in bytes, not runes
//   - Category text never contains the record delimiter '|'
package event
