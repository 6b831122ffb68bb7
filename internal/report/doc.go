// Package report renders schedule contents for people: single event lines,
// statistics, help text, the plain-text export report and the iCalendar
// export. Nothing rendered here is read back by the planner.
package report
