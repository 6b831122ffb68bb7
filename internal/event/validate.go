package event

import (
	"fmt"
	"strings"
)

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian 4/100/400 rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysIn returns the number of days in month of year, or 0 for an invalid month.
func DaysIn(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month]
}

// ValidDate reports whether day/month/year is a real date with year in
// [MinYear, MaxYear].
func ValidDate(day, month, year int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysIn(month, year)
}

// ValidTime reports whether hour and minute form a time of day.
func ValidTime(hour, minute int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// ValidPriority reports whether p is within MinPriority..MaxPriority.
func ValidPriority(p int) bool {
	return p >= MinPriority && p <= MaxPriority
}

// ValidateDescription checks the length bound and the single-line rule.
func ValidateDescription(s string) error {
	if len(s) > MaxDescriptionLen {
		return NewInvalidValue("description", fmt.Sprintf("description is %d bytes, limit %d", len(s), MaxDescriptionLen))
	}
	if strings.ContainsAny(s, "\r\n") {
		return NewInvalidValue("description", "description must be a single line")
	}
	return nil
}

// ValidateCategory checks the length bound, the single-line rule and the
// absence of the record delimiter.
func ValidateCategory(s string) error {
	if len(s) > MaxCategoryLen {
		return NewInvalidValue("category", fmt.Sprintf("category is %d bytes, limit %d", len(s), MaxCategoryLen))
	}
	if strings.ContainsAny(s, "\r\n") {
		return NewInvalidValue("category", "category must be a single line")
	}
	if strings.Contains(s, "|") {
		return NewInvalidValue("category", "category must not contain '|'")
	}
	return nil
}
