package payroll

import (
	"fmt"
	"sort"

	"github.com/quickcart/payroll-backend-go/internal/pkg/validator"
)

// NormalizeMarks merges marks by day, keeping the last mark supplied for a
// day, and returns them in calendar order.
func NormalizeMarks(marks []AttendanceMark) []AttendanceMark {
	if marks == nil {
		return nil
	}

	byDay := make(map[int]AttendanceMark, len(marks))
	for _, m := range marks {
		byDay[m.Day] = m
	}

	result := make([]AttendanceMark, 0, len(byDay))
	for _, m := range byDay {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day < result[j].Day })
	return result
}

// CountPresent returns the number of distinct days marked present.
func CountPresent(marks []AttendanceMark) int {
	count := 0
	for _, m := range NormalizeMarks(marks) {
		if m.Status == MarkPresent {
			count++
		}
	}
	return count
}

func validateMarks(field string, marks []AttendanceMark, daysInMonth int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i, m := range marks {
		if m.Day < 1 || m.Day > daysInMonth {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("%s[%d].day", field, i),
				Message: fmt.Sprintf("must be between 1 and %d", daysInMonth),
			})
		}
		if !m.Status.IsValid() {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("%s[%d].status", field, i),
				Message: "must be one of: present, absent, weekend, holiday",
			})
		}
	}
	return errs
}
