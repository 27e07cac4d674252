package attendance

import (
	"time"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
	StatusHoliday Status = "holiday"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave, StatusHoliday:
		return true
	}
	return false
}

// PeriodBounds returns the half-open window [start, endExclusive) covering the
// given calendar month. December rolls over into January of the following year.
func PeriodBounds(month, year int) (start, endExclusive time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endExclusive = start.AddDate(0, 1, 0)
	return start, endExclusive
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
