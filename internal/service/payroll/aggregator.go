package payroll

import (
	"context"
	"fmt"

	"github.com/quickcart/payroll-backend-go/internal/domain/attendance"
)

// AttendanceAggregator counts present days from the attendance log.
type AttendanceAggregator struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceAggregator(attendanceRepo attendance.AttendanceRepository) *AttendanceAggregator {
	return &AttendanceAggregator{attendanceRepo: attendanceRepo}
}

// PresentDays counts the employee's present records in [first of month,
// first of next month).
func (a *AttendanceAggregator) PresentDays(ctx context.Context, employeeID string, month, year int) (int, error) {
	from, to := attendance.PeriodBounds(month, year)

	count, err := a.attendanceRepo.CountPresentDays(ctx, employeeID, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate attendance for %02d/%d: %w", month, year, err)
	}
	return count, nil
}
