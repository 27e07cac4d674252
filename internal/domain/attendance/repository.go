package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for daily attendance records.
type AttendanceRepository interface {
	// Create inserts a record; a second record for the same employee and date
	// fails with ErrAttendanceAlreadyMarked.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListByEmployee returns records ordered by date ascending.
	ListByEmployee(ctx context.Context, employeeID string, filter AttendanceFilter) ([]Attendance, error)

	UpdateStatus(ctx context.Context, id string, status Status) (Attendance, error)

	Delete(ctx context.Context, id string) error

	// CountPresentDays counts records with status present whose date falls in
	// [from, toExclusive).
	CountPresentDays(ctx context.Context, employeeID string, from, toExclusive time.Time) (int, error)
}
