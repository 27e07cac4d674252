package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// MarkAttendance records one day for an employee
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ListByEmployee retrieves an employee's records, optionally narrowed to a month
	ListByEmployee(ctx context.Context, employeeID string, filter AttendanceFilter) ([]AttendanceResponse, error)

	// UpdateAttendance changes the status of a record
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	DeleteAttendance(ctx context.Context, id string) error
}
