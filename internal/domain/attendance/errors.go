package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound      = errors.New("attendance record not found")
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked for this date")
)
