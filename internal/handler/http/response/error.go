package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quickcart/payroll-backend-go/internal/domain/attendance"
	"github.com/quickcart/payroll-backend-go/internal/domain/auth"
	"github.com/quickcart/payroll-backend-go/internal/domain/employee"
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
	"github.com/quickcart/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeHasSalaryRecords):
		Conflict(w, "Employee has salary records and cannot be deleted")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceAlreadyMarked):
		Conflict(w, "Attendance already marked for this date")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, payroll.ErrDuplicatePeriod):
		Conflict(w, "Salary already calculated for this month and year")
	case errors.Is(err, payroll.ErrPeriodImmutable):
		ValidationError(w, map[string]string{"period": err.Error()})

	// Report domain errors
	case errors.Is(err, report.ErrNoSalaryData):
		NotFound(w, "No salary data found for the specified period")
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")
	case errors.Is(err, report.ErrReportFileMissing):
		NotFound(w, "Report file is no longer available")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
