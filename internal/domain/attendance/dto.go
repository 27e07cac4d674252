package attendance

import (
	"time"

	"github.com/quickcart/payroll-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=present absent leave holiday"`
}

func (r *MarkAttendanceRequest) Validate() error {
	errs := validator.Struct(r)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID     string `json:"-"`
	Status string `json:"status" validate:"required,oneof=present absent leave holiday"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	errs := validator.Struct(r)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter narrows a listing to one calendar month. Month and Year
// must be given together.
type AttendanceFilter struct {
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

func (f AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if (f.Month == nil) != (f.Year == nil) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month and year must be given together"})
	}
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}
