package payroll

import (
	"fmt"
	"time"

	"github.com/quickcart/payroll-backend-go/internal/domain/attendance"
	"github.com/quickcart/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CalculateSalaryRequest computes a salary record for one employee and period.
// DaysWorked wins over AttendanceDetails, which wins over the attendance log.
// A non-nil AttendanceDetails (even empty) counts as supplied.
type CalculateSalaryRequest struct {
	EmployeeID        string           `json:"employee_id" validate:"required"`
	Month             int              `json:"month" validate:"required,min=1,max=12"`
	Year              int              `json:"year" validate:"required,min=1970,max=9999"`
	DaysWorked        *int             `json:"days_worked,omitempty" validate:"omitempty,min=0"`
	OvertimePay       *decimal.Decimal `json:"overtime_pay,omitempty"`
	ManualDeductions  *decimal.Decimal `json:"manual_deductions,omitempty"`
	AttendanceDetails []AttendanceMark `json:"attendance_details,omitempty"`
}

func (r *CalculateSalaryRequest) Validate() error {
	errs := validator.Struct(r)

	if validator.IsEmpty(r.EmployeeID) && !hasField(errs, "employee_id") {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	errs = append(errs, optionalMoney("overtime_pay", r.OvertimePay)...)
	errs = append(errs, optionalMoney("manual_deductions", r.ManualDeductions)...)

	// Day ranges depend on a valid period
	if !hasField(errs, "month") && !hasField(errs, "year") {
		days := attendance.DaysInMonth(r.Month, r.Year)
		if r.DaysWorked != nil && *r.DaysWorked > days {
			errs = append(errs, validator.ValidationError{
				Field:   "days_worked",
				Message: fmt.Sprintf("must be at most %d", days),
			})
		}
		errs = append(errs, validateMarks("attendance_details", r.AttendanceDetails, days)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateSalaryRequest is a partial patch. Nil fields are left untouched.
// Month and Year are accepted only when they match the stored period.
type UpdateSalaryRequest struct {
	ID                string            `json:"-"`
	Month             *int              `json:"month,omitempty"`
	Year              *int              `json:"year,omitempty"`
	BasicSalary       *decimal.Decimal  `json:"basic_salary,omitempty"`
	DaysWorked        *int              `json:"days_worked,omitempty" validate:"omitempty,min=0,max=31"`
	OvertimePay       *decimal.Decimal  `json:"overtime_pay,omitempty"`
	ManualDeductions  *decimal.Decimal  `json:"manual_deductions,omitempty"`
	AttendanceDetails *[]AttendanceMark `json:"attendance_details,omitempty"`
}

func (r *UpdateSalaryRequest) Validate() error {
	errs := validator.Struct(r)

	errs = append(errs, optionalMoney("basic_salary", r.BasicSalary)...)
	errs = append(errs, optionalMoney("overtime_pay", r.OvertimePay)...)
	errs = append(errs, optionalMoney("manual_deductions", r.ManualDeductions)...)
	if r.AttendanceDetails != nil {
		errs = append(errs, validateMarks("attendance_details", *r.AttendanceDetails, 31)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateForPeriod checks day-bound fields against the stored period.
func (r *UpdateSalaryRequest) ValidateForPeriod(month, year int) error {
	var errs validator.ValidationErrors
	days := attendance.DaysInMonth(month, year)

	if r.DaysWorked != nil && *r.DaysWorked > days {
		errs = append(errs, validator.ValidationError{
			Field:   "days_worked",
			Message: fmt.Sprintf("must be at most %d", days),
		})
	}
	if r.AttendanceDetails != nil {
		errs = append(errs, validateMarks("attendance_details", *r.AttendanceDetails, days)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryFilter struct {
	Month      *int    `json:"month,omitempty"`
	Year       *int    `json:"year,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (f *SalaryFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if f.Year != nil && *f.Year < 1970 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be at least 1970"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Matches reports whether the record falls inside the filter.
func (f SalaryFilter) Matches(r SalaryRecord) bool {
	if f.Month != nil && r.PeriodMonth != *f.Month {
		return false
	}
	if f.Year != nil && r.PeriodYear != *f.Year {
		return false
	}
	if f.EmployeeID != nil && r.EmployeeID != *f.EmployeeID {
		return false
	}
	return true
}

type SalaryRecordResponse struct {
	ID                       string           `json:"id"`
	EmployeeID               string           `json:"employee_id"`
	EmployeeName             *string          `json:"employee_name,omitempty"`
	EmployeePosition         *string          `json:"employee_position,omitempty"`
	EmployeeStatus           *string          `json:"employee_status,omitempty"`
	Month                    int              `json:"month"`
	Year                     int              `json:"year"`
	BasicSalary              decimal.Decimal  `json:"basic_salary"`
	DaysWorked               int              `json:"days_worked"`
	OvertimePay              decimal.Decimal  `json:"overtime_pay"`
	ManualDeductions         decimal.Decimal  `json:"manual_deductions"`
	AttendanceDetails        []AttendanceMark `json:"attendance_details"`
	Bonus                    decimal.Decimal  `json:"bonus"`
	EPF                      decimal.Decimal  `json:"epf"`
	ETF                      decimal.Decimal  `json:"etf"`
	NetSalary                decimal.Decimal  `json:"net_salary"`
	ApprovalStatus           string           `json:"approval_status"`
	ApprovedBy               *string          `json:"approved_by,omitempty"`
	ApprovedAt               *string          `json:"approved_at,omitempty"`
	AttendanceApprovalStatus string           `json:"attendance_approval_status"`
	AttendanceApprovedBy     *string          `json:"attendance_approved_by,omitempty"`
	AttendanceApprovedAt     *string          `json:"attendance_approved_at,omitempty"`
	CreatedAt                string           `json:"created_at"`
	UpdatedAt                string           `json:"updated_at"`
}

func NewSalaryRecordResponse(r SalaryRecord) SalaryRecordResponse {
	details := r.AttendanceDetails
	if details == nil {
		details = []AttendanceMark{}
	}

	return SalaryRecordResponse{
		ID:                       r.ID,
		EmployeeID:               r.EmployeeID,
		EmployeeName:             r.EmployeeName,
		EmployeePosition:         r.EmployeePosition,
		EmployeeStatus:           r.EmployeeStatus,
		Month:                    r.PeriodMonth,
		Year:                     r.PeriodYear,
		BasicSalary:              r.BasicSalary,
		DaysWorked:               r.DaysWorked,
		OvertimePay:              r.OvertimePay,
		ManualDeductions:         r.ManualDeductions,
		AttendanceDetails:        details,
		Bonus:                    r.Bonus,
		EPF:                      r.EPF,
		ETF:                      r.ETF,
		NetSalary:                r.NetSalary,
		ApprovalStatus:           string(r.ApprovalStatus),
		ApprovedBy:               r.ApprovedBy,
		ApprovedAt:               formatTime(r.ApprovedAt),
		AttendanceApprovalStatus: string(r.AttendanceApprovalStatus),
		AttendanceApprovedBy:     r.AttendanceApprovedBy,
		AttendanceApprovedAt:     formatTime(r.AttendanceApprovedAt),
		CreatedAt:                r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                r.UpdatedAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func optionalMoney(field string, d *decimal.Decimal) validator.ValidationErrors {
	if d == nil {
		return nil
	}
	return validator.Money(field, *d)
}

func hasField(errs validator.ValidationErrors, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
