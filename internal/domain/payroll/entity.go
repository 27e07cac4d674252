package payroll

import (
	"time"

	"github.com/quickcart/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MoneyScale is the precision of every stored money figure (NUMERIC(18,4)).
const MoneyScale = validator.MoneyScale

// ApprovalStatus is shared by the salary and attendance sign-off tracks.
// The only transition is Pending -> Approved.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "Pending"
	ApprovalStatusApproved ApprovalStatus = "Approved"
)

// ApprovalTrack selects which of the two independent sign-offs an approval targets.
type ApprovalTrack string

const (
	TrackSalary     ApprovalTrack = "salary"
	TrackAttendance ApprovalTrack = "attendance"
)

// MarkStatus enum
type MarkStatus string

const (
	MarkPresent MarkStatus = "present"
	MarkAbsent  MarkStatus = "absent"
	MarkWeekend MarkStatus = "weekend"
	MarkHoliday MarkStatus = "holiday"
)

func (s MarkStatus) IsValid() bool {
	switch s {
	case MarkPresent, MarkAbsent, MarkWeekend, MarkHoliday:
		return true
	}
	return false
}

// AttendanceMark - one day of the month as recorded on a salary record
type AttendanceMark struct {
	Day    int        `json:"day"`
	Status MarkStatus `json:"status"`
}

// SalaryRecord - one computed salary per employee per period
type SalaryRecord struct {
	ID                string
	EmployeeID        string
	PeriodMonth       int
	PeriodYear        int
	BasicSalary       decimal.Decimal // snapshot of the employee's salary at computation time
	DaysWorked        int
	OvertimePay       decimal.Decimal
	ManualDeductions  decimal.Decimal
	AttendanceDetails []AttendanceMark

	Bonus     decimal.Decimal
	EPF       decimal.Decimal
	ETF       decimal.Decimal
	NetSalary decimal.Decimal

	ApprovalStatus           ApprovalStatus
	ApprovedBy               *string
	ApprovedAt               *time.Time
	AttendanceApprovalStatus ApprovalStatus
	AttendanceApprovedBy     *string
	AttendanceApprovedAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName     *string
	EmployeePosition *string
	EmployeeStatus   *string
}

// SalaryInput - everything the formula needs, already resolved and validated
type SalaryInput struct {
	BasicSalary      decimal.Decimal
	DaysWorked       int
	OvertimePay      decimal.Decimal
	ManualDeductions decimal.Decimal
	TotalDaysInMonth int
}

// SalaryBreakdown - derived figures for one SalaryInput
type SalaryBreakdown struct {
	WorkingDays           int
	Bonus                 decimal.Decimal
	ETF                   decimal.Decimal
	EPF                   decimal.Decimal
	NetSalary             decimal.Decimal
	AttendanceSufficiency ApprovalStatus
}
