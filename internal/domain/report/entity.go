package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContentTypeXLSX is the media type of every generated artifact.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportType string

const (
	ReportTypeSalaryReport ReportType = "Salary Report"
	ReportTypeSalarySlip   ReportType = "Salary Slip"
)

// Report records that a report artifact was generated and where it is stored.
type Report struct {
	ID          string
	EmployeeID  *string
	SalaryID    *string
	ReportType  ReportType
	FilePath    string
	GeneratedAt time.Time
}

// SalaryReportRow is one flat, already-computed line of the salary report.
type SalaryReportRow struct {
	SalaryID                 string          `json:"salary_id"`
	EmployeeID               string          `json:"employee_id"`
	EmployeeName             string          `json:"employee_name"`
	Month                    int             `json:"month"`
	Year                     int             `json:"year"`
	Period                   string          `json:"period"`
	BasicSalary              decimal.Decimal `json:"basic_salary"`
	OvertimePay              decimal.Decimal `json:"overtime_pay"`
	Bonus                    decimal.Decimal `json:"bonus"`
	EPF                      decimal.Decimal `json:"epf"`
	ETF                      decimal.Decimal `json:"etf"`
	ManualDeductions         decimal.Decimal `json:"manual_deductions"`
	NetSalary                decimal.Decimal `json:"net_salary"`
	ApprovalStatus           string          `json:"approval_status"`
	AttendanceApprovalStatus string          `json:"attendance_approval_status"`
	NegativeNet              bool            `json:"negative_net"`
}
