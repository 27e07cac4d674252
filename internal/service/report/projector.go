package report

import (
	"fmt"
	"time"

	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
)

// ProjectRows flattens salary records into report rows, keeping their order.
// Nothing is recomputed.
func ProjectRows(records []payroll.SalaryRecord, filter report.PeriodFilter) []report.SalaryReportRow {
	rows := make([]report.SalaryReportRow, 0, len(records))
	for _, rec := range records {
		if filter.Month != nil && rec.PeriodMonth != *filter.Month {
			continue
		}
		if filter.Year != nil && rec.PeriodYear != *filter.Year {
			continue
		}

		name := ""
		if rec.EmployeeName != nil {
			name = *rec.EmployeeName
		}

		rows = append(rows, report.SalaryReportRow{
			SalaryID:                 rec.ID,
			EmployeeID:               rec.EmployeeID,
			EmployeeName:             name,
			Month:                    rec.PeriodMonth,
			Year:                     rec.PeriodYear,
			Period:                   periodLabel(rec.PeriodMonth, rec.PeriodYear),
			BasicSalary:              rec.BasicSalary,
			OvertimePay:              rec.OvertimePay,
			Bonus:                    rec.Bonus,
			EPF:                      rec.EPF,
			ETF:                      rec.ETF,
			ManualDeductions:         rec.ManualDeductions,
			NetSalary:                rec.NetSalary,
			ApprovalStatus:           string(rec.ApprovalStatus),
			AttendanceApprovalStatus: string(rec.AttendanceApprovalStatus),
			NegativeNet:              rec.NetSalary.IsNegative(),
		})
	}
	return rows
}

func periodLabel(month, year int) string {
	return fmt.Sprintf("%s %d", time.Month(month).String(), year)
}
