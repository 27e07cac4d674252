package report

import (
	"bytes"
	"fmt"

	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var reportHeaders = []interface{}{
	"Employee", "Period", "Basic Salary", "Overtime", "Bonus",
	"EPF (8%)", "ETF (3%)", "Other Deductions", "Net Salary", "Status", "Attendance",
}

// renderSalaryReport writes the rows into a single-sheet workbook with a
// totals footer.
func renderSalaryReport(rows []report.SalaryReportRow, title string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Salary Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	negative, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "C00000"}})
	if err != nil {
		return nil, err
	}

	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", bold); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A3", &reportHeaders); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A3", "K3", bold); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for i, row := range rows {
		r := i + 4
		values := []interface{}{
			row.EmployeeName, row.Period,
			row.BasicSalary.StringFixed(2), row.OvertimePay.StringFixed(2), row.Bonus.StringFixed(2),
			row.EPF.StringFixed(2), row.ETF.StringFixed(2), row.ManualDeductions.StringFixed(2),
			row.NetSalary.StringFixed(2), row.ApprovalStatus, row.AttendanceApprovalStatus,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", r), &values); err != nil {
			return nil, err
		}
		if row.NegativeNet {
			cell := fmt.Sprintf("I%d", r)
			if err := f.SetCellStyle(sheet, cell, cell, negative); err != nil {
				return nil, err
			}
		}
		total = total.Add(row.NetSalary)
	}

	footer := len(rows) + 5
	summary := [][]interface{}{
		{"Total Employees", len(rows)},
		{"Total Net Salary", total.StringFixed(2)},
	}
	for i, line := range summary {
		cell := fmt.Sprintf("A%d", footer+i)
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, bold); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", "K", 16); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

// renderSalarySlip writes one record's earnings and deductions.
func renderSalarySlip(rec payroll.SalaryRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Salary Slip"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	name, position := "", ""
	if rec.EmployeeName != nil {
		name = *rec.EmployeeName
	}
	if rec.EmployeePosition != nil {
		position = *rec.EmployeePosition
	}

	gross := rec.BasicSalary.Add(rec.OvertimePay).Add(rec.Bonus)
	deductions := rec.EPF.Add(rec.ETF).Add(rec.ManualDeductions)

	lines := [][]interface{}{
		{"Salary Slip"},
		{"Employee", name},
		{"Position", position},
		{"Period", periodLabel(rec.PeriodMonth, rec.PeriodYear)},
		{"Days Worked", rec.DaysWorked},
		{},
		{"Earnings"},
		{"Basic Salary", rec.BasicSalary.StringFixed(2)},
		{"Overtime", rec.OvertimePay.StringFixed(2)},
		{"Bonus", rec.Bonus.StringFixed(2)},
		{"Gross Earnings", gross.StringFixed(2)},
		{},
		{"Deductions"},
		{"EPF (8%)", rec.EPF.StringFixed(2)},
		{"ETF (3%)", rec.ETF.StringFixed(2)},
		{"Other Deductions", rec.ManualDeductions.StringFixed(2)},
		{"Total Deductions", deductions.StringFixed(2)},
		{},
		{"Net Salary", rec.NetSalary.StringFixed(2)},
		{"Salary Status", string(rec.ApprovalStatus)},
		{"Attendance Status", string(rec.AttendanceApprovalStatus)},
	}

	headings := map[int]bool{0: true, 6: true, 12: true, 18: true}
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &line); err != nil {
			return nil, err
		}
		if headings[i] {
			if err := f.SetCellStyle(sheet, cell, cell, bold); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 24); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}
