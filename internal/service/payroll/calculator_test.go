package payroll

import (
	"testing"

	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func TestWorkingDays(t *testing.T) {
	tests := []struct {
		totalDays int
		want      int
	}{
		{28, 20},
		{29, 21},
		{30, 22},
		{31, 23},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WorkingDays(tt.totalDays), "totalDays=%d", tt.totalDays)
	}
}

// Test the end-to-end example figures
func TestComputeSalary_Example(t *testing.T) {
	b := ComputeSalary(payroll.SalaryInput{
		BasicSalary:      dec("2000"),
		DaysWorked:       18,
		OvertimePay:      dec("100"),
		ManualDeductions: dec("50"),
		TotalDaysInMonth: 30,
	})

	assertDecimal(t, "100", b.Bonus)
	assertDecimal(t, "60", b.ETF)
	assertDecimal(t, "160", b.EPF)
	assertDecimal(t, "1930", b.NetSalary)
	assert.Equal(t, 22, b.WorkingDays)
	// 18 < 22*0.9
	assert.Equal(t, payroll.ApprovalStatusPending, b.AttendanceSufficiency)
}

func TestComputeSalary_BonusThreshold(t *testing.T) {
	in := payroll.SalaryInput{BasicSalary: dec("1000"), TotalDaysInMonth: 31}

	in.DaysWorked = 15
	assertDecimal(t, "0", ComputeSalary(in).Bonus, "at 15 days")

	in.DaysWorked = 16
	assertDecimal(t, "50", ComputeSalary(in).Bonus, "at 16 days")
}

// Bonus is flat above the threshold and funds do not depend on days worked
func TestComputeSalary_FlatAboveThreshold(t *testing.T) {
	in := payroll.SalaryInput{BasicSalary: dec("1234.56"), TotalDaysInMonth: 31}

	in.DaysWorked = 16
	first := ComputeSalary(in)
	in.DaysWorked = 31
	second := ComputeSalary(in)

	assert.True(t, first.Bonus.Equal(second.Bonus))
	assert.True(t, first.EPF.Equal(second.EPF))
	assert.True(t, first.ETF.Equal(second.ETF))

	in.DaysWorked = 0
	zero := ComputeSalary(in)
	assert.True(t, first.EPF.Equal(zero.EPF))
	assert.True(t, first.ETF.Equal(zero.ETF))
}

func TestComputeSalary_NetIdentity(t *testing.T) {
	inputs := []payroll.SalaryInput{
		{BasicSalary: dec("0"), TotalDaysInMonth: 28},
		{BasicSalary: dec("3000.10"), DaysWorked: 20, OvertimePay: dec("12.5"), ManualDeductions: dec("7.25"), TotalDaysInMonth: 30},
		{BasicSalary: dec("999.99"), DaysWorked: 3, ManualDeductions: dec("100"), TotalDaysInMonth: 29},
	}

	for _, in := range inputs {
		b := ComputeSalary(in)
		want := in.BasicSalary.Add(in.OvertimePay).Add(b.Bonus).
			Sub(b.ETF).Sub(b.EPF).Sub(in.ManualDeductions)
		assert.True(t, want.Equal(b.NetSalary), "net for basic %s", in.BasicSalary)
		assert.True(t, b.ETF.Equal(in.BasicSalary.Mul(dec("0.03"))))
		assert.True(t, b.EPF.Equal(in.BasicSalary.Mul(dec("0.08"))))
	}
}

// Derived figures are rounded to the stored scale and net is built from them
func TestComputeSalary_RoundsToMoneyScale(t *testing.T) {
	in := payroll.SalaryInput{BasicSalary: dec("1000.0050"), TotalDaysInMonth: 30}

	b := ComputeSalary(in)
	assertDecimal(t, "30.0002", b.ETF)
	assertDecimal(t, "80.0004", b.EPF)
	assertDecimal(t, "0", b.Bonus)
	assertDecimal(t, "889.6044", b.NetSalary)

	in.DaysWorked = 16
	b = ComputeSalary(in)
	assertDecimal(t, "50.0003", b.Bonus)
	assertDecimal(t, "939.8047", b.NetSalary)

	for _, d := range []decimal.Decimal{b.Bonus, b.ETF, b.EPF, b.NetSalary} {
		assert.True(t, d.Equal(d.Round(payroll.MoneyScale)), "%s exceeds the money scale", d)
	}
}

// Net salary may go negative
func TestComputeSalary_NegativeNetNotClamped(t *testing.T) {
	b := ComputeSalary(payroll.SalaryInput{
		BasicSalary:      dec("100"),
		ManualDeductions: dec("500"),
		TotalDaysInMonth: 30,
	})

	assertDecimal(t, "-411", b.NetSalary)
}

func TestComputeSalary_Deterministic(t *testing.T) {
	in := payroll.SalaryInput{
		BasicSalary:      dec("4567.89"),
		DaysWorked:       21,
		OvertimePay:      dec("33.3"),
		ManualDeductions: dec("1.1"),
		TotalDaysInMonth: 31,
	}

	first := ComputeSalary(in)
	for i := 0; i < 5; i++ {
		again := ComputeSalary(in)
		assert.True(t, first.NetSalary.Equal(again.NetSalary))
		assert.Equal(t, first.AttendanceSufficiency, again.AttendanceSufficiency)
	}
}

func TestComputeSalary_AttendanceSufficiency(t *testing.T) {
	// 31 days -> 23 working days, threshold 20.7
	in := payroll.SalaryInput{BasicSalary: dec("1000"), TotalDaysInMonth: 31}

	in.DaysWorked = 20
	assert.Equal(t, payroll.ApprovalStatusPending, ComputeSalary(in).AttendanceSufficiency)

	in.DaysWorked = 21
	assert.Equal(t, payroll.ApprovalStatusApproved, ComputeSalary(in).AttendanceSufficiency)
}
