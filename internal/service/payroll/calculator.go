package payroll

import (
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// bonus needs strictly more days than this
const bonusThresholdDays = 15

var (
	bonusRate         = decimal.RequireFromString("0.05")
	etfRate           = decimal.RequireFromString("0.03")
	epfRate           = decimal.RequireFromString("0.08")
	sufficiencyFactor = decimal.RequireFromString("0.9")
)

// WorkingDays approximates the working days of a month as
// totalDays - round(totalDays/7)*2. It is not an exact weekend count.
func WorkingDays(totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	// round half up of totalDays/7 in integer arithmetic
	weeks := (2*totalDays + 7) / 14
	return totalDays - weeks*2
}

// ComputeSalary derives the salary breakdown for already validated input.
// It performs no validation: negative input yields a well-formed but
// meaningless result. Net salary is never clamped.
//
// Bonus, ETF and EPF are rounded half away from zero to payroll.MoneyScale
// places and net is summed from the rounded parts, so a stored record always
// satisfies the net salary identity.
func ComputeSalary(in payroll.SalaryInput) payroll.SalaryBreakdown {
	workingDays := WorkingDays(in.TotalDaysInMonth)

	bonus := decimal.Zero
	if in.DaysWorked > bonusThresholdDays {
		bonus = in.BasicSalary.Mul(bonusRate).Round(payroll.MoneyScale)
	}

	etf := in.BasicSalary.Mul(etfRate).Round(payroll.MoneyScale)
	epf := in.BasicSalary.Mul(epfRate).Round(payroll.MoneyScale)

	net := in.BasicSalary.
		Add(in.OvertimePay).
		Add(bonus).
		Sub(etf.Add(epf).Add(in.ManualDeductions))

	sufficiency := payroll.ApprovalStatusPending
	threshold := decimal.NewFromInt(int64(workingDays)).Mul(sufficiencyFactor)
	if decimal.NewFromInt(int64(in.DaysWorked)).GreaterThanOrEqual(threshold) {
		sufficiency = payroll.ApprovalStatusApproved
	}

	return payroll.SalaryBreakdown{
		WorkingDays:           workingDays,
		Bonus:                 bonus,
		ETF:                   etf,
		EPF:                   epf,
		NetSalary:             net,
		AttendanceSufficiency: sufficiency,
	}
}

// applyBreakdown copies the derived figures onto rec.
func applyBreakdown(rec *payroll.SalaryRecord, b payroll.SalaryBreakdown) {
	rec.Bonus = b.Bonus
	rec.ETF = b.ETF
	rec.EPF = b.EPF
	rec.NetSalary = b.NetSalary
}
