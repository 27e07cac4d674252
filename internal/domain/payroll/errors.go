package payroll

import "errors"

var (
	ErrSalaryRecordNotFound = errors.New("salary record not found")
	ErrDuplicatePeriod      = errors.New("salary already calculated for this month and year")
	ErrPeriodImmutable      = errors.New("salary period cannot be changed after creation")
)
