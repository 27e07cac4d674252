package employee

import "errors"

var (
	ErrEmployeeNotFound         = errors.New("employee not found")
	ErrEmployeeHasSalaryRecords = errors.New("employee has salary records and cannot be deleted")
)
