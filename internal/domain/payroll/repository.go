package payroll

import "context"

// SalaryRepository defines data access methods for salary records.
type SalaryRepository interface {
	// Create persists a new record. A second record for the same
	// (employee, month, year) fails with ErrDuplicatePeriod.
	Create(ctx context.Context, record SalaryRecord) (SalaryRecord, error)

	GetByID(ctx context.Context, id string) (SalaryRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (SalaryRecord, error)

	// List returns records joined with employee data in creation order.
	List(ctx context.Context, filter SalaryFilter) ([]SalaryRecord, error)

	// ListByEmployee returns records ordered by year then month, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error)

	// Save overwrites the input and derived fields of an existing record.
	Save(ctx context.Context, record SalaryRecord) (SalaryRecord, error)

	// MarkApproved moves the given track from Pending to Approved. A record
	// that is already approved is returned unchanged.
	MarkApproved(ctx context.Context, id string, track ApprovalTrack, approvedBy *string) (SalaryRecord, error)

	// CountByEmployee reports how many records reference the employee.
	CountByEmployee(ctx context.Context, employeeID string) (int, error)
}
