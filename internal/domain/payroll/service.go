package payroll

import "context"

// SalaryService is the salary record lifecycle: computation, recomputation
// on update, and the two approval tracks.
type SalaryService interface {
	CalculateSalary(ctx context.Context, req CalculateSalaryRequest) (SalaryRecordResponse, error)
	GetSalary(ctx context.Context, id string) (SalaryRecordResponse, error)
	ListSalaries(ctx context.Context, filter SalaryFilter) ([]SalaryRecordResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryRecordResponse, error)
	UpdateSalary(ctx context.Context, req UpdateSalaryRequest) (SalaryRecordResponse, error)
	ApproveSalary(ctx context.Context, id string) (SalaryRecordResponse, error)
	ApproveAttendance(ctx context.Context, id string) (SalaryRecordResponse, error)
}
