package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)

	// UpdateEmployee applies only the fields present in req. Existing salary
	// records keep the basic salary they were computed with.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	DeleteEmployee(ctx context.Context, id string) error
}
