package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/quickcart/payroll-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	s *Store
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	newEmployee.ID = uuid.NewString()
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now

	r.s.employees[newEmployee.ID] = newEmployee
	r.s.track(newEmployee.ID)
	return newEmployee, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	emp, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var search string
	if filter.Search != nil {
		search = strings.ToLower(*filter.Search)
	}

	result := []employee.Employee{}
	for _, emp := range r.s.employees {
		if filter.Status != nil && *filter.Status != "" && string(emp.Status) != *filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(emp.Name), search) &&
			!strings.Contains(strings.ToLower(emp.Position), search) {
			continue
		}
		result = append(result, emp)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return r.s.order[result[i].ID] < r.s.order[result[j].ID]
	})
	return result, nil
}

func (r *employeeRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	emp, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	if req.Name != nil {
		emp.Name = strings.TrimSpace(*req.Name)
	}
	if req.Position != nil {
		emp.Position = strings.TrimSpace(*req.Position)
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}
	if req.Status != nil {
		emp.Status = employee.EmploymentStatus(*req.Status)
	}
	emp.UpdatedAt = r.s.now()

	r.s.employees[id] = emp
	return emp, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	for _, rec := range r.s.salaries {
		if rec.EmployeeID == id {
			return employee.ErrEmployeeHasSalaryRecords
		}
	}

	// attendance rows cascade
	for aid, a := range r.s.attendances {
		if a.EmployeeID == id {
			delete(r.s.attendances, aid)
		}
	}
	delete(r.s.employees, id)
	return nil
}
