package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
)

type salaryRepository struct {
	s *Store
}

func cloneMarks(marks []payroll.AttendanceMark) []payroll.AttendanceMark {
	if marks == nil {
		return nil
	}
	out := make([]payroll.AttendanceMark, len(marks))
	copy(out, marks)
	return out
}

// view must be called with mu held.
func (r *salaryRepository) view(rec payroll.SalaryRecord) payroll.SalaryRecord {
	rec.AttendanceDetails = cloneMarks(rec.AttendanceDetails)
	if emp, ok := r.s.employees[rec.EmployeeID]; ok {
		name, position, status := emp.Name, emp.Position, string(emp.Status)
		rec.EmployeeName = &name
		rec.EmployeePosition = &position
		rec.EmployeeStatus = &status
	}
	return rec
}

func (r *salaryRepository) Create(ctx context.Context, rec payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.salaries {
		if existing.EmployeeID == rec.EmployeeID &&
			existing.PeriodMonth == rec.PeriodMonth &&
			existing.PeriodYear == rec.PeriodYear {
			return payroll.SalaryRecord{}, payroll.ErrDuplicatePeriod
		}
	}

	now := r.s.now()
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.AttendanceDetails = cloneMarks(rec.AttendanceDetails)
	rec.EmployeeName, rec.EmployeePosition, rec.EmployeeStatus = nil, nil, nil

	r.s.salaries[rec.ID] = rec
	r.s.track(rec.ID)
	return r.view(rec), nil
}

func (r *salaryRepository) GetByID(ctx context.Context, id string) (payroll.SalaryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.salaries[id]
	if !ok {
		return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
	}
	return r.view(rec), nil
}

func (r *salaryRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.SalaryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rec := range r.s.salaries {
		if rec.EmployeeID == employeeID && rec.PeriodMonth == month && rec.PeriodYear == year {
			return r.view(rec), nil
		}
	}
	return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
}

func (r *salaryRepository) List(ctx context.Context, filter payroll.SalaryFilter) ([]payroll.SalaryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := []payroll.SalaryRecord{}
	for _, rec := range r.s.salaries {
		if filter.Matches(rec) {
			result = append(result, r.view(rec))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return r.s.order[result[i].ID] < r.s.order[result[j].ID]
	})
	return result, nil
}

func (r *salaryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.SalaryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := []payroll.SalaryRecord{}
	for _, rec := range r.s.salaries {
		if rec.EmployeeID == employeeID {
			result = append(result, r.view(rec))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].PeriodYear != result[j].PeriodYear {
			return result[i].PeriodYear > result[j].PeriodYear
		}
		return result[i].PeriodMonth > result[j].PeriodMonth
	})
	return result, nil
}

func (r *salaryRepository) Save(ctx context.Context, rec payroll.SalaryRecord) (payroll.SalaryRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.salaries[rec.ID]
	if !ok {
		return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
	}

	stored.BasicSalary = rec.BasicSalary
	stored.DaysWorked = rec.DaysWorked
	stored.OvertimePay = rec.OvertimePay
	stored.ManualDeductions = rec.ManualDeductions
	stored.AttendanceDetails = cloneMarks(rec.AttendanceDetails)
	stored.Bonus = rec.Bonus
	stored.EPF = rec.EPF
	stored.ETF = rec.ETF
	stored.NetSalary = rec.NetSalary
	stored.UpdatedAt = r.s.now()

	r.s.salaries[rec.ID] = stored
	return r.view(stored), nil
}

func (r *salaryRepository) MarkApproved(ctx context.Context, id string, track payroll.ApprovalTrack, approvedBy *string) (payroll.SalaryRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.salaries[id]
	if !ok {
		return payroll.SalaryRecord{}, payroll.ErrSalaryRecordNotFound
	}

	now := r.s.now()
	switch track {
	case payroll.TrackSalary:
		if rec.ApprovalStatus == payroll.ApprovalStatusApproved {
			return r.view(rec), nil
		}
		rec.ApprovalStatus = payroll.ApprovalStatusApproved
		rec.ApprovedBy = approvedBy
		rec.ApprovedAt = &now
	case payroll.TrackAttendance:
		if rec.AttendanceApprovalStatus == payroll.ApprovalStatusApproved {
			return r.view(rec), nil
		}
		rec.AttendanceApprovalStatus = payroll.ApprovalStatusApproved
		rec.AttendanceApprovedBy = approvedBy
		rec.AttendanceApprovedAt = &now
	default:
		return payroll.SalaryRecord{}, fmt.Errorf("unknown approval track %q", track)
	}
	rec.UpdatedAt = now

	r.s.salaries[id] = rec
	return r.view(rec), nil
}

func (r *salaryRepository) CountByEmployee(ctx context.Context, employeeID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, rec := range r.s.salaries {
		if rec.EmployeeID == employeeID {
			count++
		}
	}
	return count, nil
}
