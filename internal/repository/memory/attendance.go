package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/quickcart/payroll-backend-go/internal/domain/attendance"
)

type attendanceRepository struct {
	s *Store
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// withEmployee must be called with mu held.
func (r *attendanceRepository) withEmployee(a attendance.Attendance) attendance.Attendance {
	if emp, ok := r.s.employees[a.EmployeeID]; ok {
		name := emp.Name
		a.EmployeeName = &name
	}
	return a
}

func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.attendances {
		if existing.EmployeeID == a.EmployeeID && sameDay(existing.Date, a.Date) {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
		}
	}

	now := r.s.now()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now
	a.EmployeeName = nil

	r.s.attendances[a.ID] = a
	r.s.track(a.ID)
	return r.withEmployee(a), nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.attendances[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return r.withEmployee(a), nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var from, to time.Time
	bounded := filter.Month != nil && filter.Year != nil
	if bounded {
		from, to = attendance.PeriodBounds(*filter.Month, *filter.Year)
	}

	result := []attendance.Attendance{}
	for _, a := range r.s.attendances {
		if a.EmployeeID != employeeID {
			continue
		}
		if bounded && (a.Date.Before(from) || !a.Date.Before(to)) {
			continue
		}
		result = append(result, r.withEmployee(a))
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *attendanceRepository) UpdateStatus(ctx context.Context, id string, status attendance.Status) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.attendances[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	a.Status = status
	a.UpdatedAt = r.s.now()
	r.s.attendances[id] = a
	return r.withEmployee(a), nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.attendances[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(r.s.attendances, id)
	return nil
}

func (r *attendanceRepository) CountPresentDays(ctx context.Context, employeeID string, from, toExclusive time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, a := range r.s.attendances {
		if a.EmployeeID != employeeID || a.Status != attendance.StatusPresent {
			continue
		}
		if a.Date.Before(from) || !a.Date.Before(toExclusive) {
			continue
		}
		count++
	}
	return count, nil
}
