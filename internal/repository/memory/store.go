// Package memory holds in-process repositories used when DB_DRIVER=memory
// and by service and handler tests.
package memory

import (
	"sync"
	"time"

	"github.com/quickcart/payroll-backend-go/internal/domain/attendance"
	"github.com/quickcart/payroll-backend-go/internal/domain/employee"
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
)

// Store is the shared state behind every memory repository. Joins between
// salaries and employees read from the same maps under one lock.
type Store struct {
	mu sync.RWMutex

	employees   map[string]employee.Employee
	attendances map[string]attendance.Attendance
	salaries    map[string]payroll.SalaryRecord
	reports     map[string]report.Report

	// insertion sequence, used for creation-order listings
	seq   int64
	order map[string]int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		employees:   make(map[string]employee.Employee),
		attendances: make(map[string]attendance.Attendance),
		salaries:    make(map[string]payroll.SalaryRecord),
		reports:     make(map[string]report.Report),
		order:       make(map[string]int64),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source. Tests use it for deterministic timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Employees() employee.EmployeeRepository { return &employeeRepository{s: s} }
func (s *Store) Attendances() attendance.AttendanceRepository { return &attendanceRepository{s: s} }
func (s *Store) Salaries() payroll.SalaryRepository { return &salaryRepository{s: s} }
func (s *Store) Reports() report.ReportRepository { return &reportRepository{s: s} }

// track must be called with mu held.
func (s *Store) track(id string) {
	s.seq++
	s.order[id] = s.seq
}
