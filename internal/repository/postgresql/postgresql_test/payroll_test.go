package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quickcart/payroll-backend-go/internal/domain/attendance"
	"github.com/quickcart/payroll-backend-go/internal/domain/employee"
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
	"github.com/quickcart/payroll-backend-go/internal/repository/memory"
	"github.com/quickcart/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/quickcart/payroll-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmployee(t *testing.T, ctx context.Context, setup *TestDatabaseSetup, name string) employee.Employee {
	t.Helper()
	emp, err := postgresql.NewEmployeeRepository(setup.DB).Create(ctx, employee.Employee{
		Name:        name,
		Position:    "Engineer",
		BasicSalary: decimal.NewFromInt(1000),
		Status:      employee.EmploymentStatusActive,
	})
	require.NoError(t, err)
	return emp
}

func newTestSalary(employeeID string, month, year int) payroll.SalaryRecord {
	return payroll.SalaryRecord{
		EmployeeID:       employeeID,
		PeriodMonth:      month,
		PeriodYear:       year,
		BasicSalary:      decimal.NewFromInt(1000),
		DaysWorked:       20,
		OvertimePay:      decimal.Zero,
		ManualDeductions: decimal.Zero,
		AttendanceDetails: []payroll.AttendanceMark{
			{Day: 1, Status: payroll.MarkPresent},
			{Day: 2, Status: payroll.MarkAbsent},
		},
		Bonus:                    decimal.NewFromInt(50),
		EPF:                      decimal.NewFromInt(80),
		ETF:                      decimal.NewFromInt(30),
		NetSalary:                decimal.NewFromInt(940),
		ApprovalStatus:           payroll.ApprovalStatusPending,
		AttendanceApprovalStatus: payroll.ApprovalStatusApproved,
	}
}

// Test salary create and read back with the joined employee fields
func TestSalaryRepository_CreateAndGet(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, setup, "Ada")
	repo := postgresql.NewSalaryRepository(setup.DB)

	created, err := repo.Create(ctx, newTestSalary(emp.ID, 6, 2025))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.NetSalary.Equal(decimal.NewFromInt(940)))
	assert.Len(t, created.AttendanceDetails, 2)
	require.NotNil(t, created.EmployeeName)
	assert.Equal(t, "Ada", *created.EmployeeName)

	got, err := repo.GetByEmployeePeriod(ctx, emp.ID, 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

// Test a fractional basic salary survives the NUMERIC columns unchanged and
// matches the in-memory driver figure for figure
func TestSalaryRepository_FractionalBasicSalary(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	employees := postgresql.NewEmployeeRepository(setup.DB)
	salaries := postgresql.NewSalaryRepository(setup.DB)
	svc := payrollService.NewSalaryService(postgresql.NewTransactor(setup.DB), salaries, employees, postgresql.NewAttendanceRepository(setup.DB))

	store := memory.NewStore()
	memSvc := payrollService.NewSalaryService(memory.NewTransactor(), store.Salaries(), store.Employees(), store.Attendances())

	fractional := employee.Employee{
		Name:        "Ada",
		Position:    "Engineer",
		BasicSalary: decimal.RequireFromString("1000.0050"),
		Status:      employee.EmploymentStatusActive,
	}
	pgEmp, err := employees.Create(ctx, fractional)
	require.NoError(t, err)
	memEmp, err := store.Employees().Create(ctx, fractional)
	require.NoError(t, err)

	days := 16
	overtime := decimal.RequireFromString("12.3456")
	deductions := decimal.RequireFromString("0.0001")
	req := payroll.CalculateSalaryRequest{
		Month: 6, Year: 2025, DaysWorked: &days, OvertimePay: &overtime, ManualDeductions: &deductions,
	}

	req.EmployeeID = pgEmp.ID
	created, err := svc.CalculateSalary(ctx, req)
	require.NoError(t, err)
	req.EmployeeID = memEmp.ID
	inMemory, err := memSvc.CalculateSalary(ctx, req)
	require.NoError(t, err)

	stored, err := salaries.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.True(t, stored.ETF.Equal(decimal.RequireFromString("30.0002")), "etf %s", stored.ETF)
	assert.True(t, stored.EPF.Equal(decimal.RequireFromString("80.0004")), "epf %s", stored.EPF)
	assert.True(t, stored.Bonus.Equal(decimal.RequireFromString("50.0003")), "bonus %s", stored.Bonus)

	want := stored.BasicSalary.Add(stored.OvertimePay).Add(stored.Bonus).
		Sub(stored.ETF).Sub(stored.EPF).Sub(stored.ManualDeductions)
	assert.True(t, want.Equal(stored.NetSalary), "net %s, recomputed %s", stored.NetSalary, want)
	assert.True(t, stored.NetSalary.Equal(decimal.RequireFromString("952.3502")), "net %s", stored.NetSalary)

	assert.True(t, inMemory.NetSalary.Equal(stored.NetSalary))
	assert.True(t, inMemory.ETF.Equal(stored.ETF))
	assert.True(t, inMemory.EPF.Equal(stored.EPF))
	assert.True(t, inMemory.Bonus.Equal(stored.Bonus))
}

// Test the unique period constraint maps to ErrDuplicatePeriod
func TestSalaryRepository_Create_DuplicatePeriod(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, setup, "Ada")
	repo := postgresql.NewSalaryRepository(setup.DB)

	_, err := repo.Create(ctx, newTestSalary(emp.ID, 6, 2025))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestSalary(emp.ID, 6, 2025))
	assert.ErrorIs(t, err, payroll.ErrDuplicatePeriod)
}

// Test malformed and unknown ids are reported as not found
func TestSalaryRepository_GetByID_NotFound(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewSalaryRepository(setup.DB)

	_, err := repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, payroll.ErrSalaryRecordNotFound)

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, payroll.ErrSalaryRecordNotFound)
}

// Test approval is recorded once and kept on repeat
func TestSalaryRepository_MarkApproved_Idempotent(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, setup, "Ada")
	repo := postgresql.NewSalaryRepository(setup.DB)

	created, err := repo.Create(ctx, newTestSalary(emp.ID, 6, 2025))
	require.NoError(t, err)

	approver := "user-1"
	first, err := repo.MarkApproved(ctx, created.ID, payroll.TrackSalary, &approver)
	require.NoError(t, err)
	assert.Equal(t, payroll.ApprovalStatusApproved, first.ApprovalStatus)
	require.NotNil(t, first.ApprovedAt)

	other := "user-2"
	second, err := repo.MarkApproved(ctx, created.ID, payroll.TrackSalary, &other)
	require.NoError(t, err)
	require.NotNil(t, second.ApprovedBy)
	assert.Equal(t, approver, *second.ApprovedBy)
	assert.True(t, first.ApprovedAt.Equal(*second.ApprovedAt))
}

// Test list filtering and per-employee ordering
func TestSalaryRepository_ListOrdering(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, setup, "Ada")
	repo := postgresql.NewSalaryRepository(setup.DB)

	for _, p := range []struct{ month, year int }{{5, 2025}, {12, 2024}, {6, 2025}} {
		_, err := repo.Create(ctx, newTestSalary(emp.ID, p.month, p.year))
		require.NoError(t, err)
	}

	history, err := repo.ListByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 6, history[0].PeriodMonth)
	assert.Equal(t, 5, history[1].PeriodMonth)
	assert.Equal(t, 2024, history[2].PeriodYear)

	year := 2025
	filtered, err := repo.List(ctx, payroll.SalaryFilter{Year: &year})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	count, err := repo.CountByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

// Test the transactor rolls back every write made through the context
func TestTransactor_RollsBack(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, setup, "Ada")
	repo := postgresql.NewSalaryRepository(setup.DB)
	tx := postgresql.NewTransactor(setup.DB)

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, newTestSalary(emp.ID, 6, 2025)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetByEmployeePeriod(ctx, emp.ID, 6, 2025)
	assert.ErrorIs(t, err, payroll.ErrSalaryRecordNotFound)
}

// Test an employee with salary records cannot be deleted
func TestEmployeeRepository_Delete_WithSalaries(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, setup, "Ada")

	_, err := postgresql.NewSalaryRepository(setup.DB).Create(ctx, newTestSalary(emp.ID, 6, 2025))
	require.NoError(t, err)

	err = postgresql.NewEmployeeRepository(setup.DB).Delete(ctx, emp.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeHasSalaryRecords)
}

// Test attendance uniqueness and the half-open month window
func TestAttendanceRepository_CountPresentDays(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	emp := createTestEmployee(t, ctx, setup, "Ada")
	repo := postgresql.NewAttendanceRepository(setup.DB)

	days := []struct {
		date   time.Time
		status attendance.Status
	}{
		{time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC), attendance.StatusPresent},
		{time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), attendance.StatusPresent},
		{time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC), attendance.StatusAbsent},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), attendance.StatusPresent},
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), attendance.StatusPresent},
	}
	for _, d := range days {
		_, err := repo.Create(ctx, attendance.Attendance{EmployeeID: emp.ID, Date: d.date, Status: d.status})
		require.NoError(t, err)
	}

	_, err := repo.Create(ctx, attendance.Attendance{EmployeeID: emp.ID, Date: days[1].date, Status: attendance.StatusAbsent})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)

	from, to := attendance.PeriodBounds(12, 2024)
	count, err := repo.CountPresentDays(ctx, emp.ID, from, to)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// Test report metadata round trip
func TestReportRepository_CreateAndList(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	repo := postgresql.NewReportRepository(setup.DB)

	created, err := repo.Create(ctx, report.Report{
		ReportType: report.ReportTypeSalaryReport,
		FilePath:   "reports/salary-report-1.xlsx",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.GeneratedAt.IsZero())

	reports, err := repo.List(ctx, report.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, created.ID, reports[0].ID)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, report.ErrReportNotFound)
}
