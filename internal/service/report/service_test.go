package report

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quickcart/payroll-backend-go/internal/domain/employee"
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
	"github.com/quickcart/payroll-backend-go/internal/pkg/storage"
	"github.com/quickcart/payroll-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type reportFixture struct {
	store   *memory.Store
	dir     string
	service report.ReportService
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	store := memory.NewStore()
	dir := t.TempDir()

	fileStorage, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	return &reportFixture{
		store:   store,
		dir:     dir,
		service: NewReportService(store.Salaries(), store.Reports(), fileStorage),
	}
}

func (f *reportFixture) seedSalary(t *testing.T, name string, month, year int, net string) payroll.SalaryRecord {
	t.Helper()
	ctx := context.Background()

	emp, err := f.store.Employees().Create(ctx, employee.Employee{
		Name:        name,
		Position:    "Analyst",
		BasicSalary: decimal.NewFromInt(1000),
		Status:      employee.EmploymentStatusActive,
	})
	require.NoError(t, err)

	rec, err := f.store.Salaries().Create(ctx, payroll.SalaryRecord{
		EmployeeID:               emp.ID,
		PeriodMonth:              month,
		PeriodYear:               year,
		BasicSalary:              decimal.NewFromInt(1000),
		DaysWorked:               20,
		Bonus:                    decimal.NewFromInt(50),
		EPF:                      decimal.NewFromInt(80),
		ETF:                      decimal.NewFromInt(30),
		NetSalary:                decimal.RequireFromString(net),
		ApprovalStatus:           payroll.ApprovalStatusPending,
		AttendanceApprovalStatus: payroll.ApprovalStatusApproved,
	})
	require.NoError(t, err)
	return rec
}

func TestProjectRows_FilterAndNegativeNet(t *testing.T) {
	name := "Ada"
	records := []payroll.SalaryRecord{
		{ID: "s1", EmployeeName: &name, PeriodMonth: 6, PeriodYear: 2025, NetSalary: decimal.NewFromInt(940)},
		{ID: "s2", PeriodMonth: 6, PeriodYear: 2025, NetSalary: decimal.NewFromInt(-10)},
		{ID: "s3", PeriodMonth: 7, PeriodYear: 2025, NetSalary: decimal.NewFromInt(1)},
	}

	month := 6
	rows := ProjectRows(records, report.PeriodFilter{Month: &month})

	require.Len(t, rows, 2)
	assert.Equal(t, "s1", rows[0].SalaryID)
	assert.Equal(t, "Ada", rows[0].EmployeeName)
	assert.Equal(t, "June 2025", rows[0].Period)
	assert.False(t, rows[0].NegativeNet)
	assert.True(t, rows[1].NegativeNet)
	assert.Empty(t, rows[1].EmployeeName)
}

func TestReportService_ProjectSalaryReport(t *testing.T) {
	f := newReportFixture(t)
	f.seedSalary(t, "Ada", 6, 2025, "940")
	f.seedSalary(t, "Grace", 5, 2025, "900")

	year := 2025
	rows, err := f.service.ProjectSalaryReport(context.Background(), report.PeriodFilter{Year: &year})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Creation order is kept
	assert.Equal(t, "Ada", rows[0].EmployeeName)
	assert.True(t, rows[0].NetSalary.Equal(decimal.NewFromInt(940)))

	month := 1
	empty, err := f.service.ProjectSalaryReport(context.Background(), report.PeriodFilter{Month: &month})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReportService_ProjectSalaryReport_InvalidMonth(t *testing.T) {
	f := newReportFixture(t)

	month := 13
	_, err := f.service.ProjectSalaryReport(context.Background(), report.PeriodFilter{Month: &month})
	assert.Error(t, err)
}

func TestReportService_ExportSalaryReport(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	f.seedSalary(t, "Ada", 6, 2025, "940")
	f.seedSalary(t, "Grace", 6, 2025, "-25.5")

	month, year := 6, 2025
	resp, err := f.service.ExportSalaryReport(ctx, report.PeriodFilter{Month: &month, Year: &year})
	require.NoError(t, err)

	assert.Equal(t, string(report.ReportTypeSalaryReport), resp.ReportType)
	assert.Equal(t, report.DownloadPath(resp.ID), resp.DownloadURL)

	stored, err := f.store.Reports().GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.FilePath, "reports/salary-report-"))
	assert.True(t, strings.HasSuffix(stored.FilePath, ".xlsx"))

	wb, err := excelize.OpenFile(filepath.Join(f.dir, filepath.FromSlash(stored.FilePath)))
	require.NoError(t, err)
	defer wb.Close()

	title, err := wb.GetCellValue("Salary Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Salary Report - June 2025", title)

	first, err := wb.GetCellValue("Salary Report", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Ada", first)

	listed, err := f.service.ListReports(ctx, report.ReportFilter{})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestReportService_ExportSalaryReport_NoData(t *testing.T) {
	f := newReportFixture(t)

	month, year := 6, 2025
	_, err := f.service.ExportSalaryReport(context.Background(), report.PeriodFilter{Month: &month, Year: &year})
	assert.ErrorIs(t, err, report.ErrNoSalaryData)

	listed, err := f.service.ListReports(context.Background(), report.ReportFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestReportService_ExportSalarySlip(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	rec := f.seedSalary(t, "Ada", 6, 2025, "940")

	resp, err := f.service.ExportSalarySlip(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, string(report.ReportTypeSalarySlip), resp.ReportType)
	require.NotNil(t, resp.SalaryID)
	assert.Equal(t, rec.ID, *resp.SalaryID)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, rec.EmployeeID, *resp.EmployeeID)

	got, err := f.service.GetReport(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.DownloadURL, got.DownloadURL)

	typ := string(report.ReportTypeSalarySlip)
	filtered, err := f.service.ListReports(ctx, report.ReportFilter{ReportType: &typ, EmployeeID: &rec.EmployeeID})
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestReportService_ExportSalarySlip_NotFound(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.service.ExportSalarySlip(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrSalaryRecordNotFound)

	_, err = f.service.GetReport(context.Background(), "missing")
	assert.ErrorIs(t, err, report.ErrReportNotFound)
}

func TestReportService_DownloadReport(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	rec := f.seedSalary(t, "Ada", 6, 2025, "940")

	resp, err := f.service.ExportSalarySlip(ctx, rec.ID)
	require.NoError(t, err)

	meta, rc, err := f.service.DownloadReport(ctx, resp.ID)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, resp.ID, meta.ID)

	wb, err := excelize.OpenReader(rc)
	require.NoError(t, err)
	defer wb.Close()
	assert.NotEmpty(t, wb.GetSheetList())
}

func TestReportService_DownloadReport_Missing(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	_, _, err := f.service.DownloadReport(ctx, "missing")
	assert.ErrorIs(t, err, report.ErrReportNotFound)

	// Metadata without a stored file
	orphan, err := f.store.Reports().Create(ctx, report.Report{
		ReportType: report.ReportTypeSalaryReport,
		FilePath:   "reports/gone.xlsx",
	})
	require.NoError(t, err)

	_, _, err = f.service.DownloadReport(ctx, orphan.ID)
	assert.ErrorIs(t, err, report.ErrReportFileMissing)
}
