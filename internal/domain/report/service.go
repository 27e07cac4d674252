package report

import (
	"context"
	"io"
)

// ReportService projects salary records into report rows and exports them
// as stored artifacts.
type ReportService interface {
	ProjectSalaryReport(ctx context.Context, filter PeriodFilter) ([]SalaryReportRow, error)
	ExportSalaryReport(ctx context.Context, filter PeriodFilter) (ReportResponse, error)
	ExportSalarySlip(ctx context.Context, salaryID string) (ReportResponse, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]ReportResponse, error)
	GetReport(ctx context.Context, id string) (ReportResponse, error)

	// DownloadReport opens the stored artifact. The caller closes the reader.
	DownloadReport(ctx context.Context, id string) (Report, io.ReadCloser, error)
}
