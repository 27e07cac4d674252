package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/quickcart/payroll-backend-go/internal/domain/payroll"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
	"github.com/quickcart/payroll-backend-go/internal/pkg/storage"
)

type ReportServiceImpl struct {
	salaryRepo payroll.SalaryRepository
	reportRepo report.ReportRepository
	storage    storage.FileStorage
}

func NewReportService(
	salaryRepo payroll.SalaryRepository,
	reportRepo report.ReportRepository,
	fileStorage storage.FileStorage,
) report.ReportService {
	return &ReportServiceImpl{
		salaryRepo: salaryRepo,
		reportRepo: reportRepo,
		storage:    fileStorage,
	}
}

// ProjectSalaryReport implements report.ReportService.
func (s *ReportServiceImpl) ProjectSalaryReport(ctx context.Context, filter report.PeriodFilter) ([]report.SalaryReportRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.salaryRepo.List(ctx, payroll.SalaryFilter{Month: filter.Month, Year: filter.Year})
	if err != nil {
		return nil, fmt.Errorf("failed to get salary data: %w", err)
	}

	return ProjectRows(records, filter), nil
}

// ExportSalaryReport implements report.ReportService.
func (s *ReportServiceImpl) ExportSalaryReport(ctx context.Context, filter report.PeriodFilter) (report.ReportResponse, error) {
	rows, err := s.ProjectSalaryReport(ctx, filter)
	if err != nil {
		return report.ReportResponse{}, err
	}
	if len(rows) == 0 {
		return report.ReportResponse{}, report.ErrNoSalaryData
	}

	buf, err := renderSalaryReport(rows, reportTitle(filter))
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	created, err := s.store(ctx, buf, "salary-report", report.Report{ReportType: report.ReportTypeSalaryReport})
	if err != nil {
		return report.ReportResponse{}, err
	}

	slog.Info("Salary report exported", "report_id", created.ID, "rows", len(rows))
	return report.NewReportResponse(created), nil
}

// ExportSalarySlip implements report.ReportService.
func (s *ReportServiceImpl) ExportSalarySlip(ctx context.Context, salaryID string) (report.ReportResponse, error) {
	rec, err := s.salaryRepo.GetByID(ctx, salaryID)
	if err != nil {
		return report.ReportResponse{}, err
	}

	buf, err := renderSalarySlip(rec)
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("%w: %v", report.ErrReportGenerationFailed, err)
	}

	employeeID, id := rec.EmployeeID, rec.ID
	created, err := s.store(ctx, buf, "salary-slip", report.Report{
		ReportType: report.ReportTypeSalarySlip,
		EmployeeID: &employeeID,
		SalaryID:   &id,
	})
	if err != nil {
		return report.ReportResponse{}, err
	}

	slog.Info("Salary slip exported", "report_id", created.ID, "salary_id", rec.ID, "employee_id", rec.EmployeeID)
	return report.NewReportResponse(created), nil
}

// store uploads the artifact and records its metadata. The file is removed
// again when the metadata cannot be saved.
func (s *ReportServiceImpl) store(ctx context.Context, buf *bytes.Buffer, prefix string, meta report.Report) (report.Report, error) {
	filePath := path.Join("reports", fmt.Sprintf("%s-%s.xlsx", prefix, uuid.NewString()))

	storedPath, err := s.storage.Upload(ctx, buf, filePath, report.ContentTypeXLSX)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to store report file: %w", err)
	}

	meta.FilePath = storedPath

	created, err := s.reportRepo.Create(ctx, meta)
	if err != nil {
		if delErr := s.storage.Delete(ctx, storedPath); delErr != nil {
			slog.Warn("Failed to remove orphaned report file", "path", storedPath, "error", delErr)
		}
		return report.Report{}, fmt.Errorf("failed to save report: %w", err)
	}
	return created, nil
}

// ListReports implements report.ReportService.
func (s *ReportServiceImpl) ListReports(ctx context.Context, filter report.ReportFilter) ([]report.ReportResponse, error) {
	reports, err := s.reportRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	responses := make([]report.ReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, report.NewReportResponse(r))
	}
	return responses, nil
}

// GetReport implements report.ReportService.
func (s *ReportServiceImpl) GetReport(ctx context.Context, id string) (report.ReportResponse, error) {
	r, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return report.ReportResponse{}, err
	}
	return report.NewReportResponse(r), nil
}

// DownloadReport implements report.ReportService.
func (s *ReportServiceImpl) DownloadReport(ctx context.Context, id string) (report.Report, io.ReadCloser, error) {
	r, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return report.Report{}, nil, err
	}

	rc, err := s.storage.Download(ctx, r.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			slog.Warn("Report file missing from storage", "report_id", r.ID, "path", r.FilePath)
			return report.Report{}, nil, report.ErrReportFileMissing
		}
		return report.Report{}, nil, fmt.Errorf("failed to open report file: %w", err)
	}
	return r, rc, nil
}

func reportTitle(filter report.PeriodFilter) string {
	parts := []string{"Salary Report"}
	switch {
	case filter.Month != nil && filter.Year != nil:
		parts = append(parts, periodLabel(*filter.Month, *filter.Year))
	case filter.Year != nil:
		parts = append(parts, fmt.Sprintf("%d", *filter.Year))
	case filter.Month != nil:
		parts = append(parts, fmt.Sprintf("month %d", *filter.Month))
	}
	return strings.Join(parts, " - ")
}
