package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/quickcart/payroll-backend-go/internal/domain/report"
	"github.com/quickcart/payroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Salary report projection
	GetSalaryReport(w http.ResponseWriter, r *http.Request)

	// Artifacts
	ExportSalaryReport(w http.ResponseWriter, r *http.Request)
	ExportSalarySlip(w http.ResponseWriter, r *http.Request)
	ListReports(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
	DownloadReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func periodFilterFromQuery(w http.ResponseWriter, r *http.Request) (report.PeriodFilter, bool) {
	month, ok := optionalIntQuery(r, "month")
	if !ok {
		response.BadRequest(w, "invalid month parameter", nil)
		return report.PeriodFilter{}, false
	}
	year, ok := optionalIntQuery(r, "year")
	if !ok {
		response.BadRequest(w, "invalid year parameter", nil)
		return report.PeriodFilter{}, false
	}
	return report.PeriodFilter{Month: month, Year: year}, true
}

// GetSalaryReport handles GET /salaries/report?month=&year=
func (h *reportHandlerImpl) GetSalaryReport(w http.ResponseWriter, r *http.Request) {
	filter, ok := periodFilterFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.ProjectSalaryReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportSalaryReport handles POST /salaries/report/export?month=&year=
func (h *reportHandlerImpl) ExportSalaryReport(w http.ResponseWriter, r *http.Request) {
	filter, ok := periodFilterFromQuery(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.ExportSalaryReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary report generated", result)
}

// ExportSalarySlip handles POST /salaries/{id}/slip
func (h *reportHandlerImpl) ExportSalarySlip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Salary ID is required", nil)
		return
	}

	result, err := h.reportService.ExportSalarySlip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip generated", result)
}

// ListReports handles GET /reports?report_type=&employee_id=
func (h *reportHandlerImpl) ListReports(w http.ResponseWriter, r *http.Request) {
	filter := report.ReportFilter{
		ReportType: optionalStringQuery(r, "report_type"),
		EmployeeID: optionalStringQuery(r, "employee_id"),
	}

	result, err := h.reportService.ListReports(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetReport handles GET /reports/{id}
func (h *reportHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Report ID is required", nil)
		return
	}

	result, err := h.reportService.GetReport(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadReport handles GET /reports/{id}/download
func (h *reportHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Report ID is required", nil)
		return
	}

	meta, file, err := h.reportService.DownloadReport(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", report.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(meta.FilePath)))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, file); err != nil {
		slog.Warn("Failed to stream report file", "report_id", meta.ID, "error", err)
	}
}
