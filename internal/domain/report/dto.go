package report

import (
	"time"

	"github.com/quickcart/payroll-backend-go/internal/pkg/validator"
)

// PeriodFilter narrows the projection. Month and Year are independent.
type PeriodFilter struct {
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

func (f *PeriodFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if f.Year != nil && *f.Year < 1970 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a valid year",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportFilter struct {
	ReportType *string `json:"report_type,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

type ReportResponse struct {
	ID          string  `json:"id"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	SalaryID    *string `json:"salary_id,omitempty"`
	ReportType  string  `json:"report_type"`
	DownloadURL string  `json:"download_url"`
	GeneratedAt string  `json:"generated_at"`
}

func NewReportResponse(r Report) ReportResponse {
	return ReportResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		SalaryID:    r.SalaryID,
		ReportType:  string(r.ReportType),
		DownloadURL: DownloadPath(r.ID),
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	}
}

// DownloadPath is the API route that streams the artifact of report id.
func DownloadPath(id string) string {
	return "/api/v1/reports/" + id + "/download"
}
