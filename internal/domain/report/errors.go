package report

import "errors"

var (
	ErrNoSalaryData           = errors.New("no salary data found for the specified period")
	ErrReportNotFound         = errors.New("report not found")
	ErrReportFileMissing      = errors.New("report file is no longer available")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
