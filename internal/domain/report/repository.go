package report

import "context"

// ReportRepository stores report artifact metadata.
type ReportRepository interface {
	Create(ctx context.Context, report Report) (Report, error)
	GetByID(ctx context.Context, id string) (Report, error)

	// List returns reports newest first.
	List(ctx context.Context, filter ReportFilter) ([]Report, error)
}
